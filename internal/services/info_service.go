// filepath: internal/services/info_service.go
package services

import (
	"time"

	"contactgate/internal/models"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version     string
	StartTime   time.Time
	PlatformURL string
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, platformURL string) *infoService {
	return &infoService{
		Version:     version,
		StartTime:   startTime,
		PlatformURL: platformURL,
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName: "ContactGate-API",
		Version:     s.Version,
		UptimeSince: s.StartTime,
		PlatformURL: s.PlatformURL,
	}
}
