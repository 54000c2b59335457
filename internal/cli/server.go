// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contactgate/internal/api"
	"contactgate/internal/api/handlers"
	"contactgate/internal/audit"
	"contactgate/internal/housekeeping"
	"contactgate/internal/logging"
	"contactgate/internal/platform"
	"contactgate/internal/repository"
	"contactgate/internal/services"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Platform client
	platformClient := platform.NewHTTPClient(cfg.Platform.BaseURL, cfg.PlatformTimeout())

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime, cfg.Platform.BaseURL)
	contactService := services.NewContactService(platformClient)

	// Auditor Initialization
	var auditor services.Auditor
	var auditStore repository.Repository
	var housekeeper *housekeeping.Service
	if cfg.Audit.DatabasePath != "" {
		repo, err := repository.NewRepository(cfg.Audit.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize audit store: %w", err)
		}
		defer repo.Close()
		auditStore = repo
		auditor = audit.NewStoreAuditor(repo, cfg.Logging.AuditEnabled)
		logging.Log.Infof("Audit store enabled at %s", cfg.Audit.DatabasePath)

		housekeeper = housekeeping.NewService(repo, cfg.AuditRetention())
		housekeeper.Start()
		// No defer stop here, we stop explicitly during graceful shutdown
	} else {
		auditor = audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)
	}

	h := handlers.NewHandlers(
		infoService,
		contactService,
		auditor,
		auditStore,
		cfg,
	)

	limiter := api.NewRateLimiter(cfg.Server.RateLimitPerMin)
	r := api.SetupRouter(h, limiter)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s (Platform: %s)", serverAddr, cfg.Platform.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if housekeeper != nil {
		housekeeper.Stop()
	}

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
