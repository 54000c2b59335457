// filepath: internal/services/mocks/contact_mock.go
package mocks

import (
	"context"

	"contactgate/internal/models"
	"contactgate/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockContactService is a mock implementation of services.ContactService
type MockContactService struct {
	mock.Mock
}

var _ services.ContactService = (*MockContactService)(nil)

func (m *MockContactService) List(ctx context.Context, credential string) ([]models.Contact, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactService) Get(ctx context.Context, credential, identity string) (*models.Contact, error) {
	args := m.Called(ctx, credential, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactService) Create(ctx context.Context, credential string, contact models.Contact) (*models.Ack, error) {
	args := m.Called(ctx, credential, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ack), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, credential, identity string, contact models.Contact) (*models.Ack, error) {
	args := m.Called(ctx, credential, identity, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ack), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, credential, identity string) (*models.Ack, error) {
	args := m.Called(ctx, credential, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ack), args.Error(1)
}
