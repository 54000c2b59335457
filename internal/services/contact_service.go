// filepath: internal/services/contact_service.go
package services

import (
	"context"
	"fmt"

	"contactgate/internal/logging"
	"contactgate/internal/models"
	"contactgate/internal/platform"
	"contactgate/internal/shared"
)

// contactsPath is the platform-side resource path for the contacts store.
const contactsPath = "contacts"

var _ ContactService = (*contactService)(nil)

type contactService struct {
	platform platform.Client
}

// NewContactService creates a ContactService backed by the given platform
// client. The client is injected so tests can substitute a fake.
func NewContactService(client platform.Client) *contactService {
	return &contactService{platform: client}
}

// List requests all contacts from the platform.
func (s *contactService) List(ctx context.Context, credential string) ([]models.Contact, error) {
	resp, err := s.submit(ctx, credential, platform.Command{
		Method: platform.MethodGet,
		Path:   contactsPath,
	})
	if err != nil {
		return nil, err
	}
	if resp.Contacts == nil {
		return nil, shared.ErrMissingResource
	}
	return resp.Contacts, nil
}

// Get requests the single contact named by identity.
func (s *contactService) Get(ctx context.Context, credential, identity string) (*models.Contact, error) {
	resp, err := s.submit(ctx, credential, platform.Command{
		Method: platform.MethodGet,
		Path:   contactsPath + "/" + identity,
	})
	if err != nil {
		return nil, err
	}
	if resp.Contact == nil {
		return nil, shared.ErrMissingResource
	}
	return resp.Contact, nil
}

// Create submits a new contact for creation.
func (s *contactService) Create(ctx context.Context, credential string, contact models.Contact) (*models.Ack, error) {
	resp, err := s.submit(ctx, credential, platform.Command{
		Method:  platform.MethodSet,
		Path:    contactsPath,
		Payload: &contact,
	})
	if err != nil {
		return nil, err
	}
	return &models.Ack{Status: resp.Status, Contact: resp.Contact}, nil
}

// Update merges the given contact into the one named by identity. The
// payload identity must match the path identity; a mismatch is rejected
// before any platform call.
func (s *contactService) Update(ctx context.Context, credential, identity string, contact models.Contact) (*models.Ack, error) {
	if contact.Identity == "" || contact.Identity != identity {
		logging.Log.Debugf("Update: Rejecting identity mismatch (path '%s', payload '%s')", identity, contact.Identity)
		return nil, shared.ErrIdentityMismatch
	}

	resp, err := s.submit(ctx, credential, platform.Command{
		Method:  platform.MethodMerge,
		Path:    contactsPath + "/" + identity,
		Payload: &contact,
	})
	if err != nil {
		return nil, err
	}
	return &models.Ack{Status: resp.Status, Contact: resp.Contact}, nil
}

// Delete submits a deletion for the contact named by identity.
func (s *contactService) Delete(ctx context.Context, credential, identity string) (*models.Ack, error) {
	resp, err := s.submit(ctx, credential, platform.Command{
		Method: platform.MethodDelete,
		Path:   contactsPath + "/" + identity,
	})
	if err != nil {
		return nil, err
	}
	return &models.Ack{Status: resp.Status, Contact: resp.Contact}, nil
}

// submit forwards one command and converts a reported failure status into
// a platform error carrying the platform's reason text.
func (s *contactService) submit(ctx context.Context, credential string, cmd platform.Command) (*platform.Response, error) {
	resp, err := s.platform.Submit(ctx, credential, cmd)
	if err != nil {
		return nil, fmt.Errorf("command '%s %s' failed: %w", cmd.Method, cmd.Path, err)
	}
	if resp.Status != platform.StatusSuccess {
		return nil, &platform.Error{Reason: resp.Reason}
	}
	return resp, nil
}
