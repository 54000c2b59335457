// filepath: internal/api/handlers/contact_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"contactgate/internal/logging"
	"contactgate/internal/models"
	"contactgate/internal/platform"
	"contactgate/internal/services/auth"
	"contactgate/internal/shared"

	"github.com/gorilla/mux"
)

// credential pulls the caller's Authorization header value out of the
// request context. The middleware put it there; a miss means the route
// was wired without the middleware.
func credential(w http.ResponseWriter, r *http.Request) (string, bool) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No credential found in context")
		return "", false
	}
	return cred, true
}

// respondWithServiceError maps service errors onto HTTP statuses: identity
// mismatches are the caller's fault, everything else (platform failures,
// missing resources, transport errors) is reported as an internal error
// carrying the platform's reason where one exists.
func respondWithServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, shared.ErrIdentityMismatch) {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var perr *platform.Error
	if errors.As(err, &perr) {
		respondWithError(w, http.StatusInternalServerError, perr.Error())
		return
	}

	logging.Log.Errorf("Contact handler: Unexpected error: %v", err)
	respondWithError(w, http.StatusInternalServerError, "Platform request failed")
}

// @Summary List contacts
// @Description Requests all contacts from the messaging platform and returns the full collection.
// @Tags Contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts [get]
// @Security KeyAuth
func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	contacts, err := h.Contact.List(r.Context(), cred)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, contacts)
}

// @Summary Get a contact
// @Description Returns the single contact named by its identity (a structured address string).
// @Tags Contacts
// @Produce json
// @Param identity path string true "Contact identity"
// @Success 200 {object} models.Contact
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts/{identity} [get]
// @Security KeyAuth
func (h *Handlers) GetContact(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	identity := mux.Vars(r)["identity"]

	contact, err := h.Contact.Get(r.Context(), cred, identity)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, contact)
}

// @Summary Create a contact
// @Description Submits a new contact to the messaging platform and returns the platform's acknowledgment.
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body models.Contact true "Contact to create"
// @Success 201 {object} models.Ack
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts [post]
// @Security KeyAuth
func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ack, err := h.Contact.Create(r.Context(), cred, contact)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "contact.create", auth.Fingerprint(cred), "Contact:"+contact.Identity,
		map[string]interface{}{"status": ack.Status})

	respondWithJSON(w, http.StatusCreated, ack)
}

// @Summary Update a contact
// @Description Merges the submitted contact into the one named by the path identity. The payload identity must match the path identity.
// @Tags Contacts
// @Accept json
// @Produce json
// @Param identity path string true "Contact identity"
// @Param contact body models.Contact true "Contact fields to merge"
// @Success 200 {object} models.Ack
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts/{identity} [put]
// @Security KeyAuth
func (h *Handlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	identity := mux.Vars(r)["identity"]

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ack, err := h.Contact.Update(r.Context(), cred, identity, contact)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "contact.update", auth.Fingerprint(cred), "Contact:"+identity,
		map[string]interface{}{"status": ack.Status})

	respondWithJSON(w, http.StatusOK, ack)
}

// @Summary Delete a contact
// @Description Submits a deletion for the contact named by its identity.
// @Tags Contacts
// @Produce json
// @Param identity path string true "Contact identity"
// @Success 200 {object} models.Ack
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts/{identity} [delete]
// @Security KeyAuth
func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	identity := mux.Vars(r)["identity"]

	ack, err := h.Contact.Delete(r.Context(), cred, identity)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "contact.delete", auth.Fingerprint(cred), "Contact:"+identity,
		map[string]interface{}{"status": ack.Status})

	respondWithJSON(w, http.StatusOK, ack)
}
