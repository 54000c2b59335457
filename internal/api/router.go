// filepath: internal/api/router.go
package api

import (
	"contactgate/internal/api/handlers"
	"contactgate/internal/services/auth"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router and its sub-routers.
// It sets up API endpoints, the credential check, and the swagger UI.
func SetupRouter(h *handlers.Handlers, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Credentialed API Routes. The middleware only checks the "Key "
	// scheme; the platform authenticates the token itself.
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(auth.CredentialMiddleware)
	apiRouter.Use(limiter.Middleware)

	addContactRoutes(apiRouter, h)
	addAuditRoutes(apiRouter, h)

	return r
}

// addContactRoutes configures routes for the contacts resource.
func addContactRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/contacts", h.ListContacts).Methods("GET")
	r.HandleFunc("/contacts/{identity}", h.GetContact).Methods("GET")
	r.HandleFunc("/contacts", h.CreateContact).Methods("POST")
	r.HandleFunc("/contacts/{identity}", h.UpdateContact).Methods("PUT")
	r.HandleFunc("/contacts/{identity}", h.DeleteContact).Methods("DELETE")
}

// addAuditRoutes configures routes for the audit trail.
func addAuditRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/audit", h.GetAuditEvents).Methods("GET")
}
