package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/Dushyant778/ecofarm/internal/advice"
	"github.com/Dushyant778/ecofarm/internal/api"
	apiMiddleware "github.com/Dushyant778/ecofarm/internal/api/middleware"
	"github.com/Dushyant778/ecofarm/internal/api/shared"
	"github.com/Dushyant778/ecofarm/internal/config"
)

// application holds the assembled dependencies of the server process.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	advisor advice.Advisor
}

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Browser clients call the endpoint from any origin; preflight requests
	// are answered here without reaching the handler.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowedHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
			"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
		},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusOK,
	}).Handler)

	// Non-POST methods on the API get the JSON contract, not chi's plain-text
	// default.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	askHandler := api.NewAskHandler(app.advisor, app.config.LLM.ModelName)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/gemini", askHandler.Ask)
		// Preflight requests are answered by the CORS middleware; this route
		// keeps bare OPTIONS probes on the 200 contract instead of 405.
		r.Options("/gemini", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
