// Command server runs the EcoFarm AI proxy: the HTTP endpoint that holds the
// Gemini credential and answers agricultural questions on behalf of clients.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Dushyant778/ecofarm/internal/config"
	"github.com/Dushyant778/ecofarm/internal/platform/gemini"
	"github.com/Dushyant778/ecofarm/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	// A missing API key is reported per request as a configuration failure,
	// never by refusing to boot; operators still get a loud warning.
	if cfg.LLM.GeminiAPIKey == "" {
		log.Warn("gemini API key is not configured; AI requests will fail",
			"env_var", "ECOFARM_LLM_GEMINI_API_KEY")
	}

	advisor, err := gemini.NewClient(log, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}

	app := &application{
		config:  cfg,
		logger:  log,
		advisor: advisor,
	}

	router := app.setupRouter()
	return app.startHTTPServer(context.Background(), router)
}
