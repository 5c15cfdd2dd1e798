// Medspeak is a clinical translation relay daemon. It translates short
// English↔Chinese (Mandarin/Cantonese) utterances through an LLM chat API
// and synthesizes spoken audio of the translation via Google Cloud
// Text-to-Speech. When a credential is absent, the corresponding relay runs
// in offline demo mode instead.
//
// Usage:
//
//	medspeak [flags]
//	medspeak --config /path/to/medspeak.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/kwanly/medspeak/docs"
	"github.com/kwanly/medspeak/internal/config"
	"github.com/kwanly/medspeak/internal/health"
	"github.com/kwanly/medspeak/internal/server"
	"github.com/kwanly/medspeak/internal/speech"
	gcloudspeech "github.com/kwanly/medspeak/internal/speech/gcloudtts"
	offlinespeech "github.com/kwanly/medspeak/internal/speech/offline"
	"github.com/kwanly/medspeak/internal/translate"
	offlinetrans "github.com/kwanly/medspeak/internal/translate/offline"
	openaitrans "github.com/kwanly/medspeak/internal/translate/openai"
)

// version is set at build time via ldflags.
var version = "dev"

// @title       medspeak API
// @version     1.0
// @description Clinical translation and speech synthesis relay.
func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/medspeak.local.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("medspeak %s\n", version)
		os.Exit(0)
	}

	// Best-effort .env load for local development; real deployments use
	// the environment directly.
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("medspeak starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Select the translation backend. Credential presence is the only
	// switch: no key means offline phrase-table mode.
	var translator translate.Translator
	if cfg.Translator.OpenAI.APIKey != "" {
		translator = openaitrans.New(cfg.Translator.OpenAI)
		slog.Info("using openai translator", "model", cfg.Translator.OpenAI.Model)
	} else {
		translator = offlinetrans.New()
		slog.Warn("no LLM API key configured — running offline phrase-table translation")
	}
	defer translator.Close()

	// Select the speech backend the same way.
	var synthesizer speech.Synthesizer
	if cfg.Speech.Google.APIKey != "" {
		synthesizer = gcloudspeech.New(cfg.Speech.Google)
		slog.Info("using google cloud tts synthesizer")
	} else {
		synthesizer = offlinespeech.New()
		slog.Warn("no TTS API key configured — speech synthesis will be skipped")
	}
	defer synthesizer.Close()

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start the API server.
	apiServer := server.New(cfg.Server.Port, translator, synthesizer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Listen(ctx)
	}()

	healthServer.SetReady(true)
	slog.Info("medspeak ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort,
		"translator", translator.Name(),
		"synthesizer", synthesizer.Name())

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining...")
		if err := apiServer.Close(); err != nil {
			slog.Error("api server close error", "error", err)
		}
	case err := <-errCh:
		// Startup failures like a bound port are unrecoverable.
		if err != nil {
			slog.Error("api server failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("medspeak stopped")
}
