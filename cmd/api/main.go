package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fotostudio/internal/generate"
	"fotostudio/internal/http/handlers"
	"fotostudio/internal/http/httpapi"
	"fotostudio/internal/infra"
	"fotostudio/internal/infra/geoip"
	"fotostudio/internal/providers/gemini"
	"fotostudio/internal/providers/openai"
	"fotostudio/internal/retention"
	"fotostudio/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store, err := storage.NewFileStore(cfg.OutputDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.OutputDir).Msg("failed to prepare output directory")
	}

	providerHTTP := &http.Client{Timeout: cfg.ProviderTimeout}
	geminiClient, err := gemini.NewClient(gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		HTTPClient: providerHTTP,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build gemini client")
	}
	openaiClient, err := openai.NewClient(openai.Options{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		Model:      cfg.OpenAIModel,
		HTTPClient: providerHTTP,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build openai client")
	}
	if !geminiClient.HasCredentials() {
		logger.Warn().Msg("no Gemini API key configured, image endpoints run in demo mode")
	}
	if !openaiClient.HasCredentials() {
		logger.Warn().Msg("no OpenAI API key configured, dalle endpoint runs in demo mode")
	}

	janitor := retention.NewJanitor(cfg.OutputDir, cfg.RetentionHours, logger)

	resolver, err := geoip.Open(cfg.GeoIPDBPath, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, locale detection degraded")
	}
	defer resolver.Close()

	app := &handlers.App{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		TextImage: generate.NewTextImageAdapter(geminiClient, store, janitor, logger),
		Product:   generate.NewProductAdapter(geminiClient, store, janitor, logger),
		Fashion:   generate.NewFashionAdapter(geminiClient, logger),
		Dalle:     generate.NewDalleAdapter(openaiClient, logger),
	}

	router := httpapi.NewRouter(app, resolver.CountryCode)
	server := infra.NewHTTPServer(cfg, router)

	// Prune leftovers from previous runs before taking traffic.
	janitor.Kick()

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
