package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"doctriage/internal/classifier"
	"doctriage/internal/config"
	"doctriage/internal/extractor"
	"doctriage/internal/handler"
	"doctriage/internal/llm"
	"doctriage/internal/llm/anthropic"
	"doctriage/internal/llm/google"
	"doctriage/internal/llm/openai"
	"doctriage/internal/ocr"
	"doctriage/internal/port"
	"doctriage/internal/router"
	"doctriage/internal/service"
	s3storage "doctriage/internal/storage/s3"
	"doctriage/internal/transcribe"
)

// @title DocTriage API
// @version 1.0
// @description Document classification and field extraction from recognized text
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerProviders()

	// Core analysis pipeline
	cls := classifier.New()
	ext := extractor.New()
	if cfg.LLM.Enrich {
		provider, err := buildEnrichmentProvider(&cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to initialize llm providers: %w", err)
		}
		ext = extractor.NewWithProvider(provider, cfg.LLM.EnrichTimeout)
	}
	analysisSvc := service.NewAnalysisService(cls, ext)

	// Media ingestion
	recognizer := ocr.NewVisionRecognizer(&cfg.OCR)
	transcriber := transcribe.NewWhisperTranscriber(&cfg.Transcribe)

	var storage port.ObjectStorage
	if cfg.Archive.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}
	uploadSvc := service.NewUploadService(recognizer, transcriber, analysisSvc, storage, cfg.Archive.Bucket)

	// Initialize handlers
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	uploadH := handler.NewUploadHandler(uploadSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, analysisH, uploadH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func registerProviders() {
	llm.RegisterProvider("openai", func(cfg *config.LLMProviderConfig) (port.LLMProvider, error) {
		return openai.NewClient(cfg), nil
	})
	llm.RegisterProvider("anthropic", func(cfg *config.LLMProviderConfig) (port.LLMProvider, error) {
		return anthropic.NewClient(cfg), nil
	})
	llm.RegisterProvider("google", func(cfg *config.LLMProviderConfig) (port.LLMProvider, error) {
		return google.NewClient(cfg), nil
	})
}

// buildEnrichmentProvider wires the configured providers into a fallback
// chain. A single configured provider is used directly.
func buildEnrichmentProvider(cfg *config.LLMConfig) (port.LLMProvider, error) {
	providerCfgs := cfg.ProviderConfigs()
	if len(providerCfgs) == 0 {
		return nil, fmt.Errorf("llm enrichment enabled but no providers configured")
	}

	var chain []port.LLMProvider
	var names []string
	for _, pc := range providerCfgs {
		provider, err := llm.NewProvider(pc)
		if err != nil {
			return nil, err
		}
		chain = append(chain, provider)
		names = append(names, pc.Provider)
	}

	if len(chain) == 1 {
		return chain[0], nil
	}
	return llm.NewFallbackProvider(chain, names), nil
}
