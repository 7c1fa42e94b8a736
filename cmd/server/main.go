package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daoxue-backend/internal/config"
	"daoxue-backend/internal/handlers"
	"daoxue-backend/internal/prompts"
	"daoxue-backend/internal/router"
	"daoxue-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Daoxue Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if !cfg.HasCredential() {
		log.Println("⚠ OPENAI_API_KEY is not set; /api/chat will answer 500 until it is")
	}

	// ──── Step 2: Load System Prompts ────
	promptSet, err := loadPrompts(cfg.PromptsFile)
	if err != nil {
		log.Fatalf("✗ Prompt loading failed: %v", err)
	}
	log.Println("✓ System prompts loaded")

	// ──── Step 3: Initialize OpenAI Client ────
	openAIService := services.NewOpenAIService(cfg)
	log.Printf("✓ OpenAI client initialized (model %s)", cfg.OpenAIModel)

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(cfg, promptSet, openAIService)
	r := router.New(chatHandler, cfg.FrontendURL)

	// No WriteTimeout: the upstream call is bounded only by the transport.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Daoxue Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func loadPrompts(path string) (*prompts.Set, error) {
	if path == "" {
		return prompts.Default()
	}
	return prompts.LoadFile(path)
}
