package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"daoxue-backend/internal/handlers"
	"daoxue-backend/internal/middleware"
	"daoxue-backend/internal/web"
)

func New(chatHandler *handlers.ChatHandler, frontendURL string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Every method reaches the handler so it can answer 405 with a JSON body.
	r.HandleFunc("/api/chat", chatHandler.Chat)

	// ──── Chat UI ────
	r.Handle("/*", web.Handler())

	return r
}
