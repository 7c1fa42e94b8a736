package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"daoxue-backend/internal/config"
	"daoxue-backend/internal/models"
	"daoxue-backend/internal/prompts"
	"daoxue-backend/internal/services"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgNotConfigured    = "OpenAI API key not configured"
	msgInvalidJSON      = "Invalid JSON body"
	msgBodyTooLarge     = "Request body too large"
	msgUpstreamStatus   = "Failed to fetch from OpenAI"
	msgUpstreamRequest  = "Request to OpenAI failed"
)

type completer interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}

type ChatHandler struct {
	cfg       *config.Config
	prompts   *prompts.Set
	completer completer
}

func NewChatHandler(cfg *config.Config, promptSet *prompts.Set, completer completer) *ChatHandler {
	return &ChatHandler{
		cfg:       cfg,
		prompts:   promptSet,
		completer: completer,
	}
}

// Chat relays a conversation to the completion API behind the mode's system
// prompt and returns only the reply text.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResp(msgMethodNotAllowed))
		return
	}

	if !h.cfg.HasCredential() {
		writeJSON(w, http.StatusInternalServerError, errorResp(msgNotConfigured))
		return
	}

	body := r.Body
	if h.cfg.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp(msgBodyTooLarge))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp(msgInvalidJSON))
		return
	}

	req, err := decodeChatRequest(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(msgInvalidJSON))
		return
	}

	messages := h.prompts.Compose(req.Mode, req.Messages)

	reply, err := h.completer.Complete(r.Context(), messages)
	if err != nil {
		var statusErr *services.UpstreamStatusError
		if errors.As(err, &statusErr) {
			log.Printf("OpenAI API error: %d %s", statusErr.StatusCode, statusErr.Body)
			writeJSON(w, http.StatusInternalServerError, errorResp(msgUpstreamStatus))
			return
		}
		log.Printf("Request to OpenAI failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp(msgUpstreamRequest))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// decodeChatRequest parses the body permissively: only syntactically invalid
// JSON is an error. A non-array messages field becomes empty, individual
// entries that are not role/content objects are dropped, and the mode falls
// back to beginner.
func decodeChatRequest(raw []byte) (models.ChatRequest, error) {
	req := models.ChatRequest{
		Messages: []models.ChatMessage{},
		Mode:     models.ModeBeginner,
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return req, err
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return req, nil
	}

	req.Mode = models.ParseMode(fields["mode"])

	items, ok := fields["messages"].([]any)
	if !ok {
		return req, nil
	}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		role, roleOK := obj["role"].(string)
		content, contentOK := obj["content"].(string)
		if !roleOK || !contentOK {
			continue
		}
		req.Messages = append(req.Messages, models.ChatMessage{Role: role, Content: content})
	}

	return req, nil
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}
