package models

// Message roles accepted by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// Mode selects which system prompt frames the tutor.
type Mode string

const (
	ModeBeginner Mode = "beginner"
	ModeAdvanced Mode = "advanced"
)

// ParseMode maps a decoded JSON value to a Mode. Anything other than the
// string "advanced" is treated as beginner.
func ParseMode(v any) Mode {
	s, ok := v.(string)
	if !ok {
		return ModeBeginner
	}
	if Mode(s) == ModeAdvanced {
		return ModeAdvanced
	}
	return ModeBeginner
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Mode     Mode          `json:"mode"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the body of every failed chat request.
type ErrorResponse struct {
	Error string `json:"error"`
}
