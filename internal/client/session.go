package client

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"daoxue-backend/internal/models"
)

const (
	WelcomeMessage = "你好，我是你的道家文化学习助手！您可以选择“初学入门”或“深入学习”模式，然后输入想要了解的内容。让我们开始吧。"
	FallbackReply  = "抱歉，我暂时无法回答。"
	FailureMessage = "请求失败，请稍后再试。"
	failurePrefix  = "发生错误："
)

// ErrBusy is returned by Submit while a previous request is still in flight.
var ErrBusy = errors.New("a request is already in flight")

type sender interface {
	Send(ctx context.Context, history []models.ChatMessage, mode models.Mode) (string, error)
}

// Renderer displays turns. Implementations append only.
type Renderer interface {
	Render(role, content string)
	SetBusy(busy bool)
}

// Session owns the ordered history of one chat session. Turns are appended,
// never edited or removed.
type Session struct {
	api      sender
	renderer Renderer

	mu      sync.Mutex
	mode    models.Mode
	history []models.ChatMessage
	busy    bool
}

// NewSession renders the welcome turn and records it as the first history entry.
func NewSession(api sender, renderer Renderer, mode models.Mode) *Session {
	s := &Session{
		api:      api,
		renderer: renderer,
		mode:     models.ParseMode(string(mode)),
	}
	s.appendAndRender(models.RoleAssistant, WelcomeMessage)
	return s
}

// History returns a copy of the turns recorded so far.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Mode() models.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) SetMode(mode models.Mode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

// Submit sends one user turn. Blank input is ignored. A successful reply is
// rendered and recorded; a failure is rendered only, so history keeps the
// user turn without an answer.
func (s *Session) Submit(ctx context.Context, input string) error {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	mode := s.mode
	s.mu.Unlock()

	s.renderer.SetBusy(true)
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
		s.renderer.SetBusy(false)
	}()

	history := s.appendAndRender(models.RoleUser, text)

	reply, err := s.api.Send(ctx, history, mode)
	if err != nil {
		log.Printf("chat request failed: %v", err)
		s.renderer.Render(models.RoleAssistant, failurePrefix+FailureMessage)
		return err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = FallbackReply
	}
	s.appendAndRender(models.RoleAssistant, reply)
	return nil
}

// appendAndRender records a turn, renders it and returns a snapshot of history.
func (s *Session) appendAndRender(role, content string) []models.ChatMessage {
	s.renderer.Render(role, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, models.ChatMessage{Role: role, Content: content})
	out := make([]models.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}
