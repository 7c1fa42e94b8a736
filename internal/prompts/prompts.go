// Package prompts holds the two fixed system prompts that frame the tutor
// persona for each learning mode.
package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"daoxue-backend/internal/models"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// Set is a pair of system prompts, one per mode.
type Set struct {
	Beginner string `yaml:"beginner"`
	Advanced string `yaml:"advanced"`
}

// Default returns the prompts compiled into the binary.
func Default() (*Set, error) {
	return Parse(defaultPrompts)
}

// LoadFile reads a YAML prompts file with the same shape as the embedded one.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}
	s.Beginner = strings.TrimSpace(s.Beginner)
	s.Advanced = strings.TrimSpace(s.Advanced)

	switch {
	case s.Beginner == "" || s.Advanced == "":
		return nil, errors.New("both beginner and advanced prompts are required")
	case s.Beginner == s.Advanced:
		return nil, errors.New("beginner and advanced prompts must differ")
	}
	return &s, nil
}

// For returns the system prompt for mode. Unknown modes get the beginner prompt.
func (s *Set) For(mode models.Mode) string {
	if mode == models.ModeAdvanced {
		return s.Advanced
	}
	return s.Beginner
}

// Compose prepends the mode's system turn to messages. The input slice is
// left untouched.
func (s *Set) Compose(mode models.Mode, messages []models.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(messages)+1)
	out = append(out, models.ChatMessage{Role: models.RoleSystem, Content: s.For(mode)})
	return append(out, messages...)
}
