package prompts

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"daoxue-backend/internal/models"
)

func TestDefault_PromptsAreFixedNonEmptyAndDistinct(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if s.Beginner == "" || s.Advanced == "" {
		t.Fatal("expected both prompts to be non-empty")
	}
	if s.Beginner == s.Advanced {
		t.Fatal("expected prompts to differ")
	}
	if !strings.HasPrefix(s.Beginner, "你是一位耐心且博学的道家导师") {
		t.Errorf("unexpected beginner prompt: %q", s.Beginner)
	}
	if !strings.HasPrefix(s.Advanced, "你是一位资深的道家学者") {
		t.Errorf("unexpected advanced prompt: %q", s.Advanced)
	}
}

func TestFor_FallsBackToBeginner(t *testing.T) {
	s := &Set{Beginner: "b", Advanced: "a"}

	if got := s.For(models.ModeAdvanced); got != "a" {
		t.Errorf("advanced: got %q", got)
	}
	for _, mode := range []models.Mode{models.ModeBeginner, "expert", ""} {
		if got := s.For(mode); got != "b" {
			t.Errorf("mode %q: got %q, want beginner prompt", mode, got)
		}
	}
}

func TestCompose_PrependsSystemTurn(t *testing.T) {
	s := &Set{Beginner: "b", Advanced: "a"}
	in := []models.ChatMessage{
		{Role: models.RoleAssistant, Content: "welcome"},
		{Role: models.RoleUser, Content: "你好"},
	}

	got := s.Compose(models.ModeAdvanced, in)
	want := []models.ChatMessage{
		{Role: models.RoleSystem, Content: "a"},
		{Role: models.RoleAssistant, Content: "welcome"},
		{Role: models.RoleUser, Content: "你好"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compose() = %+v, want %+v", got, want)
	}
	if len(in) != 2 || in[0].Content != "welcome" {
		t.Fatalf("input was mutated: %+v", in)
	}
}

func TestCompose_EmptyMessages(t *testing.T) {
	s := &Set{Beginner: "b", Advanced: "a"}

	got := s.Compose(models.ModeBeginner, nil)
	if len(got) != 1 || got[0].Role != models.RoleSystem || got[0].Content != "b" {
		t.Fatalf("unexpected composition: %+v", got)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing advanced", "beginner: hello\n"},
		{"blank beginner", "beginner: '  '\nadvanced: deep\n"},
		{"identical", "beginner: same\nadvanced: same\n"},
		{"not yaml mapping", "- a\n- b\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte("beginner: intro\nadvanced: deep\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.Beginner != "intro" || s.Advanced != "deep" {
		t.Fatalf("unexpected prompts: %+v", s)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
