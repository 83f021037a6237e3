package chatbot

import (
	"strings"
	"testing"
)

func TestSystemPrompt(t *testing.T) {
	p := DefaultPortfolio()
	prompt := p.SystemPrompt()

	for _, want := range []string{
		p.Name,
		p.Title,
		p.Email,
		"Skills:",
		"Projects:",
		"Experience:",
		"Education:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	for _, proj := range p.Projects {
		if !strings.Contains(prompt, proj.Name) {
			t.Errorf("prompt missing project %q", proj.Name)
		}
	}

	if prompt != DefaultPortfolio().SystemPrompt() {
		t.Error("preamble must be deterministic")
	}
}
