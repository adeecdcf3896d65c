package services

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("A normal resting heart rate "), genai.Text("is 60-100 bpm.")},
				},
			},
		},
	}

	got := extractText(resp)
	want := "A normal resting heart rate is 60-100 bpm."
	if got != want {
		t.Errorf("extractText = %q, want %q", got, want)
	}
}

func TestExtractTextEmptyCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{}
	if got := extractText(resp); got != "" {
		t.Errorf("expected empty string for no candidates, got %q", got)
	}
}

func TestSystemPromptKeepsGuardrails(t *testing.T) {
	// The fixed instruction is part of the contract with the model; the
	// guardrail lines must stay present.
	for _, fragment := range []string{"Do NOT diagnose", "Do NOT give medication doses", "Always advise seeing a doctor"} {
		if !strings.Contains(systemPrompt, fragment) {
			t.Errorf("system prompt missing %q", fragment)
		}
	}
}
