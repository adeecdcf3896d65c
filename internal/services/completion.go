package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"google.golang.org/api/option"
)

// systemPrompt is the fixed instruction sent with every completion. The
// user's message is the only conversational turn; prior history is never
// forwarded to the model.
const systemPrompt = `You are a cautious medical info assistant.
Use simple language.
Do NOT diagnose.
Do NOT give medication doses.
Always advise seeing a doctor.`

type CompletionService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	rateChan chan struct{} // Token bucket
}

func NewCompletionService(apiKey string, concurrentReqs int) (*CompletionService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.3)
	model.SetTopP(0.95)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	// Token bucket for concurrent request limiting
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &CompletionService{
		client:   client,
		model:    model,
		rateChan: rateChan,
	}, nil
}

func (s *CompletionService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *CompletionService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *CompletionService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Complete sends the user message as a single turn and returns the
// generated text. No retries; a transport or API failure fails the call.
func (s *CompletionService) Complete(ctx context.Context, message string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	resp, err := s.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("Gemini returned no text (likely blocked by safety filters)")
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
