package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatLog is one persisted question/answer pair. UserID is nil for
// anonymous chats. Records are immutable once written.
type ChatLog struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	CreatedAt time.Time  `json:"created_at"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the answer, canned or model-generated.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
