package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"mefi-backend/internal/middleware"
	"mefi-backend/internal/models"
	"mefi-backend/internal/safety"
)

type completionClient interface {
	Complete(ctx context.Context, message string) (string, error)
}

type chatLogRepository interface {
	Insert(ctx context.Context, log *models.ChatLog) error
	ListByUser(ctx context.Context, userID *uuid.UUID) ([]*models.ChatLog, error)
}

type ChatHandler struct {
	gate       *safety.Gate
	completion completionClient
	chatLogs   chatLogRepository
}

func NewChatHandler(gate *safety.Gate, completion completionClient, chatLogs chatLogRepository) *ChatHandler {
	return &ChatHandler{
		gate:       gate,
		completion: completion,
		chatLogs:   chatLogs,
	}
}

// Ask handles POST /chat. The identity is optional; anonymous messages
// are stored with a NULL owner. A safety match short-circuits the model
// call and answers with the canned string for that category.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	userID := middleware.GetUserID(r.Context())

	var answer string
	if category, matched := h.gate.Classify(req.Message); matched {
		answer = safety.Response(category)
	} else {
		var err error
		answer, err = h.completion.Complete(r.Context(), req.Message)
		if err != nil {
			log.Printf("chat completion failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to get AI response", r))
			return
		}
	}

	record := &models.ChatLog{
		ID:       uuid.New(),
		UserID:   userID,
		Question: req.Message,
		Answer:   answer,
	}

	if err := h.chatLogs.Insert(r.Context(), record); err != nil {
		log.Printf("failed to persist chat log %s: %v", record.ID, err)
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Answer: answer})
}

// History handles GET /chat. Anonymous callers get the shared NULL
// bucket, which spans every unauthenticated session.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	logs, err := h.chatLogs.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("failed to load chat history: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load chat history", r))
		return
	}

	writeJSON(w, http.StatusOK, logs)
}
