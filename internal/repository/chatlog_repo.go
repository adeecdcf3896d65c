package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mefi-backend/internal/models"
)

type ChatLogRepo struct {
	pool *pgxpool.Pool
}

func NewChatLogRepo(pool *pgxpool.Pool) *ChatLogRepo {
	return &ChatLogRepo{pool: pool}
}

// Insert writes one record. The creation timestamp is assigned by the
// database and scanned back onto the log.
func (r *ChatLogRepo) Insert(ctx context.Context, log *models.ChatLog) error {
	query := `
		INSERT INTO chat_logs (id, user_id, question, answer)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		log.ID, log.UserID, log.Question, log.Answer,
	).Scan(&log.CreatedAt)
}

// ListByUser returns all records owned by the given user, oldest first.
// A nil userID queries the shared anonymous bucket (user_id IS NULL).
func (r *ChatLogRepo) ListByUser(ctx context.Context, userID *uuid.UUID) ([]*models.ChatLog, error) {
	var rows pgx.Rows
	var err error

	if userID == nil {
		rows, err = r.pool.Query(ctx,
			`SELECT id, user_id, question, answer, created_at
			FROM chat_logs WHERE user_id IS NULL ORDER BY created_at ASC`)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT id, user_id, question, answer, created_at
			FROM chat_logs WHERE user_id = $1 ORDER BY created_at ASC`, *userID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]*models.ChatLog, 0)
	for rows.Next() {
		log := &models.ChatLog{}
		if err := rows.Scan(&log.ID, &log.UserID, &log.Question, &log.Answer, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
