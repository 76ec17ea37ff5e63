package postgres

import (
	"context"

	"go-futurehire-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type chatbotRepo struct {
	db *pgxpool.Pool
}

func NewChatbotRepository(db *pgxpool.Pool) domain.ChatbotRepository {
	return &chatbotRepo{db: db}
}

func (r *chatbotRepo) Fetch(ctx context.Context) ([]domain.ChatbotEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, question, answer, category FROM chatbot_entries`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var entries []domain.ChatbotEntry
	for rows.Next() {
		var e domain.ChatbotEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Category); err != nil {
			return nil, storeErr(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (r *chatbotRepo) Create(ctx context.Context, entry *domain.ChatbotEntry) error {
	query := `INSERT INTO chatbot_entries (id, question, answer, category) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, entry.ID, entry.Question, entry.Answer, entry.Category)
	if err != nil {
		return storeErr(err)
	}
	return nil
}
