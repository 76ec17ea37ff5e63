package domain

import "context"

type ChatbotEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type ChatbotRepository interface {
	Fetch(ctx context.Context) ([]ChatbotEntry, error)
	Create(ctx context.Context, entry *ChatbotEntry) error
}

type ChatbotUsecase interface {
	Reply(ctx context.Context, message string) (string, error)
}
