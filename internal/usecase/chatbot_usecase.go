package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"
)

type chatbotUsecase struct {
	chatbotRepo domain.ChatbotRepository
}

func NewChatbotUsecase(chatbotRepo domain.ChatbotRepository) domain.ChatbotUsecase {
	return &chatbotUsecase{chatbotRepo: chatbotRepo}
}

// Reply answers from the curated Q&A set when a stored question matches,
// falling back to a generic guidance line. A real assistant integration would
// replace the fallback.
func (u *chatbotUsecase) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperror.BadRequest("Message must not be empty")
	}

	entries, err := u.chatbotRepo.Fetch(ctx)
	if err != nil {
		return "", err
	}

	normalized := strings.ToLower(message)
	for _, entry := range entries {
		if strings.Contains(normalized, strings.ToLower(entry.Question)) ||
			strings.Contains(strings.ToLower(entry.Question), normalized) {
			return entry.Answer, nil
		}
	}

	return fmt.Sprintf("Based on your question %q, here's some guidance on placement and careers.", message), nil
}
