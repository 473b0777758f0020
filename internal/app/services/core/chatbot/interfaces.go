package chatbot

import (
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"context"
)

type ChatbotUsecase interface {
	Reply(ctx context.Context, request *requests.ChatbotMessage) (*responses.ChatbotReply, error)
}

// ChatbotClient talks to the upstream language-model API.
type ChatbotClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
