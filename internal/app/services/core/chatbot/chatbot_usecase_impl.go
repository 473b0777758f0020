package chatbot

import (
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"caps-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type chatbotUsecase struct {
	ChatbotClient ChatbotClient
	Log           *zap.Logger
}

func NewChatbotUsecase(chatbotClient ChatbotClient, logger *zap.Logger) ChatbotUsecase {
	return &chatbotUsecase{
		ChatbotClient: chatbotClient,
		Log:           logger,
	}
}

func (uc *chatbotUsecase) Reply(ctx context.Context, request *requests.ChatbotMessage) (*responses.ChatbotReply, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("chatbotUsecase.Reply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reply, err := uc.ChatbotClient.Complete(ctx, request.Message)
	if err != nil {
		uc.Log.Error("chatbotUsecase.Reply error calling upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("chatbotUsecase.Reply succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return &responses.ChatbotReply{Reply: reply}, nil
}
