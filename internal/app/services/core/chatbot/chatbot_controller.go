package chatbot

import (
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/exceptions"
	"caps-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChatbotController struct {
	Log            *zap.Logger
	ChatbotUsecase ChatbotUsecase
}

func NewChatbotController(logger *zap.Logger, chatbotUsecase ChatbotUsecase) *ChatbotController {
	return &ChatbotController{
		Log:            logger,
		ChatbotUsecase: chatbotUsecase,
	}
}

func (ctrl *ChatbotController) Reply(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChatbotMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ChatbotUsecase.Reply(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatbotReplySuccessMessage, result)
}
