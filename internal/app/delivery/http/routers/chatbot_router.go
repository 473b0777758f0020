package routers

import (
	"caps-service/internal/app/delivery/http/middlewares"
	"caps-service/internal/app/services/core/chatbot"

	"github.com/go-chi/chi/v5"
)

func attachChatbotRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatbotController *chatbot.ChatbotController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", chatbotController.Reply)
}
