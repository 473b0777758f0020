package requests

type ChatbotMessage struct {
	Message string `json:"message" validate:"required"`
}
