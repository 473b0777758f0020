package responses

type ChatbotReply struct {
	Reply string `json:"reply"`
}
