package chatbot

import (
	"bytes"
	"caps-service/internal/app/config"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type chatbotHTTPClient struct {
	BaseURL    string
	APIKey     string
	MaxTokens  int
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewChatbotHTTPClient(internalConfig *config.InternalConfig) ChatbotClient {
	return &chatbotHTTPClient{
		BaseURL:   internalConfig.Chatbot.BaseUrl,
		APIKey:    internalConfig.Chatbot.APIKey,
		MaxTokens: internalConfig.Chatbot.MaxTokens,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Chatbot.TimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(internalConfig.Chatbot.RequestsPerSecond), 1),
	}
}

type chatbotUpstreamRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type chatbotUpstreamResponse struct {
	Reply string `json:"reply"`
}

func (c *chatbotHTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	// Upstream quota is shared across the whole deployment, so requests queue
	// here rather than burn it.
	if err := c.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrChatbotUpstream(err)
	}

	payload, err := json.Marshal(chatbotUpstreamRequest{
		Prompt:    prompt,
		MaxTokens: c.MaxTokens,
	})
	if err != nil {
		return "", exceptions.ErrServerProcess(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", exceptions.ErrChatbotUpstream(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrChatbotUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", exceptions.ErrChatbotUpstream(fmt.Errorf("upstream returned status %d", resp.StatusCode))
	}

	var upstreamResponse chatbotUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstreamResponse); err != nil {
		return "", exceptions.ErrChatbotUpstream(err)
	}

	return upstreamResponse.Reply, nil
}
