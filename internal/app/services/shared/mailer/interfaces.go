package mailer

import (
	"caps-service/internal/pkg/dto/requests"
	"context"
)

type MailerService interface {
	// Enqueue publishes the email payload to the mailer queue.
	Enqueue(ctx context.Context, request *requests.EmailPayload) error
	// Send delivers the email immediately over SMTP.
	Send(request *requests.EmailPayload) error
	// StartConsumer drains the mailer queue and sends each payload over SMTP
	// until the context is cancelled.
	StartConsumer(ctx context.Context) error
}
