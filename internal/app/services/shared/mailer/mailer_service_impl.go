package mailer

import (
	"caps-service/internal/app/drivers/mailer"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *mailerService) Enqueue(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}

func (s *mailerService) Send(request *requests.EmailPayload) error {
	from := s.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, request.To, request.Subject, request.Body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, from, []string{request.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}

func (s *mailerService) StartConsumer(ctx context.Context) error {
	deliveries, err := s.Channel.Consume(s.Queue, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsumeMessage(err, s.Queue)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				s.handleDelivery(delivery)
			}
		}
	}()

	return nil
}

func (s *mailerService) handleDelivery(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		s.Log.Error("mailerService.handleDelivery cannot decode payload", zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	if err := s.Send(&payload); err != nil {
		s.Log.Error("mailerService.handleDelivery cannot send email",
			zap.String("recipient", payload.To),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	_ = delivery.Ack(false)
}
