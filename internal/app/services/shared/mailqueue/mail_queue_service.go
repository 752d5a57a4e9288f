package mailqueue

import (
	"context"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes email payloads onto a durable queue consumed by the
// mail worker. Verification email never goes through here, only
// reminders that tolerate delayed delivery.
type Service struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewService(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.MailQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:    ch,
		queue: queue,
		log:   logger,
	}, nil
}

func (s *Service) Publish(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	err = s.ch.PublishWithContext(ctx, "", s.queue, false, false, message)
	if err != nil {
		s.log.Error("mailqueue.Publish failed",
			zap.String("queue", s.queue),
			zap.Error(err),
		)
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}

// Consume hands deliveries to the mail worker. Messages are acked only
// after the handler reports success so a crashed worker redelivers.
func Consume(ctx context.Context, conn *amqp.Connection, queue string, logger *zap.Logger, handler func(*requests.EmailPayload) error) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}

			var payload requests.EmailPayload
			if err := json.Unmarshal(delivery.Body, &payload); err != nil {
				logger.Error("mailqueue.Consume dropping malformed payload",
					zap.String("queue", queue),
					zap.Error(err),
				)
				delivery.Nack(false, false)
				continue
			}

			if err := handler(&payload); err != nil {
				logger.Error("mailqueue.Consume handler failed",
					zap.String("queue", queue),
					zap.String(constvars.LoggingEmailKey, payload.To),
					zap.Error(err),
				)
				delivery.Nack(false, true)
				continue
			}
			delivery.Ack(false)
		}
	}
}
