package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/mailer"
	"github.com/scribearc/scribearc/internal/repository"
	"go.uber.org/zap"
)

// Notification delivery is fire-and-forget from the api's point of view: a
// failed publish is logged by the caller and never rolls back the state
// transition that triggered it.

type NotificationConsumerContext struct {
	Config     *config.Config
	Logger     *zap.SugaredLogger
	Repository *repository.Repository
	Mailer     mailer.Client
}

type NotificationJobPayload struct {
	ToName       string                  `json:"to_name"`
	ToEmail      string                  `json:"to_email"`
	TemplateFile mailer.MailTemplateFile `json:"template_file"`
	Data         json.RawMessage         `json:"data"`
	CreatedAt    string                  `json:"created_at"`
	Try          int                     `json:"try" default:"0"`
}

func NewNotificationJobPayload[T any](toName, toEmail string, templateFile mailer.MailTemplateFile, data T) (NotificationJobPayload, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return NotificationJobPayload{}, fmt.Errorf("failed to marshal data: %w", err)
	}

	return NotificationJobPayload{
		ToName:       toName,
		ToEmail:      toEmail,
		TemplateFile: templateFile,
		Data:         dataBytes,
		Try:          0,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

// PublishNotification marshals and enqueues a notification job.
func (r *RabbitMQ) PublishNotification(payload NotificationJobPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	return r.Publish(QueueNotification, body)
}

type NotificationJobHandler func(ctx context.Context, jobPayload NotificationJobPayload, app *NotificationConsumerContext) (bool, error)

func (r *RabbitMQ) ConsumeNotificationJob(ctx context.Context, handler NotificationJobHandler, maxWorker int, app *NotificationConsumerContext) error {
	msgs, err := r.Consume(QueueNotification)
	if err != nil {
		return fmt.Errorf("failed to start consuming notification jobs: %w", err)
	}

	for i := range maxWorker {
		go func(workerNumber int) {
			runNotificationWorker(ctx, r, workerNumber, msgs, handler, app)
		}(i + 1)
	}

	return nil
}

func runNotificationWorker(ctx context.Context, rabbitMQ *RabbitMQ, workerNumber int, msgs <-chan amqp091.Delivery, handler NotificationJobHandler, app *NotificationConsumerContext) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			processNotificationDelivery(ctx, rabbitMQ, workerNumber, msg, handler, app)
		}
	}
}

func processNotificationDelivery(ctx context.Context, rabbitMQ *RabbitMQ, workerNumber int, msg amqp091.Delivery, handler NotificationJobHandler, app *NotificationConsumerContext) {
	if msg.Body == nil {
		log.Printf("[Notification Worker %d] Received empty message body", workerNumber)
		rabbitMQ.Nack(msg, false)
		return
	}

	var jobPayload NotificationJobPayload
	if err := json.Unmarshal(msg.Body, &jobPayload); err != nil {
		log.Printf("[Notification Worker %d] Invalid payload: %v", workerNumber, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	workerPrefix := fmt.Sprintf("[Notification Worker %d: Retry %d]", workerNumber, jobPayload.Try)

	shouldRequeue, err := handler(ctx, jobPayload, app)
	if err != nil {
		log.Printf("%s Handler error processing notification for recipient: %s, template: %s: %v",
			workerPrefix, jobPayload.ToEmail, jobPayload.TemplateFile, err)

		if !shouldRequeue || jobPayload.Try >= MAX_QUEUE_RETRY {
			log.Printf("%s Dropping notification for recipient: %s, template: %s after error (retry: %d, shouldRequeue: %v)",
				workerPrefix, jobPayload.ToEmail, jobPayload.TemplateFile, jobPayload.Try, shouldRequeue)
			rabbitMQ.Nack(msg, false)
			return
		}

		requeueNotificationJob(rabbitMQ, workerPrefix, msg, jobPayload)
		return
	}

	log.Printf("%s Successfully processed notification for recipient: %s, template: %s",
		workerPrefix, jobPayload.ToEmail, jobPayload.TemplateFile)
	rabbitMQ.Ack(msg)
}

func requeueNotificationJob(rabbitMQ *RabbitMQ, workerPrefix string, msg amqp091.Delivery, jobPayload NotificationJobPayload) {
	jobPayload.Try++
	payloadBytes, err := json.Marshal(jobPayload)
	if err != nil {
		log.Printf("%s Failed to marshal notification payload for requeue: %v", workerPrefix, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	if err := rabbitMQ.Publish(QueueNotification, payloadBytes); err != nil {
		log.Printf("%s Failed to requeue notification for recipient: %s, template: %s: %v",
			workerPrefix, jobPayload.ToEmail, jobPayload.TemplateFile, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	log.Printf("%s Requeued notification for recipient: %s, template: %s",
		workerPrefix, jobPayload.ToEmail, jobPayload.TemplateFile)
	rabbitMQ.Ack(msg)
}
