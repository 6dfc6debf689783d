package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// WelcomeSender is the mail leg of the registration pipeline.
type WelcomeSender interface {
	SendWelcome(to, name, pin string) error
}

// Worker drains the welcome queue: one registration event in, one welcome
// mail out. It never touches the database.
type Worker struct {
	Channel *amqp.Channel
	Mail    WelcomeSender
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, mailSender WelcomeSender, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{Channel: ch, Mail: mailSender, Logger: logger}
}

func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	w.Logger.Info("welcome worker consuming", zap.String("queue", queueName))

	for d := range msgs {
		var payload RegistrationPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// Malformed message: reject without requeue so the queue keeps moving.
			w.Logger.Warn("dropping malformed registration event", zap.Error(err))
			d.Nack(false, false)
			continue
		}

		if err := w.process(payload); err != nil {
			w.Logger.Error("welcome mail failed",
				zap.String("pin", payload.PIN), zap.Error(err))
			d.Nack(false, false)
			continue
		}

		w.Logger.Info("welcome mail sent", zap.String("pin", payload.PIN))
		d.Ack(false)
	}
	return nil
}

func (w *Worker) process(payload RegistrationPayload) error {
	if w.Mail == nil || payload.Email == "" {
		// Registrations without an email address are fine, just nothing to send.
		return nil
	}
	return w.Mail.SendWelcome(payload.Email, payload.FullName, payload.PIN)
}
