// Package notifier is the outbound mail capability. Delivery itself lives
// in a separate worker; this service only hands messages to the broker.
package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/renterra/rental-service/pkg/rabbitmq"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type mailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type amqpNotifier struct {
	publisher *rabbitmq.Publisher
}

func NewAMQPNotifier(publisher *rabbitmq.Publisher) Notifier {
	return &amqpNotifier{publisher: publisher}
}

func (n *amqpNotifier) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(mailMessage{To: to, Subject: subject, Body: body})
	if err != nil {
		return err
	}
	return n.publisher.Publish(ctx, payload)
}

// noopNotifier keeps the service usable without a broker (local runs, tests).
type noopNotifier struct{}

func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("[notifier] dropping mail to %s: %s", to, subject)
	return nil
}
