package notification

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	Logger "github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
)

// MailConsumer is the single long-lived worker draining the mail queue. It
// renders each job into the HTML template and hands it to the sender.
// Malformed payloads are dropped and logged; send failures are logged and
// the job is not retried.
type MailConsumer struct {
	nc      *nats.Conn
	subject string
	queue   string
	sender  Sender

	sub *nats.Subscription
}

// NewMailConsumer creates a consumer for the given subject and queue group.
func NewMailConsumer(nc *nats.Conn, subject, queue string, sender Sender) *MailConsumer {
	return &MailConsumer{nc: nc, subject: subject, queue: queue, sender: sender}
}

// Start subscribes to the mail subject. The queue group keeps delivery
// single-consumer even when several instances run.
func (c *MailConsumer) Start() error {
	sub, err := c.nc.QueueSubscribe(c.subject, c.queue, c.handle)
	if err != nil {
		return err
	}
	c.sub = sub
	Logger.Info("mail consumer subscribed: subject=%s queue=%s", c.subject, c.queue)
	return nil
}

func (c *MailConsumer) handle(m *nats.Msg) {
	var msg MailMessage
	if err := json.Unmarshal(m.Data, &msg); err != nil {
		Logger.Error("mail consumer: dropping malformed payload: %v", err)
		return
	}
	if msg.To == "" {
		Logger.Error("mail consumer: dropping job without recipient")
		return
	}

	body := RenderMail(msg)
	if err := c.sender.Send(msg.To, msg.Subject, body); err != nil {
		Logger.Error("mail consumer: send to %s failed: %v", msg.To, err)
		return
	}
	Logger.Info("mail sent: to=%s subject=%q", msg.To, msg.Subject)
}

// Stop unsubscribes and lets in-flight handlers finish.
func (c *MailConsumer) Stop() {
	if c.sub != nil {
		_ = c.sub.Drain()
	}
}
