// Package notification carries the service's side channels: email jobs
// published to a NATS queue and drained by a single consumer, and
// best-effort community notices broadcast over MQTT.
package notification

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
)

// MailMessage is the payload of one queued email job.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailPublisher enqueues email jobs. Services depend on this interface so
// tests can capture messages without a broker.
type MailPublisher interface {
	PublishMail(msg MailMessage) error
}

// NATSMailPublisher publishes mail jobs to a fixed NATS subject.
type NATSMailPublisher struct {
	nc      *nats.Conn
	subject string
}

// NewNATSMailPublisher creates a publisher for the given subject.
func NewNATSMailPublisher(nc *nats.Conn, subject string) *NATSMailPublisher {
	return &NATSMailPublisher{nc: nc, subject: subject}
}

// PublishMail serializes the job and hands it to the broker.
func (p *NATSMailPublisher) PublishMail(msg MailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, data)
}

// ConnectNATS dials the broker with reconnect options suited to a long-lived
// server process.
func ConnectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("mycondominium-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
