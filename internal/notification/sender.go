package notification

import (
	"crypto/tls"

	"gopkg.in/gomail.v2"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
)

// Sender delivers one rendered email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender sends mail through the configured SMTP relay. TLS behaviour
// follows SMTPTLSMode: "tls" dials SMTPS, "starttls" (the default) upgrades
// opportunistically, "none" skips certificate verification for lab setups.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a sender from the mail-server configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	switch cfg.SMTPTLSMode {
	case "tls":
		d.SSL = true
	case "none":
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &SMTPSender{dialer: d, from: cfg.SMTPFrom}
}

// Send delivers a single message.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}
