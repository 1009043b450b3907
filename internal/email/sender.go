package email

import (
	"jobportal_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails. Callers treat delivery as
// best-effort; failures are logged, never surfaced to the request.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (e *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUser,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopSender is used in development and tests, and whenever email is
// disabled in config.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error { return nil }

// NewSender picks the sender implementation from config.
func NewSender(cfg *config.Config) Sender {
	if cfg.Email.Enabled {
		return NewSMTPSender(cfg)
	}
	return NoopSender{}
}
