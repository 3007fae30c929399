package contact

import (
	"context"
	"net/smtp"

	"github.com/Zachkp/portfolio/internal/config"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends messages through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg      config.SMTPConfig
	sendMail sendMailFunc
}

// NewSMTPMailer creates a mailer for the relay in cfg.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

// Send delivers msg. The envelope sender is the relay user.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	return m.sendMail(m.cfg.Addr(), auth, m.cfg.User, []string{msg.To}, msg.Bytes())
}
