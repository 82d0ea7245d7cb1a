// Package notify delivers customer notifications over SMTP.
package notify

import (
	"context"
	"net"
	"net/smtp"
	"strings"

	"github.com/go-faster/errors"

	"github.com/lojinha/checkout-service/internal/domain/checkout"
)

// SMTPConfig holds the connection and identity settings for the SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	// From is the envelope sender; defaults to Username when empty.
	From string
}

var _ checkout.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier sends plain-text email through an authenticated SMTP relay.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier returns an SMTPNotifier for the given relay config.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPNotifier{cfg: cfg}
}

// SendEmail delivers one message. net/smtp has no context support, so the
// context only guards the call site; a hung relay hangs the send.
func (n *SMTPNotifier) SendEmail(_ context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)

	var msg strings.Builder
	msg.WriteString("From: " + n.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}
	return nil
}
