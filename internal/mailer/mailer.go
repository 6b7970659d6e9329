package mailer

import (
	"fmt"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends outreach emails, attaching the user's resume when a path
// is given. Transport errors are returned to the caller, which records them
// as a failed application rather than surfacing an HTTP error.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body, attachmentPath string) error {
	if strings.TrimSpace(m.cfg.Host) == "" {
		return fmt.Errorf("smtp not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if strings.TrimSpace(attachmentPath) != "" {
		msg.Attach(attachmentPath)
	}

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
