package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
)

// SMTPMailer implementa ports.Mailer usando gomail
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	logger   ports.Logger
}

// NewSMTPMailer cria um novo SMTPMailer
func NewSMTPMailer(cfg *config.SMTPConfig, logger ports.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

// Send envia um email HTML
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send email", "to", to, "error", err)
		return err
	}

	m.logger.Debug("email sent", "to", to, "subject", subject)
	return nil
}
