package notification

import (
	"fmt"
	"net/smtp"

	"pawspa/config"
	"pawspa/models"
)

// Mailer delivers transactional email over SMTP.
type Mailer struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// NewMailerFromConfig builds a Mailer from the loaded app configuration.
func NewMailerFromConfig() *Mailer {
	return &Mailer{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		User:     config.AppConfig.SMTPUser,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.SMTPFrom,
	}
}

// Send renders the payload's template and delivers it to the recipient.
func (m *Mailer) Send(payload models.EmailPayload) error {
	if payload.To == "" {
		return fmt.Errorf("email payload of type %s has no recipient", payload.Type)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.From, payload.To, Subject(payload), HTMLBody(payload)))

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{payload.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", payload.To, err)
	}
	return nil
}
