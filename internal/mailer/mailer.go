// Package mailer delivers outbound notification email. Delivery is
// best-effort by contract: callers log failures and never let them unwind a
// committed database change.
package mailer

import (
	"fmt"

	"litoral-prime/internal/config"
	"litoral-prime/internal/models"

	"gopkg.in/gomail.v2"
)

// Sender delivers a single message.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through the configured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a sender from SMTP config.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// NopSender is used when SMTP is not configured.
type NopSender struct{}

func (NopSender) Send(to, subject, body string) error {
	return nil
}

// FromConfig returns an SMTP sender when mail is configured, a no-op
// sender otherwise.
func FromConfig(cfg config.SMTPConfig) Sender {
	if cfg.Enabled() {
		return NewSMTPSender(cfg)
	}
	return NopSender{}
}

// NotificationSubject is the operator notification subject line.
func NotificationSubject(c *models.Contato) string {
	return fmt.Sprintf("Novo contato: %s", c.ImovelTitulo)
}

// NotificationBody renders the operator notification for a new inquiry.
func NotificationBody(c *models.Contato) string {
	return fmt.Sprintf(
		"Novo contato recebido pelo site.\n\n"+
			"Imóvel: %s (id %d)\n"+
			"Nome: %s\nEmail: %s\nTelefone: %s\n\nMensagem:\n%s\n",
		c.ImovelTitulo, c.ImovelID, c.Nome, c.Email, c.Telefone, c.Mensagem)
}

// ConfirmationSubject is the submitter confirmation subject line.
func ConfirmationSubject(c *models.Contato) string {
	return fmt.Sprintf("Recebemos sua mensagem sobre %s", c.ImovelTitulo)
}

// ConfirmationBody renders the confirmation sent back to the visitor.
func ConfirmationBody(c *models.Contato) string {
	return fmt.Sprintf(
		"Olá %s,\n\n"+
			"Recebemos sua mensagem sobre o imóvel \"%s\" e entraremos em "+
			"contato em breve.\n\nSua mensagem:\n%s\n",
		c.Nome, c.ImovelTitulo, c.Mensagem)
}

// ReplySubject is the subject used when the admin answers an inquiry.
func ReplySubject(c *models.Contato) string {
	return fmt.Sprintf("Re: seu contato sobre %s", c.ImovelTitulo)
}

// ReplyBody wraps the admin's answer with the original message for context.
func ReplyBody(c *models.Contato, resposta string) string {
	return fmt.Sprintf(
		"Olá %s,\n\n%s\n\n---\nSua mensagem original:\n%s\n",
		c.Nome, resposta, c.Mensagem)
}
