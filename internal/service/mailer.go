package service

import (
	"context"
	"fmt"
	"html"

	"github.com/lshigami/auriter/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Mail is a plain-text message with an optional call-to-action link.
type Mail struct {
	To      string
	Subject string
	Text    string
	Link    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// NewMailer returns an SMTP mailer, or a logging mailer when SMTP_HOST is empty.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP_HOST is not set. Emails will only be logged.")
		return logMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	body := mail.Text
	if mail.Link != "" {
		body += "\n\nJoin here: " + mail.Link
	}
	msg.SetBody("text/plain", body)
	if mail.Link != "" {
		msg.AddAlternative("text/html", fmt.Sprintf(`<p>%s</p><p><a href="%s">Join Interview</a></p>`,
			html.EscapeString(mail.Text), html.EscapeString(mail.Link)))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", mail.To).Str("subject", mail.Subject).Msg("Failed to send email")
		return fmt.Errorf("send email to %s: %w", mail.To, err)
	}
	log.Info().Str("to", mail.To).Str("subject", mail.Subject).Msg("Email sent")
	return nil
}

type logMailer struct{}

func (logMailer) Send(_ context.Context, mail Mail) error {
	log.Info().Str("to", mail.To).Str("subject", mail.Subject).Str("link", mail.Link).Msg("Email (not sent, SMTP disabled)")
	return nil
}
