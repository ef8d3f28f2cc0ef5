package email

import (
	"fmt"
	"io"

	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers messages through an SMTP account (a Gmail app password
// in the original deployment).
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid smtp port: %d", cfg.Email.SMTPPort)
	}
	return &SMTPMailer{cfg: cfg}, nil
}

func (s *SMTPMailer) Send(msg *Message) error {
	m := gomail.NewMessage()

	from := s.cfg.Email.FromEmail
	if s.cfg.Email.FromName != "" {
		from = m.FormatAddress(s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTMLBody != "" {
		m.SetBody("text/html", msg.HTMLBody)
		if msg.Body != "" {
			m.AddAlternative("text/plain", msg.Body)
		}
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	for _, att := range msg.Attachments {
		content := att.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Name, settings...)
	}

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
