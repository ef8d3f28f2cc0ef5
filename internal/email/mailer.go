package email

import "jobboard_backend/internal/logger"

// Mailer sends outbound notifications. Delivery is best-effort: callers log
// failures and move on, nothing in the request path depends on the result.
type Mailer interface {
	Send(msg *Message) error
}

// NoopMailer is used in tests and in deployments without SMTP credentials.
// It logs instead of sending.
type NoopMailer struct{}

func (NoopMailer) Send(msg *Message) error {
	logger.Info("email delivery disabled, dropping message",
		"to", msg.To,
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)
	return nil
}
