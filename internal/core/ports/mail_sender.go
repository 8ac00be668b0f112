package ports

import (
	"context"
)

// MailSender delivers a plain-text email to a single recipient.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
