package mailer

import (
	"context"
	"fmt"

	"github.com/keighl/postmark"
)

type Postmark struct {
	client *postmark.Client
	from   string
}

func NewPostmark(serverToken, fromAddress string) *Postmark {
	return &Postmark{client: postmark.NewClient(serverToken, ""), from: fromAddress}
}

// Send ignores ctx, the postmark client has no context support.
func (p *Postmark) Send(_ context.Context, msg Message) error {
	res, err := p.client.SendEmail(postmark.Email{
		From:     p.from,
		To:       msg.ToEmail,
		Subject:  msg.Subject,
		HtmlBody: msg.HTML,
		TextBody: msg.Text,
	})
	if err != nil {
		return fmt.Errorf("postmark: %w", err)
	}
	if res.ErrorCode != 0 {
		return fmt.Errorf("postmark: %s", res.Message)
	}
	return nil
}
