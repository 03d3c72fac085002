// Package resend implements mailer.Sender using the Resend API.
package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
//
// The Resend SDK does not expose the provider's verdict separately from
// transport faults, so any SDK error reports the full recipient set as
// failed alongside the wrapped error.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (mailer.Result, error) {
	if len(msg.From) == 0 {
		return mailer.Result{}, errors.Join(mailer.ErrMapping, mailer.ErrNoSender)
	}
	if len(msg.To) == 0 {
		return mailer.Result{}, errors.Join(mailer.ErrMapping, mailer.ErrNoRecipient)
	}

	req := &resend.SendEmailRequest{
		From:    msg.From[0].String(),
		To:      addressList(msg.To),
		Cc:      addressList(msg.CC),
		Bcc:     addressList(msg.BCC),
		Subject: msg.Subject,
	}

	// Resend splits the body into dedicated text and html fields, so the
	// sniffed type decides where the primary body lands.
	if mailer.DetectContentType([]byte(msg.Body)) == "text/html" {
		req.Html = msg.Body
	} else {
		req.Text = msg.Body
	}

	for _, part := range msg.Parts {
		switch v := part.(type) {
		case mailer.Attachment:
			req.Attachments = append(req.Attachments, &resend.Attachment{
				Filename:    v.Filename,
				Content:     v.Content,
				ContentType: v.ContentType,
				ContentId:   v.ContentID,
			})
		case mailer.BodyPart:
			switch v.ContentType {
			case "text/html":
				if req.Html == "" {
					req.Html = v.Content
				}
			case "text/plain":
				if req.Text == "" {
					req.Text = v.Content
				}
			}
		}
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return mailer.Result{Failed: msg.Recipients()},
			fmt.Errorf("resend: failed to send email: %w", err)
	}

	return mailer.Result{Delivered: len(msg.To) + len(msg.CC) + len(msg.BCC)}, nil
}

func addressList(addrs []mailer.Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}
