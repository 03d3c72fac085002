package sendgrid

import (
	"encoding/base64"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// Wire types for the v3 mail/send endpoint. Optional blocks are omitted
// rather than serialized empty: the provider treats a present-but-empty
// personalization as a fatal request error.

// EmailAddress is a single {email, name} entry in the request.
type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Personalization groups recipients for one delivery of the message.
type Personalization struct {
	To  []EmailAddress `json:"to,omitempty"`
	CC  []EmailAddress `json:"cc,omitempty"`
	BCC []EmailAddress `json:"bcc,omitempty"`
}

// Content is one renderable body variant.
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// AttachmentBlock carries one base64-encoded attachment.
type AttachmentBlock struct {
	Content     string `json:"content"`
	Type        string `json:"type,omitempty"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
}

// Payload is the complete mail/send request body.
type Payload struct {
	Personalizations []Personalization `json:"personalizations"`
	From             EmailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []Content         `json:"content"`
	Attachments      []AttachmentBlock `json:"attachments,omitempty"`
}

// BuildPayload maps a message into the provider request shape. It is a pure
// function of its input and performs no I/O.
//
// The first from entry becomes the sender and the first to entry the primary
// recipient. Remaining to entries plus all cc and bcc entries are grouped
// into a second personalization, appended only when it has at least one
// entry. The primary content type is sniffed from the body bytes rather than
// taken from the declared header, which avoids a content-type mismatch
// rejection when the two disagree. Child parts are emitted in order:
// attachments are base64-encoded, text/plain and text/html alternates become
// extra content blocks, and any other declared type is dropped.
func BuildPayload(msg *mailer.Message) (*Payload, error) {
	if len(msg.From) == 0 {
		return nil, mailer.ErrNoSender
	}
	if len(msg.To) == 0 {
		return nil, mailer.ErrNoRecipient
	}

	p := &Payload{
		Personalizations: []Personalization{
			{To: []EmailAddress{toEmailAddress(msg.To[0])}},
		},
		From:    toEmailAddress(msg.From[0]),
		Subject: msg.Subject,
		Content: []Content{{
			Type:  mailer.DetectContentType([]byte(msg.Body)),
			Value: msg.Body,
		}},
	}

	extra := Personalization{
		To:  toEmailAddresses(msg.To[1:]),
		CC:  toEmailAddresses(msg.CC),
		BCC: toEmailAddresses(msg.BCC),
	}
	if len(extra.To)+len(extra.CC)+len(extra.BCC) > 0 {
		p.Personalizations = append(p.Personalizations, extra)
	}

	for _, part := range msg.Parts {
		switch v := part.(type) {
		case mailer.Attachment:
			p.Attachments = append(p.Attachments, AttachmentBlock{
				Content:     base64.StdEncoding.EncodeToString(v.Content),
				Type:        v.ContentType,
				Filename:    v.Filename,
				Disposition: v.Disposition,
				ContentID:   v.ContentID,
			})
		case mailer.BodyPart:
			if v.ContentType == "text/plain" || v.ContentType == "text/html" {
				p.Content = append(p.Content, Content{Type: v.ContentType, Value: v.Content})
			}
		}
	}

	return p, nil
}

func toEmailAddress(a mailer.Address) EmailAddress {
	return EmailAddress{Email: a.Email, Name: a.Name}
}

func toEmailAddresses(addrs []mailer.Address) []EmailAddress {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]EmailAddress, len(addrs))
	for i, a := range addrs {
		out[i] = toEmailAddress(a)
	}
	return out
}
