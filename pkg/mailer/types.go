package mailer

import "fmt"

// Address is a single named mailbox. Name may be empty.
type Address struct {
	Name  string
	Email string
}

// String formats the address in RFC 5322 form.
// Returns "Name <email>" if a name is present, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Message represents a fully-prepared email message ready for sending.
// Senders consume it read-only; mapping the same message twice must yield
// identical provider requests.
type Message struct {
	Subject  string    // Email subject
	Body     string    // Primary body content
	BodyType string    // Declared body MIME type; senders sniff the bytes instead of trusting this
	From     []Address // Sender candidates; providers use the first entry
	To       []Address // Primary recipients (at least one required)
	CC       []Address // Carbon copy recipients
	BCC      []Address // Blind carbon copy recipients
	Parts    []Part    // Ordered child parts: alternate bodies and attachments
}

// Recipients returns every addressed mailbox email, in to, cc, bcc order.
func (m *Message) Recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.CC)+len(m.BCC))
	for _, set := range [][]Address{m.To, m.CC, m.BCC} {
		for _, a := range set {
			out = append(out, a.Email)
		}
	}
	return out
}

// Part is one ordered child of a Message: either an inline alternate body
// or a binary attachment.
type Part interface {
	isPart()
}

// BodyPart is an inline alternate body, e.g. a text/plain fallback for an
// HTML message.
type BodyPart struct {
	Content     string // Body text
	ContentType string // Declared MIME type, e.g. "text/plain"
}

func (BodyPart) isPart() {}

// Attachment represents a binary email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Disposition string // "attachment" or "inline"
	Content     []byte // Raw file content
}

func (Attachment) isPart() {}
