package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Message and handles the actual delivery.
type Sender interface {
	// Send delivers a message and reports the per-call outcome.
	// A non-nil error means no provider verdict was obtained (the message
	// could not be mapped, or the call itself failed in transit). A provider
	// rejection is not an error: it is reported through the Result.
	Send(ctx context.Context, msg *Message) (Result, error)
}
