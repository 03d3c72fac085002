package mailer

import "errors"

var (
	// ErrNoSender indicates the message has an empty from set.
	ErrNoSender = errors.New("message must have a sender")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrMapping indicates the message could not be converted into a
	// provider request. Always joined with a more specific error.
	ErrMapping = errors.New("failed to map message")

	// ErrSendFailed indicates the provider call itself could not complete.
	ErrSendFailed = errors.New("failed to send email")
)
