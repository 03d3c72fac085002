// Package sendgrid implements mailer.Sender using the SendGrid v3
// mail/send API.
//
// The transport maps a mailer.Message field by field into the provider's
// JSON request, posts it with Bearer authentication, and classifies the
// response: any 2xx status counts every addressed recipient as delivered,
// anything else marks the full recipient set as failed. Only mapping
// failures and transport-level faults surface as errors.
//
// # Mapping Rules
//
//   - The first from entry is the sender (the provider requires exactly one).
//   - The first to entry is the primary recipient; remaining to, cc, and bcc
//     entries share a second personalization that is omitted entirely when
//     empty, because the provider rejects an empty personalization object.
//   - The primary content type is sniffed from the body bytes, never taken
//     from the declared header.
//   - Child parts keep their source order: attachments are base64-encoded,
//     text/plain and text/html alternates become extra content blocks, and
//     other declared types are dropped.
//
// # Hooks
//
// Three exported hook slices observe the send sequence: OnReady before the
// provider call, OnSend after it, and OnError on rejection. Hooks run in
// registration order and receive the built payload, the source message, and
// the transport itself, so a hook can inspect transport state:
//
//	transport := sendgrid.New(cfg, sendgrid.WithLogger(log))
//	transport.OnReady = append(transport.OnReady,
//		func(p *sendgrid.Payload, msg *mailer.Message, t *sendgrid.Transport) error {
//			log.Info("sending", slog.String("subject", p.Subject))
//			return nil
//		})
package sendgrid
