// Package mailer provides a provider-agnostic email message model and the
// sending interface that provider transports implement.
//
// The package holds only the shared vocabulary: a Message with ordered
// recipient sets and child parts, the Result outcome type, sentinel errors,
// and content sniffing. The actual wire mapping and HTTP call live in the
// provider subpackages (sendgrid, resend), which can be swapped behind the
// Sender interface without touching calling code.
//
// # Usage
//
// Basic usage with the SendGrid transport:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/gridmail/pkg/mailer"
//		"github.com/dmitrymomot/gridmail/pkg/mailer/sendgrid"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		transport := sendgrid.New(sendgrid.Config{
//			APIKey: os.Getenv("SENDGRID_API_KEY"),
//		})
//
//		res, err := transport.Send(ctx, &mailer.Message{
//			From:    []mailer.Address{{Name: "Team", Email: "team@example.com"}},
//			To:      []mailer.Address{{Email: "user@example.com"}},
//			Subject: "Welcome",
//			Body:    "<h1>Hello</h1>",
//		})
//		if err != nil {
//			panic(err) // mapping failure or transport fault
//		}
//		if !res.Succeeded() {
//			// res.Failed lists every addressed recipient
//		}
//	}
//
// # Outcome Semantics
//
// Send distinguishes three failure classes:
//
//   - Mapping failures (ErrMapping joined with the specific cause) abort the
//     call before any network I/O.
//   - Transport faults (ErrSendFailed joined with the underlying error) mean
//     the provider was never heard from.
//   - Provider rejections are ordinary outcomes, not errors: the Result
//     carries zero delivered and the full recipient set as failed.
//
// # Content Sniffing
//
// Providers that validate body content types reject requests whose declared
// type disagrees with the actual bytes. DetectContentType infers the type
// from the leading bytes of the body so transports never have to trust the
// declared header.
package mailer
