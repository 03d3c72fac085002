// Package logger provides slog logger factories for the mail transports.
//
// Transports in this module accept a *slog.Logger for recording provider
// rejections. This package supplies ready-made constructors so callers do
// not have to wire handlers themselves:
//
//   - New returns a JSON stdout logger for local use.
//   - NewNope returns a logger that discards everything.
//   - NewWithSentry additionally forwards warnings and errors to Sentry,
//     degrading gracefully to stdout when no DSN is configured.
//
// # Usage
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
//
//	transport := sendgrid.New(cfg, sendgrid.WithLogger(log))
//
// Rejected sends then show up both in stdout JSON logs and as Sentry
// Issues, with the provider status and response body attached.
package logger
