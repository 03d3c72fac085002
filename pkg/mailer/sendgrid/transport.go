package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// maxResponseBytes caps how much of a provider response body is retained
// for hooks and logging.
const maxResponseBytes = 64 * 1024

// Response is the provider's HTTP-level answer to one send call, handed to
// send and error hooks.
type Response struct {
	Body       string
	StatusCode int
}

// Accepted reports whether the provider accepted the request (2xx).
func (r Response) Accepted() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Hooks run synchronously in registration order. A non-nil error from any
// hook aborts the send, since a failing hook indicates caller misuse.

// ReadyHook runs after mapping and before any network I/O.
type ReadyHook func(p *Payload, msg *mailer.Message, t *Transport) error

// SendHook runs after every provider call, regardless of its verdict.
type SendHook func(p *Payload, msg *mailer.Message, resp Response, t *Transport) error

// ErrorHook runs when the provider rejects the request.
type ErrorHook func(p *Payload, msg *mailer.Message, resp Response, t *Transport) error

// Doer abstracts the HTTP client so tests can inject their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport implements mailer.Sender using the SendGrid v3 mail/send API.
//
// The hook slices are exported and append-only. Register hooks before the
// first Send; concurrent Send calls are safe as long as the hook slices are
// not mutated while sends are in flight.
type Transport struct {
	// OnReady hooks run after mapping, before the provider call.
	OnReady []ReadyHook
	// OnSend hooks run after every provider call.
	OnSend []SendHook
	// OnError hooks run when the provider rejects the request.
	OnError []ErrorHook

	client Doer
	log    *slog.Logger
	config Config
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger used to record provider rejections.
func WithLogger(log *slog.Logger) Option {
	return func(t *Transport) {
		t.log = log
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client Doer) Option {
	return func(t *Transport) {
		t.client = client
	}
}

// New creates a SendGrid transport.
// No request timeout is imposed here; configure one on the injected HTTP
// client if needed.
func New(cfg Config, opts ...Option) *Transport {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	t := &Transport{
		client: &http.Client{},
		config: cfg,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send implements mailer.Sender.
//
// Mapping failures and transport faults return an error before an outcome
// exists. A provider rejection is not an error: it yields a Result listing
// every addressed recipient as failed, fires the error hooks, and is logged
// at error level when a logger is configured.
func (t *Transport) Send(ctx context.Context, msg *mailer.Message) (mailer.Result, error) {
	payload, err := BuildPayload(msg)
	if err != nil {
		return mailer.Result{}, errors.Join(mailer.ErrMapping, err)
	}

	for _, hook := range t.OnReady {
		if err := hook(payload, msg, t); err != nil {
			return mailer.Result{}, fmt.Errorf("sendgrid: ready hook: %w", err)
		}
	}

	resp, err := t.post(ctx, payload)
	if err != nil {
		return mailer.Result{}, errors.Join(mailer.ErrSendFailed, err)
	}

	for _, hook := range t.OnSend {
		if err := hook(payload, msg, resp, t); err != nil {
			return mailer.Result{}, fmt.Errorf("sendgrid: send hook: %w", err)
		}
	}

	if resp.Accepted() {
		return mailer.Result{Delivered: len(msg.To) + len(msg.CC) + len(msg.BCC)}, nil
	}

	for _, hook := range t.OnError {
		if err := hook(payload, msg, resp, t); err != nil {
			return mailer.Result{}, fmt.Errorf("sendgrid: error hook: %w", err)
		}
	}

	if t.log != nil {
		t.log.ErrorContext(ctx, "sendgrid: provider rejected send",
			slog.Int("status", resp.StatusCode),
			slog.String("body", resp.Body),
		)
	}

	return mailer.Result{Failed: msg.Recipients()}, nil
}

func (t *Transport) post(ctx context.Context, payload *Payload) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		t.config.BaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.config.APIKey)

	httpResp, err := t.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("http request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	return Response{StatusCode: httpResp.StatusCode, Body: string(respBody)}, nil
}
