package mailer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

func TestDetectContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
		want string
	}{
		{
			name: "html document",
			body: []byte("<!DOCTYPE html><html><body>Hello</body></html>"),
			want: "text/html",
		},
		{
			name: "html fragment",
			body: []byte("<html><head></head><body></body></html>"),
			want: "text/html",
		},
		{
			name: "plain text",
			body: []byte("Hello, this is an ordinary message."),
			want: "text/plain",
		},
		{
			name: "empty body",
			body: nil,
			want: "text/plain",
		},
		{
			name: "png magic bytes",
			body: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
			want: "image/png",
		},
		{
			name: "long body only inspects the prefix",
			body: []byte("<!DOCTYPE html>" + strings.Repeat("x", 10_000)),
			want: "text/html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, mailer.DetectContentType(tt.body))
		})
	}
}

func TestDetectContentType_StripsParameters(t *testing.T) {
	t.Parallel()

	// http.DetectContentType returns "text/plain; charset=utf-8"; callers
	// need the bare type for provider content blocks.
	got := mailer.DetectContentType([]byte("hello"))

	require.NotContains(t, got, ";")
	require.NotContains(t, got, "charset")
}
