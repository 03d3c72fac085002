package mailer

import (
	"net/http"
	"strings"
)

// mimeDetectionBytes is the amount http.DetectContentType inspects.
const mimeDetectionBytes = 512

// DetectContentType sniffs the MIME type of body from its leading magic
// bytes, ignoring any declared header. The result is lowercased and stripped
// of parameters such as charset, e.g. "text/html" rather than
// "text/html; charset=utf-8".
func DetectContentType(body []byte) string {
	if len(body) > mimeDetectionBytes {
		body = body[:mimeDetectionBytes]
	}
	return normalizeMIME(http.DetectContentType(body))
}

// normalizeMIME extracts the base MIME type, removing parameters like charset.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}
