package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

func TestAddress_String_WithName(t *testing.T) {
	t.Parallel()

	a := mailer.Address{Name: "John Doe", Email: "john@example.com"}

	require.Equal(t, "John Doe <john@example.com>", a.String())
}

func TestAddress_String_WithoutName(t *testing.T) {
	t.Parallel()

	a := mailer.Address{Email: "john@example.com"}

	require.Equal(t, "john@example.com", a.String())
}

func TestMessage_Recipients_Order(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{
		To:  []mailer.Address{{Email: "to1@x.com"}, {Email: "to2@x.com"}},
		CC:  []mailer.Address{{Email: "cc@x.com"}},
		BCC: []mailer.Address{{Email: "bcc@x.com"}},
	}

	require.Equal(t,
		[]string{"to1@x.com", "to2@x.com", "cc@x.com", "bcc@x.com"},
		msg.Recipients(),
	)
}

func TestMessage_Recipients_Empty(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{}

	require.Empty(t, msg.Recipients())
}

func TestResult_Succeeded(t *testing.T) {
	t.Parallel()

	require.True(t, mailer.Result{Delivered: 3}.Succeeded())
	require.True(t, mailer.Result{}.Succeeded())
	require.False(t, mailer.Result{Failed: []string{"a@x.com"}}.Succeeded())
}
