package opener

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpener(open func(string) error) *SystemOpener {
	o := NewSystemOpener(utils.NewNopLogger())
	o.open = open
	return o
}

func TestSystemOpener_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("launches allowed urls", func(t *testing.T) {
		var opened []string
		o := newTestOpener(func(u string) error {
			opened = append(opened, u)
			return nil
		})

		for _, u := range []string{
			"https://www.facebook.com/sharer/sharer.php?u=http%3A%2F%2Fx.com",
			"http://x.com",
			"sms:?body=T%0aD",
			"sms:&body=T",
		} {
			require.NoError(t, o.Open(ctx, u, "shareSNS", "width=600,height=580"))
		}
		assert.Len(t, opened, 4)
	})

	t.Run("rejects other schemes", func(t *testing.T) {
		o := newTestOpener(func(string) error {
			t.Fatal("must not launch")
			return nil
		})

		for _, u := range []string{"", "javascript:alert(1)", "file:///etc/passwd", "https://", "::bad"} {
			assert.ErrorIs(t, o.Open(ctx, u, "", ""), domain.ErrInvalidURL, u)
		}
	})

	t.Run("launcher error wrapped", func(t *testing.T) {
		boom := errors.New("no handler")
		o := newTestOpener(func(string) error { return boom })

		assert.ErrorIs(t, o.Open(ctx, "https://x.com", "", ""), boom)
	})

	t.Run("canceled context", func(t *testing.T) {
		o := newTestOpener(func(string) error {
			t.Fatal("must not launch")
			return nil
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, o.Open(ctx, "https://x.com", "", ""), context.Canceled)
	})
}

func TestPrintOpener(t *testing.T) {
	var buf bytes.Buffer
	o := NewPrintOpener(&buf)

	require.NoError(t, o.Open(context.Background(), "https://a.test", "n", "f"))
	require.NoError(t, o.Open(context.Background(), "sms:?body=x", "", ""))
	assert.Equal(t, "https://a.test\nsms:?body=x\n", buf.String())
}

func TestLogWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{Level: "debug", Format: "json", Output: &buf})

	n, err := logWriter{logger}.Write([]byte("Opening in existing browser session.\n"))
	require.NoError(t, err)
	assert.Equal(t, 37, n)
	assert.Contains(t, buf.String(), "Opening in existing browser session.")
}
