package logger

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) {
	Info("hello")
	Info("hello %s", "colombo")
	Debug("budget %d", 50000)
	Warn("no active stocks")
	Error(fmt.Errorf("ah man"))
}

func TestFromContext(t *testing.T) {
	t.Run("falls back to global", func(t *testing.T) {
		require.Same(t, zap.S(), FromContext(context.Background()))
	})

	t.Run("uses the request logger", func(t *testing.T) {
		l := New().With("requestID", "abc")
		ctx := WithLogger(context.Background(), l)
		require.Same(t, l, FromContext(ctx))
	})
}
