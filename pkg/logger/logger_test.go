package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet(t *testing.T) {
	l := Get()
	require.NotNil(t, l)
	assert.Same(t, l, Get())
}

func TestContext(t *testing.T) {
	t.Run("falls back to the shared logger", func(t *testing.T) {
		assert.Same(t, Get(), FromCtx(context.Background()))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		requestLogger := Get().With("request_id", "abc")
		ctx := WithCtx(context.Background(), requestLogger)
		assert.Same(t, requestLogger, FromCtx(ctx))
	})

	t.Run("attaching the same logger keeps the context", func(t *testing.T) {
		ctx := WithCtx(context.Background(), Get())
		assert.Equal(t, ctx, WithCtx(ctx, Get()))
	})

	t.Run("extra fields derive a new logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		base := zap.New(core).Sugar()
		ctx := WithCtx(context.Background(), base)

		l := FromCtx(ctx, "movie_id", 155)
		assert.NotSame(t, base, l)

		l.Infow("loaded film")
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "loaded film", entries[0].Message)
		assert.Equal(t, int64(155), entries[0].ContextMap()["movie_id"])
	})
}
