package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(ctx context.Context) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestWithRequest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithRequest(context.Background(), "req-7", logger)

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))
}

func TestOutsideRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(WithLogger(ctx, nil), fallback))
}

func TestScopeKeysDoNotCollideWithStrings(t *testing.T) {
	ctx := context.WithValue(context.Background(), "request_id", "spoofed") //nolint:staticcheck // string key on purpose

	assert.Empty(t, GetRequestIDFromContext(ctx))
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name  string
		setup func() echo.Context
		want  string
	}{
		{
			name: "echo context wins",
			setup: func() echo.Context {
				c := newEchoContext(WithRequestID(context.Background(), "from-request"))
				SetRequestID(c, "from-echo")

				return c
			},
			want: "from-echo",
		},
		{
			name: "falls back to request context",
			setup: func() echo.Context {
				return newEchoContext(WithRequestID(context.Background(), "from-request"))
			},
			want: "from-request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetRequestID(tt.setup()))
		})
	}

	t.Run("mints an id when unset", func(t *testing.T) {
		id := GetRequestID(newEchoContext(context.Background()))

		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})
}
