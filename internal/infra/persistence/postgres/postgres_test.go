package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Report(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	tests := []struct {
		name    string
		cur     sql.DBStats
		want    []string
		wantNil bool
	}{
		{
			name:    "no new waits",
			cur:     base,
			wantNil: true,
		},
		{
			name: "short waits are debug",
			cur:  sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4},
			want: []string{"level=DEBUG", "waits=2", "avgWait=5ms", "inUse=4"},
		},
		{
			name: "long waits warn",
			cur:  sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond},
			want: []string{"level=WARN", "waits=1", "waited=80ms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := &poolWatcher{logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

			w.report(context.Background(), base, tt.cur)

			if tt.wantNil {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPoolWatcher_RunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	samples := 0
	w := &poolWatcher{
		stats:    func() sql.DBStats { samples++; return sql.DBStats{} },
		logger:   slog.New(slog.DiscardHandler),
		interval: time.Millisecond,
	}

	done := make(chan struct{})
	go func() {
		w.run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Positive(t, samples)
}
