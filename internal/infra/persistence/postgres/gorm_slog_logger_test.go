package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"messagely/config"
	deliverycontext "messagely/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger)
}

func sqlAndRows() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		debug    bool
		elapsed  time.Duration
		err      error
		contains string
		empty    bool
	}{
		{name: "query error", err: errors.New("boom"), contains: "GORM query failed"},
		{name: "record not found ignored", err: gorm.ErrRecordNotFound, empty: true},
		{name: "slow query", elapsed: time.Second, contains: "GORM slow query"},
		{name: "fast query hidden without debug", elapsed: time.Millisecond, empty: true},
		{name: "fast query shown in debug", debug: true, elapsed: time.Millisecond, contains: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newBufferedGormLogger(&buf, tt.debug)
			l.now = func() time.Time { return begin.Add(tt.elapsed) }

			l.Trace(context.Background(), begin, sqlAndRows, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newBufferedGormLogger(&base, false)

	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Error(ctx, "failed %s", "badly")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "failed badly")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, false)

	silent := l.LogMode(logger.Silent)
	silent.Error(context.Background(), "hidden")
	silent.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))

	assert.Empty(t, buf.String())
	assert.Equal(t, logger.Warn, l.level)
}

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logPoolWait(context.Background(), log, sql.DBStats{}, sql.DBStats{})
	assert.Empty(t, buf.String())

	logPoolWait(context.Background(), log, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "Postgres pool wait detected")
	assert.Contains(t, buf.String(), "waitCountDelta=2")

	buf.Reset()
	logPoolWait(context.Background(), log, sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond})
	assert.Contains(t, buf.String(), "Postgres pool wait observed")
}
