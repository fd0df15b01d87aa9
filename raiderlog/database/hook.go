package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/raiderlog/raiderlog/raiderlog/logger"
)

// queryHook feeds every bun query through the shared query logger.
type queryHook struct{}

func (queryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (queryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	err := event.Err
	if errors.Is(err, sql.ErrNoRows) {
		// Empty result, not a failure.
		err = nil
	}
	logger.LogQuery(event.Query, time.Since(event.StartTime), err)
}
