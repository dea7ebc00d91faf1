package handler

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// timestampLayout renders UTC instants as ISO-8601 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// StoreProber runs the deep health check's probe query.
type StoreProber interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func timestamp(now time.Time) string {
	return now.UTC().Format(timestampLayout)
}
