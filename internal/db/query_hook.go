package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryHook logs executed SQL through slog. Attach it to the *pg.DB with
// AddQueryHook; failed queries are logged at error level, the rest at debug.
type QueryHook struct {
	logger *slog.Logger
}

func NewQueryHook(logger *slog.Logger) *QueryHook {
	return &QueryHook{
		logger: logger,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, event *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.Error("failed to format query", "error", err)
		return nil
	}

	duration := time.Since(event.StartTime)
	if event.Err != nil {
		h.logger.Error("SQL query failed",
			"query", string(query),
			"duration", duration,
			"error", event.Err,
		)
		return nil
	}

	h.logger.Debug("SQL query executed",
		"query", string(query),
		"duration", duration,
	)

	return nil
}
