package ports

import (
	"context"

	"stellar-payout/internal/core/domain"
)

// HistoryStore persists the latest distribution snapshot and an append-only
// activity log. Implementations must serialize writes: concurrent runs and
// clears race on the same snapshot otherwise.
type HistoryStore interface {
	// SaveSnapshot replaces the stored snapshot wholesale.
	SaveSnapshot(ctx context.Context, result *domain.DistributionResult) error

	// LoadSnapshot returns the current snapshot, or (nil, nil) when none exists.
	LoadSnapshot(ctx context.Context) (*domain.DistributionResult, error)

	// ReadPage returns up to limit transaction records, offset-based
	// (page 1 = first limit records), plus the total record count.
	ReadPage(ctx context.Context, page, limit int) (*domain.HistoryPage, error)

	// Clear removes the snapshot and truncates the activity log; reads
	// afterwards behave like reads before the first run.
	Clear(ctx context.Context) error

	// AppendLog appends a timestamped message to the activity log.
	AppendLog(ctx context.Context, message string) error
}
