package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"stellar-payout/config"
	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"

	"github.com/rs/zerolog"
)

// HistoryStore persists the distribution snapshot as a JSON file and keeps a
// plain-text activity log next to it. A single mutex serializes all access,
// which is the write-ordering guarantee the ports.HistoryStore contract asks
// for.
type HistoryStore struct {
	mu           sync.Mutex
	snapshotPath string
	logPath      string
	now          func() time.Time
	log          zerolog.Logger
}

var _ ports.HistoryStore = (*HistoryStore)(nil)

// NewHistoryStore creates a file-backed history store, creating the parent
// directories if needed.
func NewHistoryStore(cfg config.HistoryConfig, log zerolog.Logger) (*HistoryStore, error) {
	for _, p := range []string{cfg.SnapshotPath, cfg.LogPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating history directory %s: %w", dir, err)
			}
		}
	}
	return &HistoryStore{
		snapshotPath: cfg.SnapshotPath,
		logPath:      cfg.LogPath,
		now:          time.Now,
		log:          log,
	}, nil
}

// SaveSnapshot replaces the stored snapshot wholesale.
func (s *HistoryStore) SaveSnapshot(ctx context.Context, result *domain.DistributionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSnapshot(result)
}

// LoadSnapshot returns the current snapshot, or (nil, nil) when no run has
// been persisted yet.
func (s *HistoryStore) LoadSnapshot(ctx context.Context) (*domain.DistributionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readSnapshot()
}

// ReadPage returns one offset-based page of the persisted transactions along
// with the total record count. Out-of-range page and limit values are clamped
// rather than rejected, so the store is safe for any caller.
func (s *HistoryStore) ReadPage(ctx context.Context, page, limit int) (*domain.HistoryPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.readSnapshot()
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return &domain.HistoryPage{Transactions: []domain.PaymentRecord{}}, nil
	}

	total := len(snapshot.Transactions)
	if limit < 0 {
		limit = 0
	}
	start := (page - 1) * limit
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &domain.HistoryPage{
		Transactions: snapshot.Transactions[start:end],
		Total:        total,
	}, nil
}

// Clear removes the snapshot and truncates the activity log. Reads after a
// clear behave exactly like reads before the first run.
func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.snapshotPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	if err := os.WriteFile(s.logPath, nil, 0o644); err != nil {
		return fmt.Errorf("truncating activity log: %w", err)
	}

	s.log.Info().Msg("history cleared")
	return nil
}

// AppendLog appends a timestamped line to the activity log.
func (s *HistoryStore) AppendLog(ctx context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s - %s\n", s.now().UTC().Format(time.RFC3339), message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending to activity log: %w", err)
	}
	return nil
}

// writeSnapshot writes to a temp file first and renames it into place, so a
// crash mid-write never leaves a truncated snapshot behind. Callers hold mu.
func (s *HistoryStore) writeSnapshot(result *domain.DistributionResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := s.snapshotPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.snapshotPath); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// readSnapshot returns (nil, nil) when no snapshot file exists. Callers hold mu.
func (s *HistoryStore) readSnapshot() (*domain.DistributionResult, error) {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var result domain.DistributionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &result, nil
}
