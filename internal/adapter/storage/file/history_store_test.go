package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"stellar-payout/config"
	"stellar-payout/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	dir := t.TempDir()
	store, err := NewHistoryStore(config.HistoryConfig{
		SnapshotPath: filepath.Join(dir, "payments.json"),
		LogPath:      filepath.Join(dir, "logs.txt"),
	}, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func sampleResult(txCount int) *domain.DistributionResult {
	result := &domain.DistributionResult{
		Issuer: domain.Identity{PublicKey: "GISSUER", SecretKey: "SISSUER"},
	}
	for i := 0; i < txCount; i++ {
		result.Receivers = append(result.Receivers, domain.Identity{
			ID:        domain.ReceiverID(i + 1),
			PublicKey: fmt.Sprintf("GRECV%d", i+1),
			SecretKey: fmt.Sprintf("SRECV%d", i+1),
		})
		result.Transactions = append(result.Transactions, domain.PaymentRecord{
			Amount: fmt.Sprintf("%d", (i+1)*10),
			To:     fmt.Sprintf("GRECV%d", i+1),
			Hash:   fmt.Sprintf("hash%d", i+1),
		})
		result.Balances = append(result.Balances, domain.BalanceRecord{
			PublicKey: fmt.Sprintf("GRECV%d", i+1),
			Balance:   fmt.Sprintf("%d", (i+1)*10),
		})
	}
	return result
}

func TestHistoryStore_SnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, sampleResult(3)))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, "GISSUER", loaded.Issuer.PublicKey)
	assert.Len(t, loaded.Transactions, 3)
	assert.Equal(t, "Receiver 2", loaded.Receivers[1].ID)
	assert.Equal(t, "GRECV3", loaded.Transactions[2].To)
}

func TestHistoryStore_LoadBeforeFirstRun(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestHistoryStore_SaveReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, sampleResult(5)))
	require.NoError(t, store.SaveSnapshot(ctx, sampleResult(2)))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Transactions, 2, "a new run replaces the prior snapshot")
}

func TestHistoryStore_ReadPage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveSnapshot(ctx, sampleResult(5)))

	tests := []struct {
		name      string
		page      int
		limit     int
		wantCount int
		wantFirst string
	}{
		{"first page", 1, 2, 2, "GRECV1"},
		{"second page", 2, 2, 2, "GRECV3"},
		{"final partial page", 3, 2, 1, "GRECV5"},
		{"page beyond range", 4, 2, 0, ""},
		{"limit beyond total", 1, 20, 5, "GRECV1"},
		{"zero page clamps to start", 0, 2, 2, "GRECV1"},
		{"negative page clamps to start", -3, 2, 2, "GRECV1"},
		{"zero limit yields empty page", 1, 0, 0, ""},
		{"negative limit yields empty page", 2, -5, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := store.ReadPage(ctx, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, 5, page.Total, "total is independent of the page")
			assert.Len(t, page.Transactions, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, page.Transactions[0].To)
			}
		})
	}
}

func TestHistoryStore_ReadPageBeforeFirstRun(t *testing.T) {
	store := newTestStore(t)

	page, err := store.ReadPage(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.NotNil(t, page.Transactions, "empty page still serializes as a list")
}

func TestHistoryStore_ClearThenRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, sampleResult(3)))
	require.NoError(t, store.AppendLog(ctx, "payments completed"))
	require.NoError(t, store.Clear(ctx))

	page, err := store.ReadPage(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Transactions)

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "a cleared store reads like one before the first run")

	logData, err := os.ReadFile(store.logPath)
	require.NoError(t, err)
	assert.Empty(t, logData, "clear truncates the activity log")
}

func TestHistoryStore_AppendLogFormat(t *testing.T) {
	store := newTestStore(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	require.NoError(t, store.AppendLog(context.Background(), "accounts funded with test XLM"))
	require.NoError(t, store.AppendLog(context.Background(), "payments completed"))

	data, err := os.ReadFile(store.logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-06-01T12:00:00Z - accounts funded with test XLM", lines[0])
	assert.Equal(t, "2025-06-01T12:00:00Z - payments completed", lines[1])
}

func TestHistoryStore_ConcurrentAccess(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, store.SaveSnapshot(ctx, sampleResult(n%4+1)))
			_, err := store.ReadPage(ctx, 1, 10)
			assert.NoError(t, err)
			assert.NoError(t, store.AppendLog(ctx, "run finished"))
		}(i)
	}
	wg.Wait()

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.NotEmpty(t, loaded.Transactions)
}
