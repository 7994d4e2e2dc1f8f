package service

import (
	"context"
	"errors"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BalanceServiceImpl implements ports.BalanceAggregator.
type BalanceServiceImpl struct {
	ledger      ports.LedgerClient
	defaultCode string
	log         zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(ledger ports.LedgerClient, defaultCode string, log zerolog.Logger) *BalanceServiceImpl {
	return &BalanceServiceImpl{ledger: ledger, defaultCode: defaultCode, log: log}
}

// Aggregate loads every account concurrently and reports its balance per
// requested asset code. Results are index-addressed so they come back in
// request order regardless of completion order.
func (s *BalanceServiceImpl) Aggregate(ctx context.Context, publicKeys []string, codes []string) ([]domain.BalanceRecord, error) {
	if len(codes) == 0 {
		codes = []string{s.defaultCode}
	}

	results := make([]domain.BalanceRecord, len(publicKeys))
	g, gctx := errgroup.WithContext(ctx)

	for i, publicKey := range publicKeys {
		g.Go(func() error {
			state, err := s.ledger.LoadAccount(gctx, publicKey)
			if err != nil {
				return apperror.BalanceQuery(publicKey, err)
			}
			if state == nil {
				return apperror.BalanceQuery(publicKey, errors.New("account does not exist on the network"))
			}

			balances := make(map[string]string, len(codes))
			for _, code := range codes {
				balances[code] = state.BalanceFor(code)
			}

			results[i] = domain.BalanceRecord{
				PublicKey: publicKey,
				Balance:   state.BalanceFor(codes[0]),
				Balances:  balances,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug().Int("accounts", len(publicKeys)).Msg("balances aggregated")
	return results, nil
}
