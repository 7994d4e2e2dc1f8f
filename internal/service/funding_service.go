package service

import (
	"context"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FundingServiceImpl implements ports.Funder.
type FundingServiceImpl struct {
	ledger ports.LedgerClient
	log    zerolog.Logger
}

// NewFundingService creates a new FundingServiceImpl.
func NewFundingService(ledger ports.LedgerClient, log zerolog.Logger) *FundingServiceImpl {
	return &FundingServiceImpl{ledger: ledger, log: log}
}

// FundAll funds every identity concurrently. Accounts already on the network
// are skipped. The first failure cancels the remaining checks and fails the
// whole operation.
func (s *FundingServiceImpl) FundAll(ctx context.Context, identities []domain.Identity) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, identity := range identities {
		g.Go(func() error {
			state, err := s.ledger.LoadAccount(gctx, identity.PublicKey)
			if err != nil {
				return apperror.Funding(identity.Label(), err)
			}
			if state != nil {
				s.log.Debug().Str("identity", identity.Label()).Msg("account already funded")
				return nil
			}
			if err := s.ledger.Fund(gctx, identity.PublicKey); err != nil {
				return apperror.Funding(identity.Label(), err)
			}
			s.log.Debug().Str("identity", identity.Label()).Msg("account funded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.log.Info().Int("count", len(identities)).Msg("all accounts funded")
	return nil
}
