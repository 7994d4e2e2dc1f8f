package service

import (
	"context"
	"time"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
)

// TrustlineServiceImpl implements ports.TrustlineManager.
type TrustlineServiceImpl struct {
	ledger         ports.LedgerClient
	settlementWait time.Duration
	sleep          func(time.Duration) // swapped out in tests
	log            zerolog.Logger
}

// NewTrustlineService creates a new TrustlineServiceImpl. settlementWait is
// how long to pause after submitting a new trustline so it settles before a
// payment follows on its heels.
func NewTrustlineService(ledger ports.LedgerClient, settlementWait time.Duration, log zerolog.Logger) *TrustlineServiceImpl {
	return &TrustlineServiceImpl{
		ledger:         ledger,
		settlementWait: settlementWait,
		sleep:          time.Sleep,
		log:            log,
	}
}

// EnsureTrust establishes a trustline for the asset unless the account
// already holds one. Returns true when a new trustline was submitted.
func (s *TrustlineServiceImpl) EnsureTrust(ctx context.Context, account domain.Identity, asset domain.Asset) (bool, error) {
	state, err := s.ledger.LoadAccount(ctx, account.PublicKey)
	if err != nil {
		return false, apperror.Trustline(account.Label(), err)
	}
	if state != nil && state.HasTrustline(asset) {
		s.log.Debug().
			Str("account", account.Label()).
			Str("asset", asset.Code).
			Msg("trustline already present")
		return false, nil
	}

	if _, err := s.ledger.SubmitTrust(ctx, account.SecretKey, asset); err != nil {
		return false, apperror.Trustline(account.Label(), err)
	}

	s.waitForSettlement(account)
	return true, nil
}

// waitForSettlement pauses after a new trustline submission. Paying into a
// trustline the network has not settled yet gets the payment rejected.
func (s *TrustlineServiceImpl) waitForSettlement(account domain.Identity) {
	s.log.Debug().
		Str("account", account.Label()).
		Dur("wait", s.settlementWait).
		Msg("waiting for trustline settlement")
	s.sleep(s.settlementWait)
}
