package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
)

// DistributionServiceImpl implements ports.DistributionService: the full
// provision, fund, dispatch, aggregate, persist pipeline.
type DistributionServiceImpl struct {
	provisioner ports.IdentityProvisioner
	funder      ports.Funder
	dispatcher  ports.PaymentDispatcher
	balances    ports.BalanceAggregator
	history     ports.HistoryStore
	log         zerolog.Logger
}

// NewDistributionService creates a new DistributionServiceImpl.
func NewDistributionService(
	provisioner ports.IdentityProvisioner,
	funder ports.Funder,
	dispatcher ports.PaymentDispatcher,
	balances ports.BalanceAggregator,
	history ports.HistoryStore,
	log zerolog.Logger,
) *DistributionServiceImpl {
	return &DistributionServiceImpl{
		provisioner: provisioner,
		funder:      funder,
		dispatcher:  dispatcher,
		balances:    balances,
		history:     history,
		log:         log,
	}
}

// Run executes one distribution end to end. The first failing stage aborts
// the rest; a partial run persists nothing, though payments already on the
// ledger stay there.
func (s *DistributionServiceImpl) Run(ctx context.Context, req domain.DistributionRequest) (*domain.DistributionResult, error) {
	if req.ReceiverCount < 1 {
		return nil, apperror.Validation("receivers must be a positive integer")
	}
	for _, amount := range req.Amounts {
		// ParseFloat accepts "NaN" and "Inf", which are never valid amounts.
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, apperror.Validation(fmt.Sprintf("invalid amount %q", amount))
		}
	}

	set, err := s.provisioner.Provision(ctx, req.ReceiverCount)
	if err != nil {
		return nil, err
	}

	if err := s.funder.FundAll(ctx, set.All()); err != nil {
		return nil, err
	}
	s.appendLog(ctx, "accounts funded with test XLM")

	amounts := domain.ReconcileAmounts(req.Amounts, req.ReceiverCount)

	transactions, err := s.dispatcher.Distribute(ctx, set.Issuer, set.Receivers, amounts)
	if err != nil {
		return nil, err
	}
	s.appendLog(ctx, "payments completed")

	balances, err := s.balances.Aggregate(ctx, set.PublicKeys(), nil)
	if err != nil {
		return nil, err
	}

	result := &domain.DistributionResult{
		Issuer:       set.Issuer,
		Receivers:    set.Receivers,
		Transactions: transactions,
		Balances:     balances,
	}
	if err := s.history.SaveSnapshot(ctx, result); err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().
		Int("receivers", req.ReceiverCount).
		Int("payments", len(transactions)).
		Msg("distribution completed")
	return result, nil
}

// appendLog records pipeline progress in the activity log. A log write
// failure must not abort a run that already moved funds.
func (s *DistributionServiceImpl) appendLog(ctx context.Context, message string) {
	if err := s.history.AppendLog(ctx, message); err != nil {
		s.log.Warn().Err(err).Str("message", message).Msg("activity log write failed")
	}
}
