package service

import (
	"context"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
)

// DispatchServiceImpl implements ports.PaymentDispatcher.
type DispatchServiceImpl struct {
	ledger    ports.LedgerClient
	trust     ports.TrustlineManager
	assetCode string
	log       zerolog.Logger
}

// NewDispatchService creates a new DispatchServiceImpl.
func NewDispatchService(ledger ports.LedgerClient, trust ports.TrustlineManager, assetCode string, log zerolog.Logger) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		ledger:    ledger,
		trust:     trust,
		assetCode: assetCode,
		log:       log,
	}
}

// Distribute pays each receiver in list order: trustline first, payment
// second. Submissions are strictly sequential because every payment consumes
// the issuer's next sequence number. The first failure aborts the run;
// already-submitted payments stay on the ledger.
func (s *DispatchServiceImpl) Distribute(ctx context.Context, issuer domain.Identity, receivers []domain.Identity, amounts []string) ([]domain.PaymentRecord, error) {
	asset := domain.Asset{Code: s.assetCode, Issuer: issuer.PublicKey}
	records := make([]domain.PaymentRecord, 0, len(receivers))

	for i, receiver := range receivers {
		if _, err := s.trust.EnsureTrust(ctx, receiver, asset); err != nil {
			return nil, err
		}

		result, err := s.ledger.SubmitPayment(ctx, ports.SubmitPaymentRequest{
			SourceSecret: issuer.SecretKey,
			Destination:  receiver.PublicKey,
			Asset:        asset,
			Amount:       amounts[i],
		})
		if err != nil {
			return nil, apperror.Payment(receiver.Label(), err)
		}

		s.log.Info().
			Str("receiver", receiver.Label()).
			Str("amount", amounts[i]).
			Str("hash", result.Hash).
			Msg("payment dispatched")

		records = append(records, domain.PaymentRecord{
			Amount: amounts[i],
			To:     receiver.PublicKey,
			Hash:   result.Hash,
		})
	}

	return records, nil
}
