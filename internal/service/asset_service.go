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

// AssetServiceImpl implements ports.AssetIssuer. Every flow is a single
// payment-shaped submission; none of them touches the distribution pipeline
// or the history store.
type AssetServiceImpl struct {
	ledger ports.LedgerClient
	keys   ports.KeypairService
	log    zerolog.Logger
}

// NewAssetService creates a new AssetServiceImpl.
func NewAssetService(ledger ports.LedgerClient, keys ports.KeypairService, log zerolog.Logger) *AssetServiceImpl {
	return &AssetServiceImpl{ledger: ledger, keys: keys, log: log}
}

// CreateAsset mints supply by having the issuer pay itself. The issuer needs
// no trustline for its own asset.
func (s *AssetServiceImpl) CreateAsset(ctx context.Context, req ports.CreateAssetRequest) (*domain.TxResult, error) {
	if err := validateAssetInput(req.AssetCode, req.Amount); err != nil {
		return nil, err
	}
	issuer, err := s.keys.FromSecret(req.IssuerSecret)
	if err != nil {
		return nil, apperror.Validation("issuerSecret is not a valid secret key")
	}

	result, err := s.ledger.SubmitPayment(ctx, ports.SubmitPaymentRequest{
		SourceSecret: req.IssuerSecret,
		Destination:  issuer.PublicKey,
		Asset:        domain.Asset{Code: req.AssetCode, Issuer: issuer.PublicKey},
		Amount:       req.Amount,
	})
	if err != nil {
		return nil, apperror.AssetOperation(fmt.Sprintf("asset creation failed for %s", req.AssetCode), err)
	}

	s.log.Info().
		Str("asset", req.AssetCode).
		Str("issuer", issuer.PublicKey).
		Str("amount", req.Amount).
		Msg("asset supply minted")
	return result, nil
}

// DepositToken moves asset from the issuer to a destination. The destination
// must already trust the asset; this service holds no key that could sign a
// trustline on its behalf, so the missing trustline is reported instead.
func (s *AssetServiceImpl) DepositToken(ctx context.Context, req ports.DepositRequest) (*domain.TxResult, error) {
	if err := validateAssetInput(req.AssetCode, req.Amount); err != nil {
		return nil, err
	}
	if req.DestinationPublicKey == "" {
		return nil, apperror.Validation("destinationPublicKey is required")
	}
	issuer, err := s.keys.FromSecret(req.IssuerSecret)
	if err != nil {
		return nil, apperror.Validation("issuerSecret is not a valid secret key")
	}

	asset := domain.Asset{Code: req.AssetCode, Issuer: issuer.PublicKey}

	state, err := s.ledger.LoadAccount(ctx, req.DestinationPublicKey)
	if err != nil {
		return nil, apperror.AssetOperation(fmt.Sprintf("deposit failed for %s", req.DestinationPublicKey), err)
	}
	if state == nil || !state.HasTrustline(asset) {
		return nil, apperror.AssetOperation(
			fmt.Sprintf("destination %s does not trust %s", req.DestinationPublicKey, req.AssetCode), nil)
	}

	result, err := s.ledger.SubmitPayment(ctx, ports.SubmitPaymentRequest{
		SourceSecret: req.IssuerSecret,
		Destination:  req.DestinationPublicKey,
		Asset:        asset,
		Amount:       req.Amount,
	})
	if err != nil {
		return nil, apperror.AssetOperation(fmt.Sprintf("deposit failed for %s", req.DestinationPublicKey), err)
	}

	s.log.Info().
		Str("asset", req.AssetCode).
		Str("destination", req.DestinationPublicKey).
		Str("amount", req.Amount).
		Msg("token deposited")
	return result, nil
}

// WithdrawToken returns asset supply from a holder back to the issuer.
// Paying the issuer burns the amount.
func (s *AssetServiceImpl) WithdrawToken(ctx context.Context, req ports.WithdrawRequest) (*domain.TxResult, error) {
	if err := validateAssetInput(req.AssetCode, req.Amount); err != nil {
		return nil, err
	}
	if req.IssuerPublicKey == "" {
		return nil, apperror.Validation("issuerPublicKey is required")
	}
	if _, err := s.keys.FromSecret(req.SourceSecret); err != nil {
		return nil, apperror.Validation("sourceSecret is not a valid secret key")
	}

	result, err := s.ledger.SubmitPayment(ctx, ports.SubmitPaymentRequest{
		SourceSecret: req.SourceSecret,
		Destination:  req.IssuerPublicKey,
		Asset:        domain.Asset{Code: req.AssetCode, Issuer: req.IssuerPublicKey},
		Amount:       req.Amount,
	})
	if err != nil {
		return nil, apperror.AssetOperation(fmt.Sprintf("withdrawal failed for %s", req.AssetCode), err)
	}

	s.log.Info().
		Str("asset", req.AssetCode).
		Str("issuer", req.IssuerPublicKey).
		Str("amount", req.Amount).
		Msg("token withdrawn")
	return result, nil
}

// validateAssetInput checks the shared code/amount fields of the asset flows.
func validateAssetInput(assetCode, amount string) error {
	if assetCode == "" {
		return apperror.Validation("assetCode is required")
	}
	if len(assetCode) > 12 {
		return apperror.Validation("assetCode must be at most 12 characters")
	}
	// ParseFloat accepts "NaN" and "Inf", which are never valid amounts.
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return apperror.Validation("amount must be a positive number")
	}
	return nil
}
