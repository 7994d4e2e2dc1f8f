package service

import (
	"context"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
)

// ProvisionServiceImpl implements ports.IdentityProvisioner.
type ProvisionServiceImpl struct {
	keys ports.KeypairService
	log  zerolog.Logger
}

// NewProvisionService creates a new ProvisionServiceImpl.
func NewProvisionService(keys ports.KeypairService, log zerolog.Logger) *ProvisionServiceImpl {
	return &ProvisionServiceImpl{keys: keys, log: log}
}

// Provision creates one issuer identity plus receiverCount ordinal-tagged
// receivers, each with a fresh keypair.
func (s *ProvisionServiceImpl) Provision(ctx context.Context, receiverCount int) (*domain.AccountSet, error) {
	if receiverCount < 1 {
		return nil, apperror.Validation("receivers must be a positive integer")
	}

	issuerKP, err := s.keys.Generate()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	set := &domain.AccountSet{
		Issuer: domain.Identity{
			Role:      domain.RoleIssuer,
			PublicKey: issuerKP.PublicKey,
			SecretKey: issuerKP.SecretKey,
		},
		Receivers: make([]domain.Identity, 0, receiverCount),
	}

	for i := 1; i <= receiverCount; i++ {
		kp, err := s.keys.Generate()
		if err != nil {
			return nil, apperror.Internal(err)
		}
		set.Receivers = append(set.Receivers, domain.Identity{
			ID:        domain.ReceiverID(i),
			Role:      domain.RoleReceiver,
			PublicKey: kp.PublicKey,
			SecretKey: kp.SecretKey,
		})
	}

	s.log.Info().
		Int("receivers", receiverCount).
		Str("issuer", set.Issuer.PublicKey).
		Msg("identities provisioned")

	return set, nil
}
