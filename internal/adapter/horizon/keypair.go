package horizon

import (
	"fmt"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"

	"github.com/stellar/go/keypair"
)

// KeypairSource implements ports.KeypairService on the SDK keypair package.
type KeypairSource struct{}

var _ ports.KeypairService = KeypairSource{}

// NewKeypairSource creates a keypair source.
func NewKeypairSource() KeypairSource {
	return KeypairSource{}
}

// Generate creates a random testnet keypair.
func (KeypairSource) Generate() (domain.Keypair, error) {
	kp, err := keypair.Random()
	if err != nil {
		return domain.Keypair{}, fmt.Errorf("generating keypair: %w", err)
	}
	return domain.Keypair{PublicKey: kp.Address(), SecretKey: kp.Seed()}, nil
}

// FromSecret resolves the public key for a secret seed.
func (KeypairSource) FromSecret(secret string) (domain.Keypair, error) {
	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return domain.Keypair{}, fmt.Errorf("parsing secret key: %w", err)
	}
	return domain.Keypair{PublicKey: kp.Address(), SecretKey: kp.Seed()}, nil
}

// fullKeypair wraps the SDK signing keypair for transaction submission.
type fullKeypair struct {
	full *keypair.Full
}

func (k fullKeypair) Address() string { return k.full.Address() }

func parseFull(secret string) (fullKeypair, error) {
	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return fullKeypair{}, fmt.Errorf("parsing secret key: %w", err)
	}
	return fullKeypair{full: kp}, nil
}
