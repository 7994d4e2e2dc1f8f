package ports

import (
	"context"

	"stellar-payout/internal/core/domain"
)

// KeypairService generates and resolves testnet keypairs. Key material and
// transaction signing live behind the ledger adapter; the core never touches
// raw cryptography.
type KeypairService interface {
	// Generate creates a random keypair.
	Generate() (domain.Keypair, error)
	// FromSecret resolves the public key for a secret seed.
	FromSecret(secret string) (domain.Keypair, error)
}

// SubmitPaymentRequest describes one payment-shaped operation: source pays
// destination in the given asset. Amount is a decimal string.
type SubmitPaymentRequest struct {
	SourceSecret string
	Destination  string
	Asset        domain.Asset
	Amount       string
}

// LedgerClient is the external ledger capability: account loads, signed
// operation submission and faucet funding. Calls are synchronous network
// round trips with no built-in retry.
type LedgerClient interface {
	// LoadAccount returns the account's current state, or (nil, nil) when the
	// account does not exist on the network yet.
	LoadAccount(ctx context.Context, publicKey string) (*domain.AccountState, error)

	// SubmitTrust establishes a trustline for the asset, signed by the
	// account's own key.
	SubmitTrust(ctx context.Context, secretKey string, asset domain.Asset) (*domain.TxResult, error)

	// SubmitPayment builds, signs and submits a single payment operation.
	SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*domain.TxResult, error)

	// Fund credits a test-network account through the faucet.
	Fund(ctx context.Context, publicKey string) error
}
