package ports

import (
	"context"

	"stellar-payout/internal/core/domain"
)

// IdentityProvisioner creates one issuer and N ordinal-tagged receivers.
type IdentityProvisioner interface {
	Provision(ctx context.Context, receiverCount int) (*domain.AccountSet, error)
}

// Funder ensures every identity has a funded presence on the network.
// Checks and funding calls run concurrently; any failure fails the whole
// operation and downstream steps never run.
type Funder interface {
	FundAll(ctx context.Context, identities []domain.Identity) error
}

// TrustlineManager idempotently establishes an asset trustline for an
// account. The bool result reports whether a new trustline was submitted
// (false = already trusted, nothing sent).
type TrustlineManager interface {
	EnsureTrust(ctx context.Context, account domain.Identity, asset domain.Asset) (bool, error)
}

// PaymentDispatcher sequences trust establishment and payments per receiver,
// strictly in list order. Concurrency is forbidden here: every submission
// from the issuer consumes its next sequence number.
type PaymentDispatcher interface {
	Distribute(ctx context.Context, issuer domain.Identity, receivers []domain.Identity, amounts []string) ([]domain.PaymentRecord, error)
}

// BalanceAggregator queries balances for a set of accounts concurrently.
// codes defaults to the configured asset code when empty. Results preserve
// request order; balances are recomputed fresh on every call.
type BalanceAggregator interface {
	Aggregate(ctx context.Context, publicKeys []string, codes []string) ([]domain.BalanceRecord, error)
}

// CreateAssetRequest mints supply: the issuer pays itself.
type CreateAssetRequest struct {
	IssuerSecret string
	AssetCode    string
	Amount       string
}

// DepositRequest moves asset from the issuer to a destination that already
// trusts it.
type DepositRequest struct {
	IssuerSecret         string
	DestinationPublicKey string
	AssetCode            string
	Amount               string
}

// WithdrawRequest returns asset supply from a holder back to the issuer.
type WithdrawRequest struct {
	SourceSecret    string
	IssuerPublicKey string
	AssetCode       string
	Amount          string
}

// AssetIssuer performs the secondary-asset flows, each a single
// payment-shaped submission, independent of the distribution pipeline.
type AssetIssuer interface {
	CreateAsset(ctx context.Context, req CreateAssetRequest) (*domain.TxResult, error)
	DepositToken(ctx context.Context, req DepositRequest) (*domain.TxResult, error)
	WithdrawToken(ctx context.Context, req WithdrawRequest) (*domain.TxResult, error)
}

// DistributionService runs the full pipeline: validate, provision, fund,
// dispatch, aggregate, persist. The first failure at any stage aborts the
// remainder; already-submitted payments are final and never rolled back.
type DistributionService interface {
	Run(ctx context.Context, req domain.DistributionRequest) (*domain.DistributionResult, error)
}
