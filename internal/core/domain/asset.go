package domain

// Asset identifies a non-native asset by code and issuing account.
type Asset struct {
	Code   string `json:"code"`
	Issuer string `json:"issuer"`
}

// AssetBalance is one entry of an account's balance list.
type AssetBalance struct {
	Code   string `json:"code"`   // empty for the native asset
	Issuer string `json:"issuer"` // empty for the native asset
	Amount string `json:"amount"`
}

// AccountState is a point-in-time view of a ledger account. It is loaded
// fresh on every use; trust status is derived from it, never stored.
type AccountState struct {
	Sequence int64
	Balances []AssetBalance
}

// HasTrustline reports whether the account already holds a trustline for
// the asset. Establishing trust twice is a no-op upstream, so callers use
// this as an idempotence precondition.
func (a *AccountState) HasTrustline(asset Asset) bool {
	for _, b := range a.Balances {
		if b.Code == asset.Code && b.Issuer == asset.Issuer {
			return true
		}
	}
	return false
}

// BalanceFor returns the account's balance for the asset code, or "0" when
// the account holds no such trustline.
func (a *AccountState) BalanceFor(code string) string {
	for _, b := range a.Balances {
		if b.Code == code {
			return b.Amount
		}
	}
	return "0"
}

// TxResult is the outcome of an accepted ledger submission.
type TxResult struct {
	Hash   string `json:"hash"`
	Ledger int32  `json:"ledger,omitempty"`
}
