package domain

// DistributionResult is the outcome of a successful run and the exact shape
// persisted as the history snapshot. Each run replaces the prior snapshot
// wholesale.
type DistributionResult struct {
	Issuer       Identity        `json:"issuer"`
	Receivers    []Identity      `json:"receivers"`
	Transactions []PaymentRecord `json:"transactions"`
	Balances     []BalanceRecord `json:"balances"`
}

// HistoryPage is one page of the persisted transaction history. Total is the
// full record count regardless of the requested page.
type HistoryPage struct {
	Transactions []PaymentRecord `json:"transactions"`
	Total        int             `json:"total"`
}
