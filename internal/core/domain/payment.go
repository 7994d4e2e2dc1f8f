package domain

// PaymentRecord is one successfully submitted payment. Records are immutable
// and ordered by receiver submission order. The JSON names are the legacy
// wire contract.
type PaymentRecord struct {
	Amount string `json:"amount"`
	To     string `json:"to"`
	Hash   string `json:"hash"`
}

// BalanceRecord is one account's balances at aggregation time. Balance holds
// the default asset's value (legacy field); Balances maps every requested
// asset code to its value.
type BalanceRecord struct {
	PublicKey string            `json:"publicKey"`
	Balance   string            `json:"balance"`
	Balances  map[string]string `json:"balances,omitempty"`
}

// DistributionRequest is the validated input for one distribution run.
// Amounts travel as decimal strings: ledger amounts are strings on the wire.
type DistributionRequest struct {
	ReceiverCount int
	Amounts       []string
}

// ReconcileAmounts forces amounts to exactly n entries: shorter input is
// padded with "0", longer input is truncated to the first n.
func ReconcileAmounts(amounts []string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(amounts) {
			out[i] = amounts[i]
		} else {
			out[i] = "0"
		}
	}
	return out
}
