package integration

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"
)

// fakeLedger is an in-memory LedgerClient. It models just enough of the
// network to exercise the full pipeline: account creation through funding,
// trustlines, issuer minting and ordinary payments.
type fakeLedger struct {
	mu       sync.Mutex
	accounts map[string]*fakeAccount
	secrets  map[string]string // secret seed -> public key
	keyCount int
	txCount  int
	failFund map[string]bool // public keys whose funding should fail
}

type fakeAccount struct {
	sequence   int64
	native     string
	trustlines map[string]string // "CODE|ISSUER" -> balance
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		accounts: make(map[string]*fakeAccount),
		secrets:  make(map[string]string),
		failFund: make(map[string]bool),
	}
}

func assetKey(a domain.Asset) string { return a.Code + "|" + a.Issuer }

func addAmount(current, delta string) string {
	a, _ := strconv.ParseFloat(current, 64)
	b, _ := strconv.ParseFloat(delta, 64)
	return strconv.FormatFloat(a+b, 'f', 7, 64)
}

func (l *fakeLedger) nextHash() string {
	l.txCount++
	return fmt.Sprintf("tx%04d", l.txCount)
}

// seedAccount creates a funded account directly, bypassing friendbot.
// trusted lists assets the account already holds trustlines for.
func (l *fakeLedger) seedAccount(trusted ...domain.Asset) domain.Keypair {
	l.mu.Lock()
	defer l.mu.Unlock()

	kp := l.newKeypairLocked()
	acct := &fakeAccount{native: "10000.0000000", trustlines: make(map[string]string)}
	for _, a := range trusted {
		acct.trustlines[assetKey(a)] = "0.0000000"
	}
	l.accounts[kp.PublicKey] = acct
	return kp
}

func (l *fakeLedger) newKeypairLocked() domain.Keypair {
	l.keyCount++
	kp := domain.Keypair{
		PublicKey: fmt.Sprintf("GTEST%d", l.keyCount),
		SecretKey: fmt.Sprintf("STEST%d", l.keyCount),
	}
	l.secrets[kp.SecretKey] = kp.PublicKey
	return kp
}

func (l *fakeLedger) LoadAccount(ctx context.Context, publicKey string) (*domain.AccountState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[publicKey]
	if !ok {
		return nil, nil
	}

	state := &domain.AccountState{
		Sequence: acct.sequence,
		Balances: []domain.AssetBalance{{Amount: acct.native}},
	}
	for key, balance := range acct.trustlines {
		code, issuer, _ := strings.Cut(key, "|")
		state.Balances = append(state.Balances, domain.AssetBalance{Code: code, Issuer: issuer, Amount: balance})
	}
	return state, nil
}

func (l *fakeLedger) Fund(ctx context.Context, publicKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failFund[publicKey] {
		return fmt.Errorf("friendbot returned 400 for %s", publicKey)
	}
	if _, ok := l.accounts[publicKey]; !ok {
		l.accounts[publicKey] = &fakeAccount{native: "10000.0000000", trustlines: make(map[string]string)}
	}
	return nil
}

func (l *fakeLedger) SubmitTrust(ctx context.Context, secretKey string, asset domain.Asset) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	publicKey, ok := l.secrets[secretKey]
	if !ok {
		return nil, fmt.Errorf("unknown secret key")
	}
	acct, ok := l.accounts[publicKey]
	if !ok {
		return nil, fmt.Errorf("account %s does not exist", publicKey)
	}

	key := assetKey(asset)
	if _, ok := acct.trustlines[key]; !ok {
		acct.trustlines[key] = "0.0000000"
	}
	acct.sequence++
	return &domain.TxResult{Hash: l.nextHash(), Ledger: int32(l.txCount)}, nil
}

func (l *fakeLedger) SubmitPayment(ctx context.Context, req ports.SubmitPaymentRequest) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sourceKey, ok := l.secrets[req.SourceSecret]
	if !ok {
		return nil, fmt.Errorf("unknown secret key")
	}
	source, ok := l.accounts[sourceKey]
	if !ok {
		return nil, fmt.Errorf("source account %s does not exist", sourceKey)
	}

	key := assetKey(req.Asset)

	// The issuer mints on send; everyone else spends an existing balance.
	if sourceKey != req.Asset.Issuer {
		balance, ok := source.trustlines[key]
		if !ok {
			return nil, fmt.Errorf("source %s does not trust %s", sourceKey, req.Asset.Code)
		}
		source.trustlines[key] = addAmount(balance, "-"+req.Amount)
	}

	// Paying the issuer burns the amount.
	if req.Destination != req.Asset.Issuer {
		dest, ok := l.accounts[req.Destination]
		if !ok {
			return nil, fmt.Errorf("destination %s does not exist", req.Destination)
		}
		balance, ok := dest.trustlines[key]
		if !ok {
			return nil, fmt.Errorf("destination %s does not trust %s", req.Destination, req.Asset.Code)
		}
		dest.trustlines[key] = addAmount(balance, req.Amount)
	}

	source.sequence++
	return &domain.TxResult{Hash: l.nextHash(), Ledger: int32(l.txCount)}, nil
}

// fakeKeySource hands out the ledger's deterministic keypairs.
type fakeKeySource struct {
	ledger *fakeLedger
}

func (f fakeKeySource) Generate() (domain.Keypair, error) {
	f.ledger.mu.Lock()
	defer f.ledger.mu.Unlock()
	return f.ledger.newKeypairLocked(), nil
}

func (f fakeKeySource) FromSecret(secret string) (domain.Keypair, error) {
	f.ledger.mu.Lock()
	defer f.ledger.mu.Unlock()
	publicKey, ok := f.ledger.secrets[secret]
	if !ok {
		return domain.Keypair{}, fmt.Errorf("invalid secret key")
	}
	return domain.Keypair{PublicKey: publicKey, SecretKey: secret}, nil
}
