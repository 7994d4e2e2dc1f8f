package horizon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"stellar-payout/config"
	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
)

// Transactions time out on the ledger after this many seconds, matching the
// timebounds the browser demo used.
const txTimeoutSeconds = 30

// HTTPClient interface for testability of the friendbot round trip.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LedgerClient against a Horizon instance plus the
// friendbot faucet.
type Client struct {
	horizon    *horizonclient.Client
	friendbot  string
	httpClient HTTPClient
	passphrase string
	log        zerolog.Logger
}

var _ ports.LedgerClient = (*Client)(nil)

// NewClient creates a ledger client for the configured Horizon endpoint.
func NewClient(cfg config.HorizonConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		horizon: &horizonclient.Client{
			HorizonURL: cfg.URL,
			HTTP:       &http.Client{Timeout: cfg.Timeout},
		},
		friendbot:  cfg.FriendbotURL,
		httpClient: httpClient,
		passphrase: cfg.NetworkPassphrase,
		log:        log,
	}
}

// LoadAccount returns the account's current state, or (nil, nil) when the
// account is not on the network yet.
func (c *Client) LoadAccount(ctx context.Context, publicKey string) (*domain.AccountState, error) {
	acct, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: publicKey})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, wrapHorizonError(fmt.Sprintf("loading account %s", publicKey), err)
	}
	return toAccountState(acct), nil
}

// SubmitTrust establishes a trustline for the asset, signed by the account's
// own key.
func (c *Client) SubmitTrust(ctx context.Context, secretKey string, asset domain.Asset) (*domain.TxResult, error) {
	kp, err := parseFull(secretKey)
	if err != nil {
		return nil, err
	}

	op := &txnbuild.ChangeTrust{
		Line: txnbuild.ChangeTrustAssetWrapper{
			Asset: txnbuild.CreditAsset{Code: asset.Code, Issuer: asset.Issuer},
		},
	}

	result, err := c.submit(kp, op)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("account", kp.Address()).
		Str("asset", asset.Code).
		Str("hash", result.Hash).
		Msg("trustline established")
	return result, nil
}

// SubmitPayment builds, signs and submits a single payment operation.
func (c *Client) SubmitPayment(ctx context.Context, req ports.SubmitPaymentRequest) (*domain.TxResult, error) {
	kp, err := parseFull(req.SourceSecret)
	if err != nil {
		return nil, err
	}

	op := &txnbuild.Payment{
		Destination: req.Destination,
		Amount:      req.Amount,
		Asset:       txnbuild.CreditAsset{Code: req.Asset.Code, Issuer: req.Asset.Issuer},
	}

	result, err := c.submit(kp, op)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("destination", req.Destination).
		Str("amount", req.Amount).
		Str("hash", result.Hash).
		Msg("payment submitted")
	return result, nil
}

// Fund credits the account through the friendbot faucet.
func (c *Client) Fund(ctx context.Context, publicKey string) error {
	u := fmt.Sprintf("%s?addr=%s", c.friendbot, url.QueryEscape(publicKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building friendbot request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("friendbot request for %s: %w", publicKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &submissionError{
			msg:     fmt.Sprintf("friendbot returned %d for %s", resp.StatusCode, publicKey),
			details: strings.TrimSpace(string(body)),
		}
	}

	c.log.Debug().Str("account", publicKey).Msg("account funded by friendbot")
	return nil
}

// submit loads the signer's account for its next sequence number, wraps the
// operation in a signed transaction and submits it.
func (c *Client) submit(kp fullKeypair, op txnbuild.Operation) (*domain.TxResult, error) {
	sourceAccount, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: kp.Address()})
	if err != nil {
		return nil, wrapHorizonError(fmt.Sprintf("loading source account %s", kp.Address()), err)
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sourceAccount,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(txTimeoutSeconds)},
		Operations:           []txnbuild.Operation{op},
	})
	if err != nil {
		return nil, fmt.Errorf("building transaction: %w", err)
	}

	tx, err = tx.Sign(c.passphrase, kp.full)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}

	resp, err := c.horizon.SubmitTransaction(tx)
	if err != nil {
		return nil, wrapHorizonError("submitting transaction", err)
	}

	return &domain.TxResult{Hash: resp.Hash, Ledger: resp.Ledger}, nil
}

func toAccountState(acct hProtocol.Account) *domain.AccountState {
	state := &domain.AccountState{Sequence: acct.Sequence}
	for _, b := range acct.Balances {
		state.Balances = append(state.Balances, domain.AssetBalance{
			Code:   b.Code,
			Issuer: b.Issuer,
			Amount: b.Balance,
		})
	}
	return state
}

// submissionError carries the upstream failure payload so the error
// taxonomy can pass it through to the caller.
type submissionError struct {
	msg     string
	details interface{}
	cause   error
}

func (e *submissionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *submissionError) Unwrap() error { return e.cause }

// ErrorDetails implements apperror.Detailer.
func (e *submissionError) ErrorDetails() interface{} { return e.details }

// wrapHorizonError preserves the Horizon problem detail and transaction
// result codes, which are the only actionable part of a rejected submission.
func wrapHorizonError(msg string, err error) error {
	herr := horizonclient.GetError(err)
	if herr == nil {
		return fmt.Errorf("%s: %w", msg, err)
	}

	details := map[string]interface{}{
		"title":  herr.Problem.Title,
		"status": herr.Problem.Status,
		"detail": herr.Problem.Detail,
	}
	if codes, rcErr := herr.ResultCodes(); rcErr == nil && codes != nil {
		details["result_codes"] = map[string]interface{}{
			"transaction": codes.TransactionCode,
			"operations":  codes.OperationCodes,
		}
	}

	return &submissionError{msg: msg, details: details, cause: err}
}
