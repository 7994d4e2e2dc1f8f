package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an error with the pipeline stage that produced it, so callers can
// branch on the kind instead of matching message strings.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindFunding        Kind = "FUNDING"
	KindTrustline      Kind = "TRUSTLINE"
	KindPayment        Kind = "PAYMENT"
	KindBalanceQuery   Kind = "BALANCE_QUERY"
	KindAssetOperation Kind = "ASSET_OPERATION"
	KindRateLimit      Kind = "RATE_LIMIT"
	KindInternal       Kind = "INTERNAL"
)

// AppError is a structured error that maps to HTTP responses.
// Details carries passthrough data from the underlying network failure
// (e.g. Horizon problem detail and result codes) and is exposed to the client.
type AppError struct {
	Kind       Kind        `json:"kind"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // wrapped internal error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches passthrough details and returns the error.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(kind Kind, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError. Passthrough details are
// lifted from the wrapped chain when any layer provides them.
func Wrap(kind Kind, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
		Details:    DetailsOf(err),
		Err:        err,
	}
}

// Detailer is implemented by errors that carry passthrough details from an
// underlying network failure.
type Detailer interface {
	ErrorDetails() interface{}
}

// DetailsOf extracts details from any layer of the error chain.
func DetailsOf(err error) interface{} {
	var d Detailer
	if errors.As(err, &d) {
		return d.ErrorDetails()
	}
	return nil
}

// Validation reports malformed caller input (receiver count, amounts, secrets).
func Validation(message string) *AppError {
	return New(KindValidation, message, http.StatusBadRequest)
}

// Funding reports a failed faucet funding attempt for a named identity.
func Funding(identity string, err error) *AppError {
	return Wrap(KindFunding, fmt.Sprintf("funding failed for %s", identity), http.StatusBadGateway, err)
}

// Trustline reports a failed trust-establishing submission for an account.
func Trustline(account string, err error) *AppError {
	return Wrap(KindTrustline, fmt.Sprintf("trustline submission failed for %s", account), http.StatusBadGateway, err)
}

// Payment reports a failed payment submission to a destination.
func Payment(destination string, err error) *AppError {
	return Wrap(KindPayment, fmt.Sprintf("payment submission failed for %s", destination), http.StatusBadGateway, err)
}

// BalanceQuery reports a failed account balance lookup.
func BalanceQuery(publicKey string, err error) *AppError {
	return Wrap(KindBalanceQuery, fmt.Sprintf("balance query failed for %s", publicKey), http.StatusBadGateway, err)
}

// AssetOperation reports a failed mint, deposit or withdraw submission.
func AssetOperation(message string, err error) *AppError {
	return Wrap(KindAssetOperation, message, http.StatusBadGateway, err)
}

// RateLimitExceeded reports a throttled request.
func RateLimitExceeded() *AppError {
	return New(KindRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// Internal wraps an unexpected error.
func Internal(err error) *AppError {
	return Wrap(KindInternal, "Internal server error", http.StatusInternalServerError, err)
}
