package service

import (
	"context"
	"testing"
	"time"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports/mocks"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type trustlineTestDeps struct {
	svc    *TrustlineServiceImpl
	ledger *mocks.MockLedgerClient
	slept  []time.Duration
	ctrl   *gomock.Controller
}

func setupTrustlineService(t *testing.T) *trustlineTestDeps {
	ctrl := gomock.NewController(t)
	d := &trustlineTestDeps{
		ledger: mocks.NewMockLedgerClient(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewTrustlineService(d.ledger, 5*time.Second, zerolog.Nop())
	d.svc.sleep = func(dur time.Duration) { d.slept = append(d.slept, dur) }
	return d
}

var (
	testReceiver = domain.Identity{ID: "Receiver 1", Role: domain.RoleReceiver, PublicKey: "GRECV1", SecretKey: "SRECV1"}
	testAsset    = domain.Asset{Code: "COIN", Issuer: "GISSUER"}
)

func TestTrustlineService_EnsureTrust_SubmitsAndWaits(t *testing.T) {
	d := setupTrustlineService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().LoadAccount(ctx, "GRECV1").Return(&domain.AccountState{
		Balances: []domain.AssetBalance{{Amount: "10000.0000000"}}, // native only
	}, nil)
	d.ledger.EXPECT().SubmitTrust(ctx, "SRECV1", testAsset).Return(&domain.TxResult{Hash: "trusthash"}, nil)

	submitted, err := d.svc.EnsureTrust(ctx, testReceiver, testAsset)
	require.NoError(t, err)
	assert.True(t, submitted)
	assert.Equal(t, []time.Duration{5 * time.Second}, d.slept, "a new trustline waits for settlement")
}

func TestTrustlineService_EnsureTrust_AlreadyTrusted(t *testing.T) {
	d := setupTrustlineService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().LoadAccount(ctx, "GRECV1").Return(&domain.AccountState{
		Balances: []domain.AssetBalance{{Code: "COIN", Issuer: "GISSUER", Amount: "50.0000000"}},
	}, nil)

	submitted, err := d.svc.EnsureTrust(ctx, testReceiver, testAsset)
	require.NoError(t, err)
	assert.False(t, submitted, "an existing trustline submits nothing")
	assert.Empty(t, d.slept, "no settlement wait when nothing was submitted")
}

func TestTrustlineService_EnsureTrust_AbsentAccountStillSubmits(t *testing.T) {
	d := setupTrustlineService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().LoadAccount(ctx, "GRECV1").Return(nil, nil)
	d.ledger.EXPECT().SubmitTrust(ctx, "SRECV1", testAsset).Return(&domain.TxResult{Hash: "trusthash"}, nil)

	submitted, err := d.svc.EnsureTrust(ctx, testReceiver, testAsset)
	require.NoError(t, err)
	assert.True(t, submitted)
}

func TestTrustlineService_EnsureTrust_SubmitFailure(t *testing.T) {
	d := setupTrustlineService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().LoadAccount(ctx, "GRECV1").Return(nil, nil)
	d.ledger.EXPECT().SubmitTrust(ctx, "SRECV1", testAsset).Return(nil, assert.AnError)

	_, err := d.svc.EnsureTrust(ctx, testReceiver, testAsset)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindTrustline, appErr.Kind)
	assert.Contains(t, appErr.Message, "Receiver 1")
	assert.Empty(t, d.slept, "no settlement wait after a failed submission")
}

func TestTrustlineService_EnsureTrust_LoadFailure(t *testing.T) {
	d := setupTrustlineService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().LoadAccount(ctx, "GRECV1").Return(nil, assert.AnError)

	_, err := d.svc.EnsureTrust(ctx, testReceiver, testAsset)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindTrustline, appErr.Kind)
}
