package service

import (
	"context"
	"testing"

	"stellar-payout/internal/core/domain"
	"stellar-payout/internal/core/ports/mocks"
	"stellar-payout/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type balanceTestDeps struct {
	svc    *BalanceServiceImpl
	ledger *mocks.MockLedgerClient
	ctrl   *gomock.Controller
}

func setupBalanceService(t *testing.T) *balanceTestDeps {
	ctrl := gomock.NewController(t)
	d := &balanceTestDeps{
		ledger: mocks.NewMockLedgerClient(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewBalanceService(d.ledger, "COIN", zerolog.Nop())
	return d
}

func coinState(amount string) *domain.AccountState {
	return &domain.AccountState{
		Balances: []domain.AssetBalance{
			{Amount: "9999.0000000"}, // native
			{Code: "COIN", Issuer: "GISSUER", Amount: amount},
		},
	}
}

func TestBalanceService_Aggregate_PreservesRequestOrder(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	keys := []string{"GISSUER", "GRECV1", "GRECV2"}
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GISSUER").Return(coinState("920.0000000"), nil)
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(coinState("50.0000000"), nil)
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV2").Return(coinState("30.0000000"), nil)

	records, err := d.svc.Aggregate(context.Background(), keys, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "GISSUER", records[0].PublicKey)
	assert.Equal(t, "920.0000000", records[0].Balance)
	assert.Equal(t, "GRECV1", records[1].PublicKey)
	assert.Equal(t, "50.0000000", records[1].Balance)
	assert.Equal(t, "GRECV2", records[2].PublicKey)
	assert.Equal(t, "30.0000000", records[2].Balance)
}

func TestBalanceService_Aggregate_DefaultCodeWhenEmpty(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(coinState("50.0000000"), nil)

	records, err := d.svc.Aggregate(context.Background(), []string{"GRECV1"}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"COIN": "50.0000000"}, records[0].Balances)
}

func TestBalanceService_Aggregate_ExplicitCodes(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	state := &domain.AccountState{
		Balances: []domain.AssetBalance{
			{Code: "COIN", Issuer: "GISSUER", Amount: "50.0000000"},
			{Code: "GOLD", Issuer: "GOTHER", Amount: "7.0000000"},
		},
	}
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(state, nil)

	records, err := d.svc.Aggregate(context.Background(), []string{"GRECV1"}, []string{"GOLD", "COIN", "SILVER"})
	require.NoError(t, err)

	assert.Equal(t, "7.0000000", records[0].Balance, "the first requested code is the headline balance")
	assert.Equal(t, map[string]string{
		"GOLD":   "7.0000000",
		"COIN":   "50.0000000",
		"SILVER": "0",
	}, records[0].Balances)
}

func TestBalanceService_Aggregate_MissingAccount(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(coinState("50.0000000"), nil).AnyTimes()
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GMISSING").Return(nil, nil)

	_, err := d.svc.Aggregate(context.Background(), []string{"GRECV1", "GMISSING"}, nil)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindBalanceQuery, appErr.Kind)
	assert.Contains(t, appErr.Message, "GMISSING")
}

func TestBalanceService_Aggregate_LoadFailure(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(nil, assert.AnError)

	_, err := d.svc.Aggregate(context.Background(), []string{"GRECV1"}, nil)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindBalanceQuery, appErr.Kind)
}
