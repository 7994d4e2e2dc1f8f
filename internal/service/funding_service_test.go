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

type fundingTestDeps struct {
	svc    *FundingServiceImpl
	ledger *mocks.MockLedgerClient
	ctrl   *gomock.Controller
}

func setupFundingService(t *testing.T) *fundingTestDeps {
	ctrl := gomock.NewController(t)
	d := &fundingTestDeps{
		ledger: mocks.NewMockLedgerClient(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewFundingService(d.ledger, zerolog.Nop())
	return d
}

func testIdentities() []domain.Identity {
	return []domain.Identity{
		{Role: domain.RoleIssuer, PublicKey: "GISSUER", SecretKey: "SISSUER"},
		{ID: "Receiver 1", Role: domain.RoleReceiver, PublicKey: "GRECV1", SecretKey: "SRECV1"},
		{ID: "Receiver 2", Role: domain.RoleReceiver, PublicKey: "GRECV2", SecretKey: "SRECV2"},
	}
}

func TestFundingService_FundAll_FundsNewAccounts(t *testing.T) {
	d := setupFundingService(t)
	defer d.ctrl.Finish()

	identities := testIdentities()
	for _, id := range identities {
		d.ledger.EXPECT().LoadAccount(gomock.Any(), id.PublicKey).Return(nil, nil)
		d.ledger.EXPECT().Fund(gomock.Any(), id.PublicKey).Return(nil)
	}

	require.NoError(t, d.svc.FundAll(context.Background(), identities))
}

func TestFundingService_FundAll_SkipsExistingAccounts(t *testing.T) {
	d := setupFundingService(t)
	defer d.ctrl.Finish()

	identities := testIdentities()

	// The issuer already exists, only the receivers need funding.
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GISSUER").Return(&domain.AccountState{Sequence: 1}, nil)
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(nil, nil)
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV2").Return(nil, nil)
	d.ledger.EXPECT().Fund(gomock.Any(), "GRECV1").Return(nil)
	d.ledger.EXPECT().Fund(gomock.Any(), "GRECV2").Return(nil)

	require.NoError(t, d.svc.FundAll(context.Background(), identities))
}

func TestFundingService_FundAll_FailureNamesIdentity(t *testing.T) {
	d := setupFundingService(t)
	defer d.ctrl.Finish()

	identities := testIdentities()

	// Sibling calls race the failure, so their counts are unconstrained.
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GISSUER").Return(nil, nil).AnyTimes()
	d.ledger.EXPECT().Fund(gomock.Any(), "GISSUER").Return(nil).AnyTimes()
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV1").Return(nil, nil).AnyTimes()
	d.ledger.EXPECT().Fund(gomock.Any(), "GRECV1").Return(nil).AnyTimes()
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GRECV2").Return(nil, nil)
	d.ledger.EXPECT().Fund(gomock.Any(), "GRECV2").Return(assert.AnError)

	err := d.svc.FundAll(context.Background(), identities)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindFunding, appErr.Kind)
	assert.Contains(t, appErr.Message, "Receiver 2", "the failure names the identity, not the raw key")
}

func TestFundingService_FundAll_LoadFailure(t *testing.T) {
	d := setupFundingService(t)
	defer d.ctrl.Finish()

	identities := testIdentities()[:1]
	d.ledger.EXPECT().LoadAccount(gomock.Any(), "GISSUER").Return(nil, assert.AnError)

	err := d.svc.FundAll(context.Background(), identities)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindFunding, appErr.Kind)
}
