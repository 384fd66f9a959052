package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coremocks "github.com/camilosanchez/virtual-wallet/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pendingPayment builds a PENDING payment created at the given instant, so its
// token expires at createdAt plus the validity window
func pendingPayment(t *testing.T, createdAt time.Time) *entity.Transaction {
	t.Helper()
	creationTime := coremocks.NewMockTimeProvider(t)
	creationTime.EXPECT().Now().Return(createdAt).Maybe()

	payment, err := entity.NewPendingPayment(1, 500000, "pay_abc123", "123456", creationTime)
	require.NoError(t, err)
	payment.ID = 10
	return payment
}

func TestConfirmPayment(t *testing.T) {
	validRequest := ConfirmPaymentRequest{
		SessionID: "pay_abc123",
		Token:     "123456",
	}

	t.Run("Successful confirmation debits and settles", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		payment := pendingPayment(t, fixedTime.Add(-time.Minute))
		updated := storedAccount(t, m, 1, 4500000)

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(payment, nil).Once()
		m.accounts.EXPECT().
			ApplyBalanceDelta(mock.Anything, uint64(1), int64(-500000)).
			Return(updated, nil).Once()
		m.ledger.EXPECT().
			TransitionStatus(mock.Anything, payment, entity.StatusCompleted).
			Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, errs.CodeSuccess, result.Code)
		assert.Equal(t, msgConfirmed, result.Message)
		assert.Equal(t, "45000.00", result.Data["nuevo_saldo"])
		assert.Equal(t, "5000.00", result.Data["monto_pagado"])
	})

	t.Run("Unknown session", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(nil, errs.ErrInvalidSession).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeNotFound, result.Code)
		assert.Equal(t, msgInvalidSession, result.Message)
	})

	t.Run("Settled session reads as unknown", func(t *testing.T) {
		// A second confirmation of an already completed payment: the ledger
		// only surfaces PENDING rows, so the lookup comes back empty.
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(nil, errs.NewSessionError("pay_abc123", "no pending transaction", errs.ErrInvalidSession)).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		assert.Equal(t, errs.CodeNotFound, result.Code)
		assert.Equal(t, msgInvalidSession, result.Message)
	})

	t.Run("Expired token fails the payment", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		payment := pendingPayment(t, fixedTime.Add(-entity.TokenValidity-time.Second))

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(payment, nil).Once()
		m.ledger.EXPECT().
			TransitionStatus(mock.Anything, payment, entity.StatusFailed).
			Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeBusinessRule, result.Code)
		assert.Equal(t, msgTokenExpired, result.Message)
	})

	t.Run("Token presented exactly at expiry fails", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		payment := pendingPayment(t, fixedTime.Add(-entity.TokenValidity))

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(payment, nil).Once()
		m.ledger.EXPECT().
			TransitionStatus(mock.Anything, payment, entity.StatusFailed).
			Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		assert.Equal(t, errs.CodeBusinessRule, result.Code)
	})

	t.Run("Wrong token leaves the payment pending", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		payment := pendingPayment(t, fixedTime.Add(-time.Minute))

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(payment, nil).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), ConfirmPaymentRequest{
			SessionID: "pay_abc123",
			Token:     "654321",
		})

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInvalidToken, result.Code)
		assert.Equal(t, msgInvalidToken, result.Message)
		// No TransitionStatus was expected: the row stays PENDING and the
		// confirmation can be retried within the validity window.
		assert.True(t, payment.IsPending())
	})

	t.Run("Insufficient funds at confirmation leaves the payment pending", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		payment := pendingPayment(t, fixedTime.Add(-time.Minute))

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(payment, nil).Once()
		m.accounts.EXPECT().
			ApplyBalanceDelta(mock.Anything, uint64(1), int64(-500000)).
			Return(nil, errs.NewInsufficientFundsError("1098765432", "5000.00", "100.00")).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeBusinessRule, result.Code)
		assert.Equal(t, msgInsufficient, result.Message)
		assert.True(t, payment.IsPending())
	})

	t.Run("Transition failure rolls the debit back", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		payment := pendingPayment(t, fixedTime.Add(-time.Minute))
		updated := storedAccount(t, m, 1, 4500000)

		m.ledger.EXPECT().
			FindPendingBySession(mock.Anything, "pay_abc123").
			Return(payment, nil).Once()
		m.accounts.EXPECT().
			ApplyBalanceDelta(mock.Anything, uint64(1), int64(-500000)).
			Return(updated, nil).Once()
		m.ledger.EXPECT().
			TransitionStatus(mock.Anything, payment, entity.StatusCompleted).
			Return(errs.ErrTransactionNotPending).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.ConfirmPayment(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInternal, result.Code)
	})

	t.Run("Missing parameters", func(t *testing.T) {
		service, _ := newTestService(t)

		result := service.ConfirmPayment(context.Background(), ConfirmPaymentRequest{Token: "123456"})
		assert.Equal(t, errs.CodeMissingParameters, result.Code)
		assert.Contains(t, result.Message, "session_id")

		result = service.ConfirmPayment(context.Background(), ConfirmPaymentRequest{SessionID: "pay_abc123"})
		assert.Equal(t, errs.CodeMissingParameters, result.Code)
		assert.Contains(t, result.Message, "token")
	})
}
