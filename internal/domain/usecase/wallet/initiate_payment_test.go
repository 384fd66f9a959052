package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitiatePayment(t *testing.T) {
	validRequest := InitiatePaymentRequest{
		Document:    "1098765432",
		PhoneNumber: "3201234567",
		Amount:      "5000",
	}

	t.Run("Successful payment initiation", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 5000000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, "1098765432", "3201234567").
			Return(account, nil).Once()
		m.tokens.EXPECT().GenerateToken().Return("123456", nil).Once()
		m.tokens.EXPECT().GenerateSessionID().Return("pay_abc123").Once()
		m.ledger.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
				return tx.Type == entity.TypePay &&
					tx.Status == entity.StatusPending &&
					tx.AmountInCents == 500000 &&
					tx.SessionID == "pay_abc123" &&
					tx.Token == "123456" &&
					tx.TokenExpiresAt != nil &&
					tx.TokenExpiresAt.Equal(fixedTime.Add(entity.TokenValidity))
			})).
			Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().
			Send(mock.Anything, coreport.TokenNotification{
				Names:  "Carolina Duarte",
				Email:  "carolina@example.com",
				Token:  "123456",
				Amount: "5000.00",
			}).
			Return(nil).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, errs.CodeSuccess, result.Code)
		assert.Equal(t, msgTokenSent, result.Message)
		assert.Equal(t, "pay_abc123", result.Data["session_id"])
		assert.Equal(t, "123456", result.Data["token"])
		assert.Equal(t, "Token simulado: 123456", result.Data["mensaje"])
	})

	t.Run("Balance is not debited at initiation", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 5000000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()
		m.tokens.EXPECT().GenerateToken().Return("123456", nil).Once()
		m.tokens.EXPECT().GenerateSessionID().Return("pay_abc123").Once()
		m.ledger.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		require.True(t, result.Success)
		// ApplyBalanceDelta was never expected: only confirmation debits
		assert.Equal(t, int64(5000000), account.Balance())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 100)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeBusinessRule, result.Code)
		assert.Equal(t, msgInsufficient, result.Message)
	})

	t.Run("Exact balance is sufficient", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 500000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()
		m.tokens.EXPECT().GenerateToken().Return("654321", nil).Once()
		m.tokens.EXPECT().GenerateSessionID().Return("pay_exact").Once()
		m.ledger.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		assert.True(t, result.Success)
	})

	t.Run("Account not found", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrAccountNotFound).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		assert.Equal(t, errs.CodeNotFound, result.Code)
		assert.Equal(t, msgAccountNotFound, result.Message)
	})

	t.Run("Missing parameters", func(t *testing.T) {
		service, _ := newTestService(t)

		result := service.InitiatePayment(context.Background(), InitiatePaymentRequest{
			Document: "1098765432",
		})

		assert.Equal(t, errs.CodeMissingParameters, result.Code)
	})

	t.Run("Notifier failure does not fail the operation", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 5000000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()
		m.tokens.EXPECT().GenerateToken().Return("123456", nil).Once()
		m.tokens.EXPECT().GenerateSessionID().Return("pay_abc123").Once()
		m.ledger.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().
			Send(mock.Anything, mock.Anything).
			Return(errors.New("webhook unreachable")).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, "pay_abc123", result.Data["session_id"])
	})

	t.Run("Token generation failure rolls back", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 5000000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()
		m.tokens.EXPECT().GenerateToken().Return("", errors.New("entropy exhausted")).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.InitiatePayment(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInternal, result.Code)
	})
}
