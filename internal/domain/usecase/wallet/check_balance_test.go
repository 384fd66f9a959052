package wallet

import (
	"context"
	"testing"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckBalance(t *testing.T) {
	validRequest := CheckBalanceRequest{
		Document:    "1098765432",
		PhoneNumber: "3201234567",
	}

	t.Run("Successful query", func(t *testing.T) {
		service, m := newTestService(t)
		m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Once()

		account := storedAccount(t, m, 1, 4500000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, "1098765432", "3201234567").
			Return(account, nil).Once()

		result := service.CheckBalance(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, errs.CodeSuccess, result.Code)
		assert.Equal(t, msgBalance, result.Message)
		assert.Equal(t, "45000.00", result.Data["saldo"])
	})

	t.Run("Zero balance reads as 0.00", func(t *testing.T) {
		service, m := newTestService(t)
		m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Once()

		account := storedAccount(t, m, 1, 0)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()

		result := service.CheckBalance(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, "0.00", result.Data["saldo"])
	})

	t.Run("Account not found", func(t *testing.T) {
		service, m := newTestService(t)
		m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Once()

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrAccountNotFound).Once()

		result := service.CheckBalance(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeNotFound, result.Code)
		assert.Equal(t, msgAccountNotFound, result.Message)
	})

	t.Run("Missing parameters", func(t *testing.T) {
		service, _ := newTestService(t)

		result := service.CheckBalance(context.Background(), CheckBalanceRequest{Document: "1098765432"})
		assert.Equal(t, errs.CodeMissingParameters, result.Code)
		assert.Contains(t, result.Message, "celular")

		result = service.CheckBalance(context.Background(), CheckBalanceRequest{PhoneNumber: "3201234567"})
		assert.Equal(t, errs.CodeMissingParameters, result.Code)
		assert.Contains(t, result.Message, "documento")
	})

	t.Run("Store failure maps to internal error", func(t *testing.T) {
		service, m := newTestService(t)
		m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Once()

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrDatabaseConnection).Once()

		result := service.CheckBalance(context.Background(), validRequest)

		assert.Equal(t, errs.CodeInternal, result.Code)
		assert.Equal(t, msgInternal, result.Message)
	})
}
