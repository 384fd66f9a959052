package wallet

import (
	"context"
	"testing"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storedAccount builds an account the way the repository would return it
func storedAccount(t *testing.T, m *serviceMocks, id uint64, balanceInCents int64) *entity.Account {
	t.Helper()
	account, err := entity.NewAccount("1098765432", "Carolina Duarte", "carolina@example.com", "3201234567", m.timeProvider)
	require.NoError(t, err)
	account.ID = id
	account.SetBalance(balanceInCents, m.timeProvider)
	return account
}

func TestFundWallet(t *testing.T) {
	validRequest := FundWalletRequest{
		Document:    "1098765432",
		PhoneNumber: "3201234567",
		Amount:      "50000",
	}

	t.Run("Successful recharge", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 0)
		updated := storedAccount(t, m, 1, 5000000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, "1098765432", "3201234567").
			Return(account, nil).Once()
		m.accounts.EXPECT().
			ApplyBalanceDelta(mock.Anything, uint64(1), int64(5000000)).
			Return(updated, nil).Once()
		m.ledger.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
				return tx.Type == entity.TypeRecharge &&
					tx.AmountInCents == 5000000 &&
					tx.Status == entity.StatusCompleted
			})).
			Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result := service.FundWallet(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, errs.CodeSuccess, result.Code)
		assert.Equal(t, msgRecharge, result.Message)
		assert.Equal(t, "50000.00", result.Data["nuevo_saldo"])
	})

	t.Run("Missing parameters", func(t *testing.T) {
		service, _ := newTestService(t)

		result := service.FundWallet(context.Background(), FundWalletRequest{
			Document:    "1098765432",
			PhoneNumber: "3201234567",
		})

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeMissingParameters, result.Code)
		assert.Contains(t, result.Message, "valor")
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []string{"abc", "-100", "0", "1.234"}

		for _, amount := range testCases {
			t.Run(amount, func(t *testing.T) {
				service, _ := newTestService(t)

				result := service.FundWallet(context.Background(), FundWalletRequest{
					Document:    "1098765432",
					PhoneNumber: "3201234567",
					Amount:      amount,
				})

				assert.False(t, result.Success)
				assert.Equal(t, errs.CodeValidation, result.Code)
				assert.Equal(t, msgInvalidAmount, result.Message)
			})
		}
	})

	t.Run("Account not found", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, "1098765432", "3201234567").
			Return(nil, errs.ErrAccountNotFound).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.FundWallet(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeNotFound, result.Code)
		assert.Equal(t, msgAccountNotFound, result.Message)
	})

	t.Run("Phone mismatch is not found", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, "1098765432", "3000000000").
			Return(nil, errs.ErrAccountNotFound).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.FundWallet(context.Background(), FundWalletRequest{
			Document:    "1098765432",
			PhoneNumber: "3000000000",
			Amount:      "100",
		})

		assert.Equal(t, errs.CodeNotFound, result.Code)
	})

	t.Run("Ledger failure rolls back", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		account := storedAccount(t, m, 1, 0)
		updated := storedAccount(t, m, 1, 10000)

		m.accounts.EXPECT().
			FindByDocumentAndPhone(mock.Anything, mock.Anything, mock.Anything).
			Return(account, nil).Once()
		m.accounts.EXPECT().
			ApplyBalanceDelta(mock.Anything, uint64(1), int64(10000)).
			Return(updated, nil).Once()
		m.ledger.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.FundWallet(context.Background(), FundWalletRequest{
			Document:    "1098765432",
			PhoneNumber: "3201234567",
			Amount:      "100",
		})

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInternal, result.Code)
	})
}
