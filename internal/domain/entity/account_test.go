package entity

import (
	"testing"
	"time"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coremocks "github.com/camilosanchez/virtual-wallet/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates account with zero balance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount("1098765432", "Carolina Duarte", "carolina@example.com", "3201234567", mockTime)
		require.NoError(t, err)

		assert.Equal(t, "1098765432", account.Document)
		assert.Equal(t, "Carolina Duarte", account.Names)
		assert.Equal(t, "carolina@example.com", account.Email)
		assert.Equal(t, "3201234567", account.PhoneNumber)
		assert.Equal(t, int64(0), account.Balance())
		assert.Equal(t, "0.00", account.GetBalance())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Rejects empty document", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		_, err := NewAccount("", "Carolina Duarte", "carolina@example.com", "3201234567", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDocument)
	})
}

func TestAccountBalanceOperations(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newTestAccount := func(t *testing.T) (*Account, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount("1098765432", "Carolina Duarte", "carolina@example.com", "3201234567", mockTime)
		require.NoError(t, err)
		return account, mockTime
	}

	t.Run("Credit adds to the balance", func(t *testing.T) {
		account, mockTime := newTestAccount(t)

		account.Credit(5000000, mockTime)
		assert.Equal(t, int64(5000000), account.Balance())
		assert.Equal(t, "50000.00", account.GetBalance())

		account.Credit(150, mockTime)
		assert.Equal(t, int64(5000150), account.Balance())
	})

	t.Run("Debit subtracts from the balance", func(t *testing.T) {
		account, mockTime := newTestAccount(t)
		account.Credit(5000000, mockTime)

		err := account.Debit(500000, mockTime)
		require.NoError(t, err)
		assert.Equal(t, "45000.00", account.GetBalance())
	})

	t.Run("Debit rejects insufficient funds", func(t *testing.T) {
		account, mockTime := newTestAccount(t)
		account.Credit(100, mockTime)

		err := account.Debit(101, mockTime)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(100), account.Balance())
	})

	t.Run("Debit allows balance to reach exactly zero", func(t *testing.T) {
		account, mockTime := newTestAccount(t)
		account.Credit(100, mockTime)

		err := account.Debit(100, mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Balance())
	})

	t.Run("CanDebit reflects available balance", func(t *testing.T) {
		account, mockTime := newTestAccount(t)
		account.Credit(500, mockTime)

		assert.True(t, account.CanDebit(500))
		assert.True(t, account.CanDebit(1))
		assert.False(t, account.CanDebit(501))
	})

	t.Run("SetBalance overrides stored value", func(t *testing.T) {
		account, mockTime := newTestAccount(t)

		account.SetBalance(12345, mockTime)
		assert.Equal(t, int64(12345), account.Balance())
		assert.Equal(t, "123.45", account.GetBalance())
	})
}
