package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccount(t *testing.T) {
	validRequest := RegisterAccountRequest{
		Document:    "1098765432",
		Names:       "Carolina Duarte",
		Email:       "carolina@example.com",
		PhoneNumber: "3201234567",
	}

	t.Run("Successful registration", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.accounts.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
				return a.Document == "1098765432" && a.Balance() == 0
			})).
			Run(func(_ context.Context, a *entity.Account) {
				a.ID = 1
			}).
			Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result := service.RegisterAccount(context.Background(), validRequest)

		require.True(t, result.Success)
		assert.Equal(t, errs.CodeSuccess, result.Code)
		assert.Equal(t, msgRegistered, result.Message)
		assert.Equal(t, uint64(1), result.Data["cliente_id"])
	})

	t.Run("Missing parameters", func(t *testing.T) {
		testCases := []struct {
			name    string
			request RegisterAccountRequest
			missing string
		}{
			{"No document", RegisterAccountRequest{Names: "Ana", Email: "a@b.co", PhoneNumber: "300"}, "documento"},
			{"No names", RegisterAccountRequest{Document: "123", Email: "a@b.co", PhoneNumber: "300"}, "nombres"},
			{"No email", RegisterAccountRequest{Document: "123", Names: "Ana", PhoneNumber: "300"}, "email"},
			{"No phone", RegisterAccountRequest{Document: "123", Names: "Ana", Email: "a@b.co"}, "celular"},
			{"Blank document", RegisterAccountRequest{Document: "   ", Names: "Ana", Email: "a@b.co", PhoneNumber: "300"}, "documento"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				service, _ := newTestService(t)

				result := service.RegisterAccount(context.Background(), tc.request)

				assert.False(t, result.Success)
				assert.Equal(t, errs.CodeMissingParameters, result.Code)
				assert.Contains(t, result.Message, tc.missing)
			})
		}
	})

	t.Run("Duplicate document or email", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.accounts.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateIdentity).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.RegisterAccount(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeValidation, result.Code)
		assert.Equal(t, msgDuplicate, result.Message)
	})

	t.Run("Store failure maps to internal error", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectUnitOfWork()

		m.accounts.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(errors.New("connection reset")).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result := service.RegisterAccount(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInternal, result.Code)
		assert.Equal(t, msgInternal, result.Message)
	})

	t.Run("Begin failure maps to internal error", func(t *testing.T) {
		service, m := newTestService(t)
		m.uow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		result := service.RegisterAccount(context.Background(), validRequest)

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInternal, result.Code)
	})
}
