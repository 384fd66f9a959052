package wallet

import (
	"context"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// RegisterAccountRequest carries the identity of a new wallet holder
type RegisterAccountRequest struct {
	Document    string
	Names       string
	Email       string
	PhoneNumber string
}

// RegisterAccount creates a wallet holder with a zero balance. The document
// and email are unique across the store; a collision on either is reported as
// a validation failure, never an internal error.
func (s *Service) RegisterAccount(ctx context.Context, req RegisterAccountRequest) *Result {
	if r := requireParams(
		"documento", req.Document,
		"nombres", req.Names,
		"email", req.Email,
		"celular", req.PhoneNumber,
	); r != nil {
		return r
	}

	account, err := entity.NewAccount(req.Document, req.Names, req.Email, req.PhoneNumber, s.timeProvider)
	if err != nil {
		return fail(err, msgInvalidIdentity)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return s.internalFailure("registroCliente", err, nil)
	}

	if err := s.uow.GetAccountRepository(txCtx).Create(txCtx, account); err != nil {
		s.rollback(txCtx, "registroCliente")
		if errs.IsDuplicateIdentityError(err) {
			s.logger.Warn("Duplicate account registration rejected", map[string]any{
				"document": req.Document,
			})
			return fail(err, msgDuplicate)
		}
		return s.internalFailure("registroCliente", err, map[string]any{
			"document": req.Document,
		})
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.internalFailure("registroCliente", err, map[string]any{
			"document": req.Document,
		})
	}

	s.logger.Info("Account registered", map[string]any{
		"account_id": account.ID,
		"document":   account.Document,
	})

	return ok(msgRegistered, map[string]any{
		"cliente_id": account.ID,
	})
}
