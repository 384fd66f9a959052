package wallet

import (
	"context"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// CheckBalanceRequest identifies the account whose balance is queried
type CheckBalanceRequest struct {
	Document    string
	PhoneNumber string
}

// CheckBalance returns the current balance of the account matching both
// identifiers. Pending payments do not reduce the reported balance; only
// the confirmation-time debit does.
func (s *Service) CheckBalance(ctx context.Context, req CheckBalanceRequest) *Result {
	if r := requireParams(
		"documento", req.Document,
		"celular", req.PhoneNumber,
	); r != nil {
		return r
	}

	account, err := s.uow.GetAccountRepository(ctx).FindByDocumentAndPhone(ctx, req.Document, req.PhoneNumber)
	if err != nil {
		if errs.IsAccountNotFoundError(err) {
			return fail(err, msgAccountNotFound)
		}
		return s.internalFailure("consultarSaldo", err, map[string]any{
			"document": req.Document,
		})
	}

	s.logger.Debug("Balance queried", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})

	return ok(msgBalance, map[string]any{
		"saldo": account.GetBalance(),
	})
}
