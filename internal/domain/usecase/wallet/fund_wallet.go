package wallet

import (
	"context"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// FundWalletRequest carries a top-up order. The document and phone number must
// both match the same account.
type FundWalletRequest struct {
	Document    string
	PhoneNumber string
	Amount      string
}

// FundWallet credits the account balance and records a COMPLETED recharge in
// the ledger. The credit and the ledger entry commit atomically: a recharge
// without its ledger record never becomes visible.
func (s *Service) FundWallet(ctx context.Context, req FundWalletRequest) *Result {
	if r := requireParams(
		"documento", req.Document,
		"celular", req.PhoneNumber,
		"valor", req.Amount,
	); r != nil {
		return r
	}

	amountInCents, err := entity.ValidatePositiveAmount(req.Amount)
	if err != nil {
		return fail(err, msgInvalidAmount)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return s.internalFailure("recargarBilletera", err, nil)
	}

	accounts := s.uow.GetAccountRepository(txCtx)

	account, err := accounts.FindByDocumentAndPhone(txCtx, req.Document, req.PhoneNumber)
	if err != nil {
		s.rollback(txCtx, "recargarBilletera")
		if errs.IsAccountNotFoundError(err) {
			return fail(err, msgAccountNotFound)
		}
		return s.internalFailure("recargarBilletera", err, map[string]any{
			"document": req.Document,
		})
	}

	updated, err := accounts.ApplyBalanceDelta(txCtx, account.ID, amountInCents)
	if err != nil {
		s.rollback(txCtx, "recargarBilletera")
		return s.internalFailure("recargarBilletera", err, map[string]any{
			"account_id": account.ID,
			"amount":     req.Amount,
		})
	}

	recharge, err := entity.NewRecharge(account.ID, amountInCents, s.timeProvider)
	if err != nil {
		s.rollback(txCtx, "recargarBilletera")
		return fail(err, msgInvalidAmount)
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, recharge); err != nil {
		s.rollback(txCtx, "recargarBilletera")
		return s.internalFailure("recargarBilletera", err, map[string]any{
			"account_id": account.ID,
		})
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.internalFailure("recargarBilletera", err, map[string]any{
			"account_id": account.ID,
		})
	}

	s.logger.Info("Wallet funded", map[string]any{
		"account_id":  account.ID,
		"amount":      recharge.Amount,
		"new_balance": updated.GetBalance(),
	})

	return ok(msgRecharge, map[string]any{
		"nuevo_saldo": updated.GetBalance(),
	})
}
