package wallet

import (
	"context"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

// InitiatePaymentRequest carries the first phase of a two-phase payment
type InitiatePaymentRequest struct {
	Document    string
	PhoneNumber string
	Amount      string
}

// InitiatePayment opens a payment session. It checks that the current balance
// covers the amount, generates a confirmation token and session id, persists
// the payment as PENDING without touching the balance, and delivers the token
// out of band. The balance check here is advisory; the authoritative
// sufficiency gate runs again at confirmation time.
func (s *Service) InitiatePayment(ctx context.Context, req InitiatePaymentRequest) *Result {
	if r := requireParams(
		"documento", req.Document,
		"celular", req.PhoneNumber,
		"monto", req.Amount,
	); r != nil {
		return r
	}

	amountInCents, err := entity.ValidatePositiveAmount(req.Amount)
	if err != nil {
		return fail(err, msgInvalidAmount)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return s.internalFailure("pagar", err, nil)
	}

	account, err := s.uow.GetAccountRepository(txCtx).FindByDocumentAndPhone(txCtx, req.Document, req.PhoneNumber)
	if err != nil {
		s.rollback(txCtx, "pagar")
		if errs.IsAccountNotFoundError(err) {
			return fail(err, msgAccountNotFound)
		}
		return s.internalFailure("pagar", err, map[string]any{
			"document": req.Document,
		})
	}

	if !account.CanDebit(amountInCents) {
		s.rollback(txCtx, "pagar")
		s.logger.Warn("Payment rejected for insufficient funds", map[string]any{
			"account_id": account.ID,
			"amount":     req.Amount,
			"balance":    account.GetBalance(),
		})
		return fail(
			errs.NewInsufficientFundsError(req.Document, req.Amount, account.GetBalance()),
			msgInsufficient,
		)
	}

	token, err := s.tokens.GenerateToken()
	if err != nil {
		s.rollback(txCtx, "pagar")
		return s.internalFailure("pagar", err, map[string]any{
			"account_id": account.ID,
		})
	}
	sessionID := s.tokens.GenerateSessionID()

	payment, err := entity.NewPendingPayment(account.ID, amountInCents, sessionID, token, s.timeProvider)
	if err != nil {
		s.rollback(txCtx, "pagar")
		return fail(err, msgInvalidAmount)
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, payment); err != nil {
		s.rollback(txCtx, "pagar")
		return s.internalFailure("pagar", err, map[string]any{
			"account_id": account.ID,
			"session_id": sessionID,
		})
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.internalFailure("pagar", err, map[string]any{
			"account_id": account.ID,
			"session_id": sessionID,
		})
	}

	s.logger.Info("Payment session opened", map[string]any{
		"account_id": account.ID,
		"session_id": sessionID,
		"amount":     payment.Amount,
		"expires_at": payment.TokenExpiresAt,
	})

	// Best effort: the payment is already persisted, so a delivery failure
	// must not fail the operation. The token is also echoed in the response.
	if err := s.notifier.Send(ctx, coreport.TokenNotification{
		Names:  account.Names,
		Email:  account.Email,
		Token:  token,
		Amount: payment.Amount,
	}); err != nil {
		s.logger.Error("Failed to deliver payment token", map[string]any{
			"session_id": sessionID,
			"email":      account.Email,
			"error":      err.Error(),
		})
	}

	return ok(msgTokenSent, map[string]any{
		"session_id": sessionID,
		"token":      token,
		"mensaje":    "Token simulado: " + token,
	})
}
