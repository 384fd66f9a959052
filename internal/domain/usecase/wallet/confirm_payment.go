package wallet

import (
	"context"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// ConfirmPaymentRequest carries the second phase of a two-phase payment
type ConfirmPaymentRequest struct {
	SessionID string
	Token     string
}

// ConfirmPayment settles a pending payment. The pending row is locked for the
// whole confirmation, so two concurrent confirms of the same session serialize
// and the loser observes a terminal status. Outcomes:
//   - unknown or already settled session: not found, nothing changes
//   - expired token: the payment transitions to FAILED and that transition commits
//   - wrong token: the payment stays PENDING and can be retried within the window
//   - matching token: the debit and the COMPLETED transition commit atomically;
//     if the balance no longer covers the amount the payment stays PENDING
func (s *Service) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) *Result {
	if r := requireParams(
		"session_id", req.SessionID,
		"token", req.Token,
	); r != nil {
		return r
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return s.internalFailure("confirmarPago", err, nil)
	}

	ledger := s.uow.GetTransactionRepository(txCtx)

	payment, err := ledger.FindPendingBySession(txCtx, req.SessionID)
	if err != nil {
		s.rollback(txCtx, "confirmarPago")
		if errs.IsInvalidSessionError(err) {
			s.logger.Warn("Confirmation for unknown or settled session", map[string]any{
				"session_id": req.SessionID,
			})
			return fail(err, msgInvalidSession)
		}
		return s.internalFailure("confirmarPago", err, map[string]any{
			"session_id": req.SessionID,
		})
	}

	if payment.IsExpired(s.timeProvider.Now()) {
		if err := ledger.TransitionStatus(txCtx, payment, entity.StatusFailed); err != nil {
			s.rollback(txCtx, "confirmarPago")
			return s.internalFailure("confirmarPago", err, map[string]any{
				"session_id": req.SessionID,
			})
		}
		if err := s.uow.Commit(txCtx); err != nil {
			return s.internalFailure("confirmarPago", err, map[string]any{
				"session_id": req.SessionID,
			})
		}
		s.logger.Warn("Payment token expired", map[string]any{
			"session_id": req.SessionID,
			"expired_at": payment.TokenExpiresAt,
		})
		return fail(errs.ErrTokenExpired, msgTokenExpired)
	}

	if !payment.TokenMatches(req.Token) {
		s.rollback(txCtx, "confirmarPago")
		s.logger.Warn("Payment token mismatch", map[string]any{
			"session_id": req.SessionID,
		})
		return fail(errs.ErrInvalidToken, msgInvalidToken)
	}

	account, err := s.uow.GetAccountRepository(txCtx).ApplyBalanceDelta(txCtx, payment.AccountID, -payment.AmountInCents)
	if err != nil {
		s.rollback(txCtx, "confirmarPago")
		if errs.IsInsufficientFundsError(err) {
			s.logger.Warn("Confirmation rejected for insufficient funds", map[string]any{
				"session_id": req.SessionID,
				"account_id": payment.AccountID,
				"amount":     payment.Amount,
			})
			return fail(err, msgInsufficient)
		}
		return s.internalFailure("confirmarPago", err, map[string]any{
			"session_id": req.SessionID,
			"account_id": payment.AccountID,
		})
	}

	if err := ledger.TransitionStatus(txCtx, payment, entity.StatusCompleted); err != nil {
		s.rollback(txCtx, "confirmarPago")
		return s.internalFailure("confirmarPago", err, map[string]any{
			"session_id": req.SessionID,
		})
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.internalFailure("confirmarPago", err, map[string]any{
			"session_id": req.SessionID,
		})
	}

	s.logger.Info("Payment confirmed", map[string]any{
		"session_id":  req.SessionID,
		"account_id":  payment.AccountID,
		"amount":      payment.Amount,
		"new_balance": account.GetBalance(),
	})

	return ok(msgConfirmed, map[string]any{
		"nuevo_saldo":  account.GetBalance(),
		"monto_pagado": payment.Amount,
	})
}
