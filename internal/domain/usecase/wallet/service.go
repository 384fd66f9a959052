package wallet

import (
	"context"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/camilosanchez/virtual-wallet/internal/domain/port/persistence"
)

// Service is the wallet transaction engine. It orchestrates the five wallet
// operations against the account store and the transaction ledger, holding no
// cross-request state of its own: every pending payment, token and expiry
// lives in the ledger.
type Service struct {
	uow          persistence.UnitOfWork
	tokens       coreport.TokenProvider
	notifier     coreport.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new wallet transaction engine
func NewService(
	uow persistence.UnitOfWork,
	tokens coreport.TokenProvider,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		tokens:       tokens,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// internalFailure logs the underlying cause and returns the generic internal
// error result. No internal detail leaks to the caller.
func (s *Service) internalFailure(operation string, err error, fields map[string]any) *Result {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation
	fields["error"] = err.Error()
	s.logger.Error("Wallet operation failed", fields)
	return fail(errs.ErrInternalServer, msgInternal)
}

// rollback aborts an in-flight unit of work, logging a rollback failure
// instead of masking the original error
func (s *Service) rollback(ctx context.Context, operation string) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to rollback unit of work", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
	}
}
