package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		AccountID:      transaction.AccountID,
		Type:           string(transaction.Type),
		Amount:         transaction.Amount,
		AmountInCents:  transaction.AmountInCents,
		SessionID:      transaction.SessionID,
		Token:          transaction.Token,
		TokenExpiresAt: transaction.TokenExpiresAt,
		Status:         string(transaction.Status),
		CreatedAt:      transaction.CreatedAt,
		ProcessedAt:    transaction.ProcessedAt,
	}
}

// modelToEntity converts a transaction model back to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:             transactionModel.ID,
		AccountID:      transactionModel.AccountID,
		Type:           entity.TransactionType(transactionModel.Type),
		Amount:         transactionModel.Amount,
		AmountInCents:  transactionModel.AmountInCents,
		SessionID:      transactionModel.SessionID,
		Token:          transactionModel.Token,
		TokenExpiresAt: transactionModel.TokenExpiresAt,
		Status:         entity.TransactionStatus(transactionModel.Status),
		CreatedAt:      transactionModel.CreatedAt,
		ProcessedAt:    transactionModel.ProcessedAt,
	}
}

// Create saves a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating ledger entry", map[string]any{
		"account_id": transaction.AccountID,
		"type":       transaction.Type,
		"session_id": transaction.SessionID,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate payment session detected", map[string]any{
				"session_id": transaction.SessionID,
				"account_id": transaction.AccountID,
			})
			return errs.ErrDuplicateSession
		}

		r.logger.Error("Failed to create ledger entry", map[string]any{
			"account_id": transaction.AccountID,
			"session_id": transaction.SessionID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Ledger entry created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"account_id":     transaction.AccountID,
		"type":           transaction.Type,
	})
	return nil
}

// FindPendingBySession retrieves the PENDING payment for the given session id.
// The row is locked so concurrent confirmations of the same session serialize;
// a session whose payment already settled is reported as an invalid session.
func (r *TransactionRepository) FindPendingBySession(ctx context.Context, sessionID string) (*entity.Transaction, error) {
	r.logger.Debug("Finding pending payment by session", map[string]any{
		"session_id": sessionID,
	})

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ? AND status = ?", sessionID, string(entity.StatusPending)).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("No pending payment for session", map[string]any{
				"session_id": sessionID,
			})
			return nil, errs.ErrInvalidSession
		}
		r.logger.Error("Database error when locking payment", map[string]any{
			"session_id": sessionID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// TransitionStatus performs the one-shot status write of a payment. The update
// is guarded on the stored status still being PENDING, so a transition can
// never apply twice even if two confirmations race past the row lock.
func (r *TransactionRepository) TransitionStatus(ctx context.Context, transaction *entity.Transaction, newStatus entity.TransactionStatus) error {
	r.logger.Debug("Transitioning payment status", map[string]any{
		"transaction_id": transaction.ID,
		"session_id":     transaction.SessionID,
		"new_status":     newStatus,
	})

	var err error
	switch newStatus {
	case entity.StatusCompleted:
		err = transaction.MarkCompleted(r.timeProvider)
	case entity.StatusFailed:
		err = transaction.MarkFailed(r.timeProvider)
	case entity.StatusCancelled:
		err = transaction.MarkCancelled(r.timeProvider)
	default:
		err = fmt.Errorf("%w: unsupported target status %s", errs.ErrInvalidRequest, newStatus)
	}
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", transaction.ID, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":       string(transaction.Status),
			"processed_at": transaction.ProcessedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to transition payment status", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Payment already left PENDING", map[string]any{
			"transaction_id": transaction.ID,
			"session_id":     transaction.SessionID,
		})
		return errs.ErrTransactionNotPending
	}

	r.logger.Info("Payment status transitioned", map[string]any{
		"transaction_id": transaction.ID,
		"session_id":     transaction.SessionID,
		"status":         transaction.Status,
	})
	return nil
}
