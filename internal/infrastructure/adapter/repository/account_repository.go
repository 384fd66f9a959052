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

// getOperationType returns "credit" for positive or zero deltas and "debit" for negative deltas
func getOperationType(deltaInCents int64) string {
	if deltaInCents >= 0 {
		return "credit"
	}
	return "debit"
}

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(
		accountModel.Document,
		accountModel.Names,
		accountModel.Email,
		accountModel.PhoneNumber,
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to create account entity", map[string]any{
			"account_id": accountModel.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create account entity: %s", errs.ErrInternalServer, err.Error())
	}

	// Set additional properties
	account.ID = accountModel.ID
	account.SetBalance(accountModel.BalanceInCents, r.timeProvider)
	account.CreatedAt = accountModel.CreatedAt
	account.UpdatedAt = accountModel.UpdatedAt

	return account, nil
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, document string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"document": document,
		"error":    err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"document": document,
		})
		return errs.ErrAccountNotFound
	}

	if isDuplicateKeyError(err) {
		r.logger.Warn("Duplicate account operation", map[string]any{
			"document": document,
		})
		return errs.ErrDuplicateIdentity
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// FindByDocumentAndPhone retrieves the account matching both identifiers
func (r *AccountRepository) FindByDocumentAndPhone(ctx context.Context, document, phoneNumber string) (*entity.Account, error) {
	r.logger.Debug("Finding account", map[string]any{
		"document": document,
	})

	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Where("document = ? AND phone_number = ?", document, phoneNumber).
		First(&accountModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("finding account", result.Error, document)
	}

	account, err := r.modelToEntity(&accountModel)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Account retrieved successfully", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})

	return account, nil
}

// Create persists a new account with a zero balance
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating new account", map[string]any{
		"document": account.Document,
	})

	accountModel := model.Account{
		Document:       account.Document,
		Names:          account.Names,
		Email:          account.Email,
		PhoneNumber:    account.PhoneNumber,
		BalanceInCents: account.Balance(),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.Document)
	}

	account.ID = accountModel.ID

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": account.ID,
		"document":   account.Document,
	})
	return nil
}

// ApplyBalanceDelta atomically adds the signed amount to the account balance.
// The row is read under SELECT ... FOR UPDATE so concurrent mutations of the
// same account serialize, and the write itself is a relative update guarded
// on the balance staying non-negative. A debit that would drive the balance
// negative fails; the balance is never clamped.
func (r *AccountRepository) ApplyBalanceDelta(ctx context.Context, accountID uint64, deltaInCents int64) (*entity.Account, error) {
	r.logger.Debug("Applying balance delta", map[string]any{
		"account_id":     accountID,
		"delta":          entity.CentsToString(deltaInCents),
		"operation_type": getOperationType(deltaInCents),
	})

	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&accountModel, accountID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Account not found during balance update", map[string]any{
				"account_id": accountID,
			})
			return nil, errs.ErrAccountNotFound
		}
		r.logger.Error("Database error when locking account", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	insufficient := func() error {
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"account_id":       accountID,
			"current_balance":  entity.CentsToString(accountModel.BalanceInCents),
			"requested_change": entity.CentsToString(deltaInCents),
		})
		return errs.NewInsufficientFundsError(
			accountModel.Document,
			entity.CentsToString(-deltaInCents),
			entity.CentsToString(accountModel.BalanceInCents),
		)
	}

	if accountModel.BalanceInCents+deltaInCents < 0 {
		return nil, insufficient()
	}

	accountModel.UpdatedAt = r.timeProvider.Now()

	// Relative guarded write: the store rejects a would-be-negative balance
	// even if the locked read above were ever bypassed.
	result = r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND balance_in_cents + ? >= 0", accountID, deltaInCents).
		Updates(map[string]interface{}{
			"balance_in_cents": gorm.Expr("balance_in_cents + ?", deltaInCents),
			"updated_at":       accountModel.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update account balance", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return nil, insufficient()
	}

	accountModel.BalanceInCents += deltaInCents

	account, err := r.modelToEntity(&accountModel)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Balance updated successfully", map[string]any{
		"account_id":     accountID,
		"delta":          entity.CentsToString(deltaInCents),
		"new_balance":    account.GetBalance(),
		"operation_type": getOperationType(deltaInCents),
	})

	return account, nil
}
