package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is recorded after a successful run; a database already
// at this version skips the schema work entirely.
const CurrentSchemaVersion = "1.0.0"

// MigrationManager applies the wallet schema and tracks which version a
// database is at.
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a migration manager using wall-clock time for
// version stamps.
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return NewMigrationManagerWithTimeProvider(db, logger, nil)
}

// NewMigrationManagerWithTimeProvider creates a migration manager that stamps
// applied versions using the given time provider.
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema up to CurrentSchemaVersion. It is a no-op when
// the recorded version already matches, so it is safe to run on every start.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// The version table must exist before the version check can run.
	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"migrate models", m.migrateModels},
		{"create indexes", m.createIndexes},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":  step.name,
				"error": err.Error(),
			})
			return err
		}
	}

	if err := m.recordVersion(context.Background(), CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"version": CurrentSchemaVersion,
			"error":   err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied schema version, or an
// empty string for a fresh database.
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var latest model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return latest.Version, nil
}

func (m *MigrationManager) recordVersion(ctx context.Context, version, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.now(),
		Details:   details,
	}).Error
}

func (m *MigrationManager) now() time.Time {
	if m.timeProvider != nil {
		return m.timeProvider.Now()
	}
	return time.Now().UTC()
}

func (m *MigrationManager) migrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)
	return m.db.AutoMigrate(
		&model.Account{},
		&model.Transaction{},
	)
}

func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	indexes := []string{
		// Session ids are unique among payments; recharges store an empty one.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_session_id ON transactions (session_id) WHERE session_id <> ''",
		// Account lookups always pair document with phone number.
		"CREATE INDEX IF NOT EXISTS idx_accounts_document_phone ON accounts (document, phone_number)",
		// Confirmation looks up a pending payment by session and status.
		"CREATE INDEX IF NOT EXISTS idx_transactions_session_status ON transactions (session_id, status)",
	}
	for _, stmt := range indexes {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
