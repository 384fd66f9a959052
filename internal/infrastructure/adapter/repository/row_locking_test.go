package repository

import (
	"context"
	"testing"

	loggeradapter "github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/logger"
	timeadapter "github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newStatementRecorder opens a dry-run gorm session against the postgres
// dialector and records every generated query and update statement. Nothing
// touches a real database, so the tests inspect exactly the SQL the
// repositories would send.
func newStatementRecorder(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=wallet dbname=wallet_test sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	var statements []string
	record := func(tx *gorm.DB) {
		if sql := tx.Statement.SQL.String(); sql != "" {
			statements = append(statements, sql)
		}
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("record_sql", record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("record_sql", record))

	return db, &statements
}

func TestApplyBalanceDeltaEmitsRowLockAndGuardedWrite(t *testing.T) {
	db, statements := newStatementRecorder(t)
	repo := NewAccountRepository(db, timeadapter.NewRealTimeProvider(), loggeradapter.NewNoopLogger())

	// Dry-run statements affect no rows, so the returned error is irrelevant
	// here; the subject is the SQL the mutation emits.
	_, _ = repo.ApplyBalanceDelta(context.Background(), 7, 2500)

	require.Len(t, *statements, 2)

	read := (*statements)[0]
	assert.Contains(t, read, "FOR UPDATE", "account read must lock the row")

	write := (*statements)[1]
	assert.Contains(t, write, "balance_in_cents + ", "write must be relative, not absolute")
	assert.Contains(t, write, ">= 0", "write must be guarded against a negative balance")
}

func TestFindPendingBySessionEmitsRowLock(t *testing.T) {
	db, statements := newStatementRecorder(t)
	repo := NewTransactionRepository(db, timeadapter.NewRealTimeProvider(), loggeradapter.NewNoopLogger())

	_, err := repo.FindPendingBySession(context.Background(), "pay_3f1c2d")
	require.NoError(t, err)

	require.Len(t, *statements, 1)

	read := (*statements)[0]
	assert.Contains(t, read, "FOR UPDATE", "pending payment read must lock the row")
	assert.Contains(t, read, "session_id = ")
	assert.Contains(t, read, "status = ")
}
