package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * coreport.Millisecond

// gormLogBridge routes GORM's internal logging through the core logger so
// query traces share the same sink and format as application logs.
type gormLogBridge struct {
	log           coreport.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLoggerWithTimeProvider builds a GORM logger backed by the core
// logger. The level string accepts silent, error, warn or info; anything else
// falls back to info.
func NewDatabaseLoggerWithTimeProvider(log coreport.Logger, timeProvider coreport.TimeProvider, level string) gormlogger.Interface {
	return &gormLogBridge{
		log:           log,
		level:         parseGormLevel(level),
		slowThreshold: defaultSlowThreshold.Std(),
		timeProvider:  timeProvider,
	}
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

// LogMode returns a copy of the bridge at the given level.
func (b *gormLogBridge) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *b
	clone.level = level
	return &clone
}

func (b *gormLogBridge) Info(_ context.Context, msg string, _ ...interface{}) {
	if b.level >= gormlogger.Info {
		b.log.Info(msg, map[string]any{"source": "database"})
	}
}

func (b *gormLogBridge) Warn(_ context.Context, msg string, _ ...interface{}) {
	if b.level >= gormlogger.Warn {
		b.log.Warn(msg, map[string]any{"source": "database"})
	}
}

func (b *gormLogBridge) Error(_ context.Context, msg string, _ ...interface{}) {
	if b.level >= gormlogger.Error {
		b.log.Error(msg, map[string]any{"source": "database"})
	}
}

// Trace logs completed SQL statements. Failed statements log at error level,
// statements exceeding the slow threshold at warn, and everything else at
// debug to keep steady-state logs quiet. Record-not-found is not treated as
// an error since lookups of unknown accounts and sessions are routine.
func (b *gormLogBridge) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if b.level <= gormlogger.Silent {
		return
	}

	elapsed := b.elapsedSince(begin)
	sql, rows := fc()

	fields := map[string]any{
		"source":  "database",
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
	}
	if kind := statementKind(sql); kind != "" {
		fields["type"] = kind
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		if b.level >= gormlogger.Error {
			fields["error"] = err.Error()
			b.log.Error("SQL Error", fields)
		}
	case b.slowThreshold > 0 && elapsed > b.slowThreshold:
		b.log.Warn("Slow SQL Query", fields)
	case b.level >= gormlogger.Info:
		b.log.Debug("SQL Query", fields)
	}
}

func (b *gormLogBridge) elapsedSince(begin time.Time) time.Duration {
	if b.timeProvider != nil {
		return b.timeProvider.Since(begin).Std()
	}
	return time.Since(begin)
}

// statementKind reports the leading SQL verb of a statement, or an empty
// string when it is not one of the four common DML verbs.
func statementKind(sql string) string {
	verb := strings.ToUpper(strings.TrimSpace(sql))
	for _, kind := range [...]string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(verb, kind) {
			return kind
		}
	}
	return ""
}
