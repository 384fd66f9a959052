package time

import (
	"context"
	"time"

	"github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

// SystemTimeProvider implements TimeProvider on the system clock. All
// timestamps are UTC so ledger rows and token expiries compare consistently
// regardless of where the service runs.
type SystemTimeProvider struct{}

// NewRealTimeProvider creates a system-clock time provider
func NewRealTimeProvider() core.TimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current UTC time
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *SystemTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Until returns the duration until t
func (p *SystemTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(time.Until(t))
}

// Sleep pauses the current goroutine for the given duration
func (p *SystemTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context canceled after the given timeout
func (p *SystemTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// ParseDuration parses a duration string
func (p *SystemTimeProvider) ParseDuration(s string) (core.Duration, error) {
	d, err := time.ParseDuration(s)
	return core.Duration(d), err
}
