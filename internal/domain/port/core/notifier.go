package core

import "context"

// TokenNotification carries the data needed to deliver a payment token to the holder
type TokenNotification struct {
	Names  string
	Email  string
	Token  string
	Amount string
}

// Notifier delivers payment tokens out of band. Delivery is best-effort: the
// engine invokes it after the payment is persisted and ignores the result.
type Notifier interface {
	Send(ctx context.Context, notification TokenNotification) error
}
