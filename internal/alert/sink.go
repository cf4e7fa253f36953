// Package alert publishes detection alerts.
package alert

import (
	"context"
	"errors"

	"wordwatch/internal/models"
)

// Sink publishes an alert somewhere humans will see it.
type Sink interface {
	Notify(ctx context.Context, alert *models.Alert) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, alert *models.Alert) error

// Notify calls f(ctx, alert).
func (f SinkFunc) Notify(ctx context.Context, alert *models.Alert) error {
	return f(ctx, alert)
}

// Multi fans an alert out to several sinks. Every sink is tried; failures are
// joined.
type Multi []Sink

// Notify delivers the alert to every sink.
func (m Multi) Notify(ctx context.Context, alert *models.Alert) error {
	var errs []error
	for _, s := range m {
		if err := s.Notify(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
