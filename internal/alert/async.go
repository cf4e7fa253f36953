package alert

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wordwatch/internal/models"
)

// Async delivers alerts in the background so message handling never waits on
// a slow sink. Failures are logged and reported to OnError.
type Async struct {
	sink    Sink
	timeout time.Duration
	wg      sync.WaitGroup

	// OnError, if set, is called after a failed delivery.
	OnError func(alert *models.Alert, err error)
}

// NewAsync wraps sink. Each delivery gets its own timeout, detached from the
// caller's cancellation.
func NewAsync(sink Sink, timeout time.Duration) *Async {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Async{sink: sink, timeout: timeout}
}

// Notify starts the delivery and returns immediately.
func (a *Async) Notify(ctx context.Context, alert *models.Alert) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()

		if err := a.sink.Notify(sendCtx, alert); err != nil {
			slog.Error("failed to deliver alert", "alert_id", alert.ID, "keyword", alert.Keyword, "error", err)
			if a.OnError != nil {
				a.OnError(alert, err)
			}
			return
		}
		slog.Info("alert delivered", "alert_id", alert.ID, "keyword", alert.Keyword)
	}()
	return nil
}

// Wait blocks until every pending delivery has finished.
func (a *Async) Wait() {
	a.wg.Wait()
}
