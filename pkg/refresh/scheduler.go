package refresh

import (
	"context"
	"time"
)

// DefaultInterval is the time between scheduled refresh cycles.
const DefaultInterval = 2 * time.Minute

// Run refreshes both flows immediately and then on every tick of interval
// until ctx is cancelled. A tick never waits for the previous cycle, so
// cycles may overlap unless the orchestrator uses single-flight. Run waits
// for in-flight cycles before returning ctx.Err().
//
// Run must not be called concurrently with Wait.
func (o *Orchestrator) Run(ctx context.Context, interval time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	o.spawn(func() { _ = o.RefreshAll(ctx) })

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			o.wg.Wait()
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			o.logger.Debug("scheduled refresh")
			o.spawn(func() { _ = o.RefreshAll(ctx) })
		}
	}
}

// Trigger starts one flow in the background and returns immediately.
// Errors reach the error handler. Once ctx is done, nothing is started and
// ctx.Err() is returned.
func (o *Orchestrator) Trigger(ctx context.Context, flow Flow) error {
	if _, err := ParseFlow(string(flow)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	o.logger.Debug("manual refresh", "flow", flow)
	o.spawn(func() { _ = o.Refresh(ctx, flow) })
	return nil
}

// TriggerAll starts both flows in the background. It does nothing once ctx
// is done.
func (o *Orchestrator) TriggerAll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	o.logger.Debug("manual refresh", "flow", "all")
	o.spawn(func() { _ = o.RefreshAll(ctx) })
}

// Wait blocks until every background cycle started by Run, Trigger or
// TriggerAll has finished. Call it after Run has returned.
func (o *Orchestrator) Wait() { o.wg.Wait() }

func (o *Orchestrator) spawn(fn func()) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		fn()
	}()
}
