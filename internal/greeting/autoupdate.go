package greeting

import (
	"context"
	"time"

	"github.com/osse101/greeter/internal/logger"
	"github.com/osse101/greeter/internal/metrics"
)

// autoUpdate is the handle of one running delivery loop
type autoUpdate struct {
	runID string
	quit  chan struct{}
	done  chan struct{}
}

// StartAutoUpdate delivers GenerateGreeting() to callback immediately and then
// every UpdateInterval, always from the same goroutine. A loop that is already
// running is stopped and replaced.
func (r *Resolver) StartAutoUpdate(callback func(greeting string)) {
	r.autoMu.Lock()
	defer r.autoMu.Unlock()

	r.stopAutoUpdateLocked()

	au := &autoUpdate{
		runID: logger.GenerateRunID(),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	r.auto = au

	go r.runAutoUpdate(au, r.interval, callback)
}

// StopAutoUpdate stops the delivery loop and waits for it to exit, so no
// callback runs after it returns. Stopping a stopped resolver is a no-op.
// It must not be called from inside the callback.
func (r *Resolver) StopAutoUpdate() {
	r.autoMu.Lock()
	defer r.autoMu.Unlock()

	r.stopAutoUpdateLocked()
}

// AutoUpdateRunning reports whether a delivery loop is active
func (r *Resolver) AutoUpdateRunning() bool {
	r.autoMu.Lock()
	defer r.autoMu.Unlock()
	return r.auto != nil
}

// stopAutoUpdateLocked cancels and drops the handle (caller must hold autoMu)
func (r *Resolver) stopAutoUpdateLocked() {
	if r.auto == nil {
		return
	}
	close(r.auto.quit)
	<-r.auto.done
	r.auto = nil
}

func (r *Resolver) runAutoUpdate(au *autoUpdate, interval time.Duration, callback func(string)) {
	defer close(au.done)

	ctx := logger.WithRunID(context.Background(), au.runID)
	log := logger.With(ctx, r.log)
	log.Info(LogMsgAutoUpdateStarted, "interval", interval)
	defer log.Info(LogMsgAutoUpdateStopped)

	deliver := func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error(LogMsgCallbackPanic, "panic", rec)
			}
		}()
		greeting := r.GenerateGreeting()
		metrics.AutoUpdateTicks.Inc()
		log.Debug(LogMsgAutoUpdateDelivered, "greeting", greeting)
		callback(greeting)
	}

	deliver()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Stop wins over a tick that became ready at the same time
			select {
			case <-au.quit:
				return
			default:
			}
			deliver()
		case <-au.quit:
			return
		}
	}
}
