package dispatch

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/logging"
	"github.com/dshills/simevents/internal/metrics"
)

// SyncDispatcher executes handlers synchronously in the caller's goroutine.
// It implements event.Dispatcher.
type SyncDispatcher struct {
	executor     *Executor
	isolate      bool
	panicHandler PanicHandler
	logger       *slog.Logger
	metrics      *metrics.Metrics

	// Stats
	dispatched  atomic.Uint64
	handled     atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

var _ event.Dispatcher = (*SyncDispatcher)(nil)

// NewSyncDispatcher creates a new synchronous dispatcher.
func NewSyncDispatcher(opts ...SyncOption) *SyncDispatcher {
	d := &SyncDispatcher{
		panicHandler: defaultPanicHandler,
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	execOpts := []ExecutorOption{WithExecutorPanicHandler(d.panicHandler)}
	if d.isolate {
		execOpts = append(execOpts, WithRecovery())
	}
	d.executor = NewExecutor(execOpts...)
	return d
}

// SyncOption configures a SyncDispatcher.
type SyncOption func(*SyncDispatcher)

// WithIsolation runs every handler even if earlier ones fail, and recovers
// panics into *PanicError.
func WithIsolation() SyncOption {
	return func(d *SyncDispatcher) {
		d.isolate = true
	}
}

// WithPanicHandler sets the function called for recovered panics.
// It only has an effect together with WithIsolation.
func WithPanicHandler(h PanicHandler) SyncOption {
	return func(d *SyncDispatcher) {
		if h != nil {
			d.panicHandler = h
		}
	}
}

// WithLogger sets the logger used to report handler failures.
func WithLogger(logger *slog.Logger) SyncOption {
	return func(d *SyncDispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records dispatches and handler calls in m.
func WithMetrics(m *metrics.Metrics) SyncOption {
	return func(d *SyncDispatcher) {
		d.metrics = m
	}
}

// Isolated returns true if the dispatcher runs handlers in isolation.
func (d *SyncDispatcher) Isolated() bool {
	return d.isolate
}

// Dispatch implements event.Dispatcher.
func (d *SyncDispatcher) Dispatch(e *event.Event, hook string, data any) error {
	d.dispatched.Add(1)
	d.metrics.RecordDispatch(hook)

	ctx := &event.Context{Event: e, Hook: hook}
	var errs []error
	for _, handlers := range event.Snapshot(e, hook) {
		for _, fn := range handlers {
			result := d.executor.Execute(ctx, data, fn)
			d.record(hook, result)
			if result.IsSuccess() {
				continue
			}

			err := result.Err(hook)
			d.logger.Warn("handler failed",
				"hook", hook,
				"event", e.String(),
				"panic", result.Panicked,
				"err", err,
			)
			if !d.isolate {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *SyncDispatcher) record(hook string, result Result) {
	d.handled.Add(1)
	d.totalTimeNs.Add(result.Duration.Nanoseconds())

	status := metrics.StatusOK
	switch {
	case result.Panicked:
		d.panicked.Add(1)
		status = metrics.StatusPanic
	case result.Error != nil:
		d.failed.Add(1)
		status = metrics.StatusError
	default:
		d.succeeded.Add(1)
	}
	d.metrics.RecordHandler(hook, status, result.Duration)
}

// Stats returns dispatch statistics.
func (d *SyncDispatcher) Stats() SyncDispatcherStats {
	handled := d.handled.Load()
	totalNs := d.totalTimeNs.Load()

	var avgNs int64
	if handled > 0 {
		avgNs = totalNs / int64(handled)
	}

	return SyncDispatcherStats{
		Dispatched:    d.dispatched.Load(),
		Handled:       handled,
		Succeeded:     d.succeeded.Load(),
		Failed:        d.failed.Load(),
		Panicked:      d.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// ResetStats resets all statistics to zero.
func (d *SyncDispatcher) ResetStats() {
	d.dispatched.Store(0)
	d.handled.Store(0)
	d.succeeded.Store(0)
	d.failed.Store(0)
	d.panicked.Store(0)
	d.totalTimeNs.Store(0)
}

// SyncDispatcherStats contains statistics for a sync dispatcher.
type SyncDispatcherStats struct {
	// Dispatched is the total number of dispatch calls.
	Dispatched uint64

	// Handled is the total number of handler calls.
	Handled uint64

	// Succeeded is the number of successful handler executions.
	Succeeded uint64

	// Failed is the number of handlers that returned errors.
	Failed uint64

	// Panicked is the number of handlers that panicked.
	Panicked uint64

	// TotalDuration is the cumulative time spent in handlers.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}
