package registry

import (
	"log/slog"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/logging"
)

type options struct {
	dispatcher event.Dispatcher
	enabled    bool
	logger     *slog.Logger
}

// Option configures a root namespace.
type Option func(*options)

// WithDispatcher sets the root dispatcher value. The default is
// event.EventDispatcher, which a nil d keeps.
func WithDispatcher(d event.Dispatcher) Option {
	return func(o *options) {
		if d != nil {
			o.dispatcher = d
		}
	}
}

// WithEnabled sets the root enabled value. The default is false.
func WithEnabled(enabled bool) Option {
	return func(o *options) {
		o.enabled = enabled
	}
}

// WithLogger sets the logger used to report lazy creation of registry
// nodes. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		dispatcher: event.EventDispatcher{},
		logger:     logging.NewNop(),
	}
}
