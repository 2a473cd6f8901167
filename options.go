package scheduler

import "github.com/jikamens/event-scheduler/types"

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
	orderer types.AttendeeOrderer
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation; slog adapts naturally since the
//     interface takes key-value pairs
//
// Example:
//
//	logger := myLogger // implements scheduler.Logger
//	s, err := scheduler.New(&cfg, scheduler.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Example:
//
//	collector := myPrometheusCollector // implements scheduler.MetricsCollector
//	s, err := scheduler.New(&cfg, scheduler.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets scheduling event hooks.
//
// Hooks are called synchronously and observe every primitive mutation,
// including tentative ones performed inside swap that are later rolled back.
//
// Example:
//
//	hooks := &scheduler.Hooks{
//	    OnAssign: func(a *scheduler.Attendee, s *scheduler.Session, immutable bool) {
//	        fmt.Printf("%s -> %s\n", a, s)
//	    },
//	}
//	s, err := scheduler.New(&cfg, scheduler.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *schedulerOptions) {
		o.hooks = hooks
	}
}

// WithOrderer sets the attendee tie-break orderer used by Schedule().
//
// The default is order.NewByName(), which makes repeated runs on the same
// input deterministic. Use order.NewShuffled(seed) to explore different
// schedules across runs.
//
// Example:
//
//	s, err := scheduler.New(&cfg, scheduler.WithOrderer(order.NewShuffled(42)))
func WithOrderer(orderer types.AttendeeOrderer) Option {
	return func(o *schedulerOptions) {
		o.orderer = orderer
	}
}
