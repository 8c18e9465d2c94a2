package sole

import "log/slog"

type Option func(*classConfig)

type classConfig struct {
	threadSafe        bool
	allowSubclass     bool
	allowReassignment bool
	logger            *slog.Logger
	onCreate          []CreateHook
	onReuse           []ReuseHook
}

func newClassConfig(opts ...Option) *classConfig {
	cfg := &classConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithThreadSafe enables double-checked locking for first-time creation.
func WithThreadSafe() Option {
	return func(cfg *classConfig) {
		cfg.threadSafe = true
	}
}

// WithSubclassing permits independently defined embedders to construct
// their own instances.
func WithSubclassing() Option {
	return func(cfg *classConfig) {
		cfg.allowSubclass = true
	}
}

// WithReassignment re-runs the initialization logic on every construction
// call against the existing instance.
func WithReassignment() Option {
	return func(cfg *classConfig) {
		cfg.allowReassignment = true
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *classConfig) {
		cfg.logger = logger
	}
}

func WithCreateObserver(hook CreateHook) Option {
	return func(cfg *classConfig) {
		cfg.onCreate = append(cfg.onCreate, hook)
	}
}

func WithReuseObserver(hook ReuseHook) Option {
	return func(cfg *classConfig) {
		cfg.onReuse = append(cfg.onReuse, hook)
	}
}
