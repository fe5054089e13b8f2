package parfor

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/parfor/launch"
	"github.com/ygrebnov/parfor/metrics"
)

// config holds settings of a single ForEach* call.
type config struct {
	// Threads is the requested worker count, already clamped to [MinThreads, MaxThreads].
	// Zero means DefaultThreads().
	// Default: 0
	Threads int

	// Progress receives the running count of workers that finished their chunk.
	// Default: nil (no-op)
	Progress func(completed int)

	// Launcher starts units of work.
	// Default: launch.Goroutines()
	Launcher launch.Launcher

	// Affinity pins each worker to core (worker % NumCPU) where the platform allows it.
	// Default: true
	Affinity bool

	// Metrics records per-call instruments.
	// Default: metrics.NoopProvider
	Metrics metrics.Provider

	// ErrorTagging wraps the surfaced error in a ChunkError carrying the worker id
	// and global index of the failing element.
	// Default: false
	ErrorTagging bool
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Threads:      0,
		Progress:     nil,
		Launcher:     nil, // resolved lazily to launch.Goroutines()
		Affinity:     true,
		Metrics:      nil, // resolved lazily to metrics.NewNoopProvider()
		ErrorTagging: false,
	}
}

// newConfig applies opts on top of the defaults and fills in lazy defaults.
func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if cfg.Threads == 0 {
		cfg.Threads = DefaultThreads()
	}
	if cfg.Progress == nil {
		cfg.Progress = func(int) {}
	}
	if cfg.Launcher == nil {
		cfg.Launcher = launch.Goroutines()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNoopProvider()
	}
	return &cfg, nil
}

// validateConfig checks invariants options cannot enforce on their own.
func validateConfig(cfg *config) error {
	if cfg.Threads < 0 || cfg.Threads > MaxThreads {
		return errorc.With(ErrInvalidConfig, errorc.String("", "threads out of bounds"))
	}
	return nil
}

// Option configures a ForEach* call.
type Option func(*config) error

// WithThreads sets the number of workers (must be > 0). Values above MaxThreads are clamped.
func WithThreads(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithThreads requires n > 0"))
		}
		cfg.Threads = clampThreads(n)
		return nil
	}
}

// WithProgress installs a sink called once per worker that completes its whole chunk,
// with the number of workers completed so far. The sink may be called concurrently.
func WithProgress(fn func(completed int)) Option {
	return func(cfg *config) error { cfg.Progress = fn; return nil }
}

// WithLauncher selects the facility used to start workers.
func WithLauncher(l launch.Launcher) Option {
	return func(cfg *config) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLauncher requires a non-nil launcher"))
		}
		cfg.Launcher = l
		return nil
	}
}

// WithAffinity enables or disables best-effort CPU pinning of workers (enabled by default).
func WithAffinity(enabled bool) Option {
	return func(cfg *config) error { cfg.Affinity = enabled; return nil }
}

// WithMetrics records worker and element instruments into p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithErrorTagging wraps the returned error with the worker id and global index of the failing element.
func WithErrorTagging() Option {
	return func(cfg *config) error { cfg.ErrorTagging = true; return nil }
}
