package moment

import "runtime"

// defaultMinParallelSize is the element count (rows*cols) below which the
// column loops run sequentially.
const defaultMinParallelSize = 1 << 14

type config struct {
	minParallelSize int
	workers         int
}

func defaultConfig() config {
	return config{
		minParallelSize: defaultMinParallelSize,
		workers:         runtime.GOMAXPROCS(0),
	}
}

// Option configures a moment computation.
type Option func(*config)

// WithMinParallelSize sets the element count (rows*cols) at which column
// loops start fanning out to worker goroutines. Smaller inputs run
// sequentially. Use 1 to force parallel execution regardless of size.
func WithMinParallelSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.minParallelSize = n
		}
	}
}

// WithWorkers caps the number of worker goroutines for parallel column
// loops. The default is runtime.GOMAXPROCS(0). Use 1 to force sequential
// execution.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
