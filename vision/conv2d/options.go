package conv2d

import "runtime"

// Config controls how ConvolveFast distributes work.
type Config struct {
	// Workers is the maximum number of concurrent row bands.
	Workers int
	// MinRows is the smallest band handed to a single worker. Images with
	// fewer than 2*MinRows rows run sequentially.
	MinRows int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns one worker per GOMAXPROCS slot and 8-row bands.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		MinRows: 8,
	}
}

// WithWorkers sets the maximum number of parallel workers.
// WithWorkers(1) forces sequential execution.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithMinRows sets the minimum number of output rows per worker.
func WithMinRows(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinRows = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// bands returns how many row bands rows should be split into.
func (cfg Config) bands(rows int) int {
	n := rows / cfg.MinRows
	if n > cfg.Workers {
		n = cfg.Workers
	}
	if n < 1 {
		n = 1
	}
	return n
}
