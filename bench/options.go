package bench

import "time"

// Config defines the measurement parameters of one benchmark run.
type Config struct {
	// MinSampleTime is the lower bound a single sample's duration must
	// reach before calibration accepts an evals-per-sample count.
	MinSampleTime time.Duration
	// TargetSamples is the desired number of measured samples.
	TargetSamples int
	// MaxTotalTime is a hard ceiling on the wall time of the whole
	// run, checked cooperatively between samples.
	MaxTotalTime time.Duration
	// WarmupSamples is the number of samples run and discarded before
	// measurement starts, letting caches, branch predictors and lazy
	// initialization inside the unit reach steady state.
	WarmupSamples int
	// TrackAllocations enables the allocation probe. Disabling it
	// removes the probe overhead from the run entirely.
	TrackAllocations bool
	// MaxEvals caps the geometric calibration search.
	MaxEvals int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MinSampleTime:    time.Millisecond,
		TargetSamples:    100,
		MaxTotalTime:     5 * time.Second,
		WarmupSamples:    2,
		TrackAllocations: true,
		MaxEvals:         1 << 30,
	}
}

// WithMinSampleTime sets the lower bound on a sample's duration.
func WithMinSampleTime(d time.Duration) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.MinSampleTime = d
		}
	}
}

// WithTargetSamples sets the desired number of measured samples.
func WithTargetSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.TargetSamples = n
		}
	}
}

// WithMaxTotalTime sets the hard ceiling on total run wall time.
func WithMaxTotalTime(d time.Duration) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.MaxTotalTime = d
		}
	}
}

// WithWarmupSamples sets the number of discarded pre-measurement
// samples. Zero is valid and skips warmup.
func WithWarmupSamples(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.WarmupSamples = n
		}
	}
}

// WithAllocationTracking enables or disables the allocation probe.
func WithAllocationTracking(enabled bool) Option {
	return func(cfg *Config) {
		cfg.TrackAllocations = enabled
	}
}

// WithMaxEvals caps the calibration search.
func WithMaxEvals(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxEvals = n
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
