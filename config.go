package scheduler

import "fmt"

// Config is the configuration for the Scheduler.
type Config struct {
	// ImproveSweepLimit bounds how many full sweeps the improve phase of
	// Schedule() may run before giving up, guaranteeing termination even
	// when every sweep keeps finding marginal trades.
	//
	// 0 means "one sweep per registered attendee", which is proportional to
	// input size and in practice far more than the phase needs to reach a
	// fixed point.
	ImproveSweepLimit int `yaml:"improveSweepLimit"`

	// CheckpointPrefix is the prefix used for auto-generated checkpoint
	// names ("<prefix>-<sequence>"). Explicitly named checkpoints ignore it.
	//
	// Default: "checkpoint"
	CheckpointPrefix string `yaml:"checkpointPrefix"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ImproveSweepLimit: 0,
		CheckpointPrefix:  "checkpoint",
	}
}

// ApplyDefaults fills in missing configuration values with defaults.
//
// Zero values are replaced; explicitly set values are preserved.
func ApplyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.CheckpointPrefix == "" {
		cfg.CheckpointPrefix = def.CheckpointPrefix
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) if a value is out of range
func (c *Config) Validate() error {
	if c.ImproveSweepLimit < 0 {
		return fmt.Errorf("%w: ImproveSweepLimit must be >= 0, got %d", ErrInvalidConfig, c.ImproveSweepLimit)
	}
	if c.CheckpointPrefix == "" {
		return fmt.Errorf("%w: CheckpointPrefix must not be empty", ErrInvalidConfig)
	}

	return nil
}
