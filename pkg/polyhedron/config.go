package polyhedron

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/polyblade/pkg/errors"
)

// Config tunes the transaction interpreter.
type Config struct {
	// Epsilon is the layout separation below which a contracting edge
	// counts as converged.
	Epsilon float64 `toml:"epsilon"`
	// SettleDelay is how long Wait steps in operator scripts hold the queue.
	SettleDelay time.Duration `toml:"settle_delay"`
	// ContractionRate is the fraction of a contracting edge closed per
	// second by the default layout.
	ContractionRate float64 `toml:"contraction_rate"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Epsilon:         0.08,
		SettleDelay:     500 * time.Millisecond,
		ContractionRate: 6,
	}
}

// LoadConfig reads a TOML file over the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the interpreter cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Epsilon <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "epsilon must be positive, got %v", c.Epsilon)
	case c.SettleDelay < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "settle_delay must not be negative, got %v", c.SettleDelay)
	case c.ContractionRate <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "contraction_rate must be positive, got %v", c.ContractionRate)
	}
	return nil
}
