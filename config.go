package gsearch

import (
	"errors"

	"github.com/coregx/gsearch/period"
	"github.com/coregx/gsearch/prefilter"
)

// ErrInvalidConfig is matched by every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("gsearch: invalid config")

// Config controls how a Searcher decomposes its pattern and scans text.
//
// Example:
//
//	config := gsearch.DefaultConfig()
//	config.EnablePrefilter = false // Scan every offset
//	s, err := gsearch.CompileBytes([]byte("needle"), config)
type Config struct {
	// K is the repetition threshold: a prefix period counts as highly
	// repeating when the prefix spans at least K periods. Any K >= 3 gives
	// a correct linear search; larger values trade longer shifts on
	// periodic text for more decomposition work.
	// Default: 3
	K int

	// EnablePrefilter enables the rare-byte prefilter for byte searches.
	// It has no effect on searches over other element types.
	// Default: true
	EnablePrefilter bool

	// Tracker controls when an ineffective prefilter is abandoned.
	// Default: prefilter.DefaultTrackerConfig()
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		K:               period.DefaultK,
		EnablePrefilter: true,
		Tracker:         prefilter.DefaultTrackerConfig(),
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - K: 3 to 16
//   - Tracker.CheckInterval: at least 1 (prefilter enabled only)
//   - Tracker.MinEfficiency: 0 to 1 (prefilter enabled only)
func (c Config) Validate() error {
	if c.K < 3 || c.K > 16 {
		return &ConfigError{
			Field:   "K",
			Message: "must be between 3 and 16",
		}
	}

	if c.EnablePrefilter {
		if c.Tracker.CheckInterval < 1 {
			return &ConfigError{
				Field:   "Tracker.CheckInterval",
				Message: "must be at least 1",
			}
		}
		if c.Tracker.MinEfficiency < 0 || c.Tracker.MinEfficiency > 1 {
			return &ConfigError{
				Field:   "Tracker.MinEfficiency",
				Message: "must be between 0 and 1",
			}
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "gsearch: invalid config: " + e.Field + ": " + e.Message
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
