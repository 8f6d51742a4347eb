package prefilter

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker compares the number of candidates the prefilter reported with
// the number the caller confirmed as real occurrences. When too many
// candidates turn out to be false positives, the prefilter costs more than
// it saves: it is retired and the caller falls back to scanning every
// offset.
//
// Algorithm:
//  1. Count candidates (prefilter finds) and confirms (verified occurrences)
//  2. After the warmup, check the ratio every CheckInterval candidates
//  3. If the ratio is below MinEfficiency, disable the prefilter
//  4. Once disabled, stay disabled until Reset
//
// A Tracker is per-search state and is not safe for concurrent use.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(prefilter.New(pattern))
//	for start := 0; tracker.IsActive(); {
//	    pos := tracker.Find(haystack, start)
//	    if pos == -1 {
//	        break
//	    }
//	    if bytes.HasPrefix(haystack[pos:], pattern) {
//	        tracker.ConfirmMatch()
//	        return pos
//	    }
//	    start = pos + 1
//	}
type Tracker struct {
	inner Prefilter

	candidates uint64 // candidate offsets reported
	confirms   uint64 // candidates that were real occurrences

	checkInterval  uint64
	minEfficiency  float64
	warmupPeriod   uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in candidates).
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the minimum acceptable ratio of confirms/candidates.
	// If efficiency drops below this, the prefilter is disabled.
	// Default: 0.1 (10%)
	MinEfficiency float64

	// WarmupPeriod is the minimum number of candidates before checking
	// effectiveness. This prevents premature disabling on small samples.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
//
//   - CheckInterval: 64 (check often, not on every candidate)
//   - MinEfficiency: 0.1 (disable above 90% false positives)
//   - WarmupPeriod: 128 (enough samples before judging)
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a new tracker for the given prefilter with default config.
//
// Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
//
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}

	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate offset, or -1 if none is found or the
// prefilter is disabled.
//
// Unlike the inner prefilter, Find may return -1 while candidates remain,
// once the prefilter has been disabled. Callers must check IsActive to tell
// the two cases apart. The call that disables the prefilter still returns
// its candidate.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}

	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.checkEffectiveness()
	}
	return pos
}

// ConfirmMatch records that a candidate was a real occurrence.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive returns true if the prefilter is still being used.
func (t *Tracker) IsActive() bool {
	return t.active
}

// PatternLen returns the pattern length of the inner prefilter.
func (t *Tracker) PatternLen() int {
	return t.inner.PatternLen()
}

// Stats returns the current tracking statistics.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64, active bool) {
	candidates = t.candidates
	confirms = t.confirms
	if candidates > 0 {
		efficiency = float64(confirms) / float64(candidates)
	}
	active = t.active
	return
}

// Reset clears statistics and re-enables the prefilter.
func (t *Tracker) Reset() {
	t.candidates = 0
	t.confirms = 0
	t.lastCheckpoint = 0
	t.active = true
}

// checkEffectiveness disables the prefilter when, at a checkpoint, the
// confirm ratio is below the threshold.
func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates

	if float64(t.confirms)/float64(t.candidates) < t.minEfficiency {
		t.active = false
	}
}
