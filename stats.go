package gsearch

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts calls to Index, Contains, All and Count
	Searches uint64

	// Candidates counts occurrences of the simple suffix v found by the scan
	Candidates uint64

	// PrefixRejects counts candidates whose prefix u did not match
	PrefixRejects uint64

	// Matches counts occurrences of the whole pattern reported
	Matches uint64

	// PrefilterSkips counts prefilter candidates the scan jumped to
	PrefilterSkips uint64

	// PrefilterAbandoned counts searches that retired the prefilter due to a
	// high false-positive rate
	PrefilterAbandoned uint64
}

// counters is the shared, concurrently updated form of Stats. Each counter
// sits on its own cache line, since every goroutine searching with one
// Searcher writes to them.
type counters struct {
	searches           atomic.Uint64
	_                  cpu.CacheLinePad
	candidates         atomic.Uint64
	_                  cpu.CacheLinePad
	prefixRejects      atomic.Uint64
	_                  cpu.CacheLinePad
	matches            atomic.Uint64
	_                  cpu.CacheLinePad
	prefilterSkips     atomic.Uint64
	_                  cpu.CacheLinePad
	prefilterAbandoned atomic.Uint64
}

// tally accumulates the statistics of one search; it is folded into the
// shared counters once, when the search ends.
type tally struct {
	candidates         uint64
	prefixRejects      uint64
	matches            uint64
	prefilterSkips     uint64
	prefilterAbandoned uint64
}

func (c *counters) add(t *tally) {
	c.searches.Add(1)
	if t.candidates != 0 {
		c.candidates.Add(t.candidates)
	}
	if t.prefixRejects != 0 {
		c.prefixRejects.Add(t.prefixRejects)
	}
	if t.matches != 0 {
		c.matches.Add(t.matches)
	}
	if t.prefilterSkips != 0 {
		c.prefilterSkips.Add(t.prefilterSkips)
	}
	if t.prefilterAbandoned != 0 {
		c.prefilterAbandoned.Add(t.prefilterAbandoned)
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Searches:           c.searches.Load(),
		Candidates:         c.candidates.Load(),
		PrefixRejects:      c.prefixRejects.Load(),
		Matches:            c.matches.Load(),
		PrefilterSkips:     c.prefilterSkips.Load(),
		PrefilterAbandoned: c.prefilterAbandoned.Load(),
	}
}

func (c *counters) reset() {
	c.searches.Store(0)
	c.candidates.Store(0)
	c.prefixRejects.Store(0)
	c.matches.Store(0)
	c.prefilterSkips.Store(0)
	c.prefilterAbandoned.Store(0)
}
