package metrics

import (
	"sync"
	"sync/atomic"
)

// BasicProvider keeps instruments in memory. It is meant for tests and small programs
// that want to inspect what a parallel loop did.
type BasicProvider struct {
	counters   registry[*BasicCounter]
	updowns    registry[*BasicCounter]
	histograms registry[*BasicHistogram]
}

// NewBasicProvider constructs an empty BasicProvider.
func NewBasicProvider() *BasicProvider {
	return &BasicProvider{}
}

// Counter returns the counter registered under name, creating it on first use.
func (p *BasicProvider) Counter(name string, opts ...InstrumentOption) Counter {
	return p.counters.get(name, opts, func() *BasicCounter { return &BasicCounter{} })
}

// UpDownCounter returns the up/down counter registered under name, creating it on first use.
func (p *BasicProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	return p.updowns.get(name, opts, func() *BasicCounter { return &BasicCounter{} })
}

// Histogram returns the histogram registered under name, creating it on first use.
func (p *BasicProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	return p.histograms.get(name, opts, func() *BasicHistogram { return &BasicHistogram{} })
}

// CounterValue returns the current value of a counter or up/down counter, or 0 if none exists.
func (p *BasicProvider) CounterValue(name string) int64 {
	if c, ok := p.counters.lookup(name); ok {
		return c.Snapshot()
	}
	if c, ok := p.updowns.lookup(name); ok {
		return c.Snapshot()
	}
	return 0
}

// HistogramValue returns a snapshot of the named histogram, or a zero snapshot if none exists.
func (p *BasicProvider) HistogramValue(name string) HistSnapshot {
	if h, ok := p.histograms.lookup(name); ok {
		return h.Snapshot()
	}
	return HistSnapshot{}
}

// Config returns the metadata the named instrument was created with.
func (p *BasicProvider) Config(name string) (InstrumentConfig, bool) {
	for _, r := range []interface {
		config(string) (InstrumentConfig, bool)
	}{&p.counters, &p.updowns, &p.histograms} {
		if cfg, ok := r.config(name); ok {
			return cfg, true
		}
	}
	return InstrumentConfig{}, false
}

type entry[I any] struct {
	inst I
	cfg  InstrumentConfig
}

// registry maps names to instruments; the zero value is ready to use.
type registry[I any] struct {
	mu sync.Mutex
	m  map[string]entry[I]
}

func (r *registry[I]) get(name string, opts []InstrumentOption, mk func() I) I {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.m[name]; ok {
		return e.inst
	}
	if r.m == nil {
		r.m = make(map[string]entry[I])
	}
	e := entry[I]{inst: mk(), cfg: buildConfig(opts)}
	r.m[name] = e
	return e.inst
}

func (r *registry[I]) lookup(name string) (I, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[name]
	return e.inst, ok
}

func (r *registry[I]) config(name string) (InstrumentConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[name]
	return e.cfg, ok
}

// BasicCounter is a lock-free counter usable both as Counter and UpDownCounter.
type BasicCounter struct {
	val atomic.Int64
}

func (c *BasicCounter) Add(n int64) { c.val.Add(n) }

// Snapshot returns the current value.
func (c *BasicCounter) Snapshot() int64 { return c.val.Load() }

// BasicHistogram tracks count, sum, min and max of recorded values. It keeps no buckets.
type BasicHistogram struct {
	mu   sync.Mutex
	snap HistSnapshot
}

// HistSnapshot is a point-in-time copy of a BasicHistogram.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Mean returns Sum/Count, or 0 for an empty snapshot.
func (s HistSnapshot) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.snap.Count == 0 || v < h.snap.Min {
		h.snap.Min = v
	}
	if h.snap.Count == 0 || v > h.snap.Max {
		h.snap.Max = v
	}
	h.snap.Count++
	h.snap.Sum += v
}

// Snapshot returns a copy of the current state.
func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}
