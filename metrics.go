package gridstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    insertHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, merged bool, err error) {
//	    p.insertCounter.Inc()
//	    p.insertHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// merged reports whether the insert hit an occupied slot,
	// err is nil if successful.
	RecordInsert(duration time.Duration, merged bool, err error)

	// RecordGet is called after each lookup.
	// found is false for empty slots and failed lookups.
	RecordGet(found bool, err error)

	// RecordTraverse is called when a traversal finishes or is stopped early.
	RecordTraverse(visited int)

	// RecordClear is called after each clear with the number of discarded values.
	RecordClear(discarded int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordGet(bool, error)                   {}
func (NoopMetricsCollector) RecordTraverse(int)                      {}
func (NoopMetricsCollector) RecordClear(int)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertMerges     atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	GetCount         atomic.Int64
	GetHits          atomic.Int64
	GetErrors        atomic.Int64
	TraverseCount    atomic.Int64
	TraverseVisited  atomic.Int64
	ClearCount       atomic.Int64
	ClearDiscarded   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, merged bool, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	} else if merged {
		b.InsertMerges.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(found bool, err error) {
	b.GetCount.Add(1)
	if err != nil {
		b.GetErrors.Add(1)
	} else if found {
		b.GetHits.Add(1)
	}
}

// RecordTraverse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTraverse(visited int) {
	b.TraverseCount.Add(1)
	b.TraverseVisited.Add(int64(visited))
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(discarded int) {
	b.ClearCount.Add(1)
	b.ClearDiscarded.Add(int64(discarded))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertMerges:    b.InsertMerges.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  b.getAvgInsertNanos(),
		GetCount:        b.GetCount.Load(),
		GetHits:         b.GetHits.Load(),
		GetErrors:       b.GetErrors.Load(),
		TraverseCount:   b.TraverseCount.Load(),
		TraverseVisited: b.TraverseVisited.Load(),
		ClearCount:      b.ClearCount.Load(),
		ClearDiscarded:  b.ClearDiscarded.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertMerges    int64
	InsertErrors    int64
	InsertAvgNanos  int64
	GetCount        int64
	GetHits         int64
	GetErrors       int64
	TraverseCount   int64
	TraverseVisited int64
	ClearCount      int64
	ClearDiscarded  int64
}
