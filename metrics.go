package podvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    growCounter   prometheus.Counter
//	    liveBytes     prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordGrow(oldCapacity, newCapacity int) {
//	    p.growCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordAllocate is called after every block allocation attempt.
	// bytes is the requested block size, err is nil if successful.
	RecordAllocate(bytes int, duration time.Duration, err error)

	// RecordGrow is called after a successful capacity growth.
	RecordGrow(oldCapacity, newCapacity int)

	// RecordRelease is called after a block is returned to its allocator.
	RecordRelease(bytes int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGrow(int, int)                      {}
func (NoopMetricsCollector) RecordRelease(int)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between buffers owned by different goroutines.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	AllocErrors     atomic.Int64
	AllocTotalNanos atomic.Int64
	BytesAllocated  atomic.Int64
	BytesReleased   atomic.Int64
	GrowCount       atomic.Int64
	ReleaseCount    atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(bytes int, duration time.Duration, err error) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.BytesAllocated.Add(int64(bytes))
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCapacity, newCapacity int) {
	b.GrowCount.Add(1)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int) {
	b.ReleaseCount.Add(1)
	b.BytesReleased.Add(int64(bytes))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	AllocCount     int64
	AllocErrors    int64
	AvgAllocNanos  int64
	BytesAllocated int64
	BytesReleased  int64
	LiveBytes      int64
	GrowCount      int64
	ReleaseCount   int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocs := b.AllocCount.Load()
	var avg int64
	if allocs > 0 {
		avg = b.AllocTotalNanos.Load() / allocs
	}
	allocated := b.BytesAllocated.Load()
	released := b.BytesReleased.Load()
	return BasicMetricsStats{
		AllocCount:     allocs,
		AllocErrors:    b.AllocErrors.Load(),
		AvgAllocNanos:  avg,
		BytesAllocated: allocated,
		BytesReleased:  released,
		LiveBytes:      allocated - released,
		GrowCount:      b.GrowCount.Load(),
		ReleaseCount:   b.ReleaseCount.Load(),
	}
}
