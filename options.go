package podvec

import "github.com/hupe1980/podvec/resource"

const (
	// DefaultCapacity is the starting capacity in elements.
	DefaultCapacity = 8
	// DefaultGrowthFactor multiplies the capacity on every growth step.
	DefaultGrowthFactor = 1.5
	// DefaultAlignment is the start address alignment of every block in bytes.
	DefaultAlignment = 128
)

type options struct {
	capacity         int
	growthFactor     float64
	alignment        int
	allocator        Allocator
	controller       *resource.Controller
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		capacity:         DefaultCapacity,
		growthFactor:     DefaultGrowthFactor,
		alignment:        DefaultAlignment,
		allocator:        OffHeap(),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Buffer at construction.
type Option func(*options)

// WithCapacity sets the starting capacity in elements.
//
// Together with the growth factor it must satisfy floor(capacity*factor) > capacity,
// otherwise New fails with ErrInvalidGrowthPolicy.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithGrowthFactor sets the multiplier applied to the capacity when more room
// is needed. It is fixed for the lifetime of the buffer.
//
// Larger factors trade memory for fewer reallocations:
//   - 1.5: default, moderate slack
//   - 2.0: classic doubling, fewer copies
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growthFactor = f
	}
}

// WithAlignment sets the byte alignment of the allocation's start address.
// It must be a power of two. Values below the element type's own alignment
// are raised to it.
func WithAlignment(a int) Option {
	return func(o *options) {
		o.alignment = a
	}
}

// WithAllocator sets the allocator that provides backing blocks.
//
// If nil is passed, OffHeap() is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = OffHeap()
		}
		o.allocator = a
	}
}

// WithMemoryController accounts every block against a shared memory budget.
// Growth that would exceed the budget fails and leaves the buffer unchanged.
func WithMemoryController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithLogger sets the logger for allocation events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector for allocation metrics.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}
