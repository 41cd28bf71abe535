package testutil

import (
	"math/rand"
	"sync"
)

// Vec3 is a small plain-old-data vector.
type Vec3 struct {
	X, Y, Z float32
}

// Particle is a plain-old-data record with mixed field sizes and padding.
type Particle struct {
	Pos   Vec3
	Vel   Vec3
	ID    uint64
	Mass  float64
	Alive bool
}

// RNG wraps a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
	}
}

// Ints returns n pseudo-random ints.
func (r *RNG) Ints(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Int()
	}
	return out
}

// Float32s returns n pseudo-random values in [0, 1).
func (r *RNG) Float32s(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = r.rand.Float32()
	}
	return out
}

// Vec3s returns n vectors with components in [-1, 1).
func (r *RNG) Vec3s(n int) []Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Vec3, n)
	for i := range out {
		out[i] = r.vec3()
	}
	return out
}

// Particles returns n particles with sequential IDs starting at 1.
func (r *RNG) Particles(n int) []Particle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{
			Pos:   r.vec3(),
			Vel:   r.vec3(),
			ID:    uint64(i + 1),
			Mass:  r.rand.Float64() * 10,
			Alive: r.rand.Intn(2) == 0,
		}
	}
	return out
}

// Indices returns n positions where the i-th value is in [0, start+i].
// It models indices for a sequence that grows by one per step.
func (r *RNG) Indices(n, start int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(start + i + 1)
	}
	return out
}

func (r *RNG) vec3() Vec3 {
	return Vec3{
		X: r.rand.Float32()*2 - 1,
		Y: r.rand.Float32()*2 - 1,
		Z: r.rand.Float32()*2 - 1,
	}
}
