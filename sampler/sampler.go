// Package sampler fills the enclosed volume of a closed triangle mesh with
// uniformly distributed random points by rejection sampling its bounding box.
package sampler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	G "pointfill.com/pointfill/geometry"
	V "pointfill.com/pointfill/vector"
)

// DefaultMaxAttempts candidates drawn for a single point before giving up.
const DefaultMaxAttempts = 1 << 16

// ctx is polled every ctxCheckInterval candidates inside one point.
const ctxCheckInterval = 256

// Solid is anything with a bounding box and an inside test.
// *geometry.Mesh implements it. Contains must be safe for concurrent use
// when Options.Workers > 1.
type Solid interface {
	TriangleCount() int
	Bounds() G.Bounds
	Contains(p V.Vec32) bool
}

// Options tune a Sampler.
type Options struct {
	Seed        uint64 // 0 picks a random seed
	MaxAttempts int    // candidates per point, <= 0 means DefaultMaxAttempts
	Workers     int    // goroutines sharing one Sample call, <= 1 samples sequentially
}

func DefaultOptions() Options {
	return Options{MaxAttempts: DefaultMaxAttempts, Workers: 1}
}

// Sampler draws point sets. Calls on one Sampler continue the same seeded
// sequence, so a fresh Sampler with the same seed and options replays it.
type Sampler struct {
	opts Options
	seed uint64

	mu  sync.Mutex
	rng *rand.Rand
}

func New(opts Options) *Sampler {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Sampler{
		opts: opts,
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, 0)),
	}
}

// Seed the sampler was started from.
func (s *Sampler) Seed() uint64 { return s.seed }

// Options after defaults were applied.
func (s *Sampler) Options() Options { return s.opts }

// Sample is a one shot helper with DefaultOptions.
func Sample(mesh *G.Mesh, n int) ([]V.Vec32, error) {
	return New(DefaultOptions()).Sample(context.Background(), mesh, n)
}

// Sample returns exactly n points inside solid, in acceptance order.
// Either all n points come back or the call fails with a nil slice.
func (s *Sampler) Sample(ctx context.Context, solid Solid, n int) ([]V.Vec32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: point count %d is negative", ErrInvalidInput, n)
	}
	if solid == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidInput)
	}
	if solid.TriangleCount() == 0 {
		return nil, fmt.Errorf("%w: mesh has no triangles", ErrInvalidInput)
	}
	if n == 0 {
		return []V.Vec32{}, nil
	}

	bounds := solid.Bounds()
	if bounds.Degenerate() {
		return nil, fmt.Errorf("%w: bounding box %s - %s has no volume", ErrDegenerateGeometry, bounds.Min, bounds.Max)
	}

	s.mu.Lock()
	callSeed := s.rng.Uint64()
	s.mu.Unlock()

	workers := min(s.opts.Workers, n)
	points := make([]V.Vec32, n)
	var attempts atomic.Int64

	if workers == 1 {
		a, err := s.fill(ctx, solid, bounds, points, stream(callSeed, 0))
		attempts.Add(int64(a))
		if err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * chunk
			if start >= n {
				break
			}
			end := min(start+chunk, n)
			g.Go(func() error {
				a, err := s.fill(gctx, solid, bounds, points[start:end], stream(callSeed, w))
				attempts.Add(int64(a))
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	total := attempts.Load()
	Logger().Debug("volume sampled",
		"points", n,
		"attempts", total,
		"acceptance", float64(n)/float64(total),
		"workers", workers)
	return points, nil
}

func stream(seed uint64, worker int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(worker)))
}

// fill writes one accepted point per slot of out.
func (s *Sampler) fill(ctx context.Context, solid Solid, b G.Bounds, out []V.Vec32, rng *rand.Rand) (int, error) {
	attempts := 0
	for i := range out {
		if err := ctx.Err(); err != nil {
			return attempts, fmt.Errorf("sampling interrupted after %d points: %w", i, err)
		}
		p, tries, err := s.point(ctx, solid, b, rng)
		attempts += tries
		if err != nil {
			return attempts, err
		}
		out[i] = p
	}
	return attempts, nil
}

// point retries candidates until one lands inside or the budget runs out.
func (s *Sampler) point(ctx context.Context, solid Solid, b G.Bounds, rng *rand.Rand) (V.Vec32, int, error) {
	size := b.Size()
	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if attempt%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return V.Vec32{}, attempt, fmt.Errorf("sampling interrupted: %w", err)
			}
		}
		candidate := V.Vec32{
			b.Min[0] + size[0]*rng.Float32(),
			b.Min[1] + size[1]*rng.Float32(),
			b.Min[2] + size[2]*rng.Float32(),
		}
		if solid.Contains(candidate) {
			return candidate, attempt, nil
		}
	}
	Logger().Warn("attempt budget exhausted",
		"attempts", s.opts.MaxAttempts,
		"min", b.Min.String(),
		"max", b.Max.String())
	return V.Vec32{}, s.opts.MaxAttempts, fmt.Errorf("%w: no candidate accepted in %d attempts", ErrDegenerateGeometry, s.opts.MaxAttempts)
}
