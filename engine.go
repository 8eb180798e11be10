// Package sampling generates point sets in the unit hypercube for
// Monte-Carlo and quasi-Monte-Carlo integration.
//
// The samplers live in the sampler package and can be used directly with an
// *lds.Tables and a generator from rng. Engine wires them together from a
// Config:
//
//	cfg := sampling.DefaultConfig()
//	cfg.Sampler = sampling.SamplerStratified
//	eng, err := sampling.New(cfg)
//	if err != nil {
//		return err
//	}
//	defer eng.Close()
//	points := make([]float64, cfg.Count*cfg.Dims)
//	n, err := eng.Generate(points)
package sampling

import (
	"encoding/binary"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/nozzle/sampling/lds"
	"github.com/nozzle/sampling/rng"
	"github.com/nozzle/sampling/sampler"
	"github.com/nozzle/sampling/uniform"
)

// Engine owns the low-discrepancy tables and one configured sampler.
// It is not safe for concurrent use.
type Engine struct {
	cfg    Config
	log    *slog.Logger
	tables *lds.Tables

	filler     sampler.Filler[float64]
	hammersley *sampler.Hammersley[float64]
	sequential bool
}

// New validates cfg, builds the tables and creates the sampler.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var opts []lds.Option
	if cfg.MemoryLimit > 0 {
		opts = append(opts, lds.WithAllocator(lds.NewBudgetAllocator(cfg.MemoryLimit)))
	}
	tables, err := lds.NewTables(cfg.MaxDimensions, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "build tables")
	}
	log.Debug("built tables",
		"dimensions", tables.Len(),
		"permutation_entries", tables.Permutations().Len())

	e := &Engine{cfg: cfg, log: log, tables: tables}
	e.Reset()
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Tables returns the engine's low-discrepancy tables. They stay valid until
// Close.
func (e *Engine) Tables() *lds.Tables { return e.tables }

// NewGenerator returns a fresh generator of the configured kind and seed.
func (e *Engine) NewGenerator() uniform.Generator {
	g, err := NewGenerator(e.cfg.Generator, e.cfg.Seed)
	if err != nil {
		// Validate rejected unknown names in New.
		panic(err)
	}
	return g
}

// Reset recreates the sampler, rewinding sequences to Config.Offset and
// reseeding the generator.
func (e *Engine) Reset() {
	cfg := e.cfg
	var opts sampler.Options
	if cfg.Jitter {
		opts |= sampler.Jitter
	}
	if cfg.Shuffle {
		opts |= sampler.Shuffle
	}

	e.hammersley = nil
	e.sequential = false
	switch cfg.Sampler {
	case SamplerRandom:
		e.filler = sampler.NewRandom[float64](e.NewGenerator())
		e.sequential = true
	case SamplerHalton:
		e.filler = sampler.NewHalton[float64](e.tables, cfg.BaseDim, cfg.Dims, cfg.Offset)
		e.sequential = true
	case SamplerHammersley:
		e.hammersley = sampler.NewHammersley[float64](e.tables, uint64(cfg.Count), cfg.BaseDim, cfg.Dims, cfg.Offset)
		e.filler = e.hammersley
		e.sequential = true
	case SamplerStratified:
		strata := cfg.Strata
		if len(strata) == 0 {
			strata = make([]uint32, cfg.Dims)
			for i := range strata {
				strata[i] = uint32(StrataPerDim(cfg.Count, cfg.Dims))
			}
		}
		s := sampler.NewStratified[float64](e.NewGenerator(), strata[:cfg.Dims], opts)
		if total := s.TotalStrata(cfg.Dims); total != cfg.Count {
			e.log.Debug("stratified grid does not match count, using latin hypercube",
				"cells", total, "count", cfg.Count)
		}
		e.filler = s
	case SamplerLHS:
		e.filler = sampler.NewLHS[float64](e.NewGenerator(), opts)
	}
	e.log.Debug("sampler ready",
		"sampler", cfg.Sampler,
		"generator", cfg.Generator,
		"dims", cfg.Dims,
		"options", opts.String())
}

// Generate writes the next Count points into dst, interleaved, and returns
// how many points were written. A Hammersley engine writes what is left of
// its set and returns ErrExhausted once nothing is.
func (e *Engine) Generate(dst []float64) (int, error) {
	if e.tables == nil {
		return 0, ErrClosed
	}
	dims := e.cfg.Dims
	count := e.cfg.Count
	if e.hammersley != nil {
		left := e.hammersley.Remaining()
		if left == 0 {
			return 0, errors.Wrapf(ErrExhausted, "all %d hammersley points drawn", e.cfg.Count)
		}
		count = int(min(uint64(count), left))
	}
	if len(dst) < count*dims {
		return 0, errors.Wrapf(ErrShortBuffer, "have %d values, need %d", len(dst), count*dims)
	}

	if !e.sequential {
		e.filler.Fill(dst, dims, count)
		e.progress(count, count)
	} else {
		for done := 0; done < count; {
			n := min(e.cfg.ChunkSize, count-done)
			e.filler.Fill(dst[done*dims:], dims, n)
			done += n
			e.progress(done, count)
		}
	}
	e.log.Debug("generated points", "sampler", e.cfg.Sampler, "points", count)
	return count, nil
}

func (e *Engine) progress(done, total int) {
	if e.cfg.ProgressCallback != nil {
		e.cfg.ProgressCallback(done, total)
	}
}

// Close releases the tables. Generate fails afterwards.
func (e *Engine) Close() {
	if e.tables == nil {
		return
	}
	e.tables.Close()
	e.tables = nil
	e.filler = nil
	e.hammersley = nil
	e.log.Debug("engine closed")
}

// NewGenerator returns the named generator seeded with seed.
func NewGenerator(name string, seed uint64) (uniform.Generator, error) {
	switch name {
	case GeneratorPCG32:
		return rng.NewPCG32Seeded(seed), nil
	case GeneratorSplitMix64:
		return rng.NewSplitMix64(seed), nil
	case GeneratorXoroshiro64:
		return rng.NewXoroshiro64Star(seed), nil
	case GeneratorXoroshiro128:
		return rng.NewXoroshiro128Plus(seed), nil
	case GeneratorMT19937:
		return rng.NewMT19937(uint32(seed)), nil
	case GeneratorTausworthe:
		return rng.NewTausworthe(int64(seed)), nil
	case GeneratorChaCha8:
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		return uniform.FromSource(rand.NewChaCha8(key)), nil
	}
	return nil, errors.Wrapf(ErrUnknownGenerator, "%q", name)
}

// StrataPerDim returns the largest n with n^dims <= count, and at least 1.
func StrataPerDim(count, dims int) int {
	n := int(math.Pow(float64(count), 1/float64(dims)))
	for n > 1 && pow(n, dims) > count {
		n--
	}
	for pow(n+1, dims) <= count {
		n++
	}
	return max(n, 1)
}

func pow(n, k int) int {
	r := 1
	for range k {
		r *= n
		if r > math.MaxInt32 {
			break
		}
	}
	return r
}
