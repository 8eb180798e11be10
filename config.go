package sampling

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nozzle/sampling/lds"
)

// Sampler names accepted by Config.Sampler.
const (
	SamplerRandom     = "random"
	SamplerHalton     = "halton"
	SamplerHammersley = "hammersley"
	SamplerStratified = "stratified"
	SamplerLHS        = "lhs"
)

// Generator names accepted by Config.Generator.
const (
	GeneratorPCG32        = "pcg32"
	GeneratorSplitMix64   = "splitmix64"
	GeneratorXoroshiro64  = "xoroshiro64*"
	GeneratorXoroshiro128 = "xoroshiro128+"
	GeneratorMT19937      = "mt19937"
	GeneratorTausworthe   = "tausworthe"
	GeneratorChaCha8      = "chacha8"
)

// Config configures an Engine.
type Config struct {
	// MaxDimensions is the number of prime bases built into the
	// low-discrepancy tables. Halton and Hammersley dimensions must fall
	// below it.
	// Default: 128
	MaxDimensions int `yaml:"max_dimensions"`

	// MemoryLimit caps the bytes the tables may allocate. Zero means no
	// limit.
	// Default: 0
	MemoryLimit int `yaml:"memory_limit"`

	// Sampler selects the point-generation strategy.
	// Options: "random", "halton", "hammersley", "stratified", "lhs"
	// Default: "halton"
	Sampler string `yaml:"sampler"`

	// Dims is the number of coordinates per point.
	// Default: 2
	Dims int `yaml:"dims"`

	// Count is the number of points produced by one Generate call. For
	// Hammersley it is also the size of the point set.
	// Default: 1024
	Count int `yaml:"count"`

	// BaseDim is the first table dimension used by Halton and Hammersley.
	// Default: 0
	BaseDim int `yaml:"base_dim"`

	// Offset is the index of the first Halton or Hammersley point.
	// Default: 0
	Offset uint64 `yaml:"offset"`

	// Strata lists the per-dimension cell counts of the stratified sampler.
	// When empty, every dimension gets floor(Count^(1/Dims)) cells; if
	// their product differs from Count the sampler falls back to LHS.
	// Default: empty
	Strata []uint32 `yaml:"strata,omitempty"`

	// Jitter randomizes stratified and LHS points inside their cells.
	// Default: true
	Jitter bool `yaml:"jitter"`

	// Shuffle permutes stratified points after the grid is filled.
	// Default: false
	Shuffle bool `yaml:"shuffle"`

	// Seed for the random generator.
	// Use a fixed seed for reproducible results.
	// Default: 42
	Seed uint64 `yaml:"seed"`

	// Generator selects the random number generator for the random,
	// stratified and LHS samplers.
	// Options: "pcg32", "splitmix64", "xoroshiro64*", "xoroshiro128+",
	// "mt19937", "tausworthe", "chacha8"
	// Default: "pcg32"
	Generator string `yaml:"generator"`

	// ChunkSize is the number of points filled between progress reports
	// for samplers that produce points one at a time.
	// Default: 4096
	ChunkSize int `yaml:"chunk_size"`

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger `yaml:"-"`

	// ProgressCallback is called during Generate with the number of points
	// written so far and the total.
	// Default: nil
	ProgressCallback func(done, total int) `yaml:"-"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxDimensions: lds.MaxDimensions,
		Sampler:       SamplerHalton,
		Dims:          2,
		Count:         1024,
		Jitter:        true,
		Seed:          42,
		Generator:     GeneratorPCG32,
		ChunkSize:     4096,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the
// result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the
// result. Keys missing from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.MaxDimensions < lds.MinDimensions || c.MaxDimensions > lds.MaxCapacity {
		return errors.Wrapf(ErrInvalidConfig, "max_dimensions %d outside [%d, %d]", c.MaxDimensions, lds.MinDimensions, lds.MaxCapacity)
	}
	if c.MemoryLimit < 0 {
		return errors.Wrapf(ErrInvalidConfig, "memory_limit must not be negative, got %d", c.MemoryLimit)
	}
	if c.Dims <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "dims must be positive, got %d", c.Dims)
	}
	if c.Count <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "count must be positive, got %d", c.Count)
	}
	if c.ChunkSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "chunk_size must be positive, got %d", c.ChunkSize)
	}
	if !knownGenerator(c.Generator) {
		return errors.Wrapf(ErrUnknownGenerator, "%q", c.Generator)
	}

	switch c.Sampler {
	case SamplerRandom, SamplerLHS:
	case SamplerHalton:
		if err := c.checkTableDims(c.Dims); err != nil {
			return err
		}
	case SamplerHammersley:
		if err := c.checkTableDims(c.Dims - 1); err != nil {
			return err
		}
		if c.Offset > uint64(c.Count) {
			return errors.Wrapf(ErrInvalidConfig, "offset %d past hammersley set size %d", c.Offset, c.Count)
		}
	case SamplerStratified:
		if len(c.Strata) > 0 && len(c.Strata) < c.Dims {
			return errors.Wrapf(ErrInvalidConfig, "%d strata for %d dims", len(c.Strata), c.Dims)
		}
		for i, n := range c.Strata {
			if n == 0 {
				return errors.Wrapf(ErrInvalidConfig, "strata[%d] is zero", i)
			}
		}
	default:
		return errors.Wrapf(ErrUnknownSampler, "%q", c.Sampler)
	}
	return nil
}

func (c Config) checkTableDims(n int) error {
	if c.BaseDim < 0 || c.BaseDim+n > c.MaxDimensions {
		return errors.Wrapf(ErrInvalidConfig, "dimensions [%d, %d) exceed max_dimensions %d", c.BaseDim, c.BaseDim+n, c.MaxDimensions)
	}
	return nil
}

func knownGenerator(name string) bool {
	switch name {
	case GeneratorPCG32, GeneratorSplitMix64, GeneratorXoroshiro64,
		GeneratorXoroshiro128, GeneratorMT19937, GeneratorTausworthe,
		GeneratorChaCha8:
		return true
	}
	return false
}
