package sampling

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for a configuration value out of range.
	ErrInvalidConfig = errors.New("sampling: invalid config")
	// ErrUnknownSampler is returned for an unrecognized sampler name.
	ErrUnknownSampler = errors.New("sampling: unknown sampler")
	// ErrUnknownGenerator is returned for an unrecognized generator name.
	ErrUnknownGenerator = errors.New("sampling: unknown generator")
	// ErrExhausted is returned when a Hammersley set has fewer points left
	// than a Generate call needs.
	ErrExhausted = errors.New("sampling: point set exhausted")
	// ErrShortBuffer is returned when a Generate destination cannot hold
	// Count points.
	ErrShortBuffer = errors.New("sampling: destination buffer too short")
	// ErrClosed is returned by Generate after Close.
	ErrClosed = errors.New("sampling: engine closed")
)
