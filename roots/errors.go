package roots

import "errors"

var (
	// ErrNilFunc indicates a required function handle was nil.
	ErrNilFunc = errors.New("roots: function handle is nil")
	// ErrBadTolerance indicates Tolerance was zero, negative or non-finite.
	ErrBadTolerance = errors.New("roots: tolerance must be a positive finite number")
	// ErrBadMaxIterations indicates MaxIterations was below 1.
	ErrBadMaxIterations = errors.New("roots: MaxIterations must be at least 1")
	// ErrBadSeed indicates an initial estimate or interval bound was NaN or infinite.
	ErrBadSeed = errors.New("roots: initial estimates must be finite")
)
