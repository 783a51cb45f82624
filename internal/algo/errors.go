package algo

import "errors"

var (
	// ErrFinished is returned by Next once a run has emitted its terminal step.
	ErrFinished = errors.New("algo: already finished")

	// ErrRange indicates a low/high range outside the array.
	ErrRange = errors.New("algo: range out of bounds")

	// ErrNegativeValue indicates radix sort input containing a negative value.
	ErrNegativeValue = errors.New("algo: negative value")
)
