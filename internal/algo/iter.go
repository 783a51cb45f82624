package algo

import "iter"

// Steps yields every remaining step of r, ending with the terminal one.
func Steps(r Run) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for !r.Done() {
			s, err := r.Next()
			if err != nil || !yield(s) {
				return
			}
		}
	}
}

// Drain runs r to completion and returns every step it emitted.
func Drain(r Run) ([]Step, error) {
	var steps []Step
	for !r.Done() {
		s, err := r.Next()
		if err != nil {
			return steps, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Last returns the terminal step of r, discarding the rest.
func Last(r Run) (Step, error) {
	var last Step
	for !r.Done() {
		s, err := r.Next()
		if err != nil {
			return last, err
		}
		last = s
	}
	return last, nil
}
