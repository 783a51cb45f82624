package trace

import "github.com/san-kum/algoviz/internal/algo"

// Frame is one recorded step of one run.
type Frame struct {
	Algorithm string
	Index     int
	Step      algo.Step
}

// Recorder keeps emitted steps in order. It satisfies playback.Observer.
// With a positive limit only the most recent limit frames are kept.
type Recorder struct {
	frames []Frame
	limit  int
}

func NewRecorder(limit int) *Recorder {
	return &Recorder{
		frames: make([]Frame, 0),
		limit:  limit,
	}
}

func (r *Recorder) OnStep(name string, index int, s algo.Step) {
	r.frames = append(r.frames, Frame{Algorithm: name, Index: index, Step: s})
	if r.limit > 0 && len(r.frames) > r.limit {
		r.frames = r.frames[len(r.frames)-r.limit:]
	}
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) At(i int) (Frame, bool) {
	if i < 0 || i >= len(r.frames) {
		return Frame{}, false
	}
	return r.frames[i], true
}

func (r *Recorder) Frames() []Frame { return r.frames }

// For returns the frames recorded for one algorithm.
func (r *Recorder) For(name string) []Frame {
	out := make([]Frame, 0)
	for _, f := range r.frames {
		if f.Algorithm == name {
			out = append(out, f)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.frames = r.frames[:0] }
