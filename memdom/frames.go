package memdom

import "github.com/delaneyj/hookparty/dom"

// FrameQueue is a dom.FrameScheduler that only fires when told to, which
// makes frame timing explicit in tests and batch tools.
type FrameQueue struct {
	queued []func()
	fired  int
}

var _ dom.FrameScheduler = (*FrameQueue)(nil)

func (q *FrameQueue) RequestAnimationFrame(fn func()) {
	q.queued = append(q.queued, fn)
}

// Len is the number of callbacks waiting for the next frame.
func (q *FrameQueue) Len() int {
	return len(q.queued)
}

// Fired is the total number of callbacks run so far.
func (q *FrameQueue) Fired() int {
	return q.fired
}

// Flush runs one frame: every callback queued before the call. Callbacks
// requested while flushing wait for the next frame.
func (q *FrameQueue) Flush() int {
	fns := q.queued
	q.queued = nil
	for _, fn := range fns {
		fn()
	}
	q.fired += len(fns)
	return len(fns)
}

// Settle flushes frames until none are queued or maxFrames frames ran, and
// returns the number of frames.
func (q *FrameQueue) Settle(maxFrames int) int {
	frames := 0
	for frames < maxFrames && len(q.queued) > 0 {
		q.Flush()
		frames++
	}
	return frames
}
