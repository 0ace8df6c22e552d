// Package frameloop gives a hooks.Runtime the single thread it needs in a
// real program. Frame callbacks and dispatched events all run on the
// goroutine that called Run, so a Runtime driven by a Loop never sees
// concurrent access.
package frameloop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/delaneyj/hookparty/dom"
)

const DefaultInterval = time.Second / 60

var (
	// ErrLoopRunning is returned when Run is called on a loop that is already running.
	ErrLoopRunning = errors.New("frameloop: loop is already running")
)

type Loop struct {
	interval time.Duration

	mu      sync.Mutex
	running bool
	frames  []func()
	tasks   []func()
	wake    chan struct{}

	frameCount uint64
}

var _ dom.FrameScheduler = (*Loop)(nil)

func New(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		wake:     make(chan struct{}, 1),
	}
}

// RequestAnimationFrame queues fn for the next tick. Safe from any goroutine.
func (l *Loop) RequestAnimationFrame(fn func()) {
	l.mu.Lock()
	l.frames = append(l.frames, fn)
	l.mu.Unlock()
}

// Dispatch runs fn on the loop goroutine as soon as possible, before the next
// frame. Safe from any goroutine.
func (l *Loop) Dispatch(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Frames is the number of frame callbacks run so far.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frameCount
}

// Run processes tasks and frames until ctx is done. Tasks and frames queued
// before cancellation still run before Run returns, so a requested frame is
// never lost. Frames those requests queue in turn are dropped.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrLoopRunning
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.runTasks()
			l.runFrame()
			return ctx.Err()
		case <-l.wake:
			l.runTasks()
		case <-ticker.C:
			l.runTasks()
			l.runFrame()
		}
	}
}

func (l *Loop) runTasks() {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for _, task := range tasks {
		task()
	}
}

func (l *Loop) runFrame() {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.frameCount += uint64(len(frames))
	l.mu.Unlock()

	for _, fn := range frames {
		fn()
	}
}
