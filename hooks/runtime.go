// Package hooks is a small component runtime: components are functions that
// return markup, and hooks keep values alive across re-renders by the order
// in which they are called.
//
// Hooks must be called unconditionally and in the same order on every pass.
// The Nth UseState of a pass always reads the Nth state slot; nothing checks
// that the call sites match beyond a panic when the stored type differs.
//
// A Runtime is not safe for concurrent use. Host events, frame callbacks and
// hook calls must all happen on one goroutine.
package hooks

import (
	"fmt"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/hookparty/dom"
	"go.uber.org/zap"
)

const DefaultAnchorPrefix = "anchor"

type OnErrorFunc func(err error)

type schedulerState uint8

const (
	stateIdle schedulerState = iota
	stateRenderRequested
	stateRendering
)

func (s schedulerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRenderRequested:
		return "render-requested"
	case stateRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Stats describes the passes a Runtime has executed.
type Stats struct {
	Passes       uint64
	Failures     uint64
	Mutations    uint64
	Effects      uint64
	LastAnchors  int
	LastDigest   uint64
	LastBytes    int
	LastDuration time.Duration
}

type Runtime struct {
	doc    dom.Document
	frames dom.FrameScheduler

	log             *zap.Logger
	onError         OnErrorFunc
	anchorPrefix    string
	validateAnchors bool

	slots     slotStore
	mutations []func()
	effects   []pendingEffect

	anchorSeq   int
	anchorStack []int

	state     schedulerState
	pending   bool
	root      func() string
	container dom.Container

	stats Stats
}

func New(doc dom.Document, frames dom.FrameScheduler, opts ...Option) *Runtime {
	rt := &Runtime{
		doc:             doc,
		frames:          frames,
		log:             zap.NewNop(),
		anchorPrefix:    DefaultAnchorPrefix,
		validateAnchors: true,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Render registers root as the tree to re-render on every scheduled pass and
// runs the first pass immediately.
func Render[P any](rt *Runtime, root Component[P], props P, container dom.Container) error {
	if isNil(container) {
		return ErrMissingContainer
	}
	rt.container = container
	rt.root = func() string {
		return Wrap(rt, root, props)
	}
	return rt.pass()
}

// isNil also catches a nil pointer stored in the interface, which is what a
// failed element lookup usually hands over.
func isNil(c dom.Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// RequestRerender schedules one pass on the next frame. Requests made while a
// pass is already scheduled collapse into it.
func (rt *Runtime) RequestRerender() {
	if rt.pending {
		return
	}
	rt.pending = true
	if rt.state == stateIdle {
		rt.state = stateRenderRequested
	}
	rt.frames.RequestAnimationFrame(rt.frame)
}

// Pending reports whether a pass is scheduled but has not fired.
func (rt *Runtime) Pending() bool {
	return rt.pending
}

// State is one of "idle", "render-requested" or "rendering".
func (rt *Runtime) State() string {
	return rt.state.String()
}

func (rt *Runtime) Stats() Stats {
	return rt.stats
}

func (rt *Runtime) frame() {
	rt.pending = false
	if err := rt.pass(); err != nil {
		rt.log.Error("render pass failed", zap.Error(err))
		if rt.onError == nil {
			panic(err)
		}
		rt.onError(err)
	}
}

func (rt *Runtime) enqueueMutation(m func()) {
	rt.mutations = append(rt.mutations, m)
}

// pass runs one render cycle. The step order is fixed: reset, drain
// mutations, render, commit, effects.
func (rt *Runtime) pass() (err error) {
	if rt.root == nil {
		rt.stats.Failures++
		return ErrMissingRoot
	}

	start := time.Now()
	rt.state = stateRendering
	defer func() {
		if r := recover(); r != nil {
			hookErr, ok := r.(*Error)
			if !ok {
				rt.state = stateIdle
				panic(r)
			}
			err = hookErr
		}
		if err != nil {
			rt.stats.Failures++
		}
		if rt.pending {
			rt.state = stateRenderRequested
		} else {
			rt.state = stateIdle
		}
	}()

	rt.slots.reset()
	rt.anchorSeq = 0
	rt.anchorStack = rt.anchorStack[:0]
	rt.effects = nil

	mutations := rt.mutations
	rt.mutations = nil
	for _, m := range mutations {
		m()
	}

	markup := rt.root()

	if err := rt.container.SetInnerHTML(markup); err != nil {
		return newError(KindCommit, 0, "replacing container content").wrap(err)
	}

	effects := rt.effects
	rt.effects = nil
	for _, e := range effects {
		id := rt.anchorID(e.anchor)
		node, ok := rt.doc.GetElementByID(id)
		if !ok || node == nil {
			return newError(KindAnchorResolution, e.anchor, "no node with id %q after commit", id)
		}
		if err := e.fn(node); err != nil {
			return newError(KindEffect, e.anchor, "effect failed").wrap(err)
		}
	}

	took := time.Since(start)
	rt.stats.Passes++
	rt.stats.Mutations += uint64(len(mutations))
	rt.stats.Effects += uint64(len(effects))
	rt.stats.LastAnchors = rt.anchorSeq
	rt.stats.LastDigest = xxhash.Sum64String(markup)
	rt.stats.LastBytes = len(markup)
	rt.stats.LastDuration = took

	rt.log.Debug("render pass",
		zap.Uint64("pass", rt.stats.Passes),
		zap.Int("mutations", len(mutations)),
		zap.Int("effects", len(effects)),
		zap.Int("anchors", rt.anchorSeq),
		zap.String("digest", fmt.Sprintf("%016x", rt.stats.LastDigest)),
		zap.Duration("took", took),
	)
	return nil
}
