package hooks_test

import (
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/memdom"
	"github.com/stretchr/testify/require"
)

type harness struct {
	rt        *hooks.Runtime
	doc       *memdom.Document
	frames    *memdom.FrameQueue
	container *memdom.Element
	errs      []error
}

func newHarness(t *testing.T, opts ...hooks.Option) *harness {
	t.Helper()
	h := &harness{
		doc:    memdom.New(),
		frames: &memdom.FrameQueue{},
	}
	h.container = h.doc.CreateContainer("app")
	opts = append([]hooks.Option{
		hooks.WithErrorHandler(func(err error) {
			h.errs = append(h.errs, err)
		}),
	}, opts...)
	h.rt = hooks.New(h.doc, h.frames, opts...)
	return h
}

func render[P any](t *testing.T, h *harness, root hooks.Component[P], props P) {
	t.Helper()
	require.NoError(t, hooks.Render(h.rt, root, props, h.container))
}

// flush runs one frame and fails the test on any pass error.
func (h *harness) flush(t *testing.T) int {
	t.Helper()
	n := h.frames.Flush()
	require.Empty(t, h.errs)
	return n
}

func (h *harness) text(t *testing.T, selector string) string {
	t.Helper()
	el, ok := h.doc.Find(selector)
	require.True(t, ok, "no element matches %q", selector)
	return el.TextContent()
}
