package hooks_test

import (
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("markup", func(t *testing.T) {
		h := newHarness(t)
		var markup string
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			markup = hooks.Wrap(rt, func(rt *hooks.Runtime, name string) string {
				return "<b>" + name + "</b>"
			}, "x")
			return markup
		}, struct{}{})
		assert.Equal(t, `<div id="anchor2" style="display: contents"><b>x</b></div>`, markup)
	})

	t.Run("custom prefix", func(t *testing.T) {
		h := newHarness(t, hooks.WithAnchorPrefix("c-"))
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			return "<i></i>"
		}, struct{}{})
		_, ok := h.doc.ElementByID("c-1")
		assert.True(t, ok)
		assert.Equal(t, "c-7", h.rt.AnchorID(7))
	})

	t.Run("output escaping its anchor is rejected", func(t *testing.T) {
		h := newHarness(t)
		leaky := func(rt *hooks.Runtime, _ struct{}) string {
			return "<i></i></div><p>outside</p>"
		}
		err := hooks.Render(h.rt, func(rt *hooks.Runtime, _ struct{}) string {
			return hooks.Wrap(rt, leaky, struct{}{})
		}, struct{}{}, h.container)

		require.ErrorIs(t, err, hooks.ErrMalformedAnchor)
		var hookErr *hooks.Error
		require.ErrorAs(t, err, &hookErr)
		assert.Equal(t, 2, hookErr.Anchor)
		assert.Empty(t, h.container.InnerHTML(), "nothing is committed by an aborted pass")
	})

	t.Run("a stray end tag is blamed on the component that wrote it", func(t *testing.T) {
		h := newHarness(t)
		leaky := func(rt *hooks.Runtime, _ struct{}) string {
			return "<i></i></div>"
		}
		err := hooks.Render(h.rt, func(rt *hooks.Runtime, _ struct{}) string {
			return "<p>" + hooks.Wrap(rt, leaky, struct{}{}) + "</p>"
		}, struct{}{}, h.container)

		require.ErrorIs(t, err, hooks.ErrMalformedAnchor)
		var hookErr *hooks.Error
		require.ErrorAs(t, err, &hookErr)
		assert.Equal(t, 2, hookErr.Anchor)
		assert.Contains(t, err.Error(), "unmatched </div>")
	})

	t.Run("void and self-closing elements balance", func(t *testing.T) {
		h := newHarness(t)
		err := hooks.Render(h.rt, func(rt *hooks.Runtime, _ struct{}) string {
			return "<p>a<br>b<img src=x><svg><path/></svg></p>"
		}, struct{}{}, h.container)
		assert.NoError(t, err)
	})

	t.Run("validation can be turned off", func(t *testing.T) {
		h := newHarness(t, hooks.WithAnchorValidation(false))
		err := hooks.Render(h.rt, func(rt *hooks.Runtime, _ struct{}) string {
			return "<i></i></div><p>outside</p>"
		}, struct{}{}, h.container)
		assert.NoError(t, err)
	})

	t.Run("changed hook types are reported", func(t *testing.T) {
		h := newHarness(t)
		asText := false
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			if asText {
				hooks.UseState(rt, "zero")
			} else {
				hooks.UseState(rt, 0)
			}
			return "<i></i>"
		}, struct{}{})

		asText = true
		h.rt.RequestRerender()
		h.frames.Flush()
		require.Len(t, h.errs, 1)
		assert.ErrorIs(t, h.errs[0], hooks.ErrHookOrder)
	})

	t.Run("component panics are not swallowed", func(t *testing.T) {
		h := newHarness(t)
		assert.PanicsWithValue(t, "boom", func() {
			_ = hooks.Render(h.rt, func(rt *hooks.Runtime, _ struct{}) string {
				panic("boom")
			}, struct{}{}, h.container)
		})
	})
}
