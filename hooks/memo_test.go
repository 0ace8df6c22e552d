package hooks_test

import (
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/stretchr/testify/assert"
)

func TestUseMemo(t *testing.T) {
	rerender := func(t *testing.T, h *harness) {
		h.rt.RequestRerender()
		h.flush(t)
	}

	t.Run("same primitive deps keep the cached value", func(t *testing.T) {
		h := newHarness(t)
		a, b := 1, "x"
		calls := 0
		var got []int
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			got = append(got, hooks.UseMemo(rt, func() int {
				calls++
				return a * 10
			}, []any{a, b}))
			return "<i></i>"
		}, struct{}{})
		assert.Equal(t, 1, calls)

		rerender(t, h)
		assert.Equal(t, 1, calls)

		b = "y"
		rerender(t, h)
		assert.Equal(t, 2, calls)

		a = 2
		rerender(t, h)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{10, 10, 10, 20}, got)
	})

	t.Run("nil deps always recompute", func(t *testing.T) {
		h := newHarness(t)
		calls := 0
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			hooks.UseMemo(rt, func() int {
				calls++
				return calls
			}, nil)
			return "<i></i>"
		}, struct{}{})
		rerender(t, h)
		rerender(t, h)
		assert.Equal(t, 3, calls)
	})

	t.Run("empty deps compute once", func(t *testing.T) {
		h := newHarness(t)
		calls := 0
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			hooks.UseMemo(rt, func() int {
				calls++
				return calls
			}, []any{})
			return "<i></i>"
		}, struct{}{})
		rerender(t, h)
		assert.Equal(t, 1, calls)
	})

	t.Run("references compare by identity", func(t *testing.T) {
		shared := []int{1, 2}
		sharedMap := map[string]int{"a": 1}
		cases := map[string]struct {
			deps      func() []any
			wantCalls int
		}{
			"same slice":            {func() []any { return []any{shared} }, 1},
			"equal copy of a slice": {func() []any { return []any{[]int{1, 2}} }, 2},
			"same map":              {func() []any { return []any{sharedMap} }, 1},
			"new map":               {func() []any { return []any{map[string]int{"a": 1}} }, 2},
			"same values, new list": {func() []any { return []any{1, "two"} }, 1},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				h := newHarness(t)
				calls := 0
				render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
					hooks.UseMemo(rt, func() bool {
						calls++
						return true
					}, tc.deps())
					return "<i></i>"
				}, struct{}{})
				rerender(t, h)
				assert.Equal(t, tc.wantCalls, calls)
			})
		}
	})

	t.Run("mutating the caller's deps slice does not leak into the slot", func(t *testing.T) {
		h := newHarness(t)
		deps := []any{1}
		calls := 0
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			hooks.UseMemo(rt, func() int {
				calls++
				return 0
			}, deps)
			return "<i></i>"
		}, struct{}{})

		deps[0] = 2
		rerender(t, h)
		assert.Equal(t, 2, calls)
	})

	t.Run("sibling memos keep separate slots", func(t *testing.T) {
		h := newHarness(t)
		var got [][2]string
		render(t, h, func(rt *hooks.Runtime, _ struct{}) string {
			first := hooks.UseMemo(rt, func() string { return "first" }, []any{})
			second := hooks.UseMemo(rt, func() string { return "second" }, []any{})
			got = append(got, [2]string{first, second})
			return "<i></i>"
		}, struct{}{})
		rerender(t, h)
		assert.Equal(t, [][2]string{{"first", "second"}, {"first", "second"}}, got)
	})
}
