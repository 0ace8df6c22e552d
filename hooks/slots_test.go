package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStore(t *testing.T) {
	t.Run("positions are reused after reset", func(t *testing.T) {
		var s slotStore
		built := 0
		factory := func() any {
			built++
			return built
		}

		a, fresh := s.get(kindMemo, factory)
		assert.True(t, fresh)
		b, fresh := s.get(kindMemo, factory)
		assert.True(t, fresh)
		assert.NotSame(t, a, b)

		s.reset()
		a2, fresh := s.get(kindMemo, factory)
		assert.False(t, fresh)
		b2, fresh := s.get(kindMemo, factory)
		assert.False(t, fresh)

		assert.Same(t, a, a2)
		assert.Same(t, b, b2)
		assert.Equal(t, 2, built)
		assert.Equal(t, 0, a.index)
		assert.Equal(t, 1, b.index)
	})

	t.Run("kinds have their own cursor", func(t *testing.T) {
		var s slotStore
		memo, _ := s.get(kindMemo, func() any { return "memo" })
		state, _ := s.get(kindState, func() any { return "state" })
		assert.Equal(t, 0, memo.index)
		assert.Equal(t, 0, state.index)
		assert.Equal(t, 1, s.len(kindMemo))
		assert.Equal(t, 1, s.len(kindState))
	})

	t.Run("growing tree appends", func(t *testing.T) {
		var s slotStore
		s.get(kindState, func() any { return 1 })
		s.reset()
		s.get(kindState, func() any { return 1 })
		third, fresh := s.get(kindState, func() any { return 2 })
		assert.True(t, fresh)
		assert.Equal(t, 1, third.index)
	})

	t.Run("type mismatch panics with a hook order error", func(t *testing.T) {
		var s slotStore
		sl, _ := s.get(kindState, func() any { return 1 })
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(*Error)
			require.True(t, ok)
			assert.Equal(t, KindHookOrder, err.Kind)
		}()
		payloadOf[string](sl)
	})
}

func TestDepsEqual(t *testing.T) {
	type point struct{ X, Y int }
	type boxed struct{ V any }
	fn := func() {}
	ch := make(chan int)
	ptr := &point{}

	cases := []struct {
		name string
		a, b []any
		want bool
	}{
		{"nil previous", nil, []any{}, false},
		{"nil next", []any{}, nil, false},
		{"both empty", []any{}, []any{}, true},
		{"length", []any{1}, []any{1, 2}, false},
		{"ints", []any{1, 2}, []any{1, 2}, true},
		{"strings differ", []any{"a"}, []any{"b"}, false},
		{"structs by value", []any{point{1, 2}}, []any{point{1, 2}}, true},
		{"int vs int64", []any{1}, []any{int64(1)}, false},
		{"nil elements", []any{nil}, []any{nil}, true},
		{"nil vs value", []any{nil}, []any{0}, false},
		{"same pointer", []any{ptr}, []any{ptr}, true},
		{"other pointer", []any{ptr}, []any{&point{}}, false},
		{"same func", []any{fn}, []any{fn}, true},
		{"same chan", []any{ch}, []any{ch}, true},
		{"uncomparable field", []any{boxed{[]int{1}}}, []any{boxed{[]int{1}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, depsEqual(tc.a, tc.b))
		})
	}
}
