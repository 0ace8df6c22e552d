package hooks

import (
	"reflect"
	"slices"
)

type memoSlot[T any] struct {
	value T
	deps  []any
}

// UseMemo returns the cached result of compute, calling compute again only
// when deps differ from the list stored on the previous call. A nil deps list
// never matches, so compute runs on every pass.
//
// compute must not call other hooks.
func UseMemo[T any](rt *Runtime, compute func() T, deps []any) T {
	sl, fresh := rt.slots.get(kindMemo, func() any {
		return &memoSlot[T]{}
	})
	ms := payloadOf[*memoSlot[T]](sl)

	if fresh || !depsEqual(ms.deps, deps) {
		ms.value = compute()
		ms.deps = slices.Clone(deps)
	}
	return ms.value
}

// Inspired by https://github.com/preactjs/preact/blob/f5738915a0d67c87f54f0ccd5b946e7a4ce0d5c1/hooks/src/index.js#L535
func depsEqual(a, b []any) bool {
	if a == nil || b == nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameIdentity(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sameIdentity is == for comparable values and reference identity for maps,
// slices, funcs and chans. No deep comparison.
func sameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return safeEqual(a, b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

// safeEqual guards == against structs or arrays whose static type is
// comparable but which hold an uncomparable value in an interface field.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
