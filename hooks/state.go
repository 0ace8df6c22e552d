package hooks

type stateSlot[T any] struct {
	value  T
	setter *Setter[T]
}

// Setter queues updates to one state slot. There is exactly one Setter per
// slot for the lifetime of the Runtime, so it may be compared across passes
// and captured by event listeners without going stale.
type Setter[T any] struct {
	rt   *Runtime
	slot *stateSlot[T]
}

// Update queues fn to be applied to the slot at the start of the next pass
// and requests that pass. fn receives the value as it is when the queued
// mutation runs, so consecutive updates compose.
func (s *Setter[T]) Update(fn func(T) T) {
	slot := s.slot
	s.rt.enqueueMutation(func() {
		slot.value = fn(slot.value)
	})
	s.rt.RequestRerender()
}

// Set queues a replacement of the slot value.
func (s *Setter[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// UseState returns the slot value as of the start of the current pass and
// the slot's setter. initial is only used the first time this position is
// reached.
func UseState[T any](rt *Runtime, initial T) (T, *Setter[T]) {
	sl, _ := rt.slots.get(kindState, func() any {
		ss := &stateSlot[T]{value: initial}
		ss.setter = &Setter[T]{rt: rt, slot: ss}
		return ss
	})
	ss := payloadOf[*stateSlot[T]](sl)
	return ss.value, ss.setter
}
