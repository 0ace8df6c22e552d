package hooks

type slotKind uint8

const (
	kindMemo slotKind = iota
	kindState
	slotKindCount
)

func (k slotKind) String() string {
	switch k {
	case kindMemo:
		return "memo"
	case kindState:
		return "state"
	default:
		return "unknown"
	}
}

type slot struct {
	index   int
	kind    slotKind
	payload any
}

// slotStore keeps one append-only list of slots per hook kind. A slot's
// identity is its position in that list, so hooks must run in the same order
// on every pass for a given tree shape.
type slotStore struct {
	slots   [slotKindCount][]*slot
	cursors [slotKindCount]int
}

func (s *slotStore) reset() {
	for i := range s.cursors {
		s.cursors[i] = 0
	}
}

// get returns the slot at the kind's cursor, appending one built by factory
// when the cursor has run past the end, then advances the cursor.
func (s *slotStore) get(kind slotKind, factory func() any) (sl *slot, fresh bool) {
	idx := s.cursors[kind]
	s.cursors[kind]++

	if idx < len(s.slots[kind]) {
		return s.slots[kind][idx], false
	}

	sl = &slot{
		index:   idx,
		kind:    kind,
		payload: factory(),
	}
	s.slots[kind] = append(s.slots[kind], sl)
	return sl, true
}

func (s *slotStore) len(kind slotKind) int {
	return len(s.slots[kind])
}

func payloadOf[T any](sl *slot) T {
	p, ok := sl.payload.(T)
	if !ok {
		var want T
		panic(newError(KindHookOrder, 0,
			"%s slot %d holds %T, want %T; hooks must be called in the same order every render",
			sl.kind, sl.index, sl.payload, want,
		))
	}
	return p
}
