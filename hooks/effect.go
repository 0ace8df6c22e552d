package hooks

import "github.com/delaneyj/hookparty/dom"

// EffectFunc runs after commit against the live node of the anchor that was
// rendering when it was registered.
type EffectFunc func(root dom.Node) error

type pendingEffect struct {
	anchor int
	fn     EffectFunc
}

// UseEffect queues fn to run once this pass's markup is committed.
// Effects are re-registered on every pass and run in registration order.
func UseEffect(rt *Runtime, fn EffectFunc) {
	rt.effects = append(rt.effects, pendingEffect{
		anchor: rt.currentAnchor(),
		fn:     fn,
	})
}

// Ref holds a node resolved during the effect phase.
type Ref struct {
	Current dom.Node
}

// UseRef returns a Ref whose Current is nil until the effects of this pass
// run, at which point it holds whatever resolve returns for the anchor node.
func UseRef(rt *Runtime, resolve func(root dom.Node) dom.Node) *Ref {
	ref := &Ref{}
	UseEffect(rt, func(root dom.Node) error {
		ref.Current = resolve(root)
		return nil
	})
	return ref
}
