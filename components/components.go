// Package components holds the example tree used by the demo and tests: an
// App rendering several independent Counters, each rendering two memoized
// Multipliers.
package components

import (
	"github.com/delaneyj/hookparty/dom"
	"github.com/delaneyj/hookparty/hooks"
)

const IncrementSelector = ".increment"

type MultiplierProps struct {
	X, Y int
	// OnCompute, when set, is called every time the product is recomputed.
	OnCompute func(x, y int)
}

func Multiplier(rt *hooks.Runtime, props MultiplierProps) string {
	value := hooks.UseMemo(rt, func() int {
		if props.OnCompute != nil {
			props.OnCompute(props.X, props.Y)
		}
		return props.X * props.Y
	}, []any{props.X, props.Y})

	return multiplierMarkup(props.X, props.Y, value)
}

type CounterProps struct {
	Factors   []int
	OnCompute func(x, y int)
}

var DefaultFactors = []int{2, 3}

// Counter keeps a count in state and increments it when its .increment
// element is clicked.
func Counter(rt *hooks.Runtime, props CounterProps) string {
	count, setCount := hooks.UseState(rt, 0)

	increment := hooks.UseRef(rt, func(root dom.Node) dom.Node {
		n, _ := root.QuerySelector(IncrementSelector)
		return n
	})

	hooks.UseEffect(rt, func(dom.Node) error {
		if increment.Current == nil {
			return nil
		}
		increment.Current.AddEventListener("click", func() {
			setCount.Update(func(c int) int {
				return c + 1
			})
		})
		return nil
	})

	factors := props.Factors
	if factors == nil {
		factors = DefaultFactors
	}
	children := make([]string, len(factors))
	for i, y := range factors {
		children[i] = hooks.Wrap(rt, Multiplier, MultiplierProps{
			X:         count,
			Y:         y,
			OnCompute: props.OnCompute,
		})
	}
	return counterMarkup(count, children)
}

type AppProps struct {
	Title    string
	Counters int
	Factors  []int
	// OnCompute is handed down to every Multiplier.
	OnCompute func(x, y int)
}

func App(rt *hooks.Runtime, props *AppProps) string {
	counters := make([]string, props.Counters)
	for i := range counters {
		counters[i] = hooks.Wrap(rt, Counter, CounterProps{
			Factors:   props.Factors,
			OnCompute: props.OnCompute,
		})
	}
	return appMarkup(props.Title, counters)
}
