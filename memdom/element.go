package memdom

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/hookparty/dom"
	"golang.org/x/net/html"
)

// Element is a handle to a node of a Document. Handles are cheap; two
// handles to the same node compare equal through Same.
type Element struct {
	doc  *Document
	node *html.Node
}

var (
	_ dom.Node      = (*Element)(nil)
	_ dom.Container = (*Element)(nil)
)

func (e *Element) Same(other *Element) bool {
	return other != nil && e.node == other.node
}

func (e *Element) Tag() string {
	return e.node.Data
}

func (e *Element) ID() string {
	return attr(e.node, "id")
}

func (e *Element) Attr(key string) string {
	return attr(e.node, key)
}

func (e *Element) Classes() mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(strings.Fields(attr(e.node, "class"))...)
}

func (e *Element) HasClass(class string) bool {
	return e.Classes().Contains(class)
}

func (e *Element) TextContent() string {
	return textContent(e.node)
}

func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// Attached reports whether the element is still part of the document.
func (e *Element) Attached() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// SetInnerHTML parses markup in the context of the element and replaces its
// children with the result. Listeners on the replaced nodes are dropped.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("parsing inner html of <%s>: %w", e.node.Data, err)
	}

	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.doc.forget(c)
		e.node.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			break
		}
	}
	return sb.String()
}

func (e *Element) OuterHTML() string {
	var sb strings.Builder
	if err := html.Render(&sb, e.node); err != nil {
		return sb.String()
	}
	return sb.String()
}

func (e *Element) QuerySelector(selector string) (dom.Node, bool) {
	found, ok := e.Find(selector)
	if !ok {
		return nil, false
	}
	return found, true
}

// Find returns the first descendant of e matching selector. The element
// itself is never a match.
func (e *Element) Find(selector string) (*Element, bool) {
	sel, ok := e.doc.compile(selector)
	if !ok {
		return nil, false
	}
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if m := sel.MatchFirst(c); m != nil {
			return e.doc.wrap(m), true
		}
	}
	return nil, false
}

func (e *Element) FindAll(selector string) []*Element {
	sel, ok := e.doc.compile(selector)
	if !ok {
		return nil
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		for _, m := range sel.MatchAll(c) {
			out = append(out, e.doc.wrap(m))
		}
	}
	return out
}

func (e *Element) AddEventListener(event string, fn func()) {
	byEvent, ok := e.doc.listeners[e.node]
	if !ok {
		byEvent = map[string][]func(){}
		e.doc.listeners[e.node] = byEvent
	}
	byEvent[event] = append(byEvent[event], fn)
}

// Dispatch fires event on e and then on each ancestor, returning how many
// listeners ran. Listeners added while dispatching do not run.
func (e *Element) Dispatch(event string) int {
	var fns []func()
	for n := e.node; n != nil; n = n.Parent {
		fns = append(fns, e.doc.listeners[n][event]...)
	}
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

func (e *Element) Click() int {
	return e.Dispatch("click")
}
