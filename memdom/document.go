// Package memdom is an in-memory document for driving a hooks.Runtime
// outside a browser. Markup is parsed with golang.org/x/net/html, selectors
// are matched with cascadia, and events bubble from the target to the root
// like DOM click events do.
//
// Like the DOM it stands in for, a Document is single threaded.
package memdom

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/hookparty/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	root      *html.Node
	body      *html.Node
	listeners map[*html.Node]map[string][]func()
	selectors map[string]cascadia.Selector
}

var _ dom.Document = (*Document)(nil)

func New() *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := newElementNode(atom.Html)
	head := newElementNode(atom.Head)
	body := newElementNode(atom.Body)
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)

	return &Document{
		root:      root,
		body:      body,
		listeners: map[*html.Node]map[string][]func(){},
		selectors: map[string]cascadia.Selector{},
	}
}

func newElementNode(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, node: n}
}

func (d *Document) Body() *Element {
	return d.wrap(d.body)
}

// CreateContainer appends an empty <div id="id"> to the body.
func (d *Document) CreateContainer(id string) *Element {
	n := newElementNode(atom.Div)
	n.Attr = []html.Attribute{{Key: "id", Val: id}}
	d.body.AppendChild(n)
	return d.wrap(n)
}

func (d *Document) GetElementByID(id string) (dom.Node, bool) {
	e, ok := d.ElementByID(id)
	if !ok {
		return nil, false
	}
	return e, true
}

// ElementByID is GetElementByID returning the concrete element.
func (d *Document) ElementByID(id string) (*Element, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

func (d *Document) QuerySelector(selector string) (dom.Node, bool) {
	e, ok := d.Find(selector)
	if !ok {
		return nil, false
	}
	return e, true
}

// Find returns the first element in document order matching selector.
func (d *Document) Find(selector string) (*Element, bool) {
	return d.wrap(d.root).Find(selector)
}

func (d *Document) FindAll(selector string) []*Element {
	return d.wrap(d.root).FindAll(selector)
}

// DuplicateIDs lists ids carried by more than one element, sorted.
func (d *Document) DuplicateIDs() []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	dupes := mapset.NewThreadUnsafeSet[string]()
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		id := attr(n, "id")
		if id == "" {
			return true
		}
		if !seen.Add(id) {
			dupes.Add(id)
		}
		return true
	})
	out := dupes.ToSlice()
	sort.Strings(out)
	return out
}

// ListenerCount is the number of registered listeners on attached nodes.
func (d *Document) ListenerCount() int {
	count := 0
	for _, byEvent := range d.listeners {
		for _, fns := range byEvent {
			count += len(fns)
		}
	}
	return count
}

func (d *Document) compile(selector string) (cascadia.Selector, bool) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, true
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, false
	}
	d.selectors[selector] = sel
	return sel, true
}

// forget drops the listeners of a detached subtree.
func (d *Document) forget(n *html.Node) {
	walk(n, func(c *html.Node) bool {
		delete(d.listeners, c)
		return true
	})
}

// walk visits n and its descendants depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}
