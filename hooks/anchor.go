package hooks

import (
	"fmt"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Component renders props to markup. It may call hooks.
type Component[P any] func(rt *Runtime, props P) string

// Wrap renders c inside an anchor container so effects registered by c can
// find c's live node after commit. Every call in a pass gets a new anchor id.
func Wrap[P any](rt *Runtime, c Component[P], props P) string {
	id := rt.pushAnchor()
	inner := c(rt, props)
	rt.popAnchor()

	markup := anchorMarkup(rt.anchorID(id), inner)
	if rt.validateAnchors {
		if err := balanced(inner); err != nil {
			panic(newError(KindMalformedAnchor, id, "component output").wrap(err))
		}
		if err := singleElement(markup); err != nil {
			panic(newError(KindMalformedAnchor, id, "wrapped component output").wrap(err))
		}
	}
	return markup
}

// AnchorID returns the document id used for anchor n.
func (rt *Runtime) AnchorID(n int) string {
	return rt.anchorID(n)
}

func (rt *Runtime) anchorID(n int) string {
	return fmt.Sprintf("%s%d", rt.anchorPrefix, n)
}

func (rt *Runtime) pushAnchor() int {
	rt.anchorSeq++
	rt.anchorStack = append(rt.anchorStack, rt.anchorSeq)
	return rt.anchorSeq
}

func (rt *Runtime) popAnchor() {
	rt.anchorStack = rt.anchorStack[:len(rt.anchorStack)-1]
}

// currentAnchor is the innermost Wrap still executing, 0 outside any.
func (rt *Runtime) currentAnchor() int {
	if len(rt.anchorStack) == 0 {
		return 0
	}
	return rt.anchorStack[len(rt.anchorStack)-1]
}

func singleElement(markup string) error {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("parsing markup: %w", err)
	}

	elements := 0
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			elements++
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return fmt.Errorf("text %q outside the anchor element", n.Data)
			}
		}
	}
	if elements != 1 {
		return fmt.Errorf("parsed to %d top-level elements, want 1", elements)
	}
	return nil
}

var voidElements = mapset.NewThreadUnsafeSet(
	atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
	atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr,
)

// balanced rejects markup that closes more elements than it opens. Such an
// end tag would close the surrounding anchor instead, and the damage would
// only show up in an ancestor's check.
func balanced(markup string) error {
	z := html.NewTokenizer(strings.NewReader(markup))
	depth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("tokenizing markup: %w", err)
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements.Contains(atom.Lookup(name)) {
				depth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if voidElements.Contains(atom.Lookup(name)) {
				continue
			}
			if depth == 0 {
				return fmt.Errorf("unmatched </%s>", name)
			}
			depth--
		}
	}
}
