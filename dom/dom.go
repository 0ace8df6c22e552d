// Package dom holds the narrow host interfaces the hooks runtime consumes.
// A browser binding, an in-memory tree (see memdom) or a test fake can all
// satisfy them.
package dom

// Node is a live element of the committed document.
type Node interface {
	// QuerySelector returns the first descendant matching selector.
	QuerySelector(selector string) (Node, bool)
	AddEventListener(event string, fn func())
}

// Document resolves ids to live nodes after a commit.
type Document interface {
	GetElementByID(id string) (Node, bool)
}

// Container is the element a root renders into.
type Container interface {
	// SetInnerHTML replaces every child of the container with markup.
	SetInnerHTML(markup string) error
}

// FrameScheduler runs fn once, on the next frame.
type FrameScheduler interface {
	RequestAnimationFrame(fn func())
}
