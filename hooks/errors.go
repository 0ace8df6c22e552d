package hooks

import (
	"fmt"
	"strings"
)

// Kind categorizes a runtime failure. None of them are recoverable inside a
// pass; the pass that hit one is abandoned.
type Kind string

const (
	KindMissingContainer Kind = "missing_container"
	KindMissingRoot      Kind = "missing_root"
	KindAnchorResolution Kind = "anchor_resolution"
	KindMalformedAnchor  Kind = "malformed_anchor"
	KindHookOrder        Kind = "hook_order"
	KindEffect           Kind = "effect"
	KindCommit           Kind = "commit"
)

var (
	ErrMissingContainer = &Error{Kind: KindMissingContainer}
	ErrMissingRoot      = &Error{Kind: KindMissingRoot}
	ErrAnchorResolution = &Error{Kind: KindAnchorResolution}
	ErrMalformedAnchor  = &Error{Kind: KindMalformedAnchor}
	ErrHookOrder        = &Error{Kind: KindHookOrder}
	ErrEffect           = &Error{Kind: KindEffect}
	ErrCommit           = &Error{Kind: KindCommit}
)

// Error is the single error type returned by the runtime.
// errors.Is matches on Kind, so callers compare against the Err* sentinels.
type Error struct {
	Kind   Kind
	Anchor int
	Detail string
	Cause  error
}

func newError(kind Kind, anchor int, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Anchor: anchor,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) wrap(cause error) *Error {
	e.Cause = cause
	return e
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("hooks: ")
	sb.WriteString(string(e.Kind))
	if e.Anchor > 0 {
		fmt.Fprintf(&sb, " (anchor %d)", e.Anchor)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
