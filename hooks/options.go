package hooks

import "go.uber.org/zap"

type Option func(*Runtime)

// WithLogger sets the logger used for pass tracing and errors.
func WithLogger(l *zap.Logger) Option {
	return func(rt *Runtime) {
		if l != nil {
			rt.log = l
		}
	}
}

// WithErrorHandler receives the errors of scheduled passes. Without one a
// failing scheduled pass panics.
func WithErrorHandler(fn OnErrorFunc) Option {
	return func(rt *Runtime) {
		rt.onError = fn
	}
}

// WithAnchorPrefix changes the document id prefix of anchor containers.
func WithAnchorPrefix(prefix string) Option {
	return func(rt *Runtime) {
		if prefix != "" {
			rt.anchorPrefix = prefix
		}
	}
}

// WithAnchorValidation toggles parsing of every wrapped output to check it
// is a single element.
func WithAnchorValidation(enabled bool) Option {
	return func(rt *Runtime) {
		rt.validateAnchors = enabled
	}
}
