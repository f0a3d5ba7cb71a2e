// Package yerr defines the discriminated error kinds returned by every
// component of the schema helper core.
package yerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the discriminated error category every *Error carries.
type Kind int

const (
	// InvalidInput indicates a malformed identifier, nodeid separator, or date.
	InvalidInput Kind = iota
	// NotFound indicates an unresolved prefix, type, node, file, or module.
	NotFound
	// Denied indicates a rule violation: wrong terminal type, implemented-revision
	// conflict, or status-rule violation.
	Denied
	// Collision indicates a duplicate typedef name, global, scoped, or with a built-in.
	Collision
	// ReferenceError indicates an invalid cross-reference: belongs-to mismatch,
	// unknown prefix in a nodeid.
	ReferenceError
	// Cycle indicates an import or include cycle detected via the parsing flag.
	Cycle
	// System indicates a filesystem/open/read failure.
	System
	// Internal indicates an invariant breach; it signals a bug in this library.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid-input"
	case NotFound:
		return "not-found"
	case Denied:
		return "denied"
	case Collision:
		return "collision"
	case ReferenceError:
		return "reference-error"
	case Cycle:
		return "cycle"
	case System:
		return "system"
	case Internal:
		return "internal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by every component in this module.
//
// Path, when set, locates the error within the schema graph (a
// schema-nodeid, a module name, or a typedef's lexical scope), so callers
// can render precise, path-qualified diagnostics without needing to parse
// Message.
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Path != "" {
		s += " at " + e.Path
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Cause != nil {
		s += " (" + e.Cause.Error() + ")"
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, empty Path,
// and empty Message, so callers can test for a category with
// errors.Is(err, yerr.NotFoundf()) without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Path == "" && t.Message == ""
}

// Option configures an *Error at construction, following the functional-
// options functor pattern used throughout this module.
type Option func(*Error)

// WithPath sets the path-qualified location of the error.
func WithPath(path string) Option { return func(e *Error) { e.Path = path } }

// WithMessage sets the human-readable detail message.
func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }

// WithMessagef sets the human-readable detail message using fmt.Sprintf.
func WithMessagef(format string, args ...interface{}) Option {
	return func(e *Error) { e.Message = fmt.Sprintf(format, args...) }
}

// WithCause attaches an underlying error, wrapped with a stack trace
// (errors.WithStack) at its construction site. Unwrap returns that
// stack wrapper; the original cause sits one Unwrap below it, where
// errors.Is and errors.As still reach it.
func WithCause(cause error) Option {
	return func(e *Error) {
		if cause != nil {
			cause = errors.WithStack(cause)
		}
		e.Cause = cause
	}
}

func newError(k Kind, opts ...Option) *Error {
	e := &Error{Kind: k}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidInputf(opts ...Option) *Error {
	return newError(InvalidInput, opts...)
}

func NotFoundf(opts ...Option) *Error {
	return newError(NotFound, opts...)
}

func Deniedf(opts ...Option) *Error {
	return newError(Denied, opts...)
}

func Collisionf(opts ...Option) *Error {
	return newError(Collision, opts...)
}

func ReferenceErrorf(opts ...Option) *Error {
	return newError(ReferenceError, opts...)
}

func Cyclef(opts ...Option) *Error {
	return newError(Cycle, opts...)
}

func Systemf(opts ...Option) *Error {
	return newError(System, opts...)
}

func Internalf(opts ...Option) *Error {
	return newError(Internal, opts...)
}

// KindOf extracts the Kind of err if it is (or wraps) an *Error, along
// with a boolean reporting whether extraction succeeded.
func KindOf(err error) (Kind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return 0, false
}
