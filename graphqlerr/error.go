// Package graphqlerr defines the error type used internally while parsing
// GraphQL documents. It never escapes the public API of this module: every
// package that can produce one catches it and turns it into a skip, per the
// permissive error-handling design of the inference core.
package graphqlerr

import "fmt"

// Location is a 1-based line/column position within a parsed source string.
type Location struct {
	Line   int
	Column int
}

// Error is a GraphQL-flavoured syntax error, carrying the offending
// location so a verbose logger can report where parsing gave up.
type Error struct {
	Message   string
	Locations []Location
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", e.Message)
	for _, loc := range e.Locations {
		str += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	return str
}

// New builds an Error from a format string, with no location attached yet.
func New(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// MultiError aggregates several parse errors, e.g. when a batch request
// contains more than one malformed body worth reporting together.
type MultiError []*Error

func (m MultiError) Error() string {
	var res string
	for _, err := range m {
		res += err.Error() + "\n"
	}
	return res
}

var _ error = (*Error)(nil)
var _ error = MultiError(nil)
