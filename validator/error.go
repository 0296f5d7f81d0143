// Package validator implements the fourteen ordered checks from spec §4.3 (plus the fragment
// cycle check design note §9 adds): AST + schema in, either a validated AST (nil errors) or a
// structured error set out. Checks run in order; the first check to report a non-empty error set
// stops the pipeline, per spec "on finding a non-empty error set within any check, subsequent
// checks are skipped."
package validator

import (
	"fmt"

	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/token"
)

// Error is a ValidationError: a message plus zero or more source locations.
type Error struct {
	Message   string
	Locations []token.Position
}

func (e *Error) Error() string {
	return e.Message
}

func newError(node ast.Node, format string, args ...interface{}) *Error {
	return &Error{
		Message:   fmt.Sprintf(format, args...),
		Locations: []token.Position{node.Position()},
	}
}

func newErrorAt(positions []token.Position, format string, args ...interface{}) *Error {
	return &Error{
		Message:   fmt.Sprintf(format, args...),
		Locations: positions,
	}
}

func newErrorForNodes(nodes []ast.Node, format string, args ...interface{}) *Error {
	positions := make([]token.Position, len(nodes))
	for i, n := range nodes {
		positions[i] = n.Position()
	}
	return newErrorAt(positions, format, args...)
}
