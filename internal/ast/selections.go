package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// An operation selects the set of information it needs, and will receive
// exactly that information and nothing more, avoiding over-fetching and
// under-fetching data.
//
//	{
//	  id
//	  firstName
//	  lastName
//	}
//
// In this query, the id, firstName, and lastName fields form a selection
// set. Selection sets may also contain fragment references.
type SelectionSet struct {
	Selections []Selection
	Loc        graphqlerr.Location
}

func (s *SelectionSet) Location() graphqlerr.Location {
	return s.Loc
}

// Selection is the tagged-union member of a SelectionSet: a Field, a
// FragmentSpread, or an InlineFragment.
type Selection interface {
	Node
	// IsSelection is a non-op marker restricting which types may
	// implement Selection.
	IsSelection()
}

var _ Selection = (*Field)(nil)
var _ Selection = (*FragmentSpread)(nil)
var _ Selection = (*InlineFragment)(nil)

// Node is implemented by every AST node that carries a source location.
type Node interface {
	Location() graphqlerr.Location
}
