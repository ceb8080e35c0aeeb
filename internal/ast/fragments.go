package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// Fragments are the primary unit of composition in GraphQL: a named,
// reusable selection set consumed elsewhere via the spread operator (...).
//
//	query withFragments {
//	  user(id: 4) {
//	    ...friendFields
//	  }
//	}
//
//	fragment friendFields on User {
//	  id
//	  name
//	}
type FragmentSpread struct {
	Name *Name
	Loc  graphqlerr.Location
}

func (f *FragmentSpread) Location() graphqlerr.Location { return f.Loc }
func (f *FragmentSpread) IsSelection()                  {}

// FragmentDefinition declares a fragment and the type it applies to.
type FragmentDefinition struct {
	Name          *Name
	TypeCondition *Named
	SelectionSet  *SelectionSet
	Loc           graphqlerr.Location
}

func (f *FragmentDefinition) Location() graphqlerr.Location { return f.Loc }
func (f *FragmentDefinition) IsDefinition()                 {}

// InlineFragment conditions a group of fields on a runtime type without
// naming a reusable fragment, e.g. `... on User { friends { count } }`. If
// TypeCondition is nil, the inline fragment applies to the enclosing type.
type InlineFragment struct {
	TypeCondition *Named
	SelectionSet  *SelectionSet
	Loc           graphqlerr.Location
}

func (i *InlineFragment) Location() graphqlerr.Location { return i.Loc }
func (i *InlineFragment) IsSelection()                  {}
