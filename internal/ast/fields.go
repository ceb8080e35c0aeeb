package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// A field describes one discrete piece of information available to
// request within a selection set.
//
// Some fields describe complex data or relationships to other data. In
// order to further explore this data, a field may itself contain a
// selection set, allowing for deeply nested requests.
//
//	{
//	  me {
//	    id
//	    firstName
//	    friends {
//	      name
//	    }
//	  }
//	}
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
	Loc          graphqlerr.Location
}

func (f *Field) Location() graphqlerr.Location {
	return f.Loc
}

func (f *Field) IsSelection() {}
