package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// Name is any bare identifier token: a field name, an argument name, an
// alias, a fragment name, a type name, or a variable name (without its
// leading $).
type Name struct {
	Name string
	Loc  graphqlerr.Location
}
