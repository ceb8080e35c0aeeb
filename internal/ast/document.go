package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// Document describes one parsed GraphQL request body: a sequence of
// operation and fragment definitions.
type Document struct {
	Definitions []Definition
}

func (d *Document) Location() graphqlerr.Location { return graphqlerr.Location{} }

// Definition is either an OperationDefinition or a FragmentDefinition.
// This module never parses type-system definitions (SDL is only ever this
// module's *output*, never its input).
type Definition interface {
	Node
	IsDefinition()
}

var _ Definition = (*OperationDefinition)(nil)
var _ Definition = (*FragmentDefinition)(nil)
