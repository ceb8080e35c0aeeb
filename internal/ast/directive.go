package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// Directive annotates a field or fragment, e.g. @include(if: $expanded).
// The extractor never inspects directives (spec.md's data model has no
// slot for them), but the parser must still consume them so it can keep
// parsing the rest of the document.
type Directive struct {
	Name *Name
	Args []*Argument
	Loc  graphqlerr.Location
}

func (d *Directive) Location() graphqlerr.Location {
	return d.Loc
}
