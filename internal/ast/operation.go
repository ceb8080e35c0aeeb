package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// There are three types of operations that GraphQL models:
//
//   - query – a read-only fetch.
//   - mutation – a write followed by a fetch.
//   - subscription – a long-lived request that fetches data in response to
//     source events.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// Each operation is represented by an optional operation name and a
// selection set.
//
// If a document contains only one query operation, and that query defines
// no variables, it may be represented in the short-hand form which omits
// the query keyword and operation name, e.g. `{ field }`.
type OperationDefinition struct {
	Type         OperationType
	Name         *Name
	Vars         []*VariableDefinition
	Directives   []*Directive
	SelectionSet *SelectionSet
	Loc          graphqlerr.Location
}

func (o *OperationDefinition) Location() graphqlerr.Location {
	return o.Loc
}

func (o *OperationDefinition) IsDefinition() {}
