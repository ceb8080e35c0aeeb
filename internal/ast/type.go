package ast

import (
	"fmt"

	"github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"
)

// GraphQL describes the types of data expected by query variables. Types
// may be lists of another type, or a non-null variant of any other type.
type Type interface {
	Node
	String() string
}

var _ Type = (*Named)(nil)
var _ Type = (*List)(nil)
var _ Type = (*NonNull)(nil)

// WrappingType is implemented by List and NonNull, the two type markers
// that wrap another Type.
type WrappingType interface {
	Type
	OfType() Type
}

var _ WrappingType = (*List)(nil)
var _ WrappingType = (*NonNull)(nil)

type Named struct {
	Name *Name
	Loc  graphqlerr.Location
}

func (n *Named) Location() graphqlerr.Location { return n.Loc }
func (n *Named) String() string                { return n.Name.Name }

type List struct {
	Type Type
	Loc  graphqlerr.Location
}

func (l *List) OfType() Type                  { return l.Type }
func (l *List) Location() graphqlerr.Location { return l.Loc }
func (l *List) String() string                { return fmt.Sprintf("[%s]", l.Type.String()) }

type NonNull struct {
	Type Type
	Loc  graphqlerr.Location
}

func (n *NonNull) OfType() Type                  { return n.Type }
func (n *NonNull) Location() graphqlerr.Location { return n.Loc }
func (n *NonNull) String() string                { return fmt.Sprintf("%s!", n.Type.String()) }
