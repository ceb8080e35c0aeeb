package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// Field and directive arguments accept input values of various literal
// primitives; input values can be scalars, enumeration values, lists, or
// input objects, or a variable reference to one of the operation's
// declared variables.
type Value interface {
	Node
	// GetValue returns the value's own textual source form, as printed in
	// the original document (quotes kept for strings, `$` kept for
	// variables). The Parser component uses this, not a decoded Go value,
	// since argument typing works from syntactic shape (spec.md §4.1).
	GetValue() string
}

var _ Value = (*Variable)(nil)
var _ Value = (*IntValue)(nil)
var _ Value = (*FloatValue)(nil)
var _ Value = (*StringValue)(nil)
var _ Value = (*NullValue)(nil)
var _ Value = (*BooleanValue)(nil)
var _ Value = (*EnumValue)(nil)
var _ Value = (*ListValue)(nil)
var _ Value = (*ObjectValue)(nil)

// IntValue is specified without a decimal point or exponent, e.g. -123.
type IntValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (i *IntValue) Location() graphqlerr.Location { return i.Loc }
func (i *IntValue) GetValue() string              { return i.Value }

// FloatValue includes either a decimal point or an exponent (or both).
type FloatValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (f *FloatValue) Location() graphqlerr.Location { return f.Loc }
func (f *FloatValue) GetValue() string              { return f.Value }

// StringValue is surrounded by quotation marks in the source document;
// Value retains those quotes so the printed source form round-trips.
type StringValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (s *StringValue) Location() graphqlerr.Location { return s.Loc }
func (s *StringValue) GetValue() string              { return s.Value }

// NullValue is the keyword null.
type NullValue struct {
	Loc graphqlerr.Location
}

func (n *NullValue) Location() graphqlerr.Location { return n.Loc }
func (n *NullValue) GetValue() string              { return "null" }

// BooleanValue is one of the two keywords true and false.
type BooleanValue struct {
	Value bool
	Loc   graphqlerr.Location
}

func (b *BooleanValue) Location() graphqlerr.Location { return b.Loc }
func (b *BooleanValue) GetValue() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// EnumValue is an unquoted name, e.g. MOBILE_WEB, used in contexts where
// the enumeration type is statically known (or, here, inferred).
type EnumValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (e *EnumValue) Location() graphqlerr.Location { return e.Loc }
func (e *EnumValue) GetValue() string              { return e.Value }

// ListValue is an ordered sequence of values wrapped in square brackets.
type ListValue struct {
	Values []Value
	Loc    graphqlerr.Location
}

func (l *ListValue) Location() graphqlerr.Location { return l.Loc }
func (l *ListValue) GetValue() string              { return Print(l) }

// ObjectValue is an unordered set of keyed input values wrapped in curly
// braces, e.g. { lon: 12.43, lat: -53.21 }.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    graphqlerr.Location
}

func (o *ObjectValue) Location() graphqlerr.Location { return o.Loc }
func (o *ObjectValue) GetValue() string              { return Print(o) }

type ObjectField struct {
	Name  *Name
	Value Value
	Loc   graphqlerr.Location
}

func (o *ObjectField) Location() graphqlerr.Location { return o.Loc }
