package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// A GraphQL query can be parameterized with variables, maximizing query
// reuse and avoiding costly string building in clients at runtime.
//
//	query getZuckProfile($devicePicSize: Int) {
//	  user(id: 4) {
//	    profilePic(size: $devicePicSize)
//	  }
//	}
type Variable struct {
	Name *Name
	Loc  graphqlerr.Location
}

func (v *Variable) Location() graphqlerr.Location {
	return v.Loc
}

func (v *Variable) GetValue() string { return "$" + v.Name.Name }

// VariableDefinition declares one of the operation's named variables, its
// GraphQL type, and an optional constant default value.
type VariableDefinition struct {
	Var          *Variable
	Type         Type
	DefaultValue Value
	Loc          graphqlerr.Location
}

func (v *VariableDefinition) Location() graphqlerr.Location {
	return v.Loc
}
