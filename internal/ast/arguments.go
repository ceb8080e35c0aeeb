package ast

import "github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"

// Fields are conceptually functions which return values, and occasionally
// accept arguments which alter their behavior.
//
//	{
//	  user(id: 4) {
//	    profilePic(width: 100, height: 50)
//	  }
//	}
//
// Arguments may be provided in any syntactic order and maintain identical
// semantic meaning.
type Argument struct {
	Name  *Name
	Value Value
	Loc   graphqlerr.Location
}

func (a *Argument) Location() graphqlerr.Location {
	return a.Loc
}
