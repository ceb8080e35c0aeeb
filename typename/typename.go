// Package typename implements the Typename injector companion (spec.md
// §4.4): rewriting a GraphQL query string to add `__typename` to every
// selection set, idempotently, preserving unparseable input verbatim.
package typename

import (
	"fmt"
	"strings"

	"github.com/romain-gilliotte/graphql-schema-infer/internal/ast"
	"github.com/romain-gilliotte/graphql-schema-infer/internal/gqlparser"
)

// Inject adds a `__typename` field to every selection set in query that
// doesn't already have one, then prints the document back to canonical
// query text. On parse failure the input is returned unchanged.
func Inject(query string) string {
	doc, err := gqlparser.Parse(query)
	if err != nil {
		return query
	}

	for _, def := range doc.Definitions {
		injectDefinition(def)
	}

	return printDocument(doc)
}

func injectDefinition(def ast.Definition) {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		injectSelectionSet(d.SelectionSet)
	case *ast.FragmentDefinition:
		injectSelectionSet(d.SelectionSet)
	}
}

func injectSelectionSet(set *ast.SelectionSet) {
	if set == nil {
		return
	}

	hasTypename := false
	for _, sel := range set.Selections {
		if f, ok := sel.(*ast.Field); ok {
			if f.Name.Name == "__typename" {
				hasTypename = true
			}
			injectSelectionSet(f.SelectionSet)
		}
		if frag, ok := sel.(*ast.InlineFragment); ok {
			injectSelectionSet(frag.SelectionSet)
		}
	}

	if !hasTypename {
		name := &ast.Name{Name: "__typename"}
		set.Selections = append(set.Selections, &ast.Field{Alias: name, Name: name})
	}
}

// printDocument prints doc back to query text, one definition after
// another in the order they appear in the source. Fragment spreads are
// printed by name and fragment definitions are reprinted as definitions;
// nothing is inlined.
func printDocument(doc *ast.Document) string {
	var parts []string
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			parts = append(parts, printOperation(d))
		case *ast.FragmentDefinition:
			parts = append(parts, printFragmentDefinition(d))
		}
	}
	return strings.Join(parts, "\n\n")
}

func printOperation(op *ast.OperationDefinition) string {
	var b strings.Builder
	b.WriteString(string(op.Type))
	if op.Name != nil {
		b.WriteString(" ")
		b.WriteString(op.Name.Name)
	}
	if len(op.Vars) > 0 {
		b.WriteString("(")
		for i, v := range op.Vars {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("$%s: %s", v.Var.Name.Name, v.Type.String()))
			if v.DefaultValue != nil {
				b.WriteString(" = ")
				b.WriteString(v.DefaultValue.GetValue())
			}
		}
		b.WriteString(")")
	}
	b.WriteString(" ")
	printSelectionSet(&b, op.SelectionSet, 0)
	return b.String()
}

func printFragmentDefinition(f *ast.FragmentDefinition) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("fragment %s on %s ", f.Name.Name, f.TypeCondition.String()))
	printSelectionSet(&b, f.SelectionSet, 0)
	return b.String()
}

func printSelectionSet(b *strings.Builder, set *ast.SelectionSet, indent int) {
	if set == nil {
		b.WriteString("{}")
		return
	}

	pad := strings.Repeat("  ", indent+1)
	b.WriteString("{\n")
	for _, sel := range set.Selections {
		b.WriteString(pad)
		printSelection(b, sel, indent+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
}

func printSelection(b *strings.Builder, sel ast.Selection, indent int) {
	switch s := sel.(type) {
	case *ast.Field:
		if s.Alias != s.Name {
			b.WriteString(s.Alias.Name)
			b.WriteString(": ")
		}
		b.WriteString(s.Name.Name)
		if len(s.Arguments) > 0 {
			b.WriteString(printArguments(s.Arguments))
		}
		if s.SelectionSet != nil {
			b.WriteString(" ")
			printSelectionSet(b, s.SelectionSet, indent)
		}
	case *ast.FragmentSpread:
		b.WriteString("...")
		b.WriteString(s.Name.Name)
	case *ast.InlineFragment:
		b.WriteString("...")
		if s.TypeCondition != nil {
			b.WriteString(" on ")
			b.WriteString(s.TypeCondition.String())
		}
		b.WriteString(" ")
		printSelectionSet(b, s.SelectionSet, indent)
	}
}

// printArguments prints arguments in their original source order (not
// sorted): the injector is a text rewrite, not a canonicalizer, so only
// field-level __typename insertion should change the output.
func printArguments(args []*ast.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s: %s", a.Name.Name, a.Value.GetValue())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
