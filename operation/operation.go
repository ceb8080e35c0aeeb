// Package operation implements the Parser stage: turning captured trace
// request bodies into a flat list of ParsedOperations, resolving
// fragments, inline fragments, arguments, and variable declarations along
// the way.
package operation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/romain-gilliotte/graphql-schema-infer/internal/ast"
	"github.com/romain-gilliotte/graphql-schema-infer/internal/gqlparser"
	"github.com/romain-gilliotte/graphql-schema-infer/trace"
)

// ParsedField is one node of a query's selection tree.
type ParsedField struct {
	Name          string
	Alias         string
	Arguments     map[string]string
	Children      []*ParsedField
	TypeCondition string
}

// ResponseKey is the key this field's value appears under in the
// response JSON: its alias if it has one, otherwise its real name.
func (f *ParsedField) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// ParsedVariable is one declared `$name: Type` of an operation.
type ParsedVariable struct {
	Name          string
	TypeName      string
	DefaultValue  string
	ObservedValue interface{}
	HasObserved   bool
}

// ParsedOperation is one query/mutation/subscription extracted from a
// trace's request body.
type ParsedOperation struct {
	Type          ast.OperationType
	Name          string
	Variables     []*ParsedVariable
	Fields        []*ParsedField
	RawQuery      string
	FragmentNames []string
}

// Parse implements spec.md §4.1: convert each trace's request body into
// zero or more ParsedOperations. Order is preserved; malformed input
// yields a skip, never an error (spec.md §7).
func Parse(traces []trace.Trace) []*ParsedOperation {
	var result []*ParsedOperation
	for _, tr := range traces {
		body := tr.RequestBody()
		if len(body) == 0 {
			continue
		}

		bodies, ok := decodeBodies(body)
		if !ok {
			continue
		}

		for _, b := range bodies {
			if ops := parseBody(b); ops != nil {
				result = append(result, ops...)
			}
		}
	}
	return result
}

// decodeBodies decodes a raw request body as either a single JSON object
// or a JSON array of objects (a batch).
func decodeBodies(raw []byte) ([]trace.RequestBody, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, false
	}

	switch trimmed[0] {
	case '[':
		var bodies []trace.RequestBody
		if err := json.Unmarshal(raw, &bodies); err != nil {
			return nil, false
		}
		return bodies, true
	case '{':
		var b trace.RequestBody
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, false
		}
		return []trace.RequestBody{b}, true
	default:
		return nil, false
	}
}

func parseBody(body trace.RequestBody) []*ParsedOperation {
	if strings.TrimSpace(body.Query) == "" {
		return nil
	}

	doc, err := gqlparser.Parse(body.Query)
	if err != nil {
		return nil
	}

	fragments := make(map[string]*ast.FragmentDefinition)
	for _, def := range doc.Definitions {
		if frag, ok := def.(*ast.FragmentDefinition); ok {
			fragments[frag.Name.Name] = frag
		}
	}

	var result []*ParsedOperation
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if body.OperationName != "" && op.Name != nil && op.Name.Name != body.OperationName {
			continue
		}
		result = append(result, buildOperation(op, body, fragments))
	}
	return result
}

func buildOperation(op *ast.OperationDefinition, body trace.RequestBody, fragments map[string]*ast.FragmentDefinition) *ParsedOperation {
	parsed := &ParsedOperation{
		Type:     op.Type,
		RawQuery: body.Query,
	}

	for _, v := range op.Vars {
		pv := &ParsedVariable{
			Name:     v.Var.Name.Name,
			TypeName: v.Type.String(),
		}
		if v.DefaultValue != nil {
			pv.DefaultValue = v.DefaultValue.GetValue()
		}
		if body.Variables != nil {
			if val, ok := body.Variables[pv.Name]; ok {
				pv.ObservedValue = val
				pv.HasObserved = true
			}
		}
		parsed.Variables = append(parsed.Variables, pv)
	}

	seen := make(map[string]bool)
	parsed.Fields = parseSelectionSet(op.SelectionSet, "", fragments, seen)
	for name := range seen {
		parsed.FragmentNames = append(parsed.FragmentNames, name)
	}

	if op.Name != nil {
		parsed.Name = op.Name.Name
	} else {
		parsed.Name = synthesizeName(op.Type, parsed.Fields)
	}

	return parsed
}

// parseSelectionSet implements spec.md §4.1's recursive selection-set
// parsing, stamping type_condition from enclosing fragments/inline
// fragments only when a field doesn't already carry one of its own.
func parseSelectionSet(set *ast.SelectionSet, typeCondition string, fragments map[string]*ast.FragmentDefinition, seenFragments map[string]bool) []*ParsedField {
	if set == nil {
		return nil
	}

	var out []*ParsedField
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			field := &ParsedField{
				Name:          s.Name.Name,
				Arguments:     printArguments(s.Arguments),
				Children:      parseSelectionSet(s.SelectionSet, "", fragments, seenFragments),
				TypeCondition: typeCondition,
			}
			if s.Alias != s.Name {
				field.Alias = s.Alias.Name
			}
			out = append(out, field)

		case *ast.FragmentSpread:
			seenFragments[s.Name.Name] = true
			frag, ok := fragments[s.Name.Name]
			if !ok {
				continue
			}
			out = append(out, parseSelectionSet(frag.SelectionSet, frag.TypeCondition.Name.Name, fragments, seenFragments)...)

		case *ast.InlineFragment:
			cond := typeCondition
			if s.TypeCondition != nil {
				cond = s.TypeCondition.Name.Name
			}
			out = append(out, parseSelectionSet(s.SelectionSet, cond, fragments, seenFragments)...)
		}
	}
	return out
}

// printArguments captures each argument's syntactic source form
// (spec.md §4.1's "Argument printing"): a variable reference keeps its
// `$`, literals are printed back to their canonical textual form.
func printArguments(args []*ast.Argument) map[string]string {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]string, len(args))
	for _, a := range args {
		out[a.Name.Name] = a.Value.GetValue()
	}
	return out
}

// synthesizeName builds `Anonymous{Type}_Root1_Root2_...` from up to the
// first three non-__typename root field names, each capitalized the way
// Python's str.capitalize() does: first rune upper, the rest lower.
func synthesizeName(opType ast.OperationType, fields []*ParsedField) string {
	var parts []string
	for _, f := range fields {
		if f.Name == "__typename" {
			continue
		}
		parts = append(parts, pyCapitalize(f.Name))
		if len(parts) == 3 {
			break
		}
	}

	prefix := "Anonymous" + pyCapitalize(string(opType))
	if len(parts) == 0 {
		return prefix
	}
	return fmt.Sprintf("%s_%s", prefix, strings.Join(parts, "_"))
}

// pyCapitalize reproduces Python's str.capitalize(): upper-case the first
// rune, lower-case the rest. strings.Title/strcase don't match this
// (they don't lower the tail), and this routine only ever runs on ASCII
// GraphQL identifiers.
func pyCapitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
