// Package gqlparser is a hand-written recursive-descent parser for
// GraphQL executable documents (operations and fragment definitions). It
// never parses type-system definitions: this module only ever consumes
// GraphQL queries/mutations/subscriptions captured from production
// traffic, never SDL.
package gqlparser

import (
	"fmt"
	"text/scanner"

	"github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"
	"github.com/romain-gilliotte/graphql-schema-infer/internal/ast"
	"github.com/romain-gilliotte/graphql-schema-infer/internal/lexer"
	"github.com/romain-gilliotte/graphql-schema-infer/internal/token"
)

// Parse parses a single GraphQL document string (one `query`/`graphql`
// field value) into its AST. A syntax error is returned rather than
// panicking so callers can skip the offending body (spec.md §7).
func Parse(source string) (*ast.Document, *graphqlerr.Error) {
	l := lexer.New(source)

	var doc *ast.Document
	if err := l.CatchSyntaxError(func() {
		l.SkipWhitespace()
		doc = parseDocument(l)
	}); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseDocument(l *lexer.Lexer) *ast.Document {
	doc := &ast.Document{}
	for l.Peek() != token.EOF {
		if l.Peek() == token.BRACE_L {
			op := &ast.OperationDefinition{Type: ast.Query, Loc: l.Location()}
			op.SelectionSet = parseSelectionSet(l)
			doc.Definitions = append(doc.Definitions, op)
			continue
		}

		loc := l.Location()
		name := parseName(l)
		switch name.Name {
		case token.QUERY:
			op := parseOperationDefinition(l, ast.Query)
			op.Loc = loc
			doc.Definitions = append(doc.Definitions, op)
		case token.MUTATION:
			op := parseOperationDefinition(l, ast.Mutation)
			op.Loc = loc
			doc.Definitions = append(doc.Definitions, op)
		case token.SUBSCRIPTION:
			op := parseOperationDefinition(l, ast.Subscription)
			op.Loc = loc
			doc.Definitions = append(doc.Definitions, op)
		case token.FRAGMENT:
			frag := parseFragmentDefinition(l)
			frag.Loc = loc
			doc.Definitions = append(doc.Definitions, frag)
		default:
			l.SyntaxError(fmt.Sprintf("Unexpected %q.", name.Name))
		}
	}
	return doc
}

// FragmentDefinition : fragment FragmentName on TypeCondition Directives? SelectionSet
func parseFragmentDefinition(l *lexer.Lexer) *ast.FragmentDefinition {
	name := parseName(l)
	l.AdvanceKeyword(token.ON)
	typeCondition := parseNamed(l)
	parseDirectives(l)
	selectionSet := parseSelectionSet(l)
	return &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		SelectionSet:  selectionSet,
	}
}

func parseOperationDefinition(l *lexer.Lexer, opType ast.OperationType) *ast.OperationDefinition {
	op := &ast.OperationDefinition{Type: opType}
	if l.Peek() == token.NAME {
		op.Name = parseName(l)
	}
	op.Vars = parseVariableDefinitions(l)
	parseDirectives(l)
	op.SelectionSet = parseSelectionSet(l)
	return op
}

// VariableDefinitions : ( VariableDefinition+ )
func parseVariableDefinitions(l *lexer.Lexer) []*ast.VariableDefinition {
	var vars []*ast.VariableDefinition
	if l.Peek() != token.PAREN_L {
		return vars
	}
	l.Advance(token.PAREN_L)
	for l.Peek() != token.PAREN_R {
		vars = append(vars, parseVariableDefinition(l))
	}
	l.Advance(token.PAREN_R)
	return vars
}

// VariableDefinition : Variable : Type DefaultValue?
func parseVariableDefinition(l *lexer.Lexer) *ast.VariableDefinition {
	loc := l.Location()
	v := parseVariable(l)
	l.Advance(token.COLON)
	t := parseType(l)
	var def ast.Value
	if l.Peek() == token.EQUALS {
		l.Advance(token.EQUALS)
		def = parseValueLiteral(l, true)
	}
	return &ast.VariableDefinition{Var: v, Type: t, DefaultValue: def, Loc: loc}
}

// Type : NamedType | ListType | NonNullType
func parseType(l *lexer.Lexer) ast.Type {
	loc := l.Location()
	var t ast.Type
	if l.Peek() == token.BRACKET_L {
		l.Advance(token.BRACKET_L)
		t = parseType(l)
		l.Advance(token.BRACKET_R)
		t = &ast.List{Type: t, Loc: loc}
	} else {
		t = parseNamed(l)
	}
	if l.Peek() == token.BANG {
		l.Advance(token.BANG)
		return &ast.NonNull{Type: t, Loc: loc}
	}
	return t
}

func parseName(l *lexer.Lexer) *ast.Name {
	loc := l.Location()
	name := l.TokenText()
	l.Advance(token.NAME)
	return &ast.Name{Name: name, Loc: loc}
}

// NamedType : Name
func parseNamed(l *lexer.Lexer) *ast.Named {
	loc := l.Location()
	return &ast.Named{Name: parseName(l), Loc: loc}
}

// SelectionSet : { Selection+ }
func parseSelectionSet(l *lexer.Lexer) *ast.SelectionSet {
	loc := l.Location()
	l.Advance(token.BRACE_L)
	var selections []ast.Selection
	for l.Peek() != token.BRACE_R {
		selections = append(selections, parseSelection(l))
	}
	l.Advance(token.BRACE_R)
	return &ast.SelectionSet{Selections: selections, Loc: loc}
}

// Selection : Field | FragmentSpread | InlineFragment
func parseSelection(l *lexer.Lexer) ast.Selection {
	if l.Peek() == token.SPREAD {
		return parseFragment(l)
	}
	return parseField(l)
}

// Arguments : ( Argument+ )
func parseArguments(l *lexer.Lexer) []*ast.Argument {
	l.Advance(token.PAREN_L)
	var args []*ast.Argument
	for l.Peek() != token.PAREN_R {
		loc := l.Location()
		name := parseName(l)
		l.Advance(token.COLON)
		value := parseValueLiteral(l, false)
		args = append(args, &ast.Argument{Name: name, Value: value, Loc: loc})
	}
	l.Advance(token.PAREN_R)
	return args
}

// Value[Const] : [~Const] Variable | IntValue | FloatValue | StringValue |
//
//	BooleanValue | NullValue | EnumValue | ListValue[?Const] | ObjectValue[?Const]
func parseValueLiteral(l *lexer.Lexer, constOnly bool) ast.Value {
	loc := l.Location()
	switch l.Peek() {
	case token.BRACKET_L:
		return parseList(l, constOnly)
	case token.BRACE_L:
		return parseObject(l, constOnly)
	case token.DOLLAR:
		if !constOnly {
			return parseVariable(l)
		}
	case token.INT:
		text := l.TokenText()
		l.Advance(token.INT)
		return &ast.IntValue{Value: text, Loc: loc}
	case token.FLOAT:
		text := l.TokenText()
		l.Advance(token.FLOAT)
		return &ast.FloatValue{Value: text, Loc: loc}
	case token.STRING:
		text := l.TokenText()
		l.Advance(token.STRING)
		return &ast.StringValue{Value: text, Loc: loc}
	case token.NAME:
		text := l.TokenText()
		l.Advance(token.NAME)
		switch text {
		case "true":
			return &ast.BooleanValue{Value: true, Loc: loc}
		case "false":
			return &ast.BooleanValue{Value: false, Loc: loc}
		case "null":
			return &ast.NullValue{Loc: loc}
		default:
			return &ast.EnumValue{Value: text, Loc: loc}
		}
	}
	l.SyntaxError(fmt.Sprintf("Unexpected %q.", scanner.TokenString(l.Peek())))
	return nil
}

// ListValue[Const] : [ ] | [ Value[?Const]+ ]
func parseList(l *lexer.Lexer, constOnly bool) *ast.ListValue {
	loc := l.Location()
	l.Advance(token.BRACKET_L)
	var values []ast.Value
	for l.Peek() != token.BRACKET_R {
		values = append(values, parseValueLiteral(l, constOnly))
	}
	l.Advance(token.BRACKET_R)
	return &ast.ListValue{Values: values, Loc: loc}
}

// ObjectValue[Const] : { } | { ObjectField[?Const]+ }
func parseObject(l *lexer.Lexer, constOnly bool) *ast.ObjectValue {
	loc := l.Location()
	l.Advance(token.BRACE_L)
	var fields []*ast.ObjectField
	for l.Peek() != token.BRACE_R {
		fields = append(fields, parseObjectField(l, constOnly))
	}
	l.Advance(token.BRACE_R)
	return &ast.ObjectValue{Fields: fields, Loc: loc}
}

// ObjectField[Const] : Name : Value[?Const]
func parseObjectField(l *lexer.Lexer, constOnly bool) *ast.ObjectField {
	loc := l.Location()
	name := parseName(l)
	l.Advance(token.COLON)
	value := parseValueLiteral(l, constOnly)
	return &ast.ObjectField{Name: name, Value: value, Loc: loc}
}

// Variable : $ Name
func parseVariable(l *lexer.Lexer) *ast.Variable {
	loc := l.Location()
	l.Advance(token.DOLLAR)
	return &ast.Variable{Name: parseName(l), Loc: loc}
}

// Field : Alias? Name Arguments? Directives? SelectionSet?
//
// Alias : Name :
func parseField(l *lexer.Lexer) *ast.Field {
	field := &ast.Field{}
	field.Alias = parseName(l)
	field.Name = field.Alias
	if l.Peek() == token.COLON {
		l.Advance(token.COLON)
		field.Name = parseName(l)
	}
	if l.Peek() == token.PAREN_L {
		field.Arguments = parseArguments(l)
	}
	field.Directives = parseDirectives(l)
	field.Loc = field.Name.Loc
	if l.Peek() == token.BRACE_L {
		field.SelectionSet = parseSelectionSet(l)
	}
	return field
}

// Covers both FragmentSpread and InlineFragment:
//
//	FragmentSpread : ... FragmentName Directives?
//	InlineFragment : ... TypeCondition? Directives? SelectionSet
func parseFragment(l *lexer.Lexer) ast.Selection {
	loc := l.Location()
	l.Advance(token.SPREAD)
	l.Advance(token.SPREAD)
	l.Advance(token.SPREAD)

	if l.Peek() == token.NAME && l.TokenText() != token.ON {
		name := parseName(l)
		parseDirectives(l)
		return &ast.FragmentSpread{Name: name, Loc: loc}
	}

	var typeCondition *ast.Named
	if l.Peek() == token.NAME {
		l.AdvanceKeyword(token.ON)
		typeCondition = parseNamed(l)
	}
	parseDirectives(l)
	selectionSet := parseSelectionSet(l)
	return &ast.InlineFragment{TypeCondition: typeCondition, SelectionSet: selectionSet, Loc: loc}
}

// Directives : Directive+ -- parseField keeps them on ast.Field; the other
// callers discard them. The data model has no slot for them (spec.md §3).
func parseDirectives(l *lexer.Lexer) []*ast.Directive {
	var directives []*ast.Directive
	for l.Peek() == token.AT {
		directives = append(directives, parseDirective(l))
	}
	return directives
}

// Directive : @ Name Arguments?
func parseDirective(l *lexer.Lexer) *ast.Directive {
	loc := l.Location()
	l.Advance(token.AT)
	name := parseName(l)
	d := &ast.Directive{Name: name, Loc: loc}
	if l.Peek() == token.PAREN_L {
		d.Args = parseArguments(l)
	}
	return d
}
