package gqlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/romain-gilliotte/graphql-schema-infer/internal/ast"
)

func TestParseShorthandQuery(t *testing.T) {
	doc, err := Parse(`{ user { id name } }`)
	assert.Nil(t, err)
	assert.Len(t, doc.Definitions, 1)

	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	assert.True(t, ok)
	assert.Equal(t, ast.Query, op.Type)
	assert.Nil(t, op.Name)
	assert.Len(t, op.SelectionSet.Selections, 1)

	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "user", field.Name.Name)
	assert.Len(t, field.SelectionSet.Selections, 2)
}

func TestParseNamedOperationWithVariables(t *testing.T) {
	doc, err := Parse(`query GetUser($id: ID!, $active: Boolean = true) {
		user(id: $id, active: $active) { id }
	}`)
	assert.Nil(t, err)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, "GetUser", op.Name.Name)
	assert.Len(t, op.Vars, 2)
	assert.Equal(t, "id", op.Vars[0].Var.Name.Name)
	assert.Equal(t, "ID!", op.Vars[0].Type.String())
	assert.Equal(t, "true", op.Vars[1].DefaultValue.GetValue())

	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "$id", field.Arguments[0].Value.GetValue())
}

func TestParseListAndNonNullTypes(t *testing.T) {
	doc, err := Parse(`query Q($ids: [ID!]!) { users(ids: $ids) { id } }`)
	assert.Nil(t, err)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, "[ID!]!", op.Vars[0].Type.String())
}

func TestParseAliasAndFragments(t *testing.T) {
	doc, err := Parse(`
		query {
			u: user { ...friendFields }
			admins { ... on Admin { permissions } }
		}
		fragment friendFields on User { id name }
	`)
	assert.Nil(t, err)
	assert.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	userField := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "u", userField.Alias.Name)
	assert.Equal(t, "user", userField.Name.Name)

	spread := userField.SelectionSet.Selections[0].(*ast.FragmentSpread)
	assert.Equal(t, "friendFields", spread.Name.Name)

	adminsField := op.SelectionSet.Selections[1].(*ast.Field)
	inline := adminsField.SelectionSet.Selections[0].(*ast.InlineFragment)
	assert.Equal(t, "Admin", inline.TypeCondition.Name.Name)

	frag := doc.Definitions[1].(*ast.FragmentDefinition)
	assert.Equal(t, "friendFields", frag.Name.Name)
	assert.Equal(t, "User", frag.TypeCondition.Name.Name)
}

func TestParseLiteralValueShapes(t *testing.T) {
	doc, err := Parse(`{ items(status: ACTIVE, n: 3, f: 1.5, ok: true, tags: [1,2], meta: {k: "v"}, x: null) { id } }`)
	assert.Nil(t, err)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)

	values := make(map[string]string, len(field.Arguments))
	for _, a := range field.Arguments {
		values[a.Name.Name] = a.Value.GetValue()
	}
	assert.Equal(t, "ACTIVE", values["status"])
	assert.Equal(t, "3", values["n"])
	assert.Equal(t, "1.5", values["f"])
	assert.Equal(t, "true", values["ok"])
	assert.Equal(t, "[1,2]", values["tags"])
	assert.Equal(t, `{k:"v"}`, values["meta"])
	assert.Equal(t, "null", values["x"])
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(`{ user { `)
	assert.NotNil(t, err)
}
