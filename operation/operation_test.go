package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/romain-gilliotte/graphql-schema-infer/internal/ast"
	"github.com/romain-gilliotte/graphql-schema-infer/trace"
)

func TestParseBasicQuery(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"{ user { id name } }"}`)},
	})
	assert.Len(t, ops, 1)
	assert.Equal(t, ast.Query, ops[0].Type)
	assert.Len(t, ops[0].Fields, 1)
	assert.Equal(t, "user", ops[0].Fields[0].Name)
	assert.Len(t, ops[0].Fields[0].Children, 2)
}

func TestParseAnonymousOperationNaming(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"{ user { id } posts { title } }"}`)},
	})
	assert.Len(t, ops, 1)
	assert.Equal(t, "AnonymousQuery_User_Posts", ops[0].Name)
}

func TestParseAnonymousMutationSkipsTypename(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"mutation { __typename createUser { id } }"}`)},
	})
	assert.Len(t, ops, 1)
	assert.Equal(t, "AnonymousMutation_Createuser", ops[0].Name)
}

func TestParseVariablesAndObservedValues(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"query Q($id: ID!) { user(id: $id) { id } }","variables":{"id":"42"}}`)},
	})
	assert.Len(t, ops, 1)
	assert.Equal(t, "Q", ops[0].Name)
	assert.Len(t, ops[0].Variables, 1)
	assert.Equal(t, "id", ops[0].Variables[0].Name)
	assert.Equal(t, "ID!", ops[0].Variables[0].TypeName)
	assert.Equal(t, "42", ops[0].Variables[0].ObservedValue)
	assert.Equal(t, "$id", ops[0].Fields[0].Arguments["id"])
}

func TestParseFragmentSpreadStampsTypeCondition(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"query { user { ...friendFields } } fragment friendFields on User { id name }"}`)},
	})
	assert.Len(t, ops, 1)
	userField := ops[0].Fields[0]
	assert.Len(t, userField.Children, 2)
	assert.Equal(t, "User", userField.Children[0].TypeCondition)
	assert.Contains(t, ops[0].FragmentNames, "friendFields")
}

func TestParseInlineFragment(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"{ admins { ... on Admin { permissions } } }"}`)},
	})
	field := ops[0].Fields[0].Children[0]
	assert.Equal(t, "permissions", field.Name)
	assert.Equal(t, "Admin", field.TypeCondition)
}

func TestParseBatchRequest(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`[{"query":"query A { user { id } }"},{"query":"query B { posts { title } }"}]`)},
	})
	assert.Len(t, ops, 2)
	assert.Equal(t, "A", ops[0].Name)
	assert.Equal(t, "B", ops[1].Name)
}

func TestParseSkipsSyntaxErrorAndPersistedQuery(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"{ user { "}`)},
		&trace.Record{Request: []byte(`{"variables":{"id":1}}`)},
		&trace.Record{Request: []byte(`not json`)},
		&trace.Record{},
	})
	assert.Empty(t, ops)
}

func TestParseOperationNameSelectsFromMultiOperationDocument(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"query A { a } query B { b }","operationName":"B"}`)},
	})
	assert.Len(t, ops, 1)
	assert.Equal(t, "B", ops[0].Name)
}

func TestAliasedFieldResponseKey(t *testing.T) {
	ops := Parse([]trace.Trace{
		&trace.Record{Request: []byte(`{"query":"{ x: user { id } }"}`)},
	})
	field := ops[0].Fields[0]
	assert.Equal(t, "user", field.Name)
	assert.Equal(t, "x", field.Alias)
	assert.Equal(t, "x", field.ResponseKey())
}
