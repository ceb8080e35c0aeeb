package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateTypeForcesInputKind(t *testing.T) {
	reg := New()
	t1 := reg.GetOrCreateType("Foo", Object)
	assert.Equal(t, Object, t1.Kind)

	t2 := reg.GetOrCreateType("Foo", Input)
	assert.Equal(t, Input, t2.Kind)
	assert.Same(t, t1, t2)
}

func TestObserveDeduplicatesPaths(t *testing.T) {
	reg := New()
	rec := reg.GetOrCreateType("Query", Object)
	rec.Observe("Query")
	rec.Observe("Query")
	rec.Observe("Query.user")

	assert.Equal(t, 3, rec.ObservationCount)
	assert.Equal(t, []string{"Query", "Query.user"}, rec.ObservedPaths)
}

func TestRecordValueDedupesAndCaps(t *testing.T) {
	f := &FieldRecord{}
	for _, v := range []string{"a", "b", "a", "c", "d", "e", "f"} {
		f.RecordValue(v)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, f.ObservedValues)
}

func TestSetArgumentTypeVariableIsSticky(t *testing.T) {
	f := &FieldRecord{Arguments: make(map[string]string)}
	f.SetArgumentType("id", "ID", true)
	f.SetArgumentType("id", "InferredEnum", false)
	assert.Equal(t, "ID", f.Arguments["id"])
}

func TestSetArgumentTypeVariableRefinesLiteral(t *testing.T) {
	f := &FieldRecord{Arguments: make(map[string]string)}
	f.SetArgumentType("id", "InferredEnum", false)
	f.SetArgumentType("id", "ID", true)
	assert.Equal(t, "ID", f.Arguments["id"])
}

func TestSetArgumentTypeLiteralOverwritesLiteral(t *testing.T) {
	f := &FieldRecord{Arguments: make(map[string]string)}
	f.SetArgumentType("status", "InferredFooEnum", false)
	f.SetArgumentType("status", "InferredBarEnum", false)
	assert.Equal(t, "InferredBarEnum", f.Arguments["status"])
}

func TestBuiltinScalarsNeverEnumOrTypeKeys(t *testing.T) {
	reg := New()
	for name := range BuiltinScalars {
		_, isType := reg.Types[name]
		_, isEnum := reg.Enums[name]
		assert.False(t, isType)
		assert.False(t, isEnum)
	}
}
