package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/romain-gilliotte/graphql-schema-infer/extract"
	"github.com/romain-gilliotte/graphql-schema-infer/registry"
)

func TestBuildSDLEmptyRegistry(t *testing.T) {
	assert.Equal(t, "", BuildSDL(registry.New(), extract.RootFields{}))
}

func TestBuildSDLBasicQueryAndObjectType(t *testing.T) {
	reg := registry.New()
	query := reg.GetOrCreateType("Query", registry.Object)
	userField := query.GetOrCreateField("user")
	userField.TypeName = "User"
	userField.IsAlwaysPresent = true
	userField.IsNullable = false

	user := reg.GetOrCreateType("User", registry.Object)
	id := user.GetOrCreateField("id")
	id.TypeName = "String"
	name := user.GetOrCreateField("name")
	name.TypeName = "String"

	sdl := BuildSDL(reg, extract.RootFields{Query: []string{"user"}})

	assert.Contains(t, sdl, "type Query {")
	assert.Contains(t, sdl, "  user: User!")
	assert.Contains(t, sdl, "type User {")
	assert.Contains(t, sdl, "  id: String")
	assert.Contains(t, sdl, "  name: String")
}

func TestBuildSDLRootFieldOrderThenAlphabetical(t *testing.T) {
	reg := registry.New()
	query := reg.GetOrCreateType("Query", registry.Object)
	query.GetOrCreateField("zeta")
	query.GetOrCreateField("alpha")
	query.GetOrCreateField("beta")

	sdl := BuildSDL(reg, extract.RootFields{Query: []string{"beta"}})

	betaIdx := indexOf(sdl, "  beta")
	alphaIdx := indexOf(sdl, "  alpha")
	zetaIdx := indexOf(sdl, "  zeta")
	assert.True(t, betaIdx < alphaIdx)
	assert.True(t, alphaIdx < zetaIdx)
}

func TestBuildSDLListAndNullabilityFormatting(t *testing.T) {
	reg := registry.New()
	query := reg.GetOrCreateType("Query", registry.Object)

	nullableList := query.GetOrCreateField("nullableList")
	nullableList.TypeName = "User"
	nullableList.IsList = true
	nullableList.IsNullable = true

	strictList := query.GetOrCreateField("strictList")
	strictList.TypeName = "User"
	strictList.IsList = true
	strictList.IsNullable = false

	sdl := BuildSDL(reg, extract.RootFields{Query: []string{"nullableList", "strictList"}})
	assert.Contains(t, sdl, "  nullableList: [User!]")
	assert.Contains(t, sdl, "  strictList: [User!]!")
}

func TestBuildSDLInputTypesAndEnums(t *testing.T) {
	reg := registry.New()
	query := reg.GetOrCreateType("Query", registry.Object)
	query.GetOrCreateField("noop")

	input := reg.GetOrCreateType("CreateUserInput", registry.Input)
	input.GetOrCreateField("name").TypeName = "String"

	enum := reg.GetOrCreateEnum("Role")
	enum.Add("ADMIN")
	enum.Add("USER")

	sdl := BuildSDL(reg, extract.RootFields{Query: []string{"noop"}})
	assert.Contains(t, sdl, "input CreateUserInput {")
	assert.Contains(t, sdl, "enum Role {")
	assert.Contains(t, sdl, "  ADMIN")
	assert.Contains(t, sdl, "  USER")
}

func TestBuildSDLDeterministicAcrossRuns(t *testing.T) {
	reg := registry.New()
	query := reg.GetOrCreateType("Query", registry.Object)
	for _, name := range []string{"c", "a", "b"} {
		query.GetOrCreateField(name)
	}
	reg.GetOrCreateEnum("Z").Add("ONE")
	reg.GetOrCreateEnum("A").Add("TWO")

	first := BuildSDL(reg, extract.RootFields{Query: []string{"c", "a", "b"}})
	second := BuildSDL(reg, extract.RootFields{Query: []string{"c", "a", "b"}})
	assert.Equal(t, first, second)
}

func TestBuildSDLSkipsTypesAndEnumsWithNoFieldsOrValues(t *testing.T) {
	reg := registry.New()
	reg.GetOrCreateType("Empty", registry.Object)
	reg.GetOrCreateEnum("EmptyEnum")

	sdl := BuildSDL(reg, extract.RootFields{})
	assert.Equal(t, "", sdl)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
