// Package assemble implements the Assembler stage: rendering a canonical
// SDL string from a populated registry.TypeRegistry, grounded on the
// original implementation's exact block-joining and formatting rules
// (spec.md §4.3).
package assemble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/romain-gilliotte/graphql-schema-infer/extract"
	"github.com/romain-gilliotte/graphql-schema-infer/registry"
)

// BuildSDL renders reg into a single SDL string, or the empty string if
// nothing was inferred (spec.md §4.3).
func BuildSDL(reg *registry.TypeRegistry, roots extract.RootFields) string {
	var parts []string

	for _, r := range []struct {
		name   string
		fields []string
	}{
		{"Query", roots.Query},
		{"Mutation", roots.Mutation},
		{"Subscription", roots.Subscription},
	} {
		if len(r.fields) == 0 {
			continue
		}
		if t, ok := reg.Types[r.name]; ok {
			parts = append(parts, renderType(t, r.fields))
		}
	}

	for _, t := range sortedTypes(reg) {
		if t.Name == "Query" || t.Name == "Mutation" || t.Name == "Subscription" {
			continue
		}
		if t.Kind == registry.Input {
			continue
		}
		if len(t.Fields) == 0 {
			continue
		}
		parts = append(parts, renderType(t, nil))
	}

	for _, t := range sortedTypes(reg) {
		if t.Kind != registry.Input {
			continue
		}
		if len(t.Fields) == 0 {
			continue
		}
		parts = append(parts, renderInputType(t))
	}

	for _, e := range sortedEnums(reg) {
		if len(e.Values) == 0 {
			continue
		}
		parts = append(parts, renderEnum(e))
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func sortedTypes(reg *registry.TypeRegistry) []*registry.TypeRecord {
	names := make([]string, 0, len(reg.Types))
	for name := range reg.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*registry.TypeRecord, len(names))
	for i, name := range names {
		out[i] = reg.Types[name]
	}
	return out
}

func sortedEnums(reg *registry.TypeRegistry) []*registry.EnumRecord {
	names := make([]string, 0, len(reg.Enums))
	for name := range reg.Enums {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*registry.EnumRecord, len(names))
	for i, name := range names {
		out[i] = reg.Enums[name]
	}
	return out
}

// renderType renders an object type. If fieldOrder is non-empty, those
// field names are emitted first (in that order), followed by any
// remaining fields sorted by name; otherwise all fields are sorted by
// name (spec.md §4.3 rule 1's root-field seeding).
func renderType(t *registry.TypeRecord, fieldOrder []string) string {
	var lines []string

	if t.Description != "" {
		lines = append(lines, fmt.Sprintf(`"""%s"""`, escapeDescription(t.Description)))
	}

	decl := "type " + t.Name
	if len(t.Interfaces) > 0 {
		names := make([]string, 0, len(t.Interfaces))
		for name := range t.Interfaces {
			names = append(names, name)
		}
		sort.Strings(names)
		decl += " implements " + strings.Join(names, " & ")
	}
	lines = append(lines, decl+" {")

	for _, f := range orderedFields(t, fieldOrder) {
		lines = append(lines, renderField(f))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func renderInputType(t *registry.TypeRecord) string {
	var lines []string

	if t.Description != "" {
		lines = append(lines, fmt.Sprintf(`"""%s"""`, escapeDescription(t.Description)))
	}

	lines = append(lines, "input "+t.Name+" {")
	for _, f := range orderedFields(t, nil) {
		lines = append(lines, renderField(f))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func orderedFields(t *registry.TypeRecord, fieldOrder []string) []*registry.FieldRecord {
	if len(fieldOrder) == 0 {
		names := make([]string, 0, len(t.Fields))
		for name := range t.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		out := make([]*registry.FieldRecord, len(names))
		for i, name := range names {
			out[i] = t.Fields[name]
		}
		return out
	}

	var out []*registry.FieldRecord
	seen := make(map[string]bool, len(fieldOrder))
	for _, name := range fieldOrder {
		if f, ok := t.Fields[name]; ok {
			out = append(out, f)
			seen[name] = true
		}
	}

	var remaining []string
	for name := range t.Fields {
		if !seen[name] {
			remaining = append(remaining, name)
		}
	}
	sort.Strings(remaining)
	for _, name := range remaining {
		out = append(out, t.Fields[name])
	}
	return out
}

func renderEnum(e *registry.EnumRecord) string {
	var lines []string

	if e.Description != "" {
		lines = append(lines, fmt.Sprintf(`"""%s"""`, escapeDescription(e.Description)))
	}

	lines = append(lines, "enum "+e.Name+" {")
	values := make([]string, 0, len(e.Values))
	for v := range e.Values {
		values = append(values, v)
	}
	sort.Strings(values)
	for _, v := range values {
		lines = append(lines, "  "+v)
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func renderField(f *registry.FieldRecord) string {
	var lines []string

	if f.Description != "" {
		lines = append(lines, fmt.Sprintf(`  """%s"""`, escapeDescription(f.Description)))
	}

	line := "  " + f.Name
	if len(f.Arguments) > 0 {
		names := make([]string, 0, len(f.Arguments))
		for name := range f.Arguments {
			names = append(names, name)
		}
		sort.Strings(names)

		args := make([]string, len(names))
		for i, name := range names {
			args[i] = fmt.Sprintf("%s: %s", name, f.Arguments[name])
		}
		line += "(" + strings.Join(args, ", ") + ")"
	}
	line += ": " + formatFieldType(f)

	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// formatFieldType implements spec.md §4.3's field type formatting rules.
func formatFieldType(f *registry.FieldRecord) string {
	base := f.TypeName
	if base == "" {
		base = "String"
	}

	if f.IsList {
		inner := base + "!"
		if f.IsNullable {
			return "[" + inner + "]"
		}
		return "[" + inner + "]!"
	}

	if !f.IsNullable && f.IsAlwaysPresent {
		return base + "!"
	}

	return base
}

func escapeDescription(text string) string {
	return strings.ReplaceAll(text, `"""`, `\"\"\"`)
}
