package ast

import "strings"

// Print renders a Value back to its canonical GraphQL source form. Scalars
// and variables already carry their own source text in Value.GetValue();
// Print exists for the two composite shapes (list and object) whose source
// form is built from their children's source forms.
func Print(v Value) string {
	switch v := v.(type) {
	case *ListValue:
		parts := make([]string, len(v.Values))
		for i, elem := range v.Values {
			parts[i] = elem.GetValue()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case *ObjectValue:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.Name.Name + ":" + f.Value.GetValue()
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return v.GetValue()
	}
}
