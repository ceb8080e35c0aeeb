// Package registry is the inference pipeline's accumulator: a
// TypeRegistry mutated exclusively by the extractor and later consumed
// read-only by the assembler. Every mutation method here is
// append-only/monotonic per spec.md §3 invariant 2.
package registry

// Built-in scalar names: never appear as keys in Enums or as an
// object/input TypeRecord (spec.md §3 invariant 4).
var BuiltinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
	"JSON":    true,
}

// TypeRegistry is the mutable accumulator populated by extract.Extract
// and rendered by assemble.BuildSDL.
type TypeRegistry struct {
	Types map[string]*TypeRecord
	Enums map[string]*EnumRecord
}

func New() *TypeRegistry {
	return &TypeRegistry{
		Types: make(map[string]*TypeRecord),
		Enums: make(map[string]*EnumRecord),
	}
}

// Kind distinguishes an object type from an input type.
type Kind string

const (
	Object Kind = "object"
	Input  Kind = "input"
)

// TypeRecord describes one object or input type witnessed in traffic.
type TypeRecord struct {
	Name             string
	Kind             Kind
	Fields           map[string]*FieldRecord
	Interfaces       map[string]bool
	ObservedPaths    []string
	Description      string
	ObservationCount int
}

// GetOrCreateType fetches the named TypeRecord, creating it with the
// given kind if absent. If kind is Input and an existing record was
// Object, the kind is forced to Input (spec.md §4.2.6: "force the kind
// even if an object record by the same name previously existed").
func (r *TypeRegistry) GetOrCreateType(name string, kind Kind) *TypeRecord {
	t, ok := r.Types[name]
	if !ok {
		t = &TypeRecord{
			Name:       name,
			Kind:       kind,
			Fields:     make(map[string]*FieldRecord),
			Interfaces: make(map[string]bool),
		}
		r.Types[name] = t
		return t
	}
	if kind == Input {
		t.Kind = Input
	}
	return t
}

// Observe bumps the observation count and records parent_path if new.
func (t *TypeRecord) Observe(path string) {
	t.ObservationCount++
	for _, p := range t.ObservedPaths {
		if p == path {
			return
		}
	}
	t.ObservedPaths = append(t.ObservedPaths, path)
}

// GetOrCreateField fetches the named FieldRecord, creating it with
// IsNullable defaulting true and IsAlwaysPresent defaulting true (per
// spec.md §3's FieldRecord description; both fields may only ever be
// monotonically refined thereafter).
func (t *TypeRecord) GetOrCreateField(name string) *FieldRecord {
	f, ok := t.Fields[name]
	if !ok {
		f = &FieldRecord{
			Name:           name,
			IsNullable:     true,
			IsAlwaysPresent: true,
			Arguments:      make(map[string]string),
		}
		t.Fields[name] = f
	}
	return f
}

// FieldRecord describes one field witnessed on a TypeRecord.
type FieldRecord struct {
	Name            string
	TypeName        string
	IsList          bool
	IsNullable      bool
	IsAlwaysPresent bool
	Arguments       map[string]string
	ObservedValues  []string
	Description     string

	// argFromVar tracks, per argument name, whether Arguments[name] was
	// last set from a variable reference. A variable-derived type is
	// sticky: it is never overwritten by a later literal-derived type
	// (spec.md §4.2.3's merge rule).
	argFromVar map[string]bool
}

// SetArgumentType merges a newly observed argument type under spec.md
// §4.2.3's sticky precedence: once resolved from a variable reference, an
// argument's type is never overwritten by a literal-derived type. A
// literal-derived type may still be refined by a later variable-derived
// type; otherwise later observations overwrite.
func (f *FieldRecord) SetArgumentType(name, typeName string, fromVariable bool) {
	if f.argFromVar == nil {
		f.argFromVar = make(map[string]bool)
	}
	if _, ok := f.Arguments[name]; ok && f.argFromVar[name] && !fromVariable {
		return
	}
	f.Arguments[name] = typeName
	f.argFromVar[name] = fromVariable
}

const maxObservedValues = 5

// RecordValue appends a deduplicated sample value, capped at 5
// (spec.md §5 resource bounds).
func (f *FieldRecord) RecordValue(v string) {
	for _, existing := range f.ObservedValues {
		if existing == v {
			return
		}
	}
	if len(f.ObservedValues) >= maxObservedValues {
		return
	}
	f.ObservedValues = append(f.ObservedValues, v)
}

// EnumRecord describes one enum witnessed from an argument literal or a
// variable-derived scalar value.
type EnumRecord struct {
	Name        string
	Values      map[string]bool
	Description string
}

// GetOrCreateEnum fetches the named EnumRecord, creating it if absent.
func (r *TypeRegistry) GetOrCreateEnum(name string) *EnumRecord {
	e, ok := r.Enums[name]
	if !ok {
		e = &EnumRecord{Name: name, Values: make(map[string]bool)}
		r.Enums[name] = e
	}
	return e
}

// Add inserts a value into the enum's value set.
func (e *EnumRecord) Add(value string) {
	e.Values[value] = true
}
