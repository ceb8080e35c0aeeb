// Package extract implements the Extractor stage: matching each parsed
// operation with its captured response and walking the selection set in
// lockstep with the response tree to populate a registry.TypeRegistry.
package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/tidwall/gjson"

	"github.com/romain-gilliotte/graphql-schema-infer/internal/ast"
	"github.com/romain-gilliotte/graphql-schema-infer/operation"
	"github.com/romain-gilliotte/graphql-schema-infer/registry"
	"github.com/romain-gilliotte/graphql-schema-infer/trace"
)

// RootFields holds the three ordered, deduplicated root-field-name lists
// the assembler uses to seed each root type's field ordering (spec.md
// §4.3 rule 1).
type RootFields struct {
	Query        []string
	Mutation     []string
	Subscription []string
}

func (r *RootFields) add(opType ast.OperationType, name string) {
	var list *[]string
	switch opType {
	case ast.Query:
		list = &r.Query
	case ast.Mutation:
		list = &r.Mutation
	case ast.Subscription:
		list = &r.Subscription
	default:
		return
	}
	for _, existing := range *list {
		if existing == name {
			return
		}
	}
	*list = append(*list, name)
}

// Result is the Extractor's output: a populated registry plus the
// ordered root-field-name lists.
type Result struct {
	Registry   *registry.TypeRegistry
	RootFields RootFields
}

const rootTypeQuery = "Query"
const rootTypeMutation = "Mutation"
const rootTypeSubscription = "Subscription"

func rootTypeName(t ast.OperationType) string {
	switch t {
	case ast.Mutation:
		return rootTypeMutation
	case ast.Subscription:
		return rootTypeSubscription
	default:
		return rootTypeQuery
	}
}

// Extract implements spec.md §4.2 end to end: response matching, the
// parallel selection-set/response walk, argument type resolution, field
// type evidence merge, type-name resolution, and variable-derived type
// processing.
func Extract(ops []*operation.ParsedOperation, traces []trace.Trace) *Result {
	reg := registry.New()
	result := &Result{Registry: reg}
	table := buildMatchTable(traces)

	for _, op := range ops {
		data, _ := matchResponse(table, op.RawQuery)

		parentTypeName := rootTypeName(op.Type)
		parentType := reg.GetOrCreateType(parentTypeName, registry.Object)
		walkFields(op.Fields, data, parentType, parentTypeName, reg, op, true, &result.RootFields, op.Type)

		processVariables(op, reg)
	}

	return result
}

type matchEntry struct {
	request  gjson.Result
	response gjson.Result
}

// buildMatchTable prepares the candidate request/response pairs to match
// operations against (spec.md §4.2.1). Traces with undecodable bodies, an
// empty response, or a non-object response are skipped silently; they
// remain usable for the operation list (via operation.Parse) but
// contribute no response data here.
func buildMatchTable(traces []trace.Trace) []matchEntry {
	var entries []matchEntry
	for _, tr := range traces {
		reqRaw := tr.RequestBody()
		respRaw := tr.ResponseBody()
		if len(reqRaw) == 0 || len(respRaw) == 0 {
			continue
		}
		if !gjson.ValidBytes(reqRaw) {
			continue
		}
		resp := gjson.ParseBytes(respRaw)
		if !resp.IsObject() {
			continue
		}
		req := gjson.ParseBytes(reqRaw)
		entries = append(entries, matchEntry{request: req, response: resp})
	}
	return entries
}

// matchResponse finds the first request body whose parsed JSON contains
// an element (or is itself an object) with a `query` field equal to
// rawQuery, and returns that entry's `data` object (spec.md §4.2.1). The
// first match in trace order wins.
func matchResponse(entries []matchEntry, rawQuery string) (gjson.Result, bool) {
	for _, e := range entries {
		switch {
		case e.request.IsArray():
			found := false
			e.request.ForEach(func(_, v gjson.Result) bool {
				if v.Get("query").String() == rawQuery {
					found = true
					return false
				}
				return true
			})
			if found {
				return e.response.Get("data"), true
			}
		case e.request.IsObject():
			if e.request.Get("query").String() == rawQuery {
				return e.response.Get("data"), true
			}
		}
	}
	return gjson.Result{}, false
}

// walkFields implements the parallel walk (spec.md §4.2.2): recurse over
// fields and the matching response value, populating parentType's fields
// as we go.
func walkFields(
	fields []*operation.ParsedField,
	responseValue gjson.Result,
	parentType *registry.TypeRecord,
	parentPath string,
	reg *registry.TypeRegistry,
	op *operation.ParsedOperation,
	isRoot bool,
	roots *RootFields,
	opType ast.OperationType,
) {
	parentType.Observe(parentPath)

	for _, field := range fields {
		if field.Name == "__typename" {
			continue
		}
		if isRoot {
			roots.add(opType, field.Name)
		}

		value := responseValue.Get(field.ResponseKey())
		fieldRecord := parentType.GetOrCreateField(field.Name)

		mergeArguments(fieldRecord, field, parentType.Name, op.Variables, reg)

		if !value.Exists() {
			fieldRecord.IsAlwaysPresent = false
			continue
		}

		mergeTypeEvidence(fieldRecord, value, field, parentPath, reg, op)
	}
}

// mergeTypeEvidence implements spec.md §4.2.4.
func mergeTypeEvidence(fieldRecord *registry.FieldRecord, value gjson.Result, field *operation.ParsedField, parentPath string, reg *registry.TypeRegistry, op *operation.ParsedOperation) {
	childPath := parentPath + "." + field.Name

	switch {
	case value.Type == gjson.Null:
		fieldRecord.IsNullable = true

	case value.IsArray():
		fieldRecord.IsList = true
		elements := value.Array()
		if len(elements) > 5 {
			elements = elements[:5]
		}

		objectFound := false
		for _, el := range elements {
			if el.IsObject() {
				typeName := resolveTypeName(el, field, reg)
				fieldRecord.TypeName = typeName
				childType := reg.GetOrCreateType(typeName, registry.Object)
				walkFields(field.Children, el, childType, childPath, reg, op, false, nil, "")
				objectFound = true
				break
			}
		}
		if !objectFound {
			for _, el := range elements {
				if el.Type != gjson.Null {
					fieldRecord.TypeName = scalarTypeName(el)
					break
				}
			}
		}

	case value.IsObject():
		typeName := resolveTypeName(value, field, reg)
		fieldRecord.TypeName = typeName
		childType := reg.GetOrCreateType(typeName, registry.Object)
		walkFields(field.Children, value, childType, childPath, reg, op, false, nil, "")

	default:
		fieldRecord.TypeName = scalarTypeName(value)
		fieldRecord.RecordValue(value.String())
	}
}

// scalarTypeName infers a GraphQL scalar name from a gjson leaf value.
func scalarTypeName(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return "String"
	case gjson.True, gjson.False:
		return "Boolean"
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			return "Float"
		}
		return "Int"
	default:
		return "JSON"
	}
}

// resolveTypeName implements spec.md §4.2.5's priority order.
func resolveTypeName(obj gjson.Result, field *operation.ParsedField, reg *registry.TypeRegistry) string {
	if tn := obj.Get("__typename"); tn.Exists() && tn.Type == gjson.String && tn.String() != "" {
		return tn.String()
	}
	if field.TypeCondition != "" {
		return field.TypeCondition
	}
	for _, child := range field.Children {
		if child.TypeCondition != "" {
			return child.TypeCondition
		}
	}
	return pascalFallback(field.Name)
}

func pascalFallback(name string) string {
	if name == "" {
		return "Unknown"
	}
	return strcase.ToCamel(name)
}

var (
	intLiteral   = regexp.MustCompile(`^-?[0-9]+$`)
	floatLiteral = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+([eE][+-]?[0-9]+)?|[eE][+-]?[0-9]+)$`)
	bareIdent    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// mergeArguments implements spec.md §4.2.3's argument type resolution.
func mergeArguments(fieldRecord *registry.FieldRecord, field *operation.ParsedField, parentTypeName string, variables []*operation.ParsedVariable, reg *registry.TypeRegistry) {
	for argName, sourceForm := range field.Arguments {
		if strings.HasPrefix(sourceForm, "$") {
			if v := lookupVariable(variables, sourceForm[1:]); v != "" {
				fieldRecord.SetArgumentType(argName, strings.ReplaceAll(v, "!", ""), true)
				continue
			}
			// Unknown variable: fall through to literal inference below,
			// which will find no shape match for "$foo" and skip.
		}

		typeName, isEnum, ok := inferLiteralType(sourceForm)
		if !ok {
			continue
		}
		if isEnum {
			enumName := "Inferred" + strcase.ToCamel(parentTypeName) + strcase.ToCamel(field.Name) + strcase.ToCamel(argName) + "Enum"
			enum := reg.GetOrCreateEnum(enumName)
			enum.Add(sourceForm)
			fieldRecord.SetArgumentType(argName, enumName, false)
			continue
		}
		fieldRecord.SetArgumentType(argName, typeName, false)
	}
}

func lookupVariable(variables []*operation.ParsedVariable, name string) string {
	for _, v := range variables {
		if v.Name == name {
			return v.TypeName
		}
	}
	return ""
}

// inferLiteralType implements spec.md §4.2.3 rule 2: infer a type name
// from an argument's printed syntactic shape. ok is false when the form
// matches no recognized shape (e.g. a reference to an unknown variable),
// meaning the caller should skip the merge entirely.
func inferLiteralType(text string) (typeName string, isEnum bool, ok bool) {
	t := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(t, `"`):
		return "String", false, true
	case t == "true" || t == "false":
		return "Boolean", false, true
	case t == "null":
		return "JSON", false, true
	case strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]"):
		inner := strings.TrimSpace(t[1 : len(t)-1])
		if inner == "" {
			return "[JSON]", false, true
		}
		first := firstTopLevelItem(inner)
		innerType, innerIsEnum, innerOk := inferLiteralType(first)
		if innerIsEnum || !innerOk {
			innerType = "JSON"
		}
		return "[" + innerType + "]", false, true
	case strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}"):
		return "JSON", false, true
	case intLiteral.MatchString(t):
		return "Int", false, true
	case floatLiteral.MatchString(t):
		return "Float", false, true
	case bareIdent.MatchString(t):
		return "", true, true
	default:
		return "", false, false
	}
}

// firstTopLevelItem splits a comma-separated literal list body and
// returns its first element, respecting nested brackets/braces/strings
// so an item like `{k: [1,2]}` isn't split on its inner comma.
func firstTopLevelItem(body string) string {
	depth := 0
	inString := false
	for i, r := range body {
		switch {
		case r == '"' && (i == 0 || body[i-1] != '\\'):
			inString = !inString
		case inString:
			continue
		case r == '[' || r == '{':
			depth++
		case r == ']' || r == '}':
			depth--
		case r == ',' && depth == 0:
			return strings.TrimSpace(body[:i])
		}
	}
	return strings.TrimSpace(body)
}

// processVariables implements spec.md §4.2.6: after each operation's
// walk, derive input types and enums from variables' observed values.
func processVariables(op *operation.ParsedOperation, reg *registry.TypeRegistry) {
	for _, v := range op.Variables {
		if !v.HasObserved || v.ObservedValue == nil {
			continue
		}

		base := stripAllModifiers(v.TypeName)
		if registry.BuiltinScalars[base] {
			continue
		}

		val := v.ObservedValue
		if list, ok := val.([]interface{}); ok {
			if len(list) == 0 {
				continue
			}
			val = list[0]
		}

		switch vv := val.(type) {
		case string:
			reg.GetOrCreateEnum(base).Add(vv)
		case map[string]interface{}:
			processInputType(base, vv, reg)
		}
	}
}

var modifierChars = regexp.MustCompile(`[!\[\]]`)

func stripAllModifiers(typeName string) string {
	return modifierChars.ReplaceAllString(typeName, "")
}

// processInputType implements spec.md §4.2.6's recursive, monotonic
// input-type processing.
func processInputType(typeName string, obj map[string]interface{}, reg *registry.TypeRegistry) {
	rec := reg.GetOrCreateType(typeName, registry.Input)

	for key, val := range obj {
		field := rec.GetOrCreateField(key)
		switch vv := val.(type) {
		case nil:
			field.IsNullable = true
		case string:
			field.TypeName = "String"
			field.RecordValue(vv)
		case bool:
			field.TypeName = "Boolean"
		case float64:
			if vv == math.Trunc(vv) {
				field.TypeName = "Int"
			} else {
				field.TypeName = "Float"
			}
		case []interface{}:
			field.IsList = true
			if len(vv) > 0 {
				switch first := vv[0].(type) {
				case string:
					field.TypeName = "String"
				case bool:
					field.TypeName = "Boolean"
				case float64:
					if first == math.Trunc(first) {
						field.TypeName = "Int"
					} else {
						field.TypeName = "Float"
					}
				}
			}
		case map[string]interface{}:
			nestedName := strcase.ToCamel(key) + "Input"
			field.TypeName = nestedName
			processInputType(nestedName, vv, reg)
		}
	}
}
