package codegen

import (
	"fmt"
	"strings"

	"github.com/erraggy/oastools/parser"
)

// TypeMapping describes how schema types render in a target language.
type TypeMapping struct {
	// Types maps "type/format" or "type" to a language type, e.g. "integer/int64" -> "long".
	// The "type/format" key is tried first.
	Types map[string]string
	// Array is the generic list container, rendered as Array<Item>
	Array string
	// Map is the generic dictionary container, rendered as Map<MapKey, Value>
	Map    string
	MapKey string
	// Fallback is used for inline objects, composed schemas and unknown types
	Fallback string
}

// Declare renders the type declaration for schema. Named references are
// rendered through modelName.
func (m TypeMapping) Declare(schema *parser.Schema, modelName func(string) string) string {
	if schema == nil {
		return m.Fallback
	}
	if schema.Ref != "" {
		return modelName(RefName(schema.Ref))
	}
	// allOf: [{$ref}] is the usual way to attach a description to a reference.
	if len(schema.AllOf) == 1 && len(schema.Properties) == 0 {
		return m.Declare(schema.AllOf[0], modelName)
	}

	typ := SchemaType(schema)
	switch {
	case typ == "array" || (typ == "" && schema.Items != nil):
		item, _ := schema.Items.(*parser.Schema)
		return fmt.Sprintf("%s<%s>", m.Array, m.Declare(item, modelName))
	case (typ == "object" || typ == "") && len(schema.Properties) == 0 && schema.AdditionalProperties != nil:
		value := m.Fallback
		if ap, ok := schema.AdditionalProperties.(*parser.Schema); ok {
			value = m.Declare(ap, modelName)
		}
		return fmt.Sprintf("%s<%s, %s>", m.Map, m.MapKey, value)
	}

	if schema.Format != "" {
		if t, ok := m.Types[typ+"/"+schema.Format]; ok {
			return t
		}
	}
	if t, ok := m.Types[typ]; ok {
		return t
	}
	return m.Fallback
}

// SchemaType returns the schema's type keyword. For OAS 3.1 type arrays the
// first non-null entry is returned.
func SchemaType(schema *parser.Schema) string {
	if schema == nil {
		return ""
	}
	switch t := schema.Type.(type) {
	case string:
		return t
	case []string:
		for _, s := range t {
			if s != "null" {
				return s
			}
		}
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

// RefName returns the last segment of a JSON reference:
// "#/components/schemas/Pet" -> "Pet".
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
