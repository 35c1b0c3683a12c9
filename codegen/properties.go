package codegen

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	"github.com/erraggy/oasdotnet/oaserrors"
)

const optionsSchemaURL = "options.schema.json"

// ValidateProperties checks props against a JSON Schema document.
// A nil or empty schema accepts everything.
func ValidateProperties(schema []byte, props map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(optionsSchemaURL, bytes.NewReader(schema)); err != nil {
		return &oaserrors.ConfigError{Option: "optionsSchema", Message: "invalid options schema", Cause: err}
	}
	compiled, err := compiler.Compile(optionsSchemaURL)
	if err != nil {
		return &oaserrors.ConfigError{Option: "optionsSchema", Message: "invalid options schema", Cause: err}
	}

	if props == nil {
		props = map[string]any{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return &oaserrors.ConfigError{Option: "additionalProperties", Message: "properties are not JSON serializable", Cause: err}
	}
	doc, err := decodeJSON(raw)
	if err != nil {
		return &oaserrors.ConfigError{Option: "additionalProperties", Cause: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &oaserrors.ConfigError{Option: "additionalProperties", Message: "invalid emitter options", Cause: err}
	}
	return nil
}

// LoadProperties reads additional properties from a YAML or JSON file.
// Numbers are kept as json.Number.
func LoadProperties(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "optionsFile", Value: path, Cause: err}
	}
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "optionsFile", Value: path, Message: "invalid YAML or JSON", Cause: err}
	}
	doc, err := decodeJSON(raw)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "optionsFile", Value: path, Cause: err}
	}
	if doc == nil {
		return map[string]any{}, nil
	}
	props, ok := doc.(map[string]any)
	if !ok {
		return nil, &oaserrors.ConfigError{Option: "optionsFile", Value: path, Message: "top level must be a mapping"}
	}
	return props, nil
}

func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
