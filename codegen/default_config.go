package codegen

import (
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet/internal/naming"
	"github.com/erraggy/oasdotnet/lambda"
)

var illegalIdentifierChars = regexp.MustCompile(`[^\w]`)

// DefaultConfig is the base implementation of Config that emitters embed.
//
// Its tables are filled at construction through the Set*/Add* methods and
// treated as read-only once generation starts.
type DefaultConfig struct {
	outputFolder          string
	additionalProperties  map[string]any
	templateFiles         map[FileKind]map[string]string
	docTemplateFiles      map[FileKind]map[string]string
	supportingFiles       []SupportingFile
	cliOptions            []CliOption
	reservedWords         map[string]struct{}
	reservedCaseSensitive bool
	templates             fs.FS
	lambdas               map[string]lambda.Lambda
	typeMapping           TypeMapping
	optionsSchema         []byte
}

// NewDefaultConfig returns a DefaultConfig with empty tables, the output
// folder set to "." and the casing lambdas registered.
func NewDefaultConfig() DefaultConfig {
	return DefaultConfig{
		outputFolder:         ".",
		additionalProperties: make(map[string]any),
		templateFiles:        map[FileKind]map[string]string{KindAPI: {}, KindModel: {}},
		docTemplateFiles:     map[FileKind]map[string]string{KindAPI: {}, KindModel: {}},
		reservedWords:        make(map[string]struct{}),
		lambdas: map[string]lambda.Lambda{
			"lowercase":  lambda.Lowercase,
			"uppercase":  lambda.Uppercase,
			"titlecase":  lambda.Titlecase,
			"camelcase":  lambda.CamelCase,
			"pascalcase": lambda.NewPascalCase(),
		},
		typeMapping: TypeMapping{
			Types: map[string]string{
				"string":  "String",
				"integer": "Integer",
				"number":  "Number",
				"boolean": "Boolean",
			},
			Array:    "List",
			Map:      "Map",
			MapKey:   "String",
			Fallback: "Object",
		},
	}
}

// Name implements Config.
func (d *DefaultConfig) Name() string { return "default" }

// Help implements Config.
func (d *DefaultConfig) Help() string { return "" }

// Tag implements Config.
func (d *DefaultConfig) Tag() Tag { return TagClient }

// Configure implements Config. The base implementation has nothing to process.
func (d *DefaultConfig) Configure() error { return nil }

// OnOperation implements Config by running ProcessOperation.
func (d *DefaultConfig) OnOperation(op *Operation) {
	d.ProcessOperation(op)
}

// ProcessOperation is the base per-operation processing. It seeds x-has-more
// on parameters that do not carry it yet and splits AllParams into
// RequiredParams and OptionalParams. Secondary parameters are optional.
func (d *DefaultConfig) ProcessOperation(op *Operation) {
	op.RequiredParams = op.RequiredParams[:0]
	op.OptionalParams = op.OptionalParams[:0]
	for i, p := range op.AllParams {
		if _, ok := p.VendorExtensions[VendorHasMore]; !ok {
			p.SetHasMore(i < len(op.AllParams)-1)
		}
		if p.Required && !p.Secondary {
			op.RequiredParams = append(op.RequiredParams, p)
		} else {
			op.OptionalParams = append(op.OptionalParams, p)
		}
	}
}

// OnTypeDeclaration implements Config and returns raw unchanged.
func (d *DefaultConfig) OnTypeDeclaration(raw string) string { return raw }

// ResolveCodeFolder implements Config: <output>/api or <output>/model.
func (d *DefaultConfig) ResolveCodeFolder(kind FileKind) string {
	return d.outputFolder + string(filepath.Separator) + kind.String()
}

// ResolveDocFolder implements Config: <output>/docs.
func (d *DefaultConfig) ResolveDocFolder(_ FileKind) string {
	return d.outputFolder + string(filepath.Separator) + "docs"
}

// TypeDeclaration implements Config using the configured TypeMapping.
func (d *DefaultConfig) TypeDeclaration(schema *parser.Schema) string {
	return d.typeMapping.Declare(schema, d.ToModelName)
}

// SanitizeName implements lambda.Emitter. Characters outside [A-Za-z0-9_] become "_".
func (d *DefaultConfig) SanitizeName(name string) string {
	return illegalIdentifierChars.ReplaceAllString(name, "_")
}

// IsReservedWord implements lambda.Emitter.
func (d *DefaultConfig) IsReservedWord(name string) bool {
	if !d.reservedCaseSensitive {
		name = strings.ToLower(name)
	}
	_, ok := d.reservedWords[name]
	return ok
}

// EscapeReservedWord implements lambda.Emitter by prefixing "_".
func (d *DefaultConfig) EscapeReservedWord(name string) string {
	return "_" + name
}

// ToParamName implements lambda.Emitter: camelCase, escaped when reserved.
func (d *DefaultConfig) ToParamName(name string) string {
	name = naming.Camelize(d.SanitizeName(name), true)
	if d.IsReservedWord(name) {
		return d.EscapeReservedWord(name)
	}
	return name
}

// ToVarName implements Config: PascalCase, escaped when reserved.
func (d *DefaultConfig) ToVarName(name string) string {
	name = naming.Camelize(d.SanitizeName(name), false)
	if d.IsReservedWord(name) {
		return d.EscapeReservedWord(name)
	}
	return name
}

// ToModelName implements Config.
func (d *DefaultConfig) ToModelName(name string) string {
	return naming.Camelize(d.SanitizeName(name), false)
}

// ToAPIName implements Config: "<Tag>Api", or "DefaultApi" without a tag.
func (d *DefaultConfig) ToAPIName(tag string) string {
	if tag == "" {
		return "DefaultApi"
	}
	return naming.Camelize(d.SanitizeName(tag), false) + "Api"
}

// ToOperationName implements Config: camelCase of the sanitized operationId.
func (d *DefaultConfig) ToOperationName(operationID string) string {
	return naming.Camelize(d.SanitizeName(operationID), true)
}

// OutputFolder implements Config.
func (d *DefaultConfig) OutputFolder() string { return d.outputFolder }

// SetOutputFolder implements Config.
func (d *DefaultConfig) SetOutputFolder(dir string) { d.outputFolder = dir }

// AdditionalProperties implements Config.
func (d *DefaultConfig) AdditionalProperties() map[string]any { return d.additionalProperties }

// TemplateFiles implements Config.
func (d *DefaultConfig) TemplateFiles(kind FileKind) map[string]string {
	return maps.Clone(d.templateFiles[kind])
}

// DocTemplateFiles implements Config.
func (d *DefaultConfig) DocTemplateFiles(kind FileKind) map[string]string {
	return maps.Clone(d.docTemplateFiles[kind])
}

// SupportingFiles implements Config.
func (d *DefaultConfig) SupportingFiles() []SupportingFile {
	return append([]SupportingFile(nil), d.supportingFiles...)
}

// CliOptions implements Config.
func (d *DefaultConfig) CliOptions() []CliOption {
	return append([]CliOption(nil), d.cliOptions...)
}

// Templates implements Config.
func (d *DefaultConfig) Templates() fs.FS { return d.templates }

// Lambdas implements Config.
func (d *DefaultConfig) Lambdas() map[string]lambda.Lambda { return maps.Clone(d.lambdas) }

// OptionsSchema implements Config.
func (d *DefaultConfig) OptionsSchema() []byte { return d.optionsSchema }

// SetTemplateFile maps a template to an output suffix for kind.
func (d *DefaultConfig) SetTemplateFile(kind FileKind, template, suffix string) {
	d.templateFiles[kind][template] = suffix
}

// SetDocTemplateFile maps a documentation template to an output suffix for kind.
func (d *DefaultConfig) SetDocTemplateFile(kind FileKind, template, suffix string) {
	d.docTemplateFiles[kind][template] = suffix
}

// AddSupportingFile appends a supporting file.
func (d *DefaultConfig) AddSupportingFile(f SupportingFile) {
	d.supportingFiles = append(d.supportingFiles, f)
}

// ResetSupportingFiles removes all supporting files.
func (d *DefaultConfig) ResetSupportingFiles() {
	d.supportingFiles = nil
}

// AddCliOption appends a CLI option.
func (d *DefaultConfig) AddCliOption(o CliOption) {
	d.cliOptions = append(d.cliOptions, o)
}

// ClearCliOptions removes all CLI options.
func (d *DefaultConfig) ClearCliOptions() {
	d.cliOptions = nil
}

// SetReservedWords replaces the reserved word set.
func (d *DefaultConfig) SetReservedWords(words []string, caseSensitive bool) {
	d.reservedCaseSensitive = caseSensitive
	d.reservedWords = make(map[string]struct{}, len(words))
	for _, w := range words {
		if !caseSensitive {
			w = strings.ToLower(w)
		}
		d.reservedWords[w] = struct{}{}
	}
}

// RegisterLambda exposes l to templates as a function called name.
func (d *DefaultConfig) RegisterLambda(name string, l lambda.Lambda) {
	d.lambdas[name] = l
}

// SetTemplates sets the embedded template file system.
func (d *DefaultConfig) SetTemplates(fsys fs.FS) { d.templates = fsys }

// SetTypeMapping sets the mapping used by TypeDeclaration.
func (d *DefaultConfig) SetTypeMapping(m TypeMapping) { d.typeMapping = m }

// TypeMapping returns the mapping used by TypeDeclaration.
func (d *DefaultConfig) TypeMapping() TypeMapping { return d.typeMapping }

// SetOptionsSchema sets the JSON Schema used to validate additional properties.
func (d *DefaultConfig) SetOptionsSchema(schema []byte) { d.optionsSchema = schema }

// StringProperty returns the additional property key as a string, or def when unset.
func (d *DefaultConfig) StringProperty(key, def string) string {
	v, ok := d.additionalProperties[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// BoolProperty reports whether the additional property key is true.
// Strings are parsed with strconv.ParseBool; anything unparsable is false.
func (d *DefaultConfig) BoolProperty(key string) bool {
	switch v := d.additionalProperties[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		return false
	}
}

// StartsWithDigit reports whether name begins with a decimal digit.
func StartsWithDigit(name string) bool {
	for _, r := range name {
		return unicode.IsDigit(r)
	}
	return false
}
