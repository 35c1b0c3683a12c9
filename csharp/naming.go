package csharp

import (
	"regexp"
	"strings"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/internal/naming"
)

// reservedWords are the C# keywords plus the locals and parameters the
// generated client methods declare.
var reservedWords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char", "checked",
	"class", "const", "continue", "decimal", "default", "delegate", "do", "double", "else",
	"enum", "event", "explicit", "extern", "false", "finally", "fixed", "float", "for",
	"foreach", "goto", "if", "implicit", "in", "int", "interface", "internal", "is", "lock",
	"long", "namespace", "new", "null", "object", "operator", "out", "override", "params",
	"private", "protected", "public", "readonly", "ref", "return", "sbyte", "sealed", "short",
	"sizeof", "stackalloc", "static", "string", "struct", "switch", "this", "throw", "true",
	"try", "typeof", "uint", "ulong", "unchecked", "unsafe", "ushort", "using", "virtual",
	"void", "volatile", "while",
	// generated code
	"ct", "localVarPath", "localVarQueryParams", "localVarHeaderParams", "localVarCookieParams",
	"localVarResponse", "localVarContent",
}

// csharpTypes maps "type/format" and "type" keys to C# types.
var csharpTypes = map[string]string{
	"string":           "string",
	"string/date-time": "DateTime",
	"string/date":      "DateTime",
	"string/uuid":      "Guid",
	"string/byte":      "byte[]",
	"string/binary":    "System.IO.Stream",
	"integer":          "int",
	"integer/int32":    "int",
	"integer/int64":    "long",
	"number":           "double",
	"number/float":     "float",
	"number/double":    "double",
	"number/decimal":   "decimal",
	"boolean":          "bool",
	"object":           "object",
	"file":             "System.IO.Stream",
}

var (
	nameReplacer = strings.NewReplacer(
		"[", "_", "]", "",
		"(", "_", ")", "",
		".", "_", "-", "_", " ", "_",
	)
	nonWordChars = regexp.MustCompile(`\W`)
)

// SanitizeName makes name a legal C# identifier fragment: brackets, dots,
// hyphens and spaces become underscores and any other non-word character is dropped.
func (c *DotnetCoreClient) SanitizeName(name string) string {
	return nonWordChars.ReplaceAllString(nameReplacer.Replace(name), "")
}

// EscapeReservedWord prefixes name with an underscore.
func (c *DotnetCoreClient) EscapeReservedWord(name string) string {
	return "_" + name
}

// ToParamName returns a camelCase parameter name. All-caps names such as
// "API_KEY" are kept. Reserved words and names starting with a digit are escaped.
func (c *DotnetCoreClient) ToParamName(name string) string {
	return c.identifier(name, true)
}

// ToVarName returns a PascalCase property name.
func (c *DotnetCoreClient) ToVarName(name string) string {
	return c.identifier(name, false)
}

func (c *DotnetCoreClient) identifier(name string, lowercaseFirst bool) string {
	name = c.SanitizeName(name)
	if naming.IsUpperSnake(name) {
		return name
	}
	name = naming.Camelize(name, lowercaseFirst)
	if c.IsReservedWord(name) || codegen.StartsWithDigit(name) {
		name = c.EscapeReservedWord(name)
	}
	return name
}

// ToModelName returns the class name for a schema.
func (c *DotnetCoreClient) ToModelName(name string) string {
	name = naming.Camelize(c.SanitizeName(name), false)
	if c.IsReservedWord(name) || codegen.StartsWithDigit(name) {
		return "Model" + name
	}
	return name
}

// ToOperationName returns the method name for an operation, without the Async suffix.
func (c *DotnetCoreClient) ToOperationName(operationID string) string {
	name := naming.Camelize(c.SanitizeName(operationID), false)
	if c.IsReservedWord(name) || codegen.StartsWithDigit(name) {
		return "Call" + name
	}
	return name
}

// ToAPIName returns "<Tag>Client", or "DefaultClient" for untagged operations.
func (c *DotnetCoreClient) ToAPIName(tag string) string {
	if tag == "" {
		return "DefaultClient"
	}
	return naming.Camelize(c.SanitizeName(tag), false) + "Client"
}

// TypeDeclaration renders the C# type for schema.
func (c *DotnetCoreClient) TypeDeclaration(schema *parser.Schema) string {
	return c.TypeMapping().Declare(schema, c.ToModelName)
}

// OnTypeDeclaration rewrites List to ArrayList.
func (c *DotnetCoreClient) OnTypeDeclaration(raw string) string {
	return RewriteCollectionToken(raw)
}
