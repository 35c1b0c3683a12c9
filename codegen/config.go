package codegen

import (
	"io/fs"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet/lambda"
)

// FileKind selects between API and model output.
type FileKind int

const (
	// KindAPI selects API client classes and their documentation.
	KindAPI FileKind = iota
	// KindModel selects model classes and their documentation.
	KindModel
)

// String returns "api" or "model".
func (k FileKind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindModel:
		return "model"
	default:
		return "unknown"
	}
}

// Tag classifies what an emitter produces.
type Tag string

const (
	TagClient        Tag = "client"
	TagServer        Tag = "server"
	TagDocumentation Tag = "documentation"
)

// Well-known additional property names shared by emitters.
const (
	PackageNameOption     = "packageName"
	PackageVersionOption  = "packageVersion"
	TargetFrameworkOption = "targetFramework"
	APIPackageOption      = "apiPackage"
	ModelPackageOption    = "modelPackage"
)

// CliOption describes an emitter option for help output.
type CliOption struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
}

// SupportingFile is a template rendered once per run, outside the API and model loops.
type SupportingFile struct {
	// Template is the template file name, e.g. "README.tmpl"
	Template string
	// Folder is relative to the output folder; empty means the output folder itself
	Folder string
	// Destination is the output file name
	Destination string
}

// Config is the contract between the generation engine and a language emitter.
//
// The engine calls the hooks in a fixed order on a single goroutine:
// Configure once, OnTypeDeclaration for every rendered type, OnOperation for
// every operation in document order, then the folder resolvers while naming
// output files. Embedding DefaultConfig supplies every method; emitters
// override the ones they need.
type Config interface {
	lambda.Emitter

	// Name is the short emitter name used on the command line.
	Name() string
	// Help is a one-line description of the emitter.
	Help() string
	// Tag classifies the emitter.
	Tag() Tag

	// Configure processes the additional properties for a run.
	Configure() error
	// OnOperation post-processes one operation.
	OnOperation(op *Operation)
	// OnTypeDeclaration rewrites a rendered type declaration.
	OnTypeDeclaration(raw string) string
	// ResolveCodeFolder returns the folder for generated API or model sources.
	ResolveCodeFolder(kind FileKind) string
	// ResolveDocFolder returns the folder for generated API or model docs.
	ResolveDocFolder(kind FileKind) string

	// TypeDeclaration renders the emitter's type for a schema.
	TypeDeclaration(schema *parser.Schema) string
	ToVarName(name string) string
	ToModelName(name string) string
	ToAPIName(tag string) string
	ToOperationName(operationID string) string

	OutputFolder() string
	SetOutputFolder(dir string)
	// AdditionalProperties is the live property bag shared with templates.
	AdditionalProperties() map[string]any
	// TemplateFiles maps template file names to output suffixes.
	TemplateFiles(kind FileKind) map[string]string
	// DocTemplateFiles maps documentation template file names to output suffixes.
	DocTemplateFiles(kind FileKind) map[string]string
	SupportingFiles() []SupportingFile
	CliOptions() []CliOption
	// Templates holds the emitter's embedded templates.
	Templates() fs.FS
	// Lambdas are exposed to templates as functions under their map keys.
	Lambdas() map[string]lambda.Lambda
	// OptionsSchema is a JSON Schema for the additional properties, or nil.
	OptionsSchema() []byte
}
