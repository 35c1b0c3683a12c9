package codegen

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/erraggy/oastools/converter"
	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet/internal/issues"
	"github.com/erraggy/oasdotnet/internal/severity"
	"github.com/erraggy/oasdotnet/oaserrors"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates constructs that were generated in a simplified form
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates constructs that could not be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// conversionTarget is the OAS version Swagger 2.0 input is converted to before generation.
const conversionTarget = "3.0.3"

// GenerateResult contains the results of generating a client from an OpenAPI document
type GenerateResult struct {
	// Files contains all generated files, sorted by Name
	Files []GeneratedFile
	// Emitter is the name of the emitter that produced the files
	Emitter string
	// SourceVersion is the detected source OAS version string
	SourceVersion string
	// SourceOASVersion is the enumerated source OAS version
	SourceOASVersion parser.OASVersion
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// GeneratedModels is the count of models generated
	GeneratedModels int
	// GeneratedOperations is the count of operations generated
	GeneratedOperations int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found.
// Names use forward slashes, e.g. "Models/Pet.cs".
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator drives a language emitter over an OpenAPI document.
type Generator struct {
	// Config is the language emitter. Required.
	Config Config

	// OutputDir is the output folder handed to the emitter.
	// Default: "."
	OutputDir string

	// TemplateDir holds *.tmpl files that replace the emitter's embedded templates of the same name.
	TemplateDir string

	// AdditionalProperties are merged into the emitter's property bag before Configure.
	AdditionalProperties map[string]any

	// GenerateAPIDocs enables API documentation output.
	// Default: true
	GenerateAPIDocs bool

	// GenerateModelDocs enables model documentation output.
	// Default: true
	GenerateModelDocs bool

	// GenerateSupportingFiles enables the emitter's supporting files.
	// Default: true
	GenerateSupportingFiles bool

	// Concurrency bounds the number of files rendered in parallel.
	// Default: runtime.NumCPU()
	Concurrency int

	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string

	// ValidateSpec runs the OpenAPI validator before generating.
	// Default: false
	ValidateSpec bool

	// Logger receives structured logs. Default: NopLogger
	Logger Logger

	// DebugOperations and DebugModels, when set, receive a dump of the
	// operation and model graph after the emitter hooks have run.
	DebugOperations io.Writer
	DebugModels     io.Writer
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		OutputDir:               ".",
		GenerateAPIDocs:         true,
		GenerateModelDocs:       true,
		GenerateSupportingFiles: true,
		Concurrency:             runtime.NumCPU(),
		Logger:                  NopLogger{},
	}
}

// Generate loads the document at specPath (a file path or URL) and generates the client.
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	return g.load(specPath, parser.WithFilePath(specPath))
}

// GenerateBytes generates the client from an in-memory document.
func (g *Generator) GenerateBytes(data []byte) (*GenerateResult, error) {
	return g.load("<bytes>", parser.WithBytes(data))
}

func (g *Generator) load(source string, input parser.Option) (*GenerateResult, error) {
	opts := []parser.Option{input, parser.WithLogger(parserLogger{g.logger()})}
	if g.UserAgent != "" {
		opts = append(opts, parser.WithUserAgent(g.UserAgent))
	}

	parseResult, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", &oaserrors.InputError{Source: source, Message: "failed to parse document", Cause: err})
	}
	return g.GenerateParsed(*parseResult)
}

// GenerateParsed generates the client from an already-parsed document.
// Swagger 2.0 documents are converted to OAS 3.0 first.
func (g *Generator) GenerateParsed(parseResult parser.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()
	log := g.logger()

	cfg := g.Config
	if cfg == nil {
		return nil, fmt.Errorf("codegen: %w", &oaserrors.ConfigError{Option: "config", Message: "no emitter configured"})
	}
	if len(parseResult.Errors) > 0 {
		return nil, fmt.Errorf("codegen: %w", &oaserrors.InputError{
			Source:  parseResult.SourcePath,
			Message: fmt.Sprintf("document has %d parse error(s), cannot generate", len(parseResult.Errors)),
			Cause:   errors.Join(parseResult.Errors...),
		})
	}

	result := &GenerateResult{
		Emitter:          cfg.Name(),
		SourceVersion:    parseResult.Version,
		SourceOASVersion: parseResult.OASVersion,
		Issues:           make([]GenerateIssue, 0),
		LoadTime:         parseResult.LoadTime,
		SourceSize:       parseResult.SourceSize,
	}

	if g.ValidateSpec {
		if err := g.validateDocument(parseResult, result); err != nil {
			return nil, fmt.Errorf("codegen: %w", err)
		}
	}

	doc, err := g.openAPI3(parseResult, result)
	if err != nil {
		return nil, err
	}

	outputDir := g.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	cfg.SetOutputFolder(outputDir)
	props := cfg.AdditionalProperties()
	for k, v := range g.AdditionalProperties {
		props[k] = v
	}
	if err := ValidateProperties(cfg.OptionsSchema(), props); err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	if err := cfg.Configure(); err != nil {
		if errors.Is(err, oaserrors.ErrConfig) {
			return nil, fmt.Errorf("codegen: %w", err)
		}
		return nil, fmt.Errorf("codegen: %w", &oaserrors.ConfigError{Option: cfg.Name(), Message: "configure failed", Cause: err})
	}
	log.Debug("emitter configured", "emitter", cfg.Name(), "output", outputDir)

	b := newGraphBuilder(cfg, doc, log)
	models := b.buildModels()
	groups := b.buildOperations()
	result.Issues = append(result.Issues, b.issues...)
	result.GeneratedModels = len(models)
	for _, grp := range groups {
		result.GeneratedOperations += len(grp.Operations)
	}

	g.dumpGraph(groups, models)

	root, err := loadTemplates(cfg, g.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}

	jobs := g.planRenders(cfg, doc, groups, models)
	files, err := g.render(root, cfg.OutputFolder(), jobs)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	result.Files = files

	result.InfoCount, result.WarningCount, result.CriticalCount = issues.Count(result.Issues)
	result.Success = result.CriticalCount == 0
	result.GenerateTime = time.Since(startTime)

	log.Info("generation complete",
		"emitter", cfg.Name(),
		"files", len(result.Files),
		"models", result.GeneratedModels,
		"operations", result.GeneratedOperations,
		"warnings", result.WarningCount,
		"duration", result.GenerateTime)

	return result, nil
}

// openAPI3 returns the document as OAS 3.x, converting Swagger 2.0 input.
func (g *Generator) openAPI3(parseResult parser.ParseResult, result *GenerateResult) (*parser.OAS3Document, error) {
	if doc, ok := parseResult.OAS3Document(); ok {
		return doc, nil
	}
	if _, ok := parseResult.OAS2Document(); !ok {
		return nil, fmt.Errorf("codegen: %w", &oaserrors.InputError{
			Source:  parseResult.SourcePath,
			Message: fmt.Sprintf("unsupported OAS version: %s", parseResult.Version),
		})
	}

	g.logger().Info("converting document", "from", parseResult.Version, "to", conversionTarget)
	conv, err := converter.ConvertParsed(parseResult, conversionTarget)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", &oaserrors.InputError{
			Source:  parseResult.SourcePath,
			Message: "failed to convert to OAS " + conversionTarget,
			Cause:   err,
		})
	}
	doc, ok := conv.Document.(*parser.OAS3Document)
	if !ok {
		return nil, fmt.Errorf("codegen: %w", &oaserrors.InputError{
			Source:  parseResult.SourcePath,
			Message: "conversion did not produce an OAS 3 document",
		})
	}

	result.Issues = append(result.Issues, GenerateIssue{
		Path:     "openapi",
		Message:  fmt.Sprintf("converted OAS %s document to %s before generation", parseResult.Version, conversionTarget),
		Severity: SeverityInfo,
	})
	for _, ci := range conv.Issues {
		sev := SeverityInfo
		switch ci.Severity {
		case converter.SeverityCritical:
			sev = SeverityCritical
		case converter.SeverityWarning:
			sev = SeverityWarning
		}
		result.Issues = append(result.Issues, GenerateIssue{
			Path:     ci.Path,
			Message:  ci.Message,
			Severity: sev,
			Context:  "conversion",
		})
	}
	return doc, nil
}

func (g *Generator) logger() Logger {
	if g.Logger == nil {
		return NopLogger{}
	}
	return g.Logger
}
