package codegen

import (
	"fmt"
	"io"
	"maps"
	"runtime"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet/oaserrors"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	data     []byte
	parsed   *parser.ParseResult

	config                  Config
	outputDir               string
	templateDir             string
	additionalProperties    map[string]any
	generateAPIDocs         bool
	generateModelDocs       bool
	generateSupportingFiles bool
	concurrency             int
	userAgent               string
	validateSpec            bool
	logger                  Logger
	debugOperations         io.Writer
	debugModels             io.Writer
}

// GenerateWithOptions generates a client using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := codegen.GenerateWithOptions(
//	    codegen.WithFilePath("openapi.yaml"),
//	    codegen.WithConfig(csharp.New()),
//	    codegen.WithOutputDir("out"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codegen: invalid options: %w", err)
	}

	g := &Generator{
		Config:                  cfg.config,
		OutputDir:               cfg.outputDir,
		TemplateDir:             cfg.templateDir,
		AdditionalProperties:    cfg.additionalProperties,
		GenerateAPIDocs:         cfg.generateAPIDocs,
		GenerateModelDocs:       cfg.generateModelDocs,
		GenerateSupportingFiles: cfg.generateSupportingFiles,
		Concurrency:             cfg.concurrency,
		UserAgent:               cfg.userAgent,
		ValidateSpec:            cfg.validateSpec,
		Logger:                  cfg.logger,
		DebugOperations:         cfg.debugOperations,
		DebugModels:             cfg.debugModels,
	}

	// Route to appropriate generation method based on input source
	switch {
	case cfg.filePath != nil:
		return g.Generate(*cfg.filePath)
	case cfg.data != nil:
		return g.GenerateBytes(cfg.data)
	default:
		return g.GenerateParsed(*cfg.parsed)
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		outputDir:               ".",
		generateAPIDocs:         true,
		generateModelDocs:       true,
		generateSupportingFiles: true,
		concurrency:             runtime.NumCPU(),
		logger:                  NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	if cfg.filePath != nil {
		sourceCount++
	}
	if cfg.data != nil {
		sourceCount++
	}
	if cfg.parsed != nil {
		sourceCount++
	}

	if sourceCount == 0 {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "must specify an input source (use WithFilePath, WithBytes or WithParsed)"}
	}
	if sourceCount > 1 {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "must specify exactly one input source"}
	}
	if cfg.config == nil {
		return nil, &oaserrors.ConfigError{Option: "config", Message: "must specify an emitter (use WithConfig)"}
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies an in-memory document as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.data = data
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithConfig specifies the language emitter
func WithConfig(c Config) Option {
	return func(cfg *generateConfig) error {
		if c == nil {
			return &oaserrors.ConfigError{Option: "config", Message: "emitter cannot be nil"}
		}
		cfg.config = c
		return nil
	}
}

// WithOutputDir sets the output folder handed to the emitter
// Default: "."
func WithOutputDir(dir string) Option {
	return func(cfg *generateConfig) error {
		if dir == "" {
			return &oaserrors.ConfigError{Option: "outputDir", Message: "cannot be empty"}
		}
		cfg.outputDir = dir
		return nil
	}
}

// WithTemplateDir sets a directory of *.tmpl files overriding the embedded templates
func WithTemplateDir(dir string) Option {
	return func(cfg *generateConfig) error {
		cfg.templateDir = dir
		return nil
	}
}

// WithAdditionalProperties merges properties into the emitter's property bag.
// Later calls override earlier ones key by key.
func WithAdditionalProperties(props map[string]any) Option {
	return func(cfg *generateConfig) error {
		if cfg.additionalProperties == nil {
			cfg.additionalProperties = make(map[string]any, len(props))
		}
		maps.Copy(cfg.additionalProperties, props)
		return nil
	}
}

// WithLogger sets the logger
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *generateConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithAPIDocs enables or disables API documentation output
// Default: true
func WithAPIDocs(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateAPIDocs = enabled
		return nil
	}
}

// WithModelDocs enables or disables model documentation output
// Default: true
func WithModelDocs(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateModelDocs = enabled
		return nil
	}
}

// WithSupportingFiles enables or disables the emitter's supporting files
// Default: true
func WithSupportingFiles(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateSupportingFiles = enabled
		return nil
	}
}

// WithConcurrency bounds the number of files rendered in parallel
// Default: runtime.NumCPU()
func WithConcurrency(n int) Option {
	return func(cfg *generateConfig) error {
		if n < 1 {
			return &oaserrors.ConfigError{Option: "concurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *generateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithDebugOperations dumps the processed operation graph to w
func WithDebugOperations(w io.Writer) Option {
	return func(cfg *generateConfig) error {
		cfg.debugOperations = w
		return nil
	}
}

// WithDebugModels dumps the processed model graph to w
func WithDebugModels(w io.Writer) Option {
	return func(cfg *generateConfig) error {
		cfg.debugModels = w
		return nil
	}
}

// WithValidation runs the OpenAPI validator before generating. Validation
// errors fail the run; warnings are reported as issues.
// Default: false
func WithValidation(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.validateSpec = enabled
		return nil
	}
}
