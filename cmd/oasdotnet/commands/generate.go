package commands

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"path/filepath"
	"strconv"
	"time"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet"
	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/csharp"
	"github.com/erraggy/oasdotnet/internal/cliutil"
	"github.com/erraggy/oasdotnet/internal/emitters"
)

// GenerateCmd generates a client library.
type GenerateCmd struct {
	Input       string            `short:"i" required:"" help:"OpenAPI 2.0 or 3.x document (file path or URL)." env:"OASDOTNET_INPUT"`
	Output      string            `short:"o" default:"." help:"Output directory." type:"path" env:"OASDOTNET_OUTPUT"`
	Lang        string            `short:"l" default:"${default_emitter}" help:"Emitter name (see 'list')." env:"OASDOTNET_LANG"`
	TemplateDir string            `short:"t" type:"existingdir" help:"Directory of *.tmpl files overriding the embedded templates."`
	Properties  map[string]string `short:"D" name:"property" help:"Additional property as key=value; repeatable."`
	OptionsFile string            `type:"existingfile" help:"YAML or JSON file of additional properties."`

	PackageName     string `help:"Root C# namespace." env:"OASDOTNET_PACKAGE_NAME"`
	PackageVersion  string `help:"Client package version."`
	TargetFramework string `help:"Target framework moniker (net5.0, net6.0, net7.0, net8.0)." env:"OASDOTNET_TARGET_FRAMEWORK"`
	ClientPackage   string `help:"Namespace of the client support classes."`
	UseCsproj       bool   `name:"use-csproj" help:"Also emit a .csproj project file."`
	APIDocPath      string `name:"api-doc-path" help:"Folder for API docs, relative to the output directory unless absolute."`
	ModelDocPath    string `name:"model-doc-path" help:"Folder for model docs, relative to the output directory unless absolute."`

	ValidateSpec    bool `help:"Validate the document before generating; validation errors abort the run."`
	SkipDocs        bool `help:"Do not generate API and model documentation."`
	DryRun          bool `help:"Print the files that would be generated without writing them."`
	DebugOperations bool `help:"Dump the processed operations."`
	DebugModels     bool `help:"Dump the processed models."`
	Concurrency     int  `default:"0" help:"Files rendered in parallel (0 = number of CPUs)."`

	Format string `short:"f" default:"text" enum:"text,json,yaml" help:"Report format: text, json or yaml."`
}

// generateManifest is the structured report printed with --format json|yaml.
type generateManifest struct {
	Input               string         `json:"input" yaml:"input"`
	OutputDir           string         `json:"output_dir" yaml:"output_dir"`
	Emitter             string         `json:"emitter" yaml:"emitter"`
	SourceVersion       string         `json:"source_version" yaml:"source_version"`
	Written             bool           `json:"written" yaml:"written"`
	Success             bool           `json:"success" yaml:"success"`
	GeneratedModels     int            `json:"generated_models" yaml:"generated_models"`
	GeneratedOperations int            `json:"generated_operations" yaml:"generated_operations"`
	InfoCount           int            `json:"info_count" yaml:"info_count"`
	WarningCount        int            `json:"warning_count" yaml:"warning_count"`
	CriticalCount       int            `json:"critical_count" yaml:"critical_count"`
	Issues              []string       `json:"issues,omitempty" yaml:"issues,omitempty"`
	Files               []manifestFile `json:"files" yaml:"files"`
}

type manifestFile struct {
	Path  string `json:"path" yaml:"path"`
	Bytes int    `json:"bytes" yaml:"bytes"`
}

func (c *GenerateCmd) manifest(result *codegen.GenerateResult) generateManifest {
	m := generateManifest{
		Input:               c.Input,
		OutputDir:           c.Output,
		Emitter:             result.Emitter,
		SourceVersion:       result.SourceVersion,
		Written:             !c.DryRun,
		Success:             result.Success,
		GeneratedModels:     result.GeneratedModels,
		GeneratedOperations: result.GeneratedOperations,
		InfoCount:           result.InfoCount,
		WarningCount:        result.WarningCount,
		CriticalCount:       result.CriticalCount,
		Files:               make([]manifestFile, 0, len(result.Files)),
	}
	for _, issue := range result.Issues {
		m.Issues = append(m.Issues, issue.String())
	}
	for _, f := range result.Files {
		m.Files = append(m.Files, manifestFile{Path: displayPath(c.Output, f.Name), Bytes: len(f.Content)})
	}
	return m
}

// properties layers the options file, then -D pairs, then the named flags.
func (c *GenerateCmd) properties() (map[string]any, error) {
	props := make(map[string]any)
	if c.OptionsFile != "" {
		loaded, err := codegen.LoadProperties(c.OptionsFile)
		if err != nil {
			return nil, err
		}
		maps.Copy(props, loaded)
	}
	for k, v := range c.Properties {
		props[k] = v
	}

	set := func(key, value string) {
		if value != "" {
			props[key] = value
		}
	}
	set(codegen.PackageNameOption, c.PackageName)
	set(codegen.PackageVersionOption, c.PackageVersion)
	set(codegen.TargetFrameworkOption, c.TargetFramework)
	set(csharp.ClientPackageOption, c.ClientPackage)
	set(csharp.APIDocPathOption, c.APIDocPath)
	set(csharp.ModelDocPathOption, c.ModelDocPath)
	if c.UseCsproj {
		props[csharp.UseCsProjFileOption] = true
	}
	return props, nil
}

func (c *GenerateCmd) options(logger *slog.Logger, out io.Writer) ([]codegen.Option, error) {
	emitter, err := emitters.Lookup(c.Lang)
	if err != nil {
		return nil, err
	}
	props, err := c.properties()
	if err != nil {
		return nil, err
	}

	opts := []codegen.Option{
		codegen.WithFilePath(c.Input),
		codegen.WithConfig(emitter),
		codegen.WithOutputDir(c.Output),
		codegen.WithAdditionalProperties(props),
		codegen.WithAPIDocs(!c.SkipDocs),
		codegen.WithModelDocs(!c.SkipDocs),
		codegen.WithUserAgent(oasdotnet.UserAgent()),
		codegen.WithLogger(codegen.NewSlogAdapter(logger)),
		codegen.WithValidation(c.ValidateSpec),
	}
	if c.TemplateDir != "" {
		opts = append(opts, codegen.WithTemplateDir(c.TemplateDir))
	}
	if c.Concurrency > 0 {
		opts = append(opts, codegen.WithConcurrency(c.Concurrency))
	}
	if c.DebugOperations {
		opts = append(opts, codegen.WithDebugOperations(out))
	}
	if c.DebugModels {
		opts = append(opts, codegen.WithDebugModels(out))
	}
	return opts, nil
}

// Run is called by kong when the generate command is executed.
func (c *GenerateCmd) Run(logger *slog.Logger, out io.Writer) error {
	startTime := time.Now()

	opts, err := c.options(logger, out)
	if err != nil {
		return err
	}
	result, err := codegen.GenerateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("generating client: %w", err)
	}

	if !c.DryRun {
		if err := result.WriteFiles(c.Output); err != nil {
			return fmt.Errorf("writing files: %w", err)
		}
	}

	if c.Format != FormatText && c.Format != "" {
		if err := OutputStructured(out, c.manifest(result), c.Format); err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
		}
		return nil
	}

	cliutil.Writef(out, "OpenAPI .NET Client Generator\n")
	cliutil.Writef(out, "=============================\n\n")
	cliutil.Writef(out, "oasdotnet version: %s\n", oasdotnet.Version())
	cliutil.Writef(out, "Specification: %s\n", c.Input)
	cliutil.Writef(out, "OAS Version: %s\n", result.SourceVersion)
	cliutil.Writef(out, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	cliutil.Writef(out, "Emitter: %s\n", result.Emitter)
	cliutil.Writef(out, "Models: %d\n", result.GeneratedModels)
	cliutil.Writef(out, "Operations: %d\n", result.GeneratedOperations)
	cliutil.Writef(out, "Total Time: %v\n\n", time.Since(startTime).Round(time.Millisecond))

	if len(result.Issues) > 0 {
		cliutil.Writef(out, "Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(out, "  %s\n", issue.String())
		}
		cliutil.Writef(out, "\n")
	}

	verb := "Generated"
	if c.DryRun {
		verb = "Would generate"
	}
	cliutil.Writef(out, "%s Files (%d):\n", verb, len(result.Files))
	rows := make([][]string, 0, len(result.Files))
	for _, f := range result.Files {
		rows = append(rows, []string{displayPath(c.Output, f.Name), strconv.Itoa(len(f.Content))})
	}
	cliutil.WriteTable(out, []string{"FILE", "BYTES"}, rows)
	cliutil.Writef(out, "\n")

	if !result.Success {
		cliutil.Writef(out, "✗ Generation completed with %d critical issue(s)\n", result.CriticalCount)
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}
	cliutil.Writef(out, "✓ Generation successful")
	if result.InfoCount > 0 || result.WarningCount > 0 {
		cliutil.Writef(out, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
	}
	cliutil.Writef(out, "\n")
	return nil
}

// displayPath prefixes relative file names with the output directory.
func displayPath(outputDir, name string) string {
	native := filepath.FromSlash(name)
	if filepath.IsAbs(native) || outputDir == "." {
		return native
	}
	return filepath.Join(outputDir, native)
}
