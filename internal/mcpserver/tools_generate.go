package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"path"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdotnet"
	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/csharp"
	"github.com/erraggy/oasdotnet/internal/emitters"
)

type generateInput struct {
	Spec            specInput      `json:"spec"                       jsonschema:"The OpenAPI document to generate the client from"`
	OutputDir       string         `json:"output_dir"                 jsonschema:"Directory to write generated files to"`
	Emitter         string         `json:"emitter,omitempty"          jsonschema:"Emitter name (default: csharp-dotnet-core)"`
	PackageName     string         `json:"package_name,omitempty"     jsonschema:"Root C# namespace (default: IO.Swagger)"`
	PackageVersion  string         `json:"package_version,omitempty"  jsonschema:"Client package version (default: 1.0.0)"`
	ClientPackage   string         `json:"client_package,omitempty"   jsonschema:"Namespace of the client support classes (default: <package_name>.Client)"`
	TargetFramework string         `json:"target_framework,omitempty" jsonschema:"Target framework moniker: net5.0, net6.0, net7.0 or net8.0 (default: net8.0)"`
	UseCsProj       *bool          `json:"use_csproj,omitempty"       jsonschema:"Also emit a .csproj project file"`
	APIDocPath      string         `json:"api_doc_path,omitempty"     jsonschema:"Folder for API docs, relative to output_dir unless absolute (default: docs)"`
	ModelDocPath    string         `json:"model_doc_path,omitempty"   jsonschema:"Folder for model docs, relative to output_dir unless absolute (default: docs)"`
	Properties      map[string]any `json:"properties,omitempty"       jsonschema:"Additional emitter properties; the named fields above take precedence"`
	Validate        bool           `json:"validate,omitempty"         jsonschema:"Validate the document first; validation errors abort generation"`
	SkipDocs        bool           `json:"skip_docs,omitempty"        jsonschema:"Do not generate API and model documentation"`
	DryRun          bool           `json:"dry_run,omitempty"          jsonschema:"Return the manifest without writing files"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success             bool                `json:"success"`
	Emitter             string              `json:"emitter"`
	OutputDir           string              `json:"output_dir"`
	Written             bool                `json:"written"`
	SourceVersion       string              `json:"source_version"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	GeneratedModels     int                 `json:"generated_models"`
	GeneratedOperations int                 `json:"generated_operations"`
	InfoCount           int                 `json:"info_count"`
	WarningCount        int                 `json:"warning_count"`
	CriticalCount       int                 `json:"critical_count"`
	Issues              []string            `json:"issues,omitempty"`
}

// properties merges the named fields over input.Properties, then fills
// package defaults from the server config.
func (in generateInput) properties() map[string]any {
	props := make(map[string]any, len(in.Properties)+8)
	maps.Copy(props, in.Properties)

	set := func(key, value string) {
		if value != "" {
			props[key] = value
		}
	}
	set(codegen.PackageNameOption, in.PackageName)
	set(codegen.PackageVersionOption, in.PackageVersion)
	set(csharp.ClientPackageOption, in.ClientPackage)
	set(codegen.TargetFrameworkOption, in.TargetFramework)
	set(csharp.APIDocPathOption, in.APIDocPath)
	set(csharp.ModelDocPathOption, in.ModelDocPath)
	if in.UseCsProj != nil {
		props[csharp.UseCsProjFileOption] = *in.UseCsProj
	}

	if _, ok := props[codegen.PackageNameOption]; !ok {
		props[codegen.PackageNameOption] = cfg.PackageName
	}
	if _, ok := props[codegen.TargetFrameworkOption]; !ok {
		props[codegen.TargetFrameworkOption] = cfg.TargetFramework
	}
	if _, ok := props[csharp.UseCsProjFileOption]; !ok && cfg.UseCsProj {
		props[csharp.UseCsProjFileOption] = true
	}
	return props
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	outputDir, err := resolveOutputDir(input.OutputDir)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	name := input.Emitter
	if name == "" {
		name = cfg.Emitter
	}
	emitter, err := emitters.Lookup(name)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	result, err := codegen.GenerateWithOptions(
		codegen.WithParsed(*parseResult),
		codegen.WithConfig(emitter),
		codegen.WithOutputDir(outputDir),
		codegen.WithAdditionalProperties(input.properties()),
		codegen.WithAPIDocs(!input.SkipDocs),
		codegen.WithModelDocs(!input.SkipDocs),
		codegen.WithConcurrency(cfg.Concurrency),
		codegen.WithValidation(input.Validate),
		codegen.WithUserAgent(oasdotnet.UserAgent()),
		codegen.WithLogger(codegen.NewSlogAdapter(slog.Default())),
	)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if cfg.OutputRoot != "" {
		if err := confineFiles(result.Files); err != nil {
			return errResult(err), generateOutput{}, nil
		}
	}

	if !input.DryRun {
		if err := result.WriteFiles(outputDir); err != nil {
			return errResult(err), generateOutput{}, nil
		}
	}

	output := generateOutput{
		Success:             result.Success,
		Emitter:             result.Emitter,
		OutputDir:           outputDir,
		Written:             !input.DryRun,
		SourceVersion:       result.SourceVersion,
		FileCount:           len(result.Files),
		GeneratedModels:     result.GeneratedModels,
		GeneratedOperations: result.GeneratedOperations,
		InfoCount:           result.InfoCount,
		WarningCount:        result.WarningCount,
		CriticalCount:       result.CriticalCount,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{Name: f.Name, Size: len(f.Content)})
	}
	output.Issues = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	return nil, output, nil
}

// confineFiles rejects files the emitter placed outside output_dir, such as
// documentation folders given as absolute or parent-relative paths.
func confineFiles(files []codegen.GeneratedFile) error {
	for _, f := range files {
		if !filepath.IsLocal(filepath.FromSlash(f.Name)) {
			return fmt.Errorf("generated file %s would be written outside output_dir", path.Base(f.Name))
		}
	}
	return nil
}
