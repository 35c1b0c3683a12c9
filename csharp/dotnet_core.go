package csharp

import (
	"embed"
	"io/fs"
	"maps"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdotnet"
	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/lambda"
	"github.com/erraggy/oasdotnet/oaserrors"
)

// Name is the registry name of the emitter.
const Name = "csharp-dotnet-core"

// Additional properties read or written by Configure.
const (
	ClientPackageOption         = "clientPackage"
	GeneratorVersionOption      = "generatorVersion"
	APIDocPathOption            = "apiDocPath"
	ModelDocPathOption          = "modelDocPath"
	ExceptionTypeNameOption     = "exceptionTypeName"
	APIClientBaseTypeNameOption = "apiClientBaseTypeName"
	SystemTextJSONVersionOption = "systemTextJsonVersion"
	UseCsProjFileOption         = "useCsProjFile"
)

// Defaults.
const (
	DefaultPackageName           = "IO.Swagger"
	DefaultPackageVersion        = "1.0.0"
	DefaultTargetFramework       = "net8.0"
	DefaultSystemTextJSONVersion = "8.0.3"
	DefaultDocPath               = "docs"

	// CancellationTokenType is the type of the parameter appended to every operation.
	CancellationTokenType = "CancellationToken"
	// CancellationTokenName is its name.
	CancellationTokenName = "ct"

	fallbackGeneratorVersion = "1.0"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed options.schema.json
var optionsSchema []byte

// DotnetCoreClient emits a C# client library for .NET Core.
type DotnetCoreClient struct {
	codegen.DefaultConfig

	packageName           string
	packageVersion        string
	clientPackage         string
	systemTextJSONVersion string
	frameworkVersions     map[string]string
}

var _ codegen.Config = (*DotnetCoreClient)(nil)

// New returns a DotnetCoreClient with its templates, options, reserved words
// and type mapping registered.
func New() *DotnetCoreClient {
	c := &DotnetCoreClient{
		DefaultConfig:         codegen.NewDefaultConfig(),
		packageName:           DefaultPackageName,
		packageVersion:        DefaultPackageVersion,
		systemTextJSONVersion: DefaultSystemTextJSONVersion,
		frameworkVersions: map[string]string{
			"net8.0": "8.0.3",
			"net7.0": "7.0.4",
			"net6.0": "6.0.9",
			"net5.0": "5.0.2",
		},
	}

	c.SetTemplateFile(codegen.KindModel, "model.tmpl", ".cs")
	c.SetTemplateFile(codegen.KindAPI, "api.tmpl", ".cs")
	c.SetDocTemplateFile(codegen.KindModel, "model_doc.tmpl", ".md")
	c.SetDocTemplateFile(codegen.KindAPI, "api_doc.tmpl", ".md")

	templates, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	c.SetTemplates(templates)
	c.SetOptionsSchema(optionsSchema)

	c.SetReservedWords(reservedWords, true)
	c.SetTypeMapping(codegen.TypeMapping{
		Types:    maps.Clone(csharpTypes),
		Array:    "List",
		Map:      "Dictionary",
		MapKey:   "string",
		Fallback: "object",
	})

	c.ClearCliOptions()
	c.AddCliOption(codegen.CliOption{
		Name:        codegen.PackageNameOption,
		Description: "C# package name (convention: Camel.Case).",
		Default:     DefaultPackageName,
	})
	c.AddCliOption(codegen.CliOption{
		Name:        codegen.TargetFrameworkOption,
		Description: "The target .NET framework version.",
		Default:     DefaultTargetFramework,
	})
	c.AddCliOption(codegen.CliOption{
		Name:        codegen.PackageVersionOption,
		Description: "C# package version.",
		Default:     DefaultPackageVersion,
	})

	c.RegisterLambda("pascalcase", lambda.NewPascalCase().Generator(c))
	c.RegisterLambda("paramName", lambda.NewPascalCase().Generator(c).EscapeAsParamName(true))
	return c
}

// Name implements codegen.Config.
func (c *DotnetCoreClient) Name() string { return Name }

// Help implements codegen.Config.
func (c *DotnetCoreClient) Help() string { return "Generates a C# dotnet Core client library." }

// Tag implements codegen.Config.
func (c *DotnetCoreClient) Tag() codegen.Tag { return codegen.TagClient }

// PackageName returns the root namespace.
func (c *DotnetCoreClient) PackageName() string { return c.packageName }

// APIPackage returns the namespace of the generated API clients.
func (c *DotnetCoreClient) APIPackage() string { return c.packageName + ".Clients" }

// ModelPackage returns the namespace of the generated models.
func (c *DotnetCoreClient) ModelPackage() string { return c.packageName + ".Models" }

// ClientPackage returns the namespace holding the client infrastructure.
// Unless set explicitly it is derived from the package name.
func (c *DotnetCoreClient) ClientPackage() string {
	if c.clientPackage == "" {
		return c.packageName + ".Client"
	}
	return c.clientPackage
}

// SetClientPackage overrides the client infrastructure namespace.
func (c *DotnetCoreClient) SetClientPackage(pkg string) { c.clientPackage = pkg }

// SystemTextJSONVersion returns the System.Text.Json package version
// referenced by the generated project.
func (c *DotnetCoreClient) SystemTextJSONVersion() string { return c.systemTextJSONVersion }

// SetSystemTextJSONVersion overrides the System.Text.Json version.
func (c *DotnetCoreClient) SetSystemTextJSONVersion(v string) { c.systemTextJSONVersion = v }

// FrameworkVersions returns a copy of the target framework to System.Text.Json version table.
func (c *DotnetCoreClient) FrameworkVersions() map[string]string {
	return maps.Clone(c.frameworkVersions)
}

// Configure reads the run's additional properties, fills in the derived
// ones and registers the supporting files.
func (c *DotnetCoreClient) Configure() error {
	props := c.AdditionalProperties()

	c.packageName = c.StringProperty(codegen.PackageNameOption, c.packageName)
	if strings.TrimSpace(c.packageName) == "" {
		return &oaserrors.ConfigError{Option: codegen.PackageNameOption, Value: c.packageName, Message: "must not be empty"}
	}
	props[codegen.PackageNameOption] = c.packageName

	c.packageVersion = c.StringProperty(codegen.PackageVersionOption, c.packageVersion)
	props[codegen.PackageVersionOption] = c.packageVersion

	if pkg := c.StringProperty(ClientPackageOption, ""); pkg != "" {
		c.SetClientPackage(pkg)
	}
	clientPackage := c.ClientPackage()
	props[ClientPackageOption] = clientPackage

	generatorVersion := oasdotnet.Version()
	if generatorVersion == "" || generatorVersion == "dev" {
		generatorVersion = fallbackGeneratorVersion
	}
	props[GeneratorVersionOption] = generatorVersion

	props[APIDocPathOption] = c.StringProperty(APIDocPathOption, DefaultDocPath)
	props[ModelDocPathOption] = c.StringProperty(ModelDocPathOption, DefaultDocPath)

	exceptionTypeName := strings.ReplaceAll(clientPackage, ".", "") + "ApiException"
	props[ExceptionTypeNameOption] = exceptionTypeName
	props[APIClientBaseTypeNameOption] = strings.ReplaceAll(clientPackage, ".", "") + "ApiClientBase"

	c.ResetSupportingFiles()
	c.AddSupportingFile(codegen.SupportingFile{Template: "ApiException.tmpl", Destination: exceptionTypeName + ".cs"})
	c.AddSupportingFile(codegen.SupportingFile{Template: "ApiClient.tmpl", Destination: "ApiClient.cs"})
	c.AddSupportingFile(codegen.SupportingFile{Template: "README.tmpl", Destination: "README.md"})
	if c.BoolProperty(UseCsProjFileOption) {
		c.AddSupportingFile(codegen.SupportingFile{Template: "csproj.tmpl", Destination: clientPackage + ".csproj"})
	}

	targetFramework := c.StringProperty(codegen.TargetFrameworkOption, DefaultTargetFramework)
	props[codegen.TargetFrameworkOption] = targetFramework
	if v, ok := c.frameworkVersions[targetFramework]; ok {
		c.systemTextJSONVersion = v
	}
	props[SystemTextJSONVersionOption] = c.systemTextJSONVersion

	props[codegen.APIPackageOption] = c.APIPackage()
	props[codegen.ModelPackageOption] = c.ModelPackage()
	return nil
}

// OnOperation marks the last document parameter as followed by another one,
// appends the cancellation token and then runs the base processing.
func (c *DotnetCoreClient) OnOperation(op *codegen.Operation) {
	if n := len(op.AllParams); n > 0 {
		op.AllParams[n-1].SetHasMore(true)
	}

	ct := &codegen.Parameter{
		BaseName:  CancellationTokenName,
		ParamName: CancellationTokenName,
		DataType:  CancellationTokenType,
		Secondary: true,
	}
	ct.SetHasMore(false)
	op.AllParams = append(op.AllParams, ct)

	if op.VendorExtensions == nil {
		op.VendorExtensions = make(map[string]any)
	}
	op.VendorExtensions[codegen.VendorHasMore] = false

	c.ProcessOperation(op)
}

// ResolveCodeFolder returns <output>/Clients for APIs and <output>/Models for models.
func (c *DotnetCoreClient) ResolveCodeFolder(kind codegen.FileKind) string {
	sep := string(filepath.Separator)
	if kind == codegen.KindAPI {
		return c.OutputFolder() + sep + "Clients"
	}
	return c.OutputFolder() + sep + "Models"
}

// ResolveDocFolder returns the folder for API or model documentation.
// Absolute apiDocPath / modelDocPath values are used as given; relative ones
// are placed under the output folder.
func (c *DotnetCoreClient) ResolveDocFolder(kind codegen.FileKind) string {
	key := ModelDocPathOption
	if kind == codegen.KindAPI {
		key = APIDocPathOption
	}
	return c.resolvePath(c.StringProperty(key, DefaultDocPath))
}

func (c *DotnetCoreClient) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return toHostSeparator(p)
	}
	return toHostSeparator(c.OutputFolder() + "/" + p)
}

func toHostSeparator(p string) string {
	return strings.ReplaceAll(p, "/", string(filepath.Separator))
}
