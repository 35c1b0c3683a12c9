package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdotnet/csharp"
)

const petstore = "../../../csharp/testdata/petstore.yaml"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateCmd_Run(t *testing.T) {
	dir := t.TempDir()
	cmd := &GenerateCmd{Input: petstore, Output: dir, Lang: csharp.Name, UseCsproj: true}

	var out bytes.Buffer
	require.NoError(t, cmd.Run(discardLogger(), &out))

	assert.Contains(t, out.String(), "OAS Version: 3.0.3")
	assert.Contains(t, out.String(), "Generated Files (14):")
	assert.Contains(t, out.String(), filepath.Join(dir, "Models", "Pet.cs"))
	assert.FileExists(t, filepath.Join(dir, "IO.Swagger.Client.csproj"))
	assert.FileExists(t, filepath.Join(dir, "docs", "PetsClient.md"))
}

func TestGenerateCmd_DryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cmd := &GenerateCmd{Input: petstore, Output: dir, DryRun: true, SkipDocs: true}

	var out bytes.Buffer
	require.NoError(t, cmd.Run(discardLogger(), &out))

	assert.Contains(t, out.String(), "Would generate Files (8):")
	assert.NoDirExists(t, dir)
}

func TestGenerateCmd_StructuredReport(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		cmd := &GenerateCmd{Input: petstore, Output: dir, SkipDocs: true, Format: FormatJSON}

		var out bytes.Buffer
		require.NoError(t, cmd.Run(discardLogger(), &out))

		var m generateManifest
		require.NoError(t, json.Unmarshal(out.Bytes(), &m))
		assert.True(t, m.Success)
		assert.True(t, m.Written)
		assert.Equal(t, csharp.Name, m.Emitter)
		assert.Equal(t, 3, m.GeneratedModels)
		assert.Equal(t, 4, m.GeneratedOperations)
		require.Len(t, m.Files, 8)
		paths := make([]string, 0, len(m.Files))
		for _, f := range m.Files {
			paths = append(paths, f.Path)
		}
		assert.Contains(t, paths, filepath.Join(dir, "Models", "Pet.cs"))
		assert.NotContains(t, out.String(), "Generation successful")
		assert.FileExists(t, filepath.Join(dir, "Models", "Pet.cs"))
	})

	t.Run("yaml dry run", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		cmd := &GenerateCmd{Input: petstore, Output: dir, DryRun: true, Format: FormatYAML}

		var out bytes.Buffer
		require.NoError(t, cmd.Run(discardLogger(), &out))

		var m generateManifest
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &m))
		assert.False(t, m.Written)
		assert.Equal(t, "3.0.3", m.SourceVersion)
		assert.NotEmpty(t, m.Files)
		assert.NoDirExists(t, dir)
	})
}

func TestGenerateCmd_Debug(t *testing.T) {
	cmd := &GenerateCmd{Input: petstore, Output: t.TempDir(), DryRun: true, DebugOperations: true, DebugModels: true}

	var out bytes.Buffer
	require.NoError(t, cmd.Run(discardLogger(), &out))
	assert.Contains(t, out.String(), "list_pets")
	assert.Contains(t, out.String(), "PetStatus")
}

func TestGenerateCmd_Properties(t *testing.T) {
	dir := t.TempDir()
	optionsFile := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(optionsFile, []byte("packageName: From.File\npackageVersion: 3.0.0\napiDocPath: file-docs\n"), 0o644))

	cmd := &GenerateCmd{
		OptionsFile: optionsFile,
		Properties:  map[string]string{"packageVersion": "4.0.0", "apiDocPath": "flag-docs"},
		APIDocPath:  "named-docs",
	}
	props, err := cmd.properties()
	require.NoError(t, err)

	assert.Equal(t, "From.File", props["packageName"], "options file is the base layer")
	assert.Equal(t, "4.0.0", props["packageVersion"], "-D overrides the options file")
	assert.Equal(t, "named-docs", props["apiDocPath"], "named flags override -D")
	assert.NotContains(t, props, "useCsProjFile")
}

func TestGenerateCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     GenerateCmd
		message string
	}{
		{"unknown emitter", GenerateCmd{Input: petstore, Lang: "cobol"}, "unknown emitter"},
		{"missing input", GenerateCmd{Input: "/nonexistent/openapi.yaml"}, "generating client"},
		{"missing options file", GenerateCmd{Input: petstore, OptionsFile: "/nonexistent/options.yaml"}, "optionsFile"},
		{"invalid package name", GenerateCmd{Input: petstore, PackageName: "1 bad name", DryRun: true}, "invalid emitter options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.Output = t.TempDir()
			err := tt.cmd.Run(discardLogger(), io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "Models", "Pet.cs"), displayPath("out", "Models/Pet.cs"))
	assert.Equal(t, filepath.FromSlash("Models/Pet.cs"), displayPath(".", "Models/Pet.cs"))
	abs := filepath.Join(t.TempDir(), "docs", "Pet.md")
	assert.Equal(t, abs, displayPath("out", filepath.ToSlash(abs)))
}

func TestConfigHelpCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ConfigHelpCmd{Format: FormatText}).Run(&out))
		assert.Contains(t, out.String(), "CONFIG OPTIONS")
		assert.Contains(t, out.String(), "packageName")
		assert.Contains(t, out.String(), "C# package name (convention: Camel.Case).")
		assert.Contains(t, out.String(), "net8.0")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ConfigHelpCmd{Lang: csharp.Name, Format: FormatJSON}).Run(&out))
		var help configHelp
		require.NoError(t, json.Unmarshal(out.Bytes(), &help))
		assert.Equal(t, csharp.Name, help.Emitter)
		assert.Len(t, help.Options, 3)
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ConfigHelpCmd{Format: FormatYAML}).Run(&out))
		var help configHelp
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &help))
		assert.Equal(t, "targetFramework", help.Options[1].Name)
	})

	t.Run("unknown emitter", func(t *testing.T) {
		err := (&ConfigHelpCmd{Lang: "cobol"}).Run(io.Discard)
		assert.ErrorContains(t, err, "unknown emitter")
	})
}

func TestListCmd(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&ListCmd{}).Run(&out))
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "csharp-dotnet-core")
	assert.Contains(t, out.String(), "client")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&VersionCmd{}).Run(&out))
	assert.Equal(t, "oasdotnet vdev\n", out.String())

	out.Reset()
	require.NoError(t, (&VersionCmd{Verbose: true}).Run(&out))
	assert.Contains(t, out.String(), "Go Version:")
}

func TestOutputStructured_InvalidFormat(t *testing.T) {
	err := OutputStructured(io.Discard, struct{}{}, "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestGenerateCmd_ValidateSpec(t *testing.T) {
	cmd := &GenerateCmd{Input: petstore, Output: t.TempDir(), DryRun: true, ValidateSpec: true}
	require.NoError(t, cmd.Run(discardLogger(), io.Discard))

	dir := t.TempDir()
	invalid := filepath.Join(dir, "dupes.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`openapi: "3.0.3"
info: {title: Dupes, version: "1.0"}
paths:
  /a:
    get:
      operationId: fetch
      responses: {"200": {description: ok}}
  /b:
    get:
      operationId: fetch
      responses: {"200": {description: ok}}
`), 0o644))
	cmd = &GenerateCmd{Input: invalid, Output: dir, DryRun: true, ValidateSpec: true}
	err := cmd.Run(discardLogger(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}
