package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdotnet/oaserrors"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere", "doc.md")
	result := &GenerateResult{Files: []GeneratedFile{
		{Name: "Models/Pet.cs", Content: []byte("class Pet {}")},
		{Name: "README.md", Content: []byte("# readme")},
		{Name: filepath.ToSlash(abs), Content: []byte("doc")},
	}}

	require.NoError(t, result.WriteFiles(filepath.Join(dir, "out")))

	data, err := os.ReadFile(filepath.Join(dir, "out", "Models", "Pet.cs"))
	require.NoError(t, err)
	assert.Equal(t, "class Pet {}", string(data))

	data, err = os.ReadFile(abs)
	require.NoError(t, err)
	assert.Equal(t, "doc", string(data))
}

func TestWriteFiles_DocsOutsideRelativeOutputDir(t *testing.T) {
	t.Chdir(t.TempDir())

	out := "out"
	target := out + string(filepath.Separator) + filepath.Join("..", "shared-docs", "PetsClient.md")
	result := &GenerateResult{Files: []GeneratedFile{
		{Name: relativeName(out, target), Path: target, Content: []byte("doc")},
	}}
	require.NoError(t, result.WriteFiles(out))

	data, err := os.ReadFile(filepath.Join("shared-docs", "PetsClient.md"))
	require.NoError(t, err)
	assert.Equal(t, "doc", string(data))

	_, err = os.Stat(filepath.Join(out, "shared-docs"))
	assert.True(t, os.IsNotExist(err), "docs must not be nested under the output folder")
}

func TestWriteFiles_RejectsEscapingNames(t *testing.T) {
	result := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.cs"}}}

	err := result.WriteFiles(t.TempDir())
	require.Error(t, err)

	var writeErr *oaserrors.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "../escape.cs", writeErr.Path)
}

func TestWriteFile_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	f := &GeneratedFile{Name: "x", Content: []byte("x")}
	err := f.WriteFile(filepath.Join(blocker, "x"))
	assert.ErrorIs(t, err, oaserrors.ErrWrite)
}

func TestGenerate_WriteRoundTrip(t *testing.T) {
	out := t.TempDir()
	result := generateTestDocument(t, newTestConfig(), WithOutputDir(out))
	require.NoError(t, result.WriteFiles(out))

	data, err := os.ReadFile(filepath.Join(out, "api", "UsersApi.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(result.GetFile("api/UsersApi.txt").Content), string(data))
}
