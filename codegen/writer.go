package codegen

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdotnet/internal/fileutil"
	"github.com/erraggy/oasdotnet/oaserrors"
)

var errTemplateNotFound = errors.New("template not found")

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is relative to the output folder using forward slashes
	// (e.g. "Models/Pet.cs"), or absolute when the emitter placed the file
	// outside the output folder.
	Name string
	// Path is the file path as resolved by the emitter
	Path string
	// Content is the rendered file
	Content []byte
}

// WriteFiles writes all generated files below outputDir, creating directories
// as needed. Absolute names are written as-is; relative names must stay inside
// outputDir.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	if err := os.MkdirAll(outputDir, fileutil.DirReadableByAll); err != nil {
		return &oaserrors.WriteError{Path: outputDir, Message: "failed to create output directory", Cause: err}
	}

	for i := range r.Files {
		dest, err := r.Files[i].destination(outputDir)
		if err != nil {
			return err
		}
		if err := r.Files[i].WriteFile(dest); err != nil {
			return err
		}
	}
	return nil
}

func (f *GeneratedFile) destination(outputDir string) (string, error) {
	name := filepath.FromSlash(f.Name)
	if filepath.IsAbs(name) {
		return name, nil
	}
	if !filepath.IsLocal(name) {
		return "", &oaserrors.WriteError{Path: f.Name, Message: "file name escapes the output directory"}
	}
	return filepath.Join(outputDir, name), nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirReadableByAll); err != nil {
		return &oaserrors.WriteError{Path: filepath.Dir(path), Message: "failed to create directory", Cause: err}
	}
	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return &oaserrors.WriteError{Path: path, Cause: err}
	}
	return nil
}
