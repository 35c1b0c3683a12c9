// Package oaserrors provides structured error types for oasdotnet.
//
// Import path: github.com/erraggy/oasdotnet/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a bad input document, a bad option,
// a broken template and a failing file system.
//
// # Error Types
//
//   - [InputError]: the OpenAPI document could not be read, parsed or converted
//   - [ConfigError]: invalid options, unknown emitters, missing inputs
//   - [TemplateError]: a template failed to parse or execute
//   - [WriteError]: a generated file could not be written
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInput]: Matches any [InputError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrTemplate]: Matches any [TemplateError]
//   - [ErrWrite]: Matches any [WriteError]
//
// # Usage Examples
//
//	result, err := codegen.GenerateWithOptions(
//	    codegen.WithFilePath("api.yaml"),
//	    codegen.WithConfig(csharp.New()),
//	)
//	if errors.Is(err, oaserrors.ErrInput) {
//	    // The document itself is the problem
//	}
//
//	var tmplErr *oaserrors.TemplateError
//	if errors.As(err, &tmplErr) {
//	    fmt.Printf("template %s failed: %v\n", tmplErr.Template, tmplErr.Cause)
//	}
package oaserrors
