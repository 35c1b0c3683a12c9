package codegen

import (
	"errors"
	"fmt"

	"github.com/erraggy/oastools/parser"
	"github.com/erraggy/oastools/validator"

	"github.com/erraggy/oasdotnet/oaserrors"
)

// validationContext marks issues that came from document validation.
const validationContext = "document validation"

// validateDocument runs the OpenAPI validator over the parsed document.
// Validation errors abort generation; warnings are recorded as issues.
func (g *Generator) validateDocument(parseResult parser.ParseResult, result *GenerateResult) error {
	opts := []validator.Option{
		validator.WithParsed(parseResult),
		validator.WithIncludeWarnings(true),
	}
	if g.UserAgent != "" {
		opts = append(opts, validator.WithUserAgent(g.UserAgent))
	}

	vr, err := validator.ValidateWithOptions(opts...)
	if err != nil {
		return &oaserrors.InputError{Source: parseResult.SourcePath, Message: "validation failed", Cause: err}
	}

	for _, w := range vr.Warnings {
		result.Issues = append(result.Issues, GenerateIssue{
			Path:     w.Path,
			Message:  w.Message,
			Severity: SeverityWarning,
			Context:  validationContext,
		})
	}
	if vr.Valid {
		return nil
	}

	causes := make([]error, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		causes = append(causes, fmt.Errorf("%s: %s", e.Path, e.Message))
	}
	return &oaserrors.InputError{
		Source:  parseResult.SourcePath,
		Message: fmt.Sprintf("document has %d validation error(s)", vr.ErrorCount),
		Cause:   errors.Join(causes...),
	}
}
