// Package issues provides a unified issue type for problems found during generation.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdotnet/internal/severity"
)

// Issue represents a single problem found while building or rendering the client.
type Issue struct {
	// Path is the JSON path to the problematic node (e.g., "components.schemas.Pet")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context provides additional information about the issue (optional)
	Context string
	// OperationContext identifies the operation the issue relates to. Nil when not applicable.
	OperationContext *OperationContext
}

// String returns a formatted string representation of the issue,
// prefixed with the severity symbol.
func (i Issue) String() string {
	pathWithContext := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		pathWithContext = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}

	result := fmt.Sprintf("%s %s: %s", i.Severity.Symbol(), pathWithContext, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// FormatPath formats a dotted JSON path from segments, skipping empty ones.
func FormatPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, ".")
}

// Count tallies issues by severity.
func Count(list []Issue) (info, warning, critical int) {
	for _, i := range list {
		switch i.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		case severity.SeverityCritical:
			critical++
		}
	}
	return info, warning, critical
}
