// Package severity provides severity level constants and utilities
// for issues reported while generating client code.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of a generation issue.
type Severity int

const (
	// SeverityInfo indicates informational messages about processing choices,
	// such as a synthesized operation name or an up-converted Swagger 2.0 document.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a construct that was generated in a simplified form,
	// for example a oneOf schema rendered as object.
	SeverityWarning

	// SeverityCritical indicates a construct that could not be generated at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in text output.
func (s Severity) Symbol() string {
	switch s {
	case SeverityCritical:
		return "✗"
	case SeverityWarning:
		return "⚠"
	case SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}
