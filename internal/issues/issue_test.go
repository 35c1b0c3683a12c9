package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasdotnet/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "warning without context",
			issue: Issue{Path: "components.schemas.Shape", Message: "oneOf is generated as object", Severity: severity.SeverityWarning},
			want:  "⚠ components.schemas.Shape: oneOf is generated as object",
		},
		{
			name: "info with operation context",
			issue: Issue{
				Path:             "paths./pets.get",
				Message:          "missing operationId, using GetPets",
				Severity:         severity.SeverityInfo,
				OperationContext: &OperationContext{Method: "GET", Path: "/pets"},
			},
			want: "ℹ paths./pets.get (GET /pets): missing operationId, using GetPets",
		},
		{
			name: "critical with context line",
			issue: Issue{
				Path:     "paths./upload.post",
				Message:  "unsupported request body",
				Severity: severity.SeverityCritical,
				Context:  "multipart/mixed",
			},
			want: "✗ paths./upload.post: unsupported request body\n    Context: multipart/mixed",
		},
		{
			name:  "empty operation context is ignored",
			issue: Issue{Path: "p", Message: "m", Severity: severity.SeverityInfo, OperationContext: &OperationContext{}},
			want:  "ℹ p: m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestOperationContextString(t *testing.T) {
	assert.Equal(t, "", OperationContext{}.String())
	assert.Equal(t, "(operationId: listPets)", OperationContext{Method: "GET", Path: "/pets", OperationID: "listPets"}.String())
	assert.Equal(t, "(POST /pets)", OperationContext{Method: "POST", Path: "/pets"}.String())
	assert.Equal(t, "(path: /pets)", OperationContext{Path: "/pets"}.String())
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "", FormatPath())
	assert.Equal(t, "paths", FormatPath("paths"))
	assert.Equal(t, "paths./pets.get", FormatPath("paths", "/pets", "get"))
	assert.Equal(t, "components.schemas", FormatPath("components", "", "schemas"))
}

func TestCount(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityInfo},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityCritical},
	}
	info, warning, critical := Count(list)
	assert.Equal(t, 1, info)
	assert.Equal(t, 2, warning)
	assert.Equal(t, 1, critical)
}
