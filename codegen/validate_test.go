package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdotnet/oaserrors"
)

const duplicateOperationIDs = `openapi: "3.0.3"
info:
  title: Dupes
  version: "1.0"
paths:
  /a:
    get:
      operationId: fetch
      responses:
        "200":
          description: ok
  /b:
    get:
      operationId: fetch
      responses:
        "200":
          description: ok
`

func TestGenerate_ValidationRejectsInvalidDocument(t *testing.T) {
	_, err := GenerateWithOptions(
		WithBytes([]byte(duplicateOperationIDs)),
		WithConfig(newTestConfig()),
		WithValidation(true),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrInput)
	assert.Contains(t, err.Error(), "validation error")
	assert.Contains(t, err.Error(), "fetch")
}

func TestGenerate_ValidationOffByDefault(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(duplicateOperationIDs)),
		WithConfig(newTestConfig()),
		WithOutputDir(t.TempDir()),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, result.GeneratedOperations)
}

func TestGenerate_ValidationPassesValidDocument(t *testing.T) {
	valid := strings.Replace(duplicateOperationIDs, "operationId: fetch", "operationId: fetchA", 1)
	result, err := GenerateWithOptions(
		WithBytes([]byte(valid)),
		WithConfig(newTestConfig()),
		WithOutputDir(t.TempDir()),
		WithValidation(true),
	)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.GeneratedOperations)
	for _, issue := range result.Issues {
		if issue.Context == validationContext {
			assert.Equal(t, SeverityWarning, issue.Severity)
		}
	}
}
