package csharp

import (
	"testing"

	"github.com/erraggy/oastools/parser"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	c := New()
	tests := []struct {
		in, want string
	}{
		{"pet-id", "pet_id"},
		{"items[]", "items_"},
		{"filter(name)", "filter_name"},
		{"a.b c", "a_b_c"},
		{"price$", "price"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.SanitizeName(tt.in))
		})
	}
}

func TestToParamName(t *testing.T) {
	c := New()
	tests := []struct {
		in, want string
	}{
		{"petId", "petId"},
		{"pet_id", "petId"},
		{"X-Request-ID", "xRequestID"},
		{"API_KEY", "API_KEY"},
		{"class", "_class"},
		{"ct", "_ct"},
		{"1st", "_1st"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ToParamName(tt.in))
		})
	}
}

func TestToVarName(t *testing.T) {
	c := New()
	assert.Equal(t, "Name", c.ToVarName("name"))
	assert.Equal(t, "CreatedAt", c.ToVarName("created_at"))
	assert.Equal(t, "Class", c.ToVarName("class"), "keywords are case-sensitive")
	assert.Equal(t, "_2fa", c.ToVarName("2fa"))
}

func TestToModelName(t *testing.T) {
	c := New()
	assert.Equal(t, "Pet", c.ToModelName("Pet"))
	assert.Equal(t, "PetStatus", c.ToModelName("pet-status"))
	assert.Equal(t, "Model200Response", c.ToModelName("200_response"))
}

func TestToOperationName(t *testing.T) {
	c := New()
	assert.Equal(t, "ListPets", c.ToOperationName("list_pets"))
	assert.Equal(t, "ShowPetById", c.ToOperationName("showPetById"))
	assert.Equal(t, "Call123", c.ToOperationName("123"))
}

func TestToAPIName(t *testing.T) {
	c := New()
	assert.Equal(t, "PetsClient", c.ToAPIName("pets"))
	assert.Equal(t, "PetStoreClient", c.ToAPIName("pet store"))
	assert.Equal(t, "DefaultClient", c.ToAPIName(""))
}

func TestTypeDeclaration(t *testing.T) {
	c := New()
	tests := []struct {
		name   string
		schema *parser.Schema
		want   string
	}{
		{"string", &parser.Schema{Type: "string"}, "string"},
		{"date-time", &parser.Schema{Type: "string", Format: "date-time"}, "DateTime"},
		{"date", &parser.Schema{Type: "string", Format: "date"}, "DateTime"},
		{"uuid", &parser.Schema{Type: "string", Format: "uuid"}, "Guid"},
		{"byte", &parser.Schema{Type: "string", Format: "byte"}, "byte[]"},
		{"binary", &parser.Schema{Type: "string", Format: "binary"}, "System.IO.Stream"},
		{"integer", &parser.Schema{Type: "integer"}, "int"},
		{"int64", &parser.Schema{Type: "integer", Format: "int64"}, "long"},
		{"float", &parser.Schema{Type: "number", Format: "float"}, "float"},
		{"number", &parser.Schema{Type: "number"}, "double"},
		{"boolean", &parser.Schema{Type: "boolean"}, "bool"},
		{"object", &parser.Schema{Type: "object"}, "object"},
		{"ref", &parser.Schema{Ref: "#/components/schemas/pet-status"}, "PetStatus"},
		{"array", &parser.Schema{Type: "array", Items: &parser.Schema{Type: "string"}}, "List<string>"},
		{
			"map of arrays",
			&parser.Schema{Type: "object", AdditionalProperties: &parser.Schema{Type: "array", Items: &parser.Schema{Type: "integer"}}},
			"Dictionary<string, List<int>>",
		},
		{"nil", nil, "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.TypeDeclaration(tt.schema))
		})
	}
}
