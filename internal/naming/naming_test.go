package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "already pascal", input: "CreateUser", want: "CreateUser"},
		{name: "lower camel", input: "createUser", want: "CreateUser"},

		// Underscore separators
		{name: "snake_case simple", input: "create_user", want: "CreateUser"},
		{name: "snake_case three words", input: "get_user_by_id", want: "GetUserById"},
		{name: "trailing underscore kept", input: "value_", want: "Value_"},
		{name: "double underscore", input: "double__under", want: "DoubleUnder"},
		{name: "underscore before digit", input: "v_1", want: "V1"},
		{name: "upper snake", input: "API_KEY", want: "APIKEY"},

		// Hyphen separators
		{name: "kebab-case simple", input: "api-client", want: "ApiClient"},
		{name: "trailing hyphen kept", input: "value-", want: "Value-"},

		// Dot and slash separators
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "slash separator", input: "pets/by-id", want: "PetsById"},
		{name: "leading slash", input: "/users", want: "Users"},

		{name: "unicode", input: "ñandú_rápido", want: "ÑandúRápido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Camelize(tt.input, false))
		})
	}
}

func TestCamelizeLowercaseFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"user_profile", "userProfile"},
		{"UserProfile", "userProfile"},
		{"pet-id", "petId"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Camelize(tt.input, true))
		})
	}
}

func TestIsUpperSnake(t *testing.T) {
	assert.True(t, IsUpperSnake("API_KEY"))
	assert.True(t, IsUpperSnake("X2"))
	assert.False(t, IsUpperSnake(""))
	assert.False(t, IsUpperSnake("ApiKey"))
	assert.False(t, IsUpperSnake("API-KEY"))
}
