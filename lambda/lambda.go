package lambda

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasdotnet/internal/naming"
)

// Fragment is a piece of template that can be expanded against a context.
type Fragment interface {
	// Execute renders the fragment with ctx and returns the resulting text.
	Execute(ctx any) (string, error)
}

// Text is a Fragment that is already rendered; Execute returns it verbatim.
type Text string

// Execute implements Fragment.
func (t Text) Execute(_ any) (string, error) {
	return string(t), nil
}

// TemplateFragment renders the named template from Template. An empty Name
// executes Template itself.
type TemplateFragment struct {
	Template *template.Template
	Name     string
}

// Execute implements Fragment.
func (f TemplateFragment) Execute(ctx any) (string, error) {
	var buf bytes.Buffer
	var err error
	if f.Name == "" {
		err = f.Template.Execute(&buf, ctx)
	} else {
		err = f.Template.ExecuteTemplate(&buf, f.Name, ctx)
	}
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Lambda transforms an expanded fragment.
type Lambda interface {
	Apply(ctx any, frag Fragment) (string, error)
}

// Emitter is the part of a language emitter that lambdas use to legalize names.
type Emitter interface {
	// SanitizeName replaces characters that are illegal in identifiers.
	SanitizeName(name string) string
	// IsReservedWord reports whether name collides with a reserved word.
	IsReservedWord(name string) bool
	// EscapeReservedWord returns the escaped form of a reserved word.
	EscapeReservedWord(name string) string
	// ToParamName legalizes name as a method parameter name.
	ToParamName(name string) string
}

// Func adapts l into a text/template function operating on a rendered string.
func Func(l Lambda) func(string) (string, error) {
	return func(s string) (string, error) {
		return l.Apply(nil, Text(s))
	}
}

// Mapper is a Lambda backed by a plain string mapping.
type Mapper func(string) string

// Apply implements Lambda.
func (m Mapper) Apply(ctx any, frag Fragment) (string, error) {
	text, err := frag.Execute(ctx)
	if err != nil {
		return "", err
	}
	return m(text), nil
}

var (
	// Lowercase lower-cases the fragment.
	Lowercase Lambda = Mapper(strings.ToLower)

	// Uppercase upper-cases the fragment.
	Uppercase Lambda = Mapper(strings.ToUpper)

	// CamelCase camelizes the fragment with a lower-case first letter: "pet_id" -> "petId".
	CamelCase Lambda = Mapper(func(s string) string { return naming.Camelize(s, true) })
)

// Titlecase title-cases every word of the fragment using English rules:
// "pet store api" -> "Pet Store Api".
var Titlecase Lambda = Mapper(func(s string) string {
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Title(language.English).String(s)
})
