package lambda

import (
	"fmt"

	"github.com/erraggy/oasdotnet/internal/naming"
)

// PascalCase converts a fragment to PascalCase.
//
// When bound to an [Emitter] with [PascalCase.Generator], the camelized text is
// sanitized and, if it is a reserved word, escaped. With
// [PascalCase.EscapeAsParamName] the result is finally passed through the
// emitter's parameter naming.
//
//	{{ pascalcase "create_user" }} -> CreateUser
type PascalCase struct {
	// Camelize joins words. Defaults to naming.Camelize when nil.
	Camelize func(word string, lowercaseFirst bool) string

	emitter     Emitter
	escapeParam bool
}

// NewPascalCase returns a PascalCase lambda that is not bound to an emitter.
func NewPascalCase() *PascalCase {
	return &PascalCase{Camelize: naming.Camelize}
}

// Generator binds the lambda to an emitter for name legalization.
func (l *PascalCase) Generator(e Emitter) *PascalCase {
	l.emitter = e
	return l
}

// EscapeAsParamName enables the final parameter-name legalization step.
// It has no effect unless an emitter is bound.
func (l *PascalCase) EscapeAsParamName(escape bool) *PascalCase {
	l.escapeParam = escape
	return l
}

// Apply implements Lambda.
func (l *PascalCase) Apply(ctx any, frag Fragment) (string, error) {
	text, err := frag.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("lambda: pascalcase: %w", err)
	}

	camelize := l.Camelize
	if camelize == nil {
		camelize = naming.Camelize
	}
	text = camelize(text, false)

	if l.emitter == nil {
		return text, nil
	}
	text = l.emitter.SanitizeName(text)
	// Escaping happens after camelize: emitters may escape with characters camelize removes.
	if l.emitter.IsReservedWord(text) {
		text = l.emitter.EscapeReservedWord(text)
	}
	if l.escapeParam {
		text = l.emitter.ToParamName(text)
	}
	return text, nil
}
