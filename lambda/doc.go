// Package lambda provides text filters that templates apply to rendered fragments.
//
// A [Lambda] receives a [Fragment] (the text between a template's lambda
// markers, not yet expanded) together with the current template context. It
// expands the fragment, transforms the result and returns the text that is
// substituted back at the call site.
//
// # Available Lambdas
//
//   - [PascalCase]: camelizes to PascalCase, optionally legalizing the result
//     through an [Emitter] (sanitize, escape reserved words, parameter naming)
//   - [CamelCase]: camelizes with a lower-case first letter
//   - [Lowercase], [Uppercase]: simple case mapping
//   - [Titlecase]: language-aware title casing via golang.org/x/text/cases
//
// # Usage with text/template
//
// [Func] adapts any lambda into a template function that operates on an
// already-rendered string:
//
//	funcs := template.FuncMap{
//	    "pascalcase": lambda.Func(lambda.NewPascalCase()),
//	}
//	// {{ pascalcase .operationId }}
//
// When the fragment itself needs the template context, render it through a
// [TemplateFragment] instead:
//
//	out, err := l.Apply(data, lambda.TemplateFragment{Template: tmpl, Name: "methodName"})
package lambda
