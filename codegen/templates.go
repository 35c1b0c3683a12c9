package codegen

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/erraggy/oasdotnet/lambda"
	"github.com/erraggy/oasdotnet/oaserrors"
)

// templatePattern selects the template files of an emitter or override directory.
const templatePattern = "*.tmpl"

// loadTemplates parses the emitter's embedded templates and then the
// *.tmpl files of overrideDir, which replace embedded templates of the same name.
func loadTemplates(cfg Config, overrideDir string) (*template.Template, error) {
	root := template.New("")
	root.Funcs(templateFuncs(cfg, root))

	if fsys := cfg.Templates(); fsys != nil {
		if err := parseDir(root, fsys, "embedded"); err != nil {
			return nil, err
		}
	}
	if overrideDir != "" {
		info, err := os.Stat(overrideDir)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: "templateDir", Value: overrideDir, Cause: err}
		}
		if !info.IsDir() {
			return nil, &oaserrors.ConfigError{Option: "templateDir", Value: overrideDir, Message: "not a directory"}
		}
		if err := parseDir(root, os.DirFS(overrideDir), overrideDir); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func parseDir(root *template.Template, fsys fs.FS, source string) error {
	matches, err := fs.Glob(fsys, templatePattern)
	if err != nil {
		return &oaserrors.TemplateError{Template: source, Cause: err}
	}
	// Parse one by one so a failure names the offending file.
	for _, name := range matches {
		if _, err := root.ParseFS(fsys, name); err != nil {
			return &oaserrors.TemplateError{Template: name, Cause: err}
		}
	}
	return nil
}

// templateFuncs provides the base helpers plus every lambda of the emitter.
// root is the template set "apply" renders named fragments from.
func templateFuncs(cfg Config, root *template.Template) template.FuncMap {
	lambdas := cfg.Lambdas()
	funcs := template.FuncMap{
		// String manipulation
		"quote":     strconv.Quote,
		"join":      strings.Join,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"hasSuffix": strings.HasSuffix,
		"hasPrefix": strings.HasPrefix,
		"replace":   strings.ReplaceAll,
		"trim":      strings.TrimSpace,

		// Custom helpers
		"cleanDesc": cleanDescription,
		"xmlDoc":    xmlDoc,
		"dict":      dict,
		"prop": func(key string) any {
			return cfg.AdditionalProperties()[key]
		},
		"lambda": func(name, text string) (string, error) {
			l, ok := lambdas[name]
			if !ok {
				return "", fmt.Errorf("unknown lambda %q", name)
			}
			return l.Apply(nil, lambda.Text(text))
		},
		"apply": func(name, fragment string, data any) (string, error) {
			l, ok := lambdas[name]
			if !ok {
				return "", fmt.Errorf("unknown lambda %q", name)
			}
			return l.Apply(data, lambda.TemplateFragment{Template: root, Name: fragment})
		},
	}
	for name, l := range lambdas {
		funcs[name] = lambda.Func(l)
	}
	return funcs
}

// cleanDescription collapses whitespace so a description fits on one line.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// xmlDoc makes a description safe for an XML documentation comment.
func xmlDoc(s string) string {
	return xmlEscaper.Replace(cleanDescription(s))
}

// dict builds a map from alternating keys and values for passing to sub-templates.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
