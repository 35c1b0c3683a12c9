package codegen

import (
	"bytes"
	"cmp"
	"maps"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/erraggy/oastools/parser"
	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oasdotnet/oaserrors"
)

// renderJob is one template execution producing one file.
type renderJob struct {
	template string
	target   string
	data     map[string]any
}

// planRenders lists every file to render. It runs after all hooks, so the
// property bag and the graph are final.
func (g *Generator) planRenders(cfg Config, doc *parser.OAS3Document, groups []*APIGroup, models []*Model) []renderJob {
	base := maps.Clone(cfg.AdditionalProperties())
	base["generatorName"] = cfg.Name()
	if doc.Info != nil {
		base["appName"] = doc.Info.Title
		base["appDescription"] = doc.Info.Description
		base["appVersion"] = doc.Info.Version
	}
	base["basePath"] = ""
	if len(doc.Servers) > 0 && doc.Servers[0] != nil {
		base["basePath"] = doc.Servers[0].URL
	}

	bundle := func(extra map[string]any) map[string]any {
		data := maps.Clone(base)
		maps.Copy(data, extra)
		return data
	}

	var jobs []renderJob
	addJobs := func(templates map[string]string, folder, name string, data map[string]any) {
		for _, tmpl := range slices.Sorted(maps.Keys(templates)) {
			jobs = append(jobs, renderJob{
				template: tmpl,
				target:   filepath.Join(folder, name+templates[tmpl]),
				data:     data,
			})
		}
	}

	for _, grp := range groups {
		data := bundle(map[string]any{
			"api":         grp,
			"classname":   grp.ClassName,
			"baseName":    grp.Tag,
			"description": grp.Description,
			"operations":  grp.Operations,
		})
		addJobs(cfg.TemplateFiles(KindAPI), cfg.ResolveCodeFolder(KindAPI), grp.ClassName, data)
		if g.GenerateAPIDocs {
			addJobs(cfg.DocTemplateFiles(KindAPI), cfg.ResolveDocFolder(KindAPI), grp.ClassName, data)
		}
	}

	for _, m := range models {
		data := bundle(map[string]any{
			"model":       m,
			"classname":   m.ClassName,
			"description": m.Description,
		})
		addJobs(cfg.TemplateFiles(KindModel), cfg.ResolveCodeFolder(KindModel), m.ClassName, data)
		if g.GenerateModelDocs {
			addJobs(cfg.DocTemplateFiles(KindModel), cfg.ResolveDocFolder(KindModel), m.ClassName, data)
		}
	}

	if g.GenerateSupportingFiles {
		data := bundle(map[string]any{
			"apis":   groups,
			"models": models,
		})
		for _, sf := range cfg.SupportingFiles() {
			jobs = append(jobs, renderJob{
				template: sf.Template,
				target:   filepath.Join(cfg.OutputFolder(), sf.Folder, sf.Destination),
				data:     data,
			})
		}
	}
	return jobs
}

// render executes jobs in parallel, bounded by Concurrency, and returns the
// files sorted by name.
func (g *Generator) render(root *template.Template, outputFolder string, jobs []renderJob) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, len(jobs))
	log := g.logger()

	var eg errgroup.Group
	eg.SetLimit(max(1, g.Concurrency))
	for i, job := range jobs {
		eg.Go(func() error {
			content, err := executeTemplate(root, job)
			if err != nil {
				return err
			}
			files[i] = GeneratedFile{
				Path:    job.target,
				Name:    relativeName(outputFolder, job.target),
				Content: content,
			}
			log.Debug("rendered file", "template", job.template, "file", files[i].Name, "bytes", len(content))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b GeneratedFile) int { return cmp.Compare(a.Name, b.Name) })
	return files, nil
}

func executeTemplate(root *template.Template, job renderJob) ([]byte, error) {
	if root.Lookup(job.template) == nil {
		return nil, &oaserrors.TemplateError{Template: job.template, Target: job.target, Cause: errTemplateNotFound}
	}
	buf := getRenderBuffer()
	defer putRenderBuffer(buf)
	if err := root.ExecuteTemplate(buf, job.template, job.data); err != nil {
		return nil, &oaserrors.TemplateError{Template: job.template, Target: job.target, Cause: err}
	}
	return bytes.Clone(buf.Bytes()), nil
}

// relativeName returns target relative to outputFolder with forward slashes.
// Targets outside the output folder are returned as absolute paths, so that
// WriteFiles never joins the output folder onto them a second time.
func relativeName(outputFolder, target string) string {
	rel, err := filepath.Rel(outputFolder, target)
	if err != nil || !filepath.IsLocal(rel) {
		if abs, absErr := filepath.Abs(target); absErr == nil {
			return filepath.ToSlash(abs)
		}
		return filepath.ToSlash(filepath.Clean(target))
	}
	return filepath.ToSlash(rel)
}
