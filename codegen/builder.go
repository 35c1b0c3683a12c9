package codegen

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet/internal/issues"
	"github.com/erraggy/oasdotnet/internal/naming"
)

// graphBuilder walks an OAS 3 document and produces the operation and model
// graph, calling the emitter hooks on the way. It is used from one goroutine.
type graphBuilder struct {
	cfg    Config
	doc    *parser.OAS3Document
	log    Logger
	issues []GenerateIssue
}

func newGraphBuilder(cfg Config, doc *parser.OAS3Document, log Logger) *graphBuilder {
	return &graphBuilder{cfg: cfg, doc: doc, log: log}
}

type methodAccessor struct {
	name string
	get  func(*parser.PathItem) *parser.Operation
}

// methods lists the HTTP methods in the order operations are emitted for a path.
var methods = []methodAccessor{
	{"GET", func(p *parser.PathItem) *parser.Operation { return p.Get }},
	{"PUT", func(p *parser.PathItem) *parser.Operation { return p.Put }},
	{"POST", func(p *parser.PathItem) *parser.Operation { return p.Post }},
	{"DELETE", func(p *parser.PathItem) *parser.Operation { return p.Delete }},
	{"OPTIONS", func(p *parser.PathItem) *parser.Operation { return p.Options }},
	{"HEAD", func(p *parser.PathItem) *parser.Operation { return p.Head }},
	{"PATCH", func(p *parser.PathItem) *parser.Operation { return p.Patch }},
	{"TRACE", func(p *parser.PathItem) *parser.Operation { return p.Trace }},
}

func (b *graphBuilder) addIssue(sev Severity, path, msg string, opCtx *issues.OperationContext) {
	b.issues = append(b.issues, GenerateIssue{
		Path:             path,
		Message:          msg,
		Severity:         sev,
		OperationContext: opCtx,
	})
}

// declare renders a schema type through both type hooks.
func (b *graphBuilder) declare(schema *parser.Schema) string {
	return b.cfg.OnTypeDeclaration(b.cfg.TypeDeclaration(schema))
}

func (b *graphBuilder) componentSchemas() map[string]*parser.Schema {
	if b.doc.Components == nil {
		return nil
	}
	return b.doc.Components.Schemas
}

// buildModels builds one Model per components.schemas entry, sorted by name.
func (b *graphBuilder) buildModels() []*Model {
	schemas := b.componentSchemas()
	models := make([]*Model, 0, len(schemas))

	for _, name := range slices.Sorted(maps.Keys(schemas)) {
		s := schemas[name]
		if s == nil {
			continue
		}
		path := issues.FormatPath("components", "schemas", name)
		m := &Model{
			Name:             name,
			ClassName:        b.cfg.ToModelName(name),
			Description:      s.Description,
			VendorExtensions: extensions(s.Extra),
		}

		if len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
			b.addIssue(SeverityWarning, path, "oneOf/anyOf is not supported; variant properties are not generated", nil)
		}

		if len(s.Enum) > 0 {
			m.IsEnum = true
			m.DataType = b.declare(&parser.Schema{Type: s.Type, Format: s.Format})
			for _, v := range s.Enum {
				m.EnumValues = append(m.EnumValues, fmt.Sprint(v))
			}
			models = append(models, m)
			continue
		}

		props, required := b.collectProperties(s, path, map[string]bool{name: true})
		propNames := slices.Sorted(maps.Keys(props))
		for i, pn := range propNames {
			ps := props[pn]
			p := &Property{
				BaseName:         pn,
				Name:             b.cfg.ToVarName(pn),
				DataType:         b.declare(ps),
				Description:      ps.Description,
				Required:         required[pn],
				ReadOnly:         ps.ReadOnly,
				Deprecated:       ps.Deprecated,
				Example:          ps.Example,
				VendorExtensions: extensions(ps.Extra),
			}
			p.SetHasMore(i < len(propNames)-1)
			m.Vars = append(m.Vars, p)
		}
		if len(m.Vars) == 0 {
			if t := SchemaType(s); t != "" && t != "object" {
				m.DataType = b.declare(s)
			}
		}
		models = append(models, m)
	}

	b.log.Debug("built models", "count", len(models))
	return models
}

// collectProperties merges a schema's own properties with those of its allOf members.
// visited guards against reference cycles through allOf.
func (b *graphBuilder) collectProperties(s *parser.Schema, path string, visited map[string]bool) (map[string]*parser.Schema, map[string]bool) {
	props := make(map[string]*parser.Schema)
	required := make(map[string]bool)

	for _, member := range s.AllOf {
		if member == nil {
			continue
		}
		if member.Ref != "" {
			refName := RefName(member.Ref)
			if visited[refName] {
				continue
			}
			target, ok := b.componentSchemas()[refName]
			if !ok || target == nil {
				b.addIssue(SeverityWarning, path, "unresolved allOf reference "+member.Ref, nil)
				continue
			}
			visited[refName] = true
			member = target
		}
		mp, mr := b.collectProperties(member, path, visited)
		maps.Copy(props, mp)
		maps.Copy(required, mr)
	}

	for name, ps := range s.Properties {
		if ps != nil {
			props[name] = ps
		}
	}
	for _, r := range s.Required {
		required[r] = true
	}
	return props, required
}

// buildOperations walks paths in sorted order and methods in a fixed order,
// runs Config.OnOperation for each operation and groups the results by first tag.
func (b *graphBuilder) buildOperations() []*APIGroup {
	groups := make(map[string]*APIGroup)

	for _, path := range slices.Sorted(maps.Keys(b.doc.Paths)) {
		item := b.doc.Paths[path]
		if item == nil {
			continue
		}
		if item.Ref != "" {
			b.addIssue(SeverityWarning, issues.FormatPath("paths", path), "path item $ref is not supported; path skipped", nil)
			continue
		}
		for _, m := range methods {
			op := m.get(item)
			if op == nil {
				continue
			}
			o := b.buildOperation(path, m.name, item, op)
			b.cfg.OnOperation(o)

			tag := ""
			if len(o.Tags) > 0 {
				tag = o.Tags[0]
			}
			grp, ok := groups[tag]
			if !ok {
				grp = &APIGroup{Tag: tag, ClassName: b.cfg.ToAPIName(tag), Description: b.tagDescription(tag)}
				groups[tag] = grp
			}
			grp.Operations = append(grp.Operations, o)
		}
	}

	result := slices.Collect(maps.Values(groups))
	slices.SortFunc(result, func(x, y *APIGroup) int { return cmp.Compare(x.ClassName, y.ClassName) })
	b.log.Debug("built operations", "groups", len(result))
	return result
}

func (b *graphBuilder) tagDescription(tag string) string {
	for _, t := range b.doc.Tags {
		if t != nil && t.Name == tag {
			return t.Description
		}
	}
	return ""
}

func (b *graphBuilder) buildOperation(path, method string, item *parser.PathItem, op *parser.Operation) *Operation {
	issuePath := issues.FormatPath("paths", path, strings.ToLower(method))
	opCtx := &issues.OperationContext{Method: method, Path: path, OperationID: op.OperationID}

	opID := op.OperationID
	if opID == "" {
		opID = naming.Camelize(strings.ToLower(method)+stripBraces(path), true)
		b.addIssue(SeverityInfo, issuePath, "missing operationId, using "+opID, opCtx)
	}

	o := &Operation{
		Path:             path,
		HTTPMethod:       method,
		OperationID:      opID,
		Nickname:         b.cfg.ToOperationName(opID),
		Summary:          op.Summary,
		Notes:            op.Description,
		Tags:             op.Tags,
		Deprecated:       op.Deprecated,
		VendorExtensions: extensions(op.Extra),
	}

	for _, p := range b.mergeParameters(item.Parameters, op.Parameters, issuePath, opCtx) {
		schema := parameterSchema(p)
		cp := &Parameter{
			BaseName:         p.Name,
			ParamName:        b.cfg.ToParamName(p.Name),
			DataType:         b.declare(schema),
			Description:      p.Description,
			In:               p.In,
			Required:         p.Required || p.In == "path",
			IsArray:          SchemaType(schema) == "array",
			VendorExtensions: extensions(p.Extra),
		}
		switch p.In {
		case "path":
			o.PathParams = append(o.PathParams, cp)
		case "query":
			o.QueryParams = append(o.QueryParams, cp)
		case "header":
			o.HeaderParams = append(o.HeaderParams, cp)
		case "cookie":
			o.CookieParams = append(o.CookieParams, cp)
		default:
			b.addIssue(SeverityWarning, issuePath, fmt.Sprintf("parameter %q has unsupported location %q; skipped", p.Name, p.In), opCtx)
			continue
		}
		o.AllParams = append(o.AllParams, cp)
	}

	if rb := b.resolveRequestBody(op.RequestBody, issuePath, opCtx); rb != nil {
		if ct, mt := pickContent(rb.Content); mt != nil {
			o.BodyContentType = ct
			o.BodyParam = &Parameter{
				BaseName:    "body",
				ParamName:   b.cfg.ToParamName("body"),
				DataType:    b.declare(mt.Schema),
				Description: rb.Description,
				In:          "body",
				Required:    rb.Required,
				IsArray:     SchemaType(mt.Schema) == "array",
			}
			o.AllParams = append(o.AllParams, o.BodyParam)
			if !isJSON(ct) {
				b.addIssue(SeverityInfo, issuePath+".requestBody", "request body "+ct+" is sent as serialized JSON", opCtx)
			}
		}
	}

	// Required parameters first; document order is kept within each group.
	slices.SortStableFunc(o.AllParams, func(x, y *Parameter) int {
		switch {
		case x.Required == y.Required:
			return 0
		case x.Required:
			return -1
		default:
			return 1
		}
	})
	for i, p := range o.AllParams {
		p.SetHasMore(i < len(o.AllParams)-1)
	}

	if resp := b.successResponse(op.Responses, issuePath, opCtx); resp != nil {
		if ct, mt := pickContent(resp.Content); mt != nil && mt.Schema != nil {
			o.ReturnType = b.declare(mt.Schema)
			o.ReturnContentType = ct
		}
	}
	return o
}

// mergeParameters combines path-level and operation-level parameters.
// Operation-level parameters override path-level ones with the same name and location.
func (b *graphBuilder) mergeParameters(pathParams, opParams []*parser.Parameter, issuePath string, opCtx *issues.OperationContext) []*parser.Parameter {
	type key struct{ name, in string }
	var merged []*parser.Parameter
	index := make(map[key]int)

	for _, raw := range slices.Concat(pathParams, opParams) {
		p := b.resolveParameter(raw, issuePath, opCtx)
		if p == nil {
			continue
		}
		k := key{p.Name, p.In}
		if i, ok := index[k]; ok {
			merged[i] = p
			continue
		}
		index[k] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

func (b *graphBuilder) resolveParameter(p *parser.Parameter, issuePath string, opCtx *issues.OperationContext) *parser.Parameter {
	if p == nil || p.Ref == "" {
		return p
	}
	if b.doc.Components != nil {
		if target, ok := b.doc.Components.Parameters[RefName(p.Ref)]; ok && target != nil {
			return target
		}
	}
	b.addIssue(SeverityWarning, issuePath, "unresolved parameter reference "+p.Ref, opCtx)
	return nil
}

func (b *graphBuilder) resolveRequestBody(rb *parser.RequestBody, issuePath string, opCtx *issues.OperationContext) *parser.RequestBody {
	if rb == nil || rb.Ref == "" {
		return rb
	}
	if b.doc.Components != nil {
		if target, ok := b.doc.Components.RequestBodies[RefName(rb.Ref)]; ok && target != nil {
			return target
		}
	}
	b.addIssue(SeverityWarning, issuePath, "unresolved request body reference "+rb.Ref, opCtx)
	return nil
}

// successResponse returns the first 2xx response in code order, falling back to default.
func (b *graphBuilder) successResponse(responses *parser.Responses, issuePath string, opCtx *issues.OperationContext) *parser.Response {
	if responses == nil {
		return nil
	}
	var resp *parser.Response
	for _, code := range slices.Sorted(maps.Keys(responses.Codes)) {
		if strings.HasPrefix(code, "2") {
			resp = responses.Codes[code]
			break
		}
	}
	if resp == nil {
		resp = responses.Default
	}
	if resp == nil || resp.Ref == "" {
		return resp
	}
	if b.doc.Components != nil {
		if target, ok := b.doc.Components.Responses[RefName(resp.Ref)]; ok && target != nil {
			return target
		}
	}
	b.addIssue(SeverityWarning, issuePath, "unresolved response reference "+resp.Ref, opCtx)
	return nil
}

// parameterSchema returns the schema of p, from content when no schema is set.
// Parameters without any schema are treated as strings.
func parameterSchema(p *parser.Parameter) *parser.Schema {
	if p.Schema != nil {
		return p.Schema
	}
	if _, mt := pickContent(p.Content); mt != nil && mt.Schema != nil {
		return mt.Schema
	}
	return &parser.Schema{Type: "string"}
}

// pickContent prefers application/json, then any JSON media type, then the first media type by name.
func pickContent(content map[string]*parser.MediaType) (string, *parser.MediaType) {
	if len(content) == 0 {
		return "", nil
	}
	if mt, ok := content["application/json"]; ok && mt != nil {
		return "application/json", mt
	}
	keys := slices.Sorted(maps.Keys(content))
	for _, k := range keys {
		if isJSON(k) && content[k] != nil {
			return k, content[k]
		}
	}
	for _, k := range keys {
		if content[k] != nil {
			return k, content[k]
		}
	}
	return "", nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

func stripBraces(path string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(path)
}

// extensions copies the x- entries of an Extra map.
func extensions(extra map[string]any) map[string]any {
	ext := make(map[string]any)
	for k, v := range extra {
		if strings.HasPrefix(k, "x-") {
			ext[k] = v
		}
	}
	return ext
}
