package codegen

// VendorHasMore is the vendor extension templates read to decide whether a
// separator follows an item in an ordered list.
const VendorHasMore = "x-has-more"

// Operation is one API operation after the document has been walked.
// Emitters mutate it in place from Config.OnOperation.
type Operation struct {
	// Path is the API path pattern, e.g. "/pets/{petId}"
	Path string
	// HTTPMethod is the upper-case HTTP method, e.g. "GET"
	HTTPMethod string
	// OperationID is the operationId from the document, or a synthesized one
	OperationID string
	// Nickname is the emitter's method name for the operation
	Nickname string
	Summary  string
	Notes    string
	Tags     []string

	// AllParams is the ordered parameter list used for method signatures
	AllParams    []*Parameter
	PathParams   []*Parameter
	QueryParams  []*Parameter
	HeaderParams []*Parameter
	CookieParams []*Parameter
	BodyParam    *Parameter

	// RequiredParams and OptionalParams are filled by DefaultConfig.ProcessOperation
	RequiredParams []*Parameter
	OptionalParams []*Parameter

	// ReturnType is the declared type of the success response body, empty for none
	ReturnType string
	// ReturnContentType is the media type of the success response body
	ReturnContentType string
	// BodyContentType is the media type of the request body
	BodyContentType string

	Deprecated       bool
	VendorExtensions map[string]any
}

// HasParams reports whether the operation has any parameter.
func (o *Operation) HasParams() bool {
	return len(o.AllParams) > 0
}

// Parameter is one operation parameter.
type Parameter struct {
	// BaseName is the name as it appears on the wire
	BaseName string
	// ParamName is the emitter's legal identifier for the parameter
	ParamName string
	// DataType is the emitter's type declaration
	DataType    string
	Description string
	// In is one of path, query, header, cookie or body
	In       string
	Required bool
	// Secondary marks parameters that do not come from the document,
	// such as an injected cancellation token.
	Secondary        bool
	IsArray          bool
	VendorExtensions map[string]any
}

// HasMore reports whether another parameter follows this one.
func (p *Parameter) HasMore() bool {
	return vendorBool(p.VendorExtensions, VendorHasMore)
}

// SetHasMore sets the x-has-more vendor extension.
func (p *Parameter) SetHasMore(more bool) {
	if p.VendorExtensions == nil {
		p.VendorExtensions = make(map[string]any)
	}
	p.VendorExtensions[VendorHasMore] = more
}

// IsPathParam reports whether the parameter is substituted into the path.
func (p *Parameter) IsPathParam() bool { return p.In == "path" }

// IsQueryParam reports whether the parameter is sent in the query string.
func (p *Parameter) IsQueryParam() bool { return p.In == "query" }

// IsHeaderParam reports whether the parameter is sent as a request header.
func (p *Parameter) IsHeaderParam() bool { return p.In == "header" }

// IsCookieParam reports whether the parameter is sent as a cookie.
func (p *Parameter) IsCookieParam() bool { return p.In == "cookie" }

// IsBodyParam reports whether the parameter is the request body.
func (p *Parameter) IsBodyParam() bool { return p.In == "body" }

// Model is a named schema from components.schemas.
type Model struct {
	// Name is the schema key in the document
	Name string
	// ClassName is the emitter's type name
	ClassName   string
	Description string
	Vars        []*Property
	IsEnum      bool
	// EnumValues holds the string form of each enum value
	EnumValues []string
	// DataType is the underlying type of an enum or alias model
	DataType         string
	VendorExtensions map[string]any
}

// HasVars reports whether the model has any property.
func (m *Model) HasVars() bool {
	return len(m.Vars) > 0
}

// Property is one property of a Model.
type Property struct {
	// BaseName is the JSON property name
	BaseName string
	// Name is the emitter's member name
	Name        string
	DataType    string
	Description string
	Required    bool
	ReadOnly    bool
	Deprecated  bool
	// Example is the schema example, if any
	Example          any
	VendorExtensions map[string]any
}

// HasMore reports whether another property follows this one.
func (p *Property) HasMore() bool {
	return vendorBool(p.VendorExtensions, VendorHasMore)
}

// SetHasMore sets the x-has-more vendor extension.
func (p *Property) SetHasMore(more bool) {
	if p.VendorExtensions == nil {
		p.VendorExtensions = make(map[string]any)
	}
	p.VendorExtensions[VendorHasMore] = more
}

// APIGroup is the set of operations rendered into one API class.
type APIGroup struct {
	// Tag is the document tag the operations were grouped by
	Tag string
	// ClassName is the emitter's class name for the group
	ClassName   string
	Description string
	Operations  []*Operation
}

func vendorBool(ext map[string]any, key string) bool {
	v, _ := ext[key].(bool)
	return v
}
