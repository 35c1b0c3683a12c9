package codegen

import (
	"testing/fstest"
)

const testDocument = `openapi: 3.0.3
info:
  title: test api
  version: "1.0"
servers:
  - url: https://api.example.com
tags:
  - name: users
    description: User management
paths:
  /users/{id}:
    parameters:
      - name: id
        in: path
        schema:
          type: string
    get:
      tags: [users]
      operationId: get_user
      parameters:
        - name: verbose
          in: query
          schema:
            type: boolean
        - name: id
          in: path
          required: true
          schema:
            type: integer
        - name: X-Trace
          in: header
          required: true
          schema:
            type: string
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/User"
  /users:
    post:
      tags: [users]
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/User"
      responses:
        "201":
          description: created
  /ping:
    get:
      operationId: ping
      responses:
        default:
          description: ok
          content:
            text/plain:
              schema:
                type: string
components:
  schemas:
    User:
      allOf:
        - $ref: "#/components/schemas/Base"
        - type: object
          required: [name]
          properties:
            name:
              type: string
            tags:
              type: array
              items:
                type: string
    Base:
      type: object
      required: [id]
      properties:
        id:
          type: integer
          format: int64
    Shape:
      oneOf:
        - type: string
        - type: integer
    Color:
      type: string
      enum: [red, green]
`

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"api.tmpl": {Data: []byte(
			`{{.classname}}:{{range .operations}} {{.Nickname}}({{range .AllParams}}{{.DataType}} {{.ParamName}}{{if .HasMore}}, {{end}}{{end}}){{end}}`,
		)},
		"model.tmpl": {Data: []byte(
			`{{.classname}}{{range .model.Vars}} {{.Name}}:{{.DataType}}{{if .Required}}!{{end}}{{end}}`,
		)},
		"model_doc.tmpl": {Data: []byte(`# {{.classname}}`)},
		"index.tmpl": {Data: []byte(
			`{{titlecase .appName}}|{{len .apis}}|{{len .models}}|{{lambda "pascalcase" "user_profile"}}|{{.basePath}}|{{prop "custom"}}`,
		)},
	}
}

// testConfig is a DefaultConfig with plain-text templates that records hook calls.
type testConfig struct {
	DefaultConfig

	configured   int
	operations   []string
	declarations int
	configureErr error
}

func newTestConfig() *testConfig {
	c := &testConfig{DefaultConfig: NewDefaultConfig()}
	c.SetTemplates(testTemplates())
	c.SetTemplateFile(KindAPI, "api.tmpl", ".txt")
	c.SetTemplateFile(KindModel, "model.tmpl", ".txt")
	c.SetDocTemplateFile(KindModel, "model_doc.tmpl", ".md")
	c.AddSupportingFile(SupportingFile{Template: "index.tmpl", Destination: "INDEX.txt"})
	return c
}

func (c *testConfig) Name() string { return "test" }

func (c *testConfig) Configure() error {
	c.configured++
	return c.configureErr
}

func (c *testConfig) OnOperation(op *Operation) {
	c.operations = append(c.operations, op.OperationID)
	c.ProcessOperation(op)
}

func (c *testConfig) OnTypeDeclaration(raw string) string {
	c.declarations++
	return raw
}
