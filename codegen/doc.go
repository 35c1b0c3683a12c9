// Package codegen drives a language emitter over an OpenAPI document.
//
// The engine loads the document with the oastools parser, converts Swagger
// 2.0 input to OAS 3.0.3, builds the operation and model graph, and renders
// the emitter's text/template files. Everything language specific lives
// behind the [Config] interface.
//
// # Quick Start
//
// Generate a client using functional options:
//
//	result, err := codegen.GenerateWithOptions(
//		codegen.WithFilePath("openapi.yaml"),
//		codegen.WithConfig(csharp.New()),
//		codegen.WithOutputDir("out"),
//		codegen.WithAdditionalProperties(map[string]any{"packageName": "Acme.Pets"}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("out"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := codegen.New()
//	g.Config = csharp.New()
//	g.OutputDir = "out"
//	result, _ := g.Generate("openapi.yaml")
//
// # Hooks
//
// The engine calls the emitter on a single goroutine, in this order:
//
//  1. Configure, after the additional properties are merged and validated
//     against the emitter's options schema
//  2. TypeDeclaration and OnTypeDeclaration for every property, parameter and
//     return type
//  3. OnOperation for every operation, paths sorted and methods in the order
//     GET, PUT, POST, DELETE, OPTIONS, HEAD, PATCH, TRACE
//  4. ResolveCodeFolder and ResolveDocFolder while output files are planned
//
// Only then are the files rendered, in parallel and bounded by
// [WithConcurrency]. The graph is read-only during rendering.
//
// # Templates
//
// Templates see the additional properties plus generatorName, appName,
// appDescription, appVersion and basePath. API templates also get api,
// classname, baseName, description and operations; model templates get model,
// classname and description; supporting files get apis and models.
//
// Every lambda of the emitter is a template function of the same name:
//
//	{{ pascalcase "create_user" }}            -> CreateUser
//	{{ lambda "lowercase" .classname }}
//	{{ apply "pascalcase" "fragment.tmpl" . }} // lambda over a rendered sub-template
//
// [WithTemplateDir] overlays a directory of *.tmpl files on the embedded ones.
//
// # Issues
//
// Constructs the engine cannot express, such as oneOf schemas or path item
// references, are reported as [GenerateIssue] values in the result instead of
// failing the run.
package codegen
