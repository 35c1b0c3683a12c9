// Package oasdotnet generates C# client libraries for .NET Core from OpenAPI
// Specification documents.
//
// The module is split into a small host code-generation engine and the
// language emitter that plugs into it:
//
//   - codegen: loads a document through the oastools parser, builds the
//     operation and model graph, calls the emitter hooks and renders templates
//   - csharp: the csharp-dotnet-core emitter (namespaces, CLI options,
//     cancellation-token injection, collection type rewriting, output folders)
//   - lambda: text filters that templates apply to rendered fragments
//   - oaserrors: structured error types for errors.Is / errors.As
//
// # Quick Start
//
//	result, err := codegen.GenerateWithOptions(
//		codegen.WithFilePath("petstore.yaml"),
//		codegen.WithConfig(csharp.New()),
//		codegen.WithOutputDir("./out"),
//		codegen.WithAdditionalProperties(map[string]any{
//			"packageName":   "Petstore",
//			"useCsProjFile": true,
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./out"); err != nil {
//		log.Fatal(err)
//	}
//
// The same pipeline is available from the command line:
//
//	oasdotnet generate -i petstore.yaml -o ./out --package-name Petstore --use-csproj
package oasdotnet
