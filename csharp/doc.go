// Package csharp implements the csharp-dotnet-core emitter, which generates a
// C# client library for .NET Core from an OpenAPI document.
//
// The emitter plugs into the codegen engine through [codegen.Config]. Beyond
// the naming and type rules of C#, it appends a CancellationToken parameter
// named ct to every operation, renders arrays as ArrayList<T> (declared in the
// generated ApiClient.cs), and picks the System.Text.Json version that
// matches the targetFramework option:
//
//	net8.0 -> 8.0.3
//	net7.0 -> 7.0.4
//	net6.0 -> 6.0.9
//	net5.0 -> 5.0.2
//
// Other frameworks are accepted and keep the current version.
//
// # Options
//
// Additional properties understood by Configure:
//
//	packageName       root namespace (default IO.Swagger)
//	packageVersion    assembly version (default 1.0.0)
//	clientPackage     namespace of ApiClient.cs (default <packageName>.Client)
//	targetFramework   project target framework (default net8.0)
//	apiDocPath        API documentation folder (default docs)
//	modelDocPath      model documentation folder (default docs)
//	useCsProjFile     also generate <clientPackage>.csproj
//
// clientPackage is derived from the final packageName when it is not set, so
// renaming the package also renames the client namespace and the csproj
// file. Pass clientPackage=IO.Swagger.Client explicitly to keep the client
// classes in the default namespace under a custom packageName.
//
// The options are validated against an embedded JSON Schema before Configure runs.
package csharp
