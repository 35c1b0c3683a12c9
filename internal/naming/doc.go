// Package naming provides shared case conversion utilities for oasdotnet packages.
//
// Camelize is the word-joining routine behind the casing template lambdas and
// the C# identifier helpers. As an internal package, these functions are not
// part of the public API and may change without notice.
package naming
