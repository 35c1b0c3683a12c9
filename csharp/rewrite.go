package csharp

import "strings"

const (
	collectionToken       = "List"
	collectionReplacement = "ArrayList"
)

// RewriteCollectionToken replaces every standalone "List" token in a type
// declaration with "ArrayList".
//
// A token is standalone when it starts the string or follows a space, comma
// or '<', and it ends the string or is followed by a comma, '<' or '>'.
// Tokens inside longer identifiers such as "MyListType" are kept. The left
// boundary also applies at the end of the string, so a trailing suffix like
// "PetList" is not rewritten even though nothing follows it.
//
//	"Dictionary<string, List<int>>" -> "Dictionary<string, ArrayList<int>>"
func RewriteCollectionToken(decl string) string {
	var b strings.Builder
	copied := 0

	for i := 0; ; {
		j := strings.Index(decl[i:], collectionToken)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(collectionToken)
		if leftBoundary(decl, start) && rightBoundary(decl, end) {
			if copied == 0 {
				b.Grow(len(decl) + len(collectionReplacement) - len(collectionToken))
			}
			b.WriteString(decl[copied:start])
			b.WriteString(collectionReplacement)
			copied = end
		}
		i = end
	}

	if copied == 0 {
		return decl
	}
	b.WriteString(decl[copied:])
	return b.String()
}

func leftBoundary(s string, start int) bool {
	if start == 0 {
		return true
	}
	switch s[start-1] {
	case ' ', ',', '<':
		return true
	}
	return false
}

func rightBoundary(s string, end int) bool {
	if end == len(s) {
		return true
	}
	switch s[end] {
	case ',', '>', '<':
		return true
	}
	return false
}
