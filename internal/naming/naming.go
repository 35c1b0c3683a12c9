// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"
)

// Camelize converts a word to PascalCase, or camelCase when lowercaseFirst is true.
//
// The rules follow the ones template authors of OpenAPI code generators are used to:
// slashes and dots separate words, every word gets its first letter upper-cased,
// an underscore or hyphen followed by a character is removed and the character
// upper-cased. A trailing underscore or hyphen is kept.
//
// Example: "create_user" -> "CreateUser"
// Example: "pets/by-id" -> "PetsById"
// Example: "user_profile", true -> "userProfile"
func Camelize(word string, lowercaseFirst bool) string {
	if word == "" {
		return ""
	}

	var b strings.Builder
	for part := range strings.SplitSeq(strings.ReplaceAll(word, "/", "."), ".") {
		b.WriteString(upperFirst(part))
	}
	runes := []rune(b.String())

	runes = joinSeparated(runes, '_', true)
	runes = joinSeparated(runes, '-', false)

	if lowercaseFirst && len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

// joinSeparated removes sep when it is followed by another character and upper-cases
// that character. With keepUpper, a following character that is already upper case
// (or has no case) only loses the separator.
func joinSeparated(runes []rune, sep rune, keepUpper bool) []rune {
	for i := 0; i < len(runes)-1; {
		if runes[i] != sep {
			i++
			continue
		}
		next := runes[i+1]
		upper := unicode.ToUpper(next)
		if !keepUpper || upper != next {
			runes[i+1] = upper
		}
		runes = append(runes[:i], runes[i+1:]...)
		// Rescan from the same position: "a__b" collapses to "aB".
	}
	return runes
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IsUpperSnake reports whether s consists only of upper-case letters, digits
// and underscores, e.g. "API_KEY". Such names are kept as-is by emitters.
func IsUpperSnake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
