package match

import (
	"strings"
	"unicode"
)

// stemSuffixes are trailing words that rarely carry meaning in a key name.
var stemSuffixes = map[string]bool{
	"id":        true,
	"ids":       true,
	"at":        true,
	"utc":       true,
	"timestamp": true,
}

// TokenizeIdent splits a key or dotted path into lowercase words. Path
// separators, underscores, dashes and spaces end a word, and so does a
// change of case: "person.firstName" gives [person first name] and
// "getHTTPResponse" gives [get http response].
func TokenizeIdent(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && caseBoundary(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

// NormalizeIdent reduces a key or dotted path to its words run together, so
// "person.firstName" and "person_first_name" normalize the same.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// StemIdent is NormalizeIdent without a trailing id, ids, at, utc or
// timestamp word. A single word is kept as is.
func StemIdent(s string) string {
	words := TokenizeIdent(s)
	if n := len(words); n > 1 && stemSuffixes[words[n-1]] {
		words = words[:n-1]
	}

	return strings.Join(words, "")
}

func isSeparator(r rune) bool {
	switch r {
	case '.', '_', '-', ' ':
		return true
	default:
		return false
	}
}

// caseBoundary reports whether runes[i] starts a new word: an upper case
// letter after a lower case one ("firstName"), or the last capital of an
// acronym followed by lower case ("XMLParser").
func caseBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
