// Package words splits identifiers into words and joins them back in the
// casing generated code needs.
package words

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerCamel joins the words of the given identifiers into an unexported
// lowerCamelCase identifier. Underscores are dropped.
//
//	LowerCamel("TooSmall")      // "tooSmall"
//	LowerCamel("Point", "x")    // "pointX"
//	LowerCamel("HTTPError", "") // "httpError"
//	LowerCamel("Pair", "0")     // "pair0"
func LowerCamel(idents ...string) string {
	var b strings.Builder
	for _, ident := range idents {
		for _, w := range SplitWords(ident) {
			if strings.Trim(w, "_") == "" {
				continue
			}
			if b.Len() == 0 {
				b.WriteString(lower.String(w))
				continue
			}
			b.WriteString(upperFirst(w))
		}
	}
	return b.String()
}

var lower = cases.Lower(language.Und)

func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}

// SplitWords splits a string into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		splitted := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				splitted = true
				break
			}
		}

		if !splitted {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	// Uppercase after lowercase (camelCase transition)
	if prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z' {
		return true
	}
	// Uppercase before lowercase (camelCase transition)
	if curr >= 'A' && curr <= 'Z' && next >= 'a' && next <= 'z' {
		return true
	}

	// Underscore after non-underscore
	if prev != '_' && curr == '_' {
		return true
	}
	// Non-underscore after underscore
	if prev == '_' && curr != '_' {
		return true
	}

	// Digit after letter
	if (prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z') && (curr >= '0' && curr <= '9') {
		return true
	}
	// Letter after digit
	if (prev >= '0' && prev <= '9') && (curr >= 'a' && curr <= 'z' || curr >= 'A' && curr <= 'Z') {
		return true
	}

	return false
}
