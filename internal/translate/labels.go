package translate

import (
	"regexp"
	"strings"
)

var wordSeparators = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler derives a human-friendly label from a field name. It
// splits on underscores, dashes, and camelCase boundaries and title-cases
// each word: "start_date" and "startDate" both become "Start Date".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var out []string
	for _, word := range wordSeparators.Split(name, -1) {
		for _, part := range splitCamelCase(word) {
			if part == "" {
				continue
			}
			out = append(out, strings.ToUpper(part[:1])+strings.ToLower(part[1:]))
		}
	}
	return strings.Join(out, " ")
}

func splitCamelCase(word string) []string {
	if word == "" {
		return nil
	}
	var parts []string
	start := 0
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if camelBoundary(runes[i-1], runes[i]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

func camelBoundary(prev, curr rune) bool {
	isLower := func(r rune) bool { return r >= 'a' && r <= 'z' }
	isUpper := func(r rune) bool { return r >= 'A' && r <= 'Z' }
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }

	switch {
	case isLower(prev) && isUpper(curr):
		return true
	case (isLower(prev) || isUpper(prev)) && isDigit(curr):
		return true
	case isDigit(prev) && (isLower(curr) || isUpper(curr)):
		return true
	}
	return false
}
