// Package textwrap wraps long string values into fixed-width multi-line
// text for display. It is applied to upstream record fields before they
// are returned to the caller.
package textwrap

import "strings"

// DefaultMaxLength is the line width threshold for wrapping.
const DefaultMaxLength = 50

// Wrap greedily packs whitespace-delimited words into lines of at most
// maxLength characters, joined by newlines. Strings at or under the
// threshold are returned unchanged. A single word longer than the
// threshold is kept intact and starts its own line.
func Wrap(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var current []string
	currentLen := 0

	for _, word := range words {
		if currentLen+len(word)+1 <= maxLength {
			current = append(current, word)
			currentLen += len(word) + 1
		} else {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
			}
			current = []string{word}
			currentLen = len(word)
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return strings.Join(lines, "\n")
}

// FormatRecord returns a copy of the record with every string field
// longer than the threshold wrapped. Non-string values and short strings
// pass through unchanged. Only the top level of the mapping is touched.
func FormatRecord(record map[string]any) map[string]any {
	formatted := make(map[string]any, len(record))
	for key, value := range record {
		if s, ok := value.(string); ok && len(s) > DefaultMaxLength {
			formatted[key] = Wrap(s, DefaultMaxLength)
		} else {
			formatted[key] = value
		}
	}
	return formatted
}
