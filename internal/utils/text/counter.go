// Package text provides utilities for text processing and analysis.
// Lengths are measured in Unicode characters (runes) rather than bytes so that
// multi-byte headlines are never cut in the middle of a character.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
//
// Examples:
//
//	CountRunes("hello")     // returns 5
//	CountRunes("héllo")     // returns 5
//	CountRunes("Hello👋")   // returns 6
//	CountRunes("")          // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// TruncateRunes returns the first limit runes of text.
// Text that already fits is returned unchanged. A non-positive limit yields "".
//
// Examples:
//
//	TruncateRunes("briefing", 5)  // returns "brief"
//	TruncateRunes("日本語テキスト", 3) // returns "日本語"
func TruncateRunes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	// Fast path: byte length bounds rune count from above.
	if len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
