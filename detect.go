package docfmt

import "strings"

// detectWindow bounds the prefix scanned for heading indicators, in
// characters. CJK prose packs three bytes per character, so a byte slice
// would shrink the window for exactly the documents this tool targets.
const detectWindow = 500

// detectThreshold is the indicator count at which input counts as Markdown.
const detectThreshold = 2

// DetectInputFormat scores a fixed set of Markdown indicators and returns
// FormatMarkdown when at least two are present, FormatPlaintext otherwise.
// Heading markers are scanned in the first 500 characters; fenced code,
// image syntax, and pipe tables anywhere.
func DetectInputFormat(text string) string {
	head := text
	if len(head) > detectWindow {
		if runes := []rune(head); len(runes) > detectWindow {
			head = string(runes[:detectWindow])
		}
	}

	indicators := []bool{
		strings.HasPrefix(strings.TrimSpace(text), "---"),
		strings.Contains(head, "# "),
		strings.Contains(head, "## "),
		strings.Contains(head, "### "),
		strings.Contains(text, "```"),
		strings.Contains(text, "!["),
		strings.Contains(text, "| ") && strings.Contains(text, " |"),
	}

	count := 0
	for _, hit := range indicators {
		if hit {
			count++
		}
	}
	if count >= detectThreshold {
		return FormatMarkdown
	}
	return FormatPlaintext
}
