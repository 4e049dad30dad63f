// Package lint reports structural issues in a classified paragraph
// sequence: heading-level discontinuities, missing required sections,
// degenerate paragraphs, reference-numbering gaps, and leftover explicit
// markers.
package lint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-docfmt/internal/classify"
)

// Severity grades an issue.
type Severity string

const (
	SeverityError   Severity = "error"   // must fix
	SeverityWarning Severity = "warning" // should fix
	SeverityInfo    Severity = "info"    // may fix
)

// Kind identifies the check that produced an issue.
type Kind string

const (
	KindHeadingSkip      Kind = "heading_skip"
	KindDuplicateHeading Kind = "heading_duplicate"
	KindMissingAbstract  Kind = "missing_abstract"
	KindMissingKeywords  Kind = "missing_keywords"
	KindInvalidList      Kind = "invalid_list"
	KindEmptyParagraph   Kind = "empty_paragraph"
	KindLongParagraph    Kind = "long_paragraph"
	KindReferenceFormat  Kind = "reference_format"
	KindExistingMarker   Kind = "existing_marker"
)

// Body paragraphs longer than this many characters get a split suggestion.
const longParagraphLimit = 1000

// previewLimit caps the content preview attached to an issue.
const previewLimit = 50

var refNumber = regexp.MustCompile(`^\[(\d+)\]`)

// Issue is one structural finding. Immutable value.
type Issue struct {
	Line           int // 1-based source line
	ParagraphIndex int // -1 for document-level issues
	Kind           Kind
	Severity       Severity
	Message        string
	Suggestion     string
	Preview        string
}

// Run executes all checks against the classified paragraphs. The raw text
// is scanned separately for residual explicit markers, since markers left
// inside multi-marker or malformed paragraphs are consumed during
// classification and no longer visible in the units.
func Run(paragraphs []classify.Paragraph, raw string) []Issue {
	var issues []Issue
	issues = append(issues, checkHeadingHierarchy(paragraphs)...)
	issues = append(issues, checkRequiredSections(paragraphs)...)
	issues = append(issues, checkParagraphHygiene(paragraphs)...)
	issues = append(issues, checkReferenceNumbering(paragraphs)...)
	issues = append(issues, checkResidualMarkers(raw)...)
	return issues
}

// FilterLoose keeps only error-severity issues. No current check emits
// errors; the filter is generic headroom for future rules.
func FilterLoose(issues []Issue) []Issue {
	var kept []Issue
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			kept = append(kept, issue)
		}
	}
	return kept
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// checkHeadingHierarchy warns when a heading level exceeds the previous
// heading's level by more than one. The tracked level always advances to
// the current heading; non-heading paragraphs do not touch it.
func checkHeadingHierarchy(paragraphs []classify.Paragraph) []Issue {
	var issues []Issue
	last := 0

	for _, p := range paragraphs {
		level := classify.HeadingLevel(p.Type)
		if level == 0 {
			continue
		}
		if last > 0 && level > last+1 {
			issues = append(issues, Issue{
				Line:           p.LineStart,
				ParagraphIndex: p.Index,
				Kind:           KindHeadingSkip,
				Severity:       SeverityWarning,
				Message:        fmt.Sprintf("heading level jumps from %d to %d", last, level),
				Suggestion:     fmt.Sprintf("add a level-%d heading in between, or lower the current heading", last+1),
				Preview:        preview(p.Text),
			})
		}
		last = level
	}

	return issues
}

// checkRequiredSections reports missing abstract and keywords sections,
// accepting either language. Anchored at line 1.
func checkRequiredSections(paragraphs []classify.Paragraph) []Issue {
	found := make(map[string]bool, len(paragraphs))
	for _, p := range paragraphs {
		found[p.Type] = true
	}

	var issues []Issue
	if !found[classify.TagAbstractCN] && !found[classify.TagAbstractEN] {
		issues = append(issues, Issue{
			Line:           1,
			ParagraphIndex: 0,
			Kind:           KindMissingAbstract,
			Severity:       SeverityInfo,
			Message:        "no abstract section detected",
			Suggestion:     "add a paragraph starting with \"摘要：\" or \"Abstract:\"",
		})
	}
	if !found[classify.TagKeywordsCN] && !found[classify.TagKeywordsEN] {
		issues = append(issues, Issue{
			Line:           1,
			ParagraphIndex: 0,
			Kind:           KindMissingKeywords,
			Severity:       SeverityInfo,
			Message:        "no keywords section detected",
			Suggestion:     "add a paragraph starting with \"关键词：\" or \"Keywords:\"",
		})
	}
	return issues
}

// checkParagraphHygiene flags empty paragraphs and overlong body
// paragraphs. Length is counted in raw characters, not bytes.
func checkParagraphHygiene(paragraphs []classify.Paragraph) []Issue {
	var issues []Issue

	for _, p := range paragraphs {
		text := strings.TrimSpace(p.Text)
		switch {
		case text == "":
			issues = append(issues, Issue{
				Line:           p.LineStart,
				ParagraphIndex: p.Index,
				Kind:           KindEmptyParagraph,
				Severity:       SeverityWarning,
				Message:        "empty paragraph",
				Suggestion:     "remove the paragraph or add content",
			})
		case p.Type == classify.TagBody && len([]rune(text)) > longParagraphLimit:
			issues = append(issues, Issue{
				Line:           p.LineStart,
				ParagraphIndex: p.Index,
				Kind:           KindLongParagraph,
				Severity:       SeverityInfo,
				Message:        fmt.Sprintf("long paragraph (%d characters)", len([]rune(text))),
				Suggestion:     "consider splitting into several paragraphs",
				Preview:        preview(text) + "...",
			})
		}
	}

	return issues
}

// checkReferenceNumbering verifies that bracketed reference numbers form
// the sequence 1, 2, 3... After a mismatch the expectation resynchronizes
// to actual+1, so a single gap produces exactly one issue rather than a
// cascade.
func checkReferenceNumbering(paragraphs []classify.Paragraph) []Issue {
	var issues []Issue
	expected := 1

	for _, p := range paragraphs {
		if p.Type != classify.TagReference {
			continue
		}
		m := refNumber.FindStringSubmatch(p.Text)
		if m == nil {
			continue
		}
		actual, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if actual != expected {
			issues = append(issues, Issue{
				Line:           p.LineStart,
				ParagraphIndex: p.Index,
				Kind:           KindReferenceFormat,
				Severity:       SeverityWarning,
				Message:        fmt.Sprintf("reference numbering gap: expected [%d], got [%d]", expected, actual),
				Suggestion:     "check the reference entry order",
				Preview:        preview(p.Text),
			})
		}
		expected = actual + 1
	}

	return issues
}

// checkResidualMarkers scans raw lines for embedded explicit markers.
func checkResidualMarkers(raw string) []Issue {
	var issues []Issue

	lines := strings.Split(classify.NormalizeLineEndings(raw), "\n")
	for i, line := range lines {
		if !classify.ContainsMarker(line) {
			continue
		}
		issues = append(issues, Issue{
			Line:           i + 1,
			ParagraphIndex: -1,
			Kind:           KindExistingMarker,
			Severity:       SeverityInfo,
			Message:        "existing wf:type marker detected",
			Suggestion:     "existing markers are preserved; no action needed",
			Preview:        preview(line),
		})
	}

	return issues
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit])
	}
	return s
}
