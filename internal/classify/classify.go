// Package classify splits raw text into paragraph units and assigns each
// unit a semantic type tag.
//
// A paragraph unit is a maximal run of non-blank lines. Its tag comes from
// (in order) an explicit inline marker, an ordered first-match rule table,
// or the body fallback. The package also produces the canonical marked
// form of a text, a tag histogram, and a stable content fingerprint used
// for change detection.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"
)

// Explicit marker syntax: an HTML-comment wrapper pinning a paragraph's
// type, e.g. <!-- wf:type=abstract_cn -->. Markers override inference.
var (
	crlfOrCR     = regexp.MustCompile(`\r\n?`)
	markerAtHead = regexp.MustCompile(`^<!--\s*wf:type=(\w+)\s*-->`)
	markerStrip  = regexp.MustCompile(`^<!--\s*wf:type=\w+\s*-->\s*`)
	markerAny    = regexp.MustCompile(`<!--\s*wf:type=\w+\s*-->`)
)

// Break sentinels pass through classification untouched and are never
// prefixed with a type marker by MarkedText.
const (
	PageBreakSentinel    = "[[PAGEBREAK]]"
	SectionBreakSentinel = "[[SECTIONBREAK]]"
)

// Confidence levels per classification origin.
const (
	confidenceExplicit = 1.0
	confidenceMatched  = 0.9
	confidenceFallback = 0.7
)

// Paragraph is one classified paragraph unit. Immutable after
// classification; marker stripping happens at creation time only.
type Paragraph struct {
	Index      int     // dense, zero-based, source order
	Text       string  // newline-joined trimmed lines, marker removed
	LineStart  int     // inclusive, 1-based
	LineEnd    int     // inclusive, 1-based
	Type       string  // one of the Tag* constants
	Confidence float64 // in [0,1]
	Explicit   bool    // true when pinned by an inline marker
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// Split divides text into paragraph units with 1-based source line spans.
// A run of one or more non-blank lines forms one paragraph; blank-only
// input yields zero paragraphs, which is a valid outcome.
func Split(text string) []Paragraph {
	text = NormalizeLineEndings(text)
	lines := strings.Split(text, "\n")

	var paragraphs []Paragraph
	var current []string
	start := 1

	flush := func(end int) {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, Paragraph{
			Index:     len(paragraphs),
			Text:      strings.Join(current, "\n"),
			LineStart: start,
			LineEnd:   end,
		})
		current = nil
	}

	for i, line := range lines {
		lineNo := i + 1
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			flush(lineNo - 1)
			start = lineNo + 1
			continue
		}
		if len(current) == 0 {
			start = lineNo
		}
		current = append(current, stripped)
	}
	flush(len(lines))

	return paragraphs
}

// Classify splits text and assigns a type to every paragraph.
//
// Per paragraph, the first applicable step wins:
//  1. explicit marker: strip it, use its tag, confidence 1.0
//  2. rule table: first matching entry, confidence 0.9
//  3. body fallback, confidence 0.7
func Classify(text string) []Paragraph {
	paragraphs := Split(text)
	for i := range paragraphs {
		classifyOne(&paragraphs[i])
	}
	return paragraphs
}

func classifyOne(p *Paragraph) {
	text := strings.TrimSpace(p.Text)

	if m := markerAtHead.FindStringSubmatch(text); m != nil {
		p.Type = m[1]
		p.Confidence = confidenceExplicit
		p.Explicit = true
		p.Text = markerStrip.ReplaceAllString(text, "")
		return
	}

	if tag := matchRules(text); tag != "" {
		p.Type = tag
		p.Confidence = confidenceMatched
		return
	}

	p.Type = TagBody
	p.Confidence = confidenceFallback
}

// ContainsMarker reports whether s embeds an explicit type marker.
func ContainsMarker(s string) bool {
	return markerAny.MatchString(s)
}

// MarkedText renders the canonical explicitly-marked form of classified
// paragraphs: each paragraph preceded by its type marker, blank-line
// separated. Break sentinels are emitted bare.
func MarkedText(paragraphs []Paragraph) string {
	var lines []string
	for _, p := range paragraphs {
		if p.Text == PageBreakSentinel || p.Text == SectionBreakSentinel {
			lines = append(lines, p.Text, "")
			continue
		}
		lines = append(lines, fmt.Sprintf("<!-- wf:type=%s -->", p.Type), p.Text, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Histogram counts paragraphs per type tag.
func Histogram(paragraphs []Paragraph) map[string]int {
	counts := make(map[string]int, len(paragraphs))
	for _, p := range paragraphs {
		counts[p.Type]++
	}
	return counts
}

// Fingerprint returns a short stable hash of the normalized text, used to
// detect content changes between check and compile calls.
func Fingerprint(text string) string {
	normalized := strings.TrimSpace(NormalizeLineEndings(text))
	sum := blake3.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", sum[:8])
}
