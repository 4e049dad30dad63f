package docfmt

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-docfmt/internal/classify"
)

// FromPlaintext parses plain text into a Document tree using the
// rule-based paragraph classifier for typing.
func (b *structuralBuilder) FromPlaintext(input string) (*Document, error) {
	paragraphs := classify.Classify(input)
	tags := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		tags[i] = p.Type
	}
	return b.buildTyped(paragraphs, tags), nil
}

// FromPlaintextWithTypes parses plain text using externally supplied
// per-paragraph type tags (one per blank-line-delimited paragraph, in
// order). Unknown or missing tags degrade to body; explicit inline
// markers still win over the supplied tag.
func (b *structuralBuilder) FromPlaintextWithTypes(input string, types []string) (*Document, error) {
	paragraphs := classify.Classify(input)
	tags := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		switch {
		case p.Explicit:
			tags[i] = p.Type
		case i < len(types) && classify.KnownTag(types[i]):
			tags[i] = types[i]
		default:
			tags[i] = classify.TagBody
		}
	}
	return b.buildTyped(paragraphs, tags), nil
}

// buildTyped converts classified paragraphs plus resolved tags into
// blocks. Consecutive list items merge into one list; consecutive
// reference entries merge into one bibliography.
func (b *structuralBuilder) buildTyped(paragraphs []classify.Paragraph, tags []string) *Document {
	doc := &Document{}

	var list *ListBlock
	var bib *BibliographyBlock

	flushList := func() {
		if list != nil {
			doc.Blocks = append(doc.Blocks, *list)
			list = nil
		}
	}
	flushBib := func() {
		if bib != nil {
			doc.Blocks = append(doc.Blocks, *bib)
			bib = nil
		}
	}

	for i, p := range paragraphs {
		tag := tags[i]

		if tag != classify.TagListItem {
			flushList()
		}
		if tag != classify.TagReference {
			flushBib()
		}

		switch p.Text {
		case classify.PageBreakSentinel:
			doc.Blocks = append(doc.Blocks, PageBreakBlock{})
			continue
		case classify.SectionBreakSentinel:
			doc.Blocks = append(doc.Blocks, SectionBreakBlock{})
			continue
		}

		switch tag {
		case classify.TagTitleCN:
			doc.Meta.TitleCN = p.Text
		case classify.TagTitleEN:
			doc.Meta.TitleEN = p.Text
		case classify.TagHeading1, classify.TagHeading2, classify.TagHeading3,
			classify.TagHeading4, classify.TagHeading5, classify.TagHeading6:
			doc.Blocks = append(doc.Blocks, HeadingBlock{
				Level: classify.HeadingLevel(tag),
				Text:  stripHeadingMarker(p.Text),
			})
		case classify.TagCodeBlock:
			code, lang := stripCodeFence(p.Text)
			if lang == "" {
				lang = guessLanguage(code)
			}
			doc.Blocks = append(doc.Blocks, CodeBlock{Text: code, Language: lang})
		case classify.TagBlockquote:
			doc.Blocks = append(doc.Blocks, QuoteBlock{Text: stripQuoteMarker(p.Text)})
		case classify.TagListItem:
			if list == nil {
				list = &ListBlock{Ordered: isOrderedItem(p.Text)}
			}
			list.Items = append(list.Items, stripListMarker(p.Text))
		case classify.TagReference:
			if bib == nil {
				bib = &BibliographyBlock{}
			}
			bib.Items = append(bib.Items, p.Text)
		case classify.TagFigureCaption:
			doc.Blocks = append(doc.Blocks, ParagraphBlock{Text: p.Text, Style: tag})
		default:
			doc.Blocks = append(doc.Blocks, ParagraphBlock{Text: p.Text, Style: tag})
		}
	}
	flushList()
	flushBib()

	return doc
}

// stripHeadingMarker removes a leading Markdown heading marker, leaving
// numbered-heading text (e.g. "1.1 Methods") untouched.
func stripHeadingMarker(s string) string {
	trimmed := strings.TrimLeft(s, "#")
	if trimmed != s {
		return strings.TrimSpace(trimmed)
	}
	return s
}

// stripCodeFence removes surrounding ``` or ~~~ fences and returns the
// code body and the fence's language tag, if any.
func stripCodeFence(s string) (code, lang string) {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 {
		return s, ""
	}
	first := lines[0]
	var fence string
	switch {
	case strings.HasPrefix(first, "```"):
		fence = "```"
	case strings.HasPrefix(first, "~~~"):
		fence = "~~~"
	default:
		return s, ""
	}
	lang = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(first, fence)))
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), fence) {
		lines = lines[:n-1]
	}
	return strings.Join(lines, "\n"), lang
}

// stripQuoteMarker removes leading "> " markers from every line.
func stripQuoteMarker(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, ">")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// stripListMarker removes a leading bullet or ordinal marker.
func stripListMarker(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, bullet := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, bullet) {
			return strings.TrimSpace(trimmed[len(bullet):])
		}
	}
	// Ordinal markers: "1. ", "1) ", "a. ", "a) " and fullwidth variants.
	for i, r := range trimmed {
		if r == '.' || r == ')' || r == '）' {
			rest := trimmed[i+len(string(r)):]
			if strings.HasPrefix(rest, " ") {
				return strings.TrimSpace(rest)
			}
		}
		if !isOrdinalRune(r) {
			break
		}
	}
	return trimmed
}

func isOrdinalRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isOrderedItem reports whether a list item uses an ordinal marker.
func isOrderedItem(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	r := rune(trimmed[0])
	return r >= '0' && r <= '9' || isOrdinalRune(r) && !strings.HasPrefix(trimmed, "- ")
}

// guessLanguage asks chroma's lexer analysis to identify the language of
// an unfenced code snippet. Returns "" when analysis is inconclusive.
func guessLanguage(code string) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	lexer := lexers.Analyse(code)
	if lexer == nil {
		return ""
	}
	return strings.ToLower(lexer.Config().Name)
}
