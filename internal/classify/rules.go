package classify

import "regexp"

// rule pairs a paragraph type tag with the patterns that detect it.
// A tag may appear in more than one rule (e.g. heading_1 is matched by
// both the Markdown marker and the CJK chapter-numbering conventions).
type rule struct {
	tag      string
	patterns []*regexp.Regexp
}

// pat compiles a detection pattern. Patterns are case-insensitive, anchor
// at the start of the paragraph (\A), and treat $ as end-of-line so a
// first-line match works on multi-line paragraphs.
func pat(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)` + expr)
}

// rules is evaluated top to bottom with first-match-wins. The order is a
// correctness contract, not a style choice:
//
//   - Markdown heading markers run deepest-first so the heading_1 pattern
//     cannot swallow deeper levels.
//   - Numbered-heading conventions run before generic list markers, which
//     would otherwise capture "1. Introduction".
//   - The literal "References" heading runs before reference entries.
//
// Reordering entries changes classification outcomes.
var rules = []rule{
	{TagHeading6, []*regexp.Regexp{pat(`\A######\s+.+$`)}},
	{TagHeading5, []*regexp.Regexp{pat(`\A#####\s+.+$`)}},
	{TagHeading4, []*regexp.Regexp{pat(`\A####\s+.+$`)}},
	{TagHeading3, []*regexp.Regexp{pat(`\A###\s+.+$`)}},
	{TagHeading2, []*regexp.Regexp{pat(`\A##\s+.+$`)}},
	{TagHeading1, []*regexp.Regexp{pat(`\A#\s+.+$`)}},

	{TagCodeBlock, []*regexp.Regexp{
		pat("\\A```"),
		pat(`\A~~~`),
	}},

	{TagBlockquote, []*regexp.Regexp{pat(`\A>\s+`)}},

	{TagAbstractCN, []*regexp.Regexp{
		pat(`\A摘\s*要[:：]?\s*`),
		pat(`\A【摘\s*要】`),
		pat(`\A内容摘要[:：]?\s*`),
	}},
	{TagKeywordsCN, []*regexp.Regexp{
		pat(`\A关键词[:：]?\s*`),
		pat(`\A关键字[:：]?\s*`),
		pat(`\A【关键词】`),
	}},

	{TagAbstractEN, []*regexp.Regexp{
		pat(`\Aabstract[:：]?\s*`),
		pat(`\Asummary[:：]?\s*`),
	}},
	{TagKeywordsEN, []*regexp.Regexp{
		pat(`\Akey\s*words[:：]?\s*`),
		pat(`\Akeywords[:：]?\s*`),
	}},

	{TagAcknowledgement, []*regexp.Regexp{
		pat(`\A致\s*谢`),
		pat(`\A谢\s*辞`),
		pat(`\Aacknowledgement`),
	}},

	// A bare "References" line is a chapter heading, not an entry.
	{TagHeading1, []*regexp.Regexp{
		pat(`\A参考文献\s*$`),
		pat(`\Areferences\s*$`),
	}},

	{TagReference, []*regexp.Regexp{
		pat(`\A\[\d+\]\s*.+`),
		pat(`\A\d+\.\s+[A-Z].+`),
	}},

	{TagFigureCaption, []*regexp.Regexp{
		pat(`\A图\s*\d+[\.．:：]?\s*.+`),
		pat(`\Afig\.?\s*\d+[\.．:：]?\s*.+`),
		pat(`\Afigure\s*\d+[\.．:：]?\s*.+`),
	}},
	{TagTableCaption, []*regexp.Regexp{
		pat(`\A表\s*\d+[\.．:：]?\s*.+`),
		pat(`\Atab\.?\s*\d+[\.．:：]?\s*.+`),
		pat(`\Atable\s*\d+[\.．:：]?\s*.+`),
	}},

	{TagTOC, []*regexp.Regexp{
		pat(`\A目\s*录\s*$`),
		pat(`\Acontents?\s*$`),
		pat(`\Atable\s+of\s+contents?\s*$`),
	}},

	// Numbered section headings: CJK chapter numerals plus decimal
	// numbering, where "1", "1.1" and "1.1.1" map to levels 1/2/3.
	{TagHeading1, []*regexp.Regexp{
		pat(`\A第[一二三四五六七八九十百]+[章节]\s+`),
		pat(`\A[一二三四五六七八九十]+[、\.．]\s*`),
		pat(`\A\d+\s+[^\d\.\s].{2,}$`),
	}},
	{TagHeading2, []*regexp.Regexp{
		pat(`\A[（\(][一二三四五六七八九十]+[）\)]\s*`),
		pat(`\A\d+[\.．]\d+\s+`),
	}},
	{TagHeading3, []*regexp.Regexp{
		pat(`\A\d+[\.．]\d+[\.．]\d+\s+`),
	}},

	{TagListItem, []*regexp.Regexp{
		pat(`\A[-*+]\s+.+`),
		pat(`\A\d+[\.）\)]\s+.+`),
		pat(`\A[a-z][\.）\)]\s+.+`),
	}},
}

// matchRules returns the first tag whose patterns match text, or "" when
// no rule applies.
func matchRules(text string) string {
	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(text) {
				return r.tag
			}
		}
	}
	return ""
}
