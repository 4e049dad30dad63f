package classify

// Paragraph type tags. The set is closed: every classified paragraph
// carries exactly one of these.
const (
	TagTitleCN         = "title_cn"
	TagTitleEN         = "title_en"
	TagAbstractCN      = "abstract_cn"
	TagAbstractEN      = "abstract_en"
	TagKeywordsCN      = "keywords_cn"
	TagKeywordsEN      = "keywords_en"
	TagHeading1        = "heading_1"
	TagHeading2        = "heading_2"
	TagHeading3        = "heading_3"
	TagHeading4        = "heading_4"
	TagHeading5        = "heading_5"
	TagHeading6        = "heading_6"
	TagBody            = "body"
	TagReference       = "reference"
	TagAcknowledgement = "acknowledgement"
	TagFigureCaption   = "figure_caption"
	TagTableCaption    = "table_caption"
	TagListItem        = "list_item"
	TagTOC             = "toc"
	TagCodeBlock       = "code_block"
	TagBlockquote      = "blockquote"
)

// TagNames maps each tag to a display label for CLI output.
var TagNames = map[string]string{
	TagTitleCN:         "title (CN)",
	TagTitleEN:         "title (EN)",
	TagAbstractCN:      "abstract (CN)",
	TagAbstractEN:      "abstract (EN)",
	TagKeywordsCN:      "keywords (CN)",
	TagKeywordsEN:      "keywords (EN)",
	TagHeading1:        "heading 1",
	TagHeading2:        "heading 2",
	TagHeading3:        "heading 3",
	TagHeading4:        "heading 4",
	TagHeading5:        "heading 5",
	TagHeading6:        "heading 6",
	TagBody:            "body text",
	TagReference:       "reference entry",
	TagAcknowledgement: "acknowledgement",
	TagFigureCaption:   "figure caption",
	TagTableCaption:    "table caption",
	TagListItem:        "list item",
	TagTOC:             "table of contents",
	TagCodeBlock:       "code block",
	TagBlockquote:      "block quote",
}

// headingLevels maps heading tags to their outline level.
// The mapping is total and injective over the heading tags.
var headingLevels = map[string]int{
	TagHeading1: 1,
	TagHeading2: 2,
	TagHeading3: 3,
	TagHeading4: 4,
	TagHeading5: 5,
	TagHeading6: 6,
}

// KnownTag reports whether tag belongs to the closed tag set.
func KnownTag(tag string) bool {
	_, ok := TagNames[tag]
	return ok
}

// HeadingLevel returns the outline level for a heading tag, or 0 for
// non-heading tags.
func HeadingLevel(tag string) int {
	return headingLevels[tag]
}
