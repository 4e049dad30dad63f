package classify_test

import (
	"testing"

	"github.com/alnah/go-docfmt/internal/classify"
)

// classifyOne is a test helper: classify a single paragraph and return its
// type tag.
func classifyOne(t *testing.T, text string) string {
	t.Helper()
	got := classify.Classify(text)
	if len(got) != 1 {
		t.Fatalf("Classify(%q) produced %d paragraphs, want 1", text, len(got))
	}
	return got[0].Type
}

// ---------------------------------------------------------------------------
// TestRules - Detection table, family by family
// ---------------------------------------------------------------------------

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		// Markdown headings, deepest first
		{name: "markdown h1", text: "# Introduction", want: classify.TagHeading1},
		{name: "markdown h2", text: "## Background", want: classify.TagHeading2},
		{name: "markdown h3", text: "### Details", want: classify.TagHeading3},
		{name: "markdown h4", text: "#### Minor", want: classify.TagHeading4},
		{name: "markdown h5", text: "##### Sub", want: classify.TagHeading5},
		{name: "markdown h6", text: "###### Deepest", want: classify.TagHeading6},

		// Code fences
		{name: "backtick fence", text: "```python\nprint(1)\n```", want: classify.TagCodeBlock},
		{name: "tilde fence", text: "~~~go\nfmt.Println(1)\n~~~", want: classify.TagCodeBlock},

		// Blockquote
		{name: "blockquote", text: "> cited passage", want: classify.TagBlockquote},

		// Abstract / keywords, both languages
		{name: "abstract cn colon", text: "摘要：本文研究了文档排版问题。", want: classify.TagAbstractCN},
		{name: "abstract cn spaced", text: "摘 要 本文研究", want: classify.TagAbstractCN},
		{name: "abstract cn brackets", text: "【摘要】本文研究", want: classify.TagAbstractCN},
		{name: "abstract cn 内容摘要", text: "内容摘要：本文", want: classify.TagAbstractCN},
		{name: "keywords cn", text: "关键词：排版；格式化", want: classify.TagKeywordsCN},
		{name: "keywords cn variant", text: "关键字：排版", want: classify.TagKeywordsCN},
		{name: "abstract en", text: "Abstract: This paper studies formatting.", want: classify.TagAbstractEN},
		{name: "abstract en lowercase", text: "abstract this paper", want: classify.TagAbstractEN},
		{name: "summary en", text: "Summary: main findings", want: classify.TagAbstractEN},
		{name: "keywords en", text: "Keywords: layout, formatting", want: classify.TagKeywordsEN},
		{name: "keywords en spaced", text: "Key words: layout", want: classify.TagKeywordsEN},

		// Acknowledgement
		{name: "acknowledgement cn", text: "致谢", want: classify.TagAcknowledgement},
		{name: "acknowledgement cn variant", text: "谢 辞", want: classify.TagAcknowledgement},
		{name: "acknowledgement en", text: "Acknowledgements", want: classify.TagAcknowledgement},

		// Bare references line is a chapter heading, entries are references
		{name: "references heading cn", text: "参考文献", want: classify.TagHeading1},
		{name: "references heading en", text: "References", want: classify.TagHeading1},
		{name: "bracketed reference entry", text: "[1] Knuth D. The Art of Computer Programming.", want: classify.TagReference},
		{name: "numbered reference entry", text: "2. Smith J. A study of layout. 2020.", want: classify.TagReference},

		// Captions
		{name: "figure caption cn", text: "图1 系统架构", want: classify.TagFigureCaption},
		{name: "figure caption en", text: "Figure 2: Results overview", want: classify.TagFigureCaption},
		{name: "figure caption abbreviated", text: "Fig. 3 Pipeline stages", want: classify.TagFigureCaption},
		{name: "table caption cn", text: "表 2：对比结果", want: classify.TagTableCaption},
		{name: "table caption en", text: "Table 1. Comparison", want: classify.TagTableCaption},

		// TOC heading
		{name: "toc cn", text: "目 录", want: classify.TagTOC},
		{name: "toc en", text: "Contents", want: classify.TagTOC},
		{name: "toc en long", text: "Table of Contents", want: classify.TagTOC},

		// Numbered section headings
		{name: "cjk chapter", text: "第一章 绪论", want: classify.TagHeading1},
		{name: "cjk section", text: "第三节 方法", want: classify.TagHeading1},
		{name: "cjk ordinal", text: "一、引言", want: classify.TagHeading1},
		{name: "bare decimal heading", text: "3 研究方法", want: classify.TagHeading1},
		{name: "cjk parenthesized", text: "（一）理论基础", want: classify.TagHeading2},
		{name: "two-level decimal", text: "2.1 实验设计", want: classify.TagHeading2},
		{name: "three-level decimal", text: "2.1.3 数据来源", want: classify.TagHeading3},

		// List items
		{name: "dash list item", text: "- 第一项", want: classify.TagListItem},
		{name: "star list item", text: "* item", want: classify.TagListItem},
		{name: "plus list item", text: "+ item", want: classify.TagListItem},
		{name: "numbered cjk list item", text: "1. 第一项", want: classify.TagListItem},
		{name: "paren list item", text: "2) second", want: classify.TagListItem},
		{name: "letter list item", text: "a) option one", want: classify.TagListItem},

		// Fallback
		{name: "plain prose", text: "这是一段普通的正文内容。", want: classify.TagBody},
		{name: "plain english prose", text: "An ordinary body paragraph.", want: classify.TagBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyOne(t, tt.text); got != tt.want {
				t.Errorf("Classify(%q) type = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRuleOrdering - First-match-wins contracts
// ---------------------------------------------------------------------------

func TestRuleOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			// The reference-entry pattern for "N. Capitalized" runs before
			// the numbered list pattern.
			name: "numbered capitalized line is a reference not a list item",
			text: "1. Introduction to the field",
			want: classify.TagReference,
		},
		{
			// "2.1 " must hit the two-level heading rule, not the list rule.
			name: "decimal heading beats list item",
			text: "2.1 方法概述",
			want: classify.TagHeading2,
		},
		{
			// A bare "References" must stay a heading even though entries
			// follow; only the entry lines match the entry patterns.
			name: "references heading beats entry pattern",
			text: "References",
			want: classify.TagHeading1,
		},
		{
			// Only the first line decides: a multi-line paragraph starting
			// with a heading marker is a heading.
			name: "first line decides multi-line paragraph",
			text: "# Heading\ncontinuation text",
			want: classify.TagHeading1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyOne(t, tt.text); got != tt.want {
				t.Errorf("Classify(%q) type = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
