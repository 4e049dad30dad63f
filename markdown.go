package docfmt

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// structuralBuilder converts raw text into a Document tree. It implements
// all three builder contracts: Markdown via goldmark, plaintext via the
// rule-based classifier, and plaintext with externally supplied types.
type structuralBuilder struct {
	md goldmark.Markdown
}

// newStructuralBuilder creates a builder with GFM extensions enabled
// (tables, strikethrough, autolinks, task lists).
func newStructuralBuilder() *structuralBuilder {
	return &structuralBuilder{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// FromMarkdown parses Markdown into a Document tree.
//
// A level-1 heading opening the document becomes the document title
// (Chinese-script titles fill TitleCN, otherwise TitleEN) rather than a
// body heading, so cover rendering does not duplicate it.
func (b *structuralBuilder) FromMarkdown(input string) (*Document, error) {
	src := []byte(input)
	root := b.md.Parser().Parse(text.NewReader(src))

	doc := &Document{}
	first := true
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		blocks, err := b.convertNode(node, src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMarkdownParse, err)
		}
		if first && len(blocks) == 1 {
			if h, ok := blocks[0].(HeadingBlock); ok && h.Level == 1 {
				setTitle(&doc.Meta, h.Text)
				first = false
				continue
			}
		}
		first = false
		doc.Blocks = append(doc.Blocks, blocks...)
	}
	return doc, nil
}

// convertNode maps one top-level goldmark node to document blocks.
func (b *structuralBuilder) convertNode(node gast.Node, src []byte) ([]Block, error) {
	switch n := node.(type) {
	case *gast.Heading:
		return []Block{HeadingBlock{Level: n.Level, Text: nodeText(n, src)}}, nil

	case *gast.Paragraph:
		if fig, ok := imageOnlyParagraph(n, src); ok {
			return []Block{fig}, nil
		}
		return []Block{ParagraphBlock{Text: nodeText(n, src)}}, nil

	case *gast.FencedCodeBlock:
		code := rawLines(n, src)
		lang := string(n.Language(src))
		if lang == "" {
			lang = guessLanguage(code)
		}
		return []Block{CodeBlock{Text: strings.TrimRight(code, "\n"), Language: lang}}, nil

	case *gast.CodeBlock:
		return []Block{CodeBlock{Text: strings.TrimRight(rawLines(n, src), "\n")}}, nil

	case *gast.List:
		var items []string
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			items = append(items, nodeText(item, src))
		}
		return []Block{ListBlock{Ordered: n.IsOrdered(), Items: items}}, nil

	case *gast.Blockquote:
		return []Block{QuoteBlock{Text: nodeText(n, src)}}, nil

	case *gast.ThematicBreak:
		return []Block{PageBreakBlock{}}, nil

	case *east.Table:
		return []Block{convertTable(n, src)}, nil

	case *gast.HTMLBlock:
		// Raw HTML (including stray wf:type markers) carries no renderable
		// content in this pipeline.
		return nil, nil

	default:
		if txt := nodeText(node, src); txt != "" {
			return []Block{ParagraphBlock{Text: txt}}, nil
		}
		return nil, nil
	}
}

// convertTable flattens a GFM table into rows of cell text.
func convertTable(table *east.Table, src []byte) TableBlock {
	var rows [][]string
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, nodeText(cell, src))
		}
		rows = append(rows, cells)
	}
	return TableBlock{Rows: rows}
}

// imageOnlyParagraph detects a paragraph whose only content is one image
// and converts it to a figure with the alt text as caption.
func imageOnlyParagraph(p *gast.Paragraph, src []byte) (FigureBlock, bool) {
	img, ok := p.FirstChild().(*gast.Image)
	if !ok || p.ChildCount() != 1 {
		return FigureBlock{}, false
	}
	return FigureBlock{
		Path:    string(img.Destination),
		Caption: nodeText(img, src),
	}, true
}

// nodeText collects the plain text of a node's inline content.
func nodeText(node gast.Node, src []byte) string {
	var sb strings.Builder
	_ = gast.Walk(node, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *gast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *gast.String:
			sb.Write(t.Value)
		}
		return gast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// rawLines joins the raw source lines of a block node.
func rawLines(node gast.Node, src []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}

// setTitle routes a document title to the CN or EN slot by script.
func setTitle(meta *Meta, title string) {
	if containsHan(title) {
		meta.TitleCN = title
		return
	}
	meta.TitleEN = title
}

func containsHan(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}
