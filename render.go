package docfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-docfmt/internal/classify"
)

// renderOptions carries the per-call rendering switches.
type renderOptions struct {
	IncludeCover bool
	IncludeTOC   bool
	TOCTitle     string
}

// renderStage combines a document tree, a resolved spec, and a reference
// template into final document package bytes.
type renderStage interface {
	Render(doc *Document, spec *StyleSpec, template []byte, opts renderOptions) ([]byte, error)
}

// packageRenderer renders document trees into WordprocessingML packages.
type packageRenderer struct {
	// now and newID are swappable for deterministic tests.
	now   func() time.Time
	newID func() string
}

func newPackageRenderer() *packageRenderer {
	return &packageRenderer{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Render builds the document part inside the template package and stamps
// core properties with a fresh revision ID.
func (r *packageRenderer) Render(doc *Document, spec *StyleSpec, template []byte, opts renderOptions) ([]byte, error) {
	pkg, err := openPackage(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	if _, ok := pkg.get(partStyles); !ok {
		return nil, fmt.Errorf("%w: template has no styles part", ErrRenderFailed)
	}

	pkg.set(partDocument, r.buildDocumentXML(doc, spec, opts))
	pkg.set(partCoreProps, r.buildCorePropsXML(doc))

	data, err := pkg.write()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return data, nil
}

func (r *packageRenderer) buildDocumentXML(doc *Document, spec *StyleSpec, opts renderOptions) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<w:document xmlns:w=%q>`+"\n", wpNamespace)
	sb.WriteString("<w:body>\n")

	if opts.IncludeCover {
		writeCover(&sb, doc.Meta)
	}
	if opts.IncludeTOC {
		writeTOC(&sb, opts.TOCTitle)
	}

	for _, block := range doc.Blocks {
		writeBlock(&sb, block)
	}

	writeSectPr(&sb, spec.Page)
	sb.WriteString("</w:body>\n</w:document>\n")
	return []byte(sb.String())
}

// writeCover emits title paragraphs followed by a page break. Nothing is
// emitted when the document has no title at all.
func writeCover(sb *strings.Builder, meta Meta) {
	if meta.TitleCN == "" && meta.TitleEN == "" {
		return
	}
	if meta.TitleCN != "" {
		writeParagraph(sb, classify.TagTitleCN, meta.TitleCN)
	}
	if meta.TitleEN != "" {
		writeParagraph(sb, classify.TagTitleEN, meta.TitleEN)
	}
	if meta.Author != "" {
		writeParagraph(sb, classify.TagBody, meta.Author)
	}
	writePageBreak(sb)
}

// writeTOC emits the TOC heading and an updatable TOC field, then a page
// break so content starts on its own page.
func writeTOC(sb *strings.Builder, title string) {
	writeParagraph(sb, classify.TagTOC, title)
	sb.WriteString(`<w:p><w:fldSimple w:instr=" TOC \o &quot;1-3&quot; \h \z \u "/></w:p>` + "\n")
	writePageBreak(sb)
}

func writeBlock(sb *strings.Builder, block Block) {
	switch b := block.(type) {
	case HeadingBlock:
		writeParagraph(sb, headingStyle(b.Level), b.Text)
	case ParagraphBlock:
		style := b.Style
		if style == "" {
			style = classify.TagBody
		}
		writeParagraph(sb, style, b.Text)
	case CodeBlock:
		for _, line := range strings.Split(b.Text, "\n") {
			writeParagraph(sb, classify.TagCodeBlock, line)
		}
	case QuoteBlock:
		writeParagraph(sb, classify.TagBlockquote, b.Text)
	case ListBlock:
		for i, item := range b.Items {
			text := "• " + item
			if b.Ordered {
				text = fmt.Sprintf("%d. %s", i+1, item)
			}
			writeParagraph(sb, classify.TagListItem, text)
		}
	case TableBlock:
		writeTable(sb, b)
	case FigureBlock:
		// The image binary is outside this pipeline; keep the reference
		// and its caption in reading order.
		writeParagraph(sb, classify.TagBody, fmt.Sprintf("[figure: %s]", b.Path))
		if b.Caption != "" {
			writeParagraph(sb, classify.TagFigureCaption, b.Caption)
		}
	case BibliographyBlock:
		for _, item := range b.Items {
			writeParagraph(sb, classify.TagReference, item)
		}
	case PageBreakBlock:
		writePageBreak(sb)
	case SectionBreakBlock:
		sb.WriteString(`<w:p><w:pPr><w:sectPr/></w:pPr></w:p>` + "\n")
	}
}

// writeParagraph emits one styled paragraph; inner newlines become line
// breaks within the paragraph.
func writeParagraph(sb *strings.Builder, styleID, text string) {
	fmt.Fprintf(sb, `<w:p><w:pPr><w:pStyle w:val=%q/></w:pPr>`, styleID)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(`<w:r><w:br/></w:r>`)
		}
		fmt.Fprintf(sb, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, xmlEscape(line))
	}
	sb.WriteString("</w:p>\n")
}

func writeTable(sb *strings.Builder, table TableBlock) {
	if table.Caption != "" {
		writeParagraph(sb, classify.TagTableCaption, table.Caption)
	}
	sb.WriteString("<w:tbl>")
	for _, row := range table.Rows {
		sb.WriteString("<w:tr>")
		for _, cell := range row {
			fmt.Fprintf(sb, `<w:tc><w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p></w:tc>`, xmlEscape(cell))
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>\n")
}

func writePageBreak(sb *strings.Builder) {
	sb.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>` + "\n")
}

func writeSectPr(sb *strings.Builder, page PageSetup) {
	sb.WriteString("<w:sectPr>")
	fmt.Fprintf(sb, `<w:pgSz w:w="%d" w:h="%d"/>`, page.WidthTwips, page.HeightTwips)
	fmt.Fprintf(sb, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d"/>`,
		page.MarginTwips, page.MarginTwips, page.MarginTwips, page.MarginTwips)
	sb.WriteString("</w:sectPr>\n")
}

// headingStyle maps an outline level to its style ID; levels past 6 share
// the deepest style.
func headingStyle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("heading_%d", level)
}

func (r *packageRenderer) buildCorePropsXML(doc *Document) []byte {
	title := doc.Meta.TitleCN
	if title == "" {
		title = doc.Meta.TitleEN
	}
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/">`)
	fmt.Fprintf(&sb, `<dc:title>%s</dc:title>`, xmlEscape(title))
	fmt.Fprintf(&sb, `<dc:creator>%s</dc:creator>`, xmlEscape(doc.Meta.Author))
	fmt.Fprintf(&sb, `<cp:version>%s</cp:version>`, r.newID())
	fmt.Fprintf(&sb, `<dcterms:modified>%s</dcterms:modified>`, r.now().UTC().Format(time.RFC3339))
	sb.WriteString(`</cp:coreProperties>` + "\n")
	return []byte(sb.String())
}
