package docfmt

// Document is the abstract document tree produced by the parse phase and
// consumed by the render stage.
type Document struct {
	Meta   Meta
	Blocks []Block
}

// Meta carries document-level metadata collected during parsing.
type Meta struct {
	TitleCN string
	TitleEN string
	Author  string
	Extra   map[string]string
}

// Block is one content block of a document tree.
type Block interface {
	isBlock()
}

// HeadingBlock is a section heading with outline level 1..8.
type HeadingBlock struct {
	Level int
	Text  string
}

// ParagraphBlock is a plain text paragraph. Style names a paragraph type
// tag when known ("" means body).
type ParagraphBlock struct {
	Text  string
	Style string
}

// CodeBlock is a fenced code block with an optional language.
type CodeBlock struct {
	Text     string
	Language string
}

// ListBlock is an ordered or unordered list.
type ListBlock struct {
	Ordered bool
	Items   []string
}

// TableBlock is a table with optional caption. Rows include the header.
type TableBlock struct {
	Rows    [][]string
	Caption string
}

// FigureBlock references an image with an optional caption.
type FigureBlock struct {
	Path    string
	Caption string
}

// PageBreakBlock forces a page break.
type PageBreakBlock struct{}

// SectionBreakBlock starts a new section on the next page.
type SectionBreakBlock struct{}

// QuoteBlock is a block quotation.
type QuoteBlock struct {
	Text string
}

// BibliographyBlock groups reference entries.
type BibliographyBlock struct {
	Items []string
}

func (HeadingBlock) isBlock()      {}
func (ParagraphBlock) isBlock()    {}
func (CodeBlock) isBlock()         {}
func (ListBlock) isBlock()         {}
func (TableBlock) isBlock()        {}
func (FigureBlock) isBlock()       {}
func (PageBreakBlock) isBlock()    {}
func (SectionBreakBlock) isBlock() {}
func (QuoteBlock) isBlock()        {}
func (BibliographyBlock) isBlock() {}
