package docfmt

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// fixedRenderer returns a renderer with pinned clock and revision ID so
// output bytes are reproducible.
func fixedRenderer() *packageRenderer {
	return &packageRenderer{
		now:   func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
		newID: func() string { return "00000000-0000-0000-0000-000000000000" },
	}
}

func renderFixture(t *testing.T, doc *Document, opts renderOptions) *docPackage {
	t.Helper()

	spec := genericSpec(t)
	template, err := packageTemplater{}.Generate(spec)
	if err != nil {
		t.Fatalf("generating template: %v", err)
	}
	data, err := fixedRenderer().Render(doc, spec, template, opts)
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	pkg, err := openPackage(data)
	if err != nil {
		t.Fatalf("rendered package does not open: %v", err)
	}
	return pkg
}

// ---------------------------------------------------------------------------
// TestRender - Document part construction
// ---------------------------------------------------------------------------

func TestRender_DocumentPart(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Meta: Meta{TitleCN: "论文标题", TitleEN: "Paper Title", Author: "作者"},
		Blocks: []Block{
			HeadingBlock{Level: 1, Text: "第一章 绪论"},
			ParagraphBlock{Style: "body", Text: "正文内容。"},
			ListBlock{Ordered: true, Items: []string{"甲", "乙"}},
			BibliographyBlock{Items: []string{"[1] 文献."}},
			PageBreakBlock{},
		},
	}
	pkg := renderFixture(t, doc, renderOptions{IncludeCover: true, IncludeTOC: true, TOCTitle: "目 录"})

	docXML, ok := pkg.get(partDocument)
	if !ok {
		t.Fatal("document part missing")
	}
	for _, want := range []string{
		`<w:pStyle w:val="title_cn"/>`,
		`<w:pStyle w:val="title_en"/>`,
		`<w:pStyle w:val="toc"/>`,
		`<w:fldSimple w:instr=" TOC \o &quot;1-3&quot; \h \z \u "/>`,
		`<w:pStyle w:val="heading_1"/>`,
		`<w:t xml:space="preserve">第一章 绪论</w:t>`,
		`<w:t xml:space="preserve">1. 甲</w:t>`,
		`<w:t xml:space="preserve">2. 乙</w:t>`,
		`<w:pStyle w:val="reference"/>`,
		`<w:br w:type="page"/>`,
		`<w:pgSz w:w="11906" w:h="16838"/>`,
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/>`,
	} {
		if !bytes.Contains(docXML, []byte(want)) {
			t.Errorf("document part missing %s", want)
		}
	}
}

func TestRender_CoverOmittedWithoutTitle(t *testing.T) {
	t.Parallel()

	doc := &Document{Blocks: []Block{ParagraphBlock{Style: "body", Text: "text"}}}
	pkg := renderFixture(t, doc, renderOptions{IncludeCover: true})

	docXML, _ := pkg.get(partDocument)
	if bytes.Contains(docXML, []byte(`w:val="title_cn"`)) || bytes.Contains(docXML, []byte(`w:val="title_en"`)) {
		t.Error("cover rendered for a document without titles")
	}
}

func TestRender_CoreProperties(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Meta:   Meta{TitleCN: "标题", Author: "作者"},
		Blocks: []Block{ParagraphBlock{Style: "body", Text: "text"}},
	}
	pkg := renderFixture(t, doc, renderOptions{})

	core, ok := pkg.get(partCoreProps)
	if !ok {
		t.Fatal("core properties part missing")
	}
	for _, want := range []string{
		"<dc:title>标题</dc:title>",
		"<dc:creator>作者</dc:creator>",
		"<cp:version>00000000-0000-0000-0000-000000000000</cp:version>",
		"<dcterms:modified>2024-01-02T03:04:05Z</dcterms:modified>",
	} {
		if !bytes.Contains(core, []byte(want)) {
			t.Errorf("core properties missing %s", want)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	spec := genericSpec(t)
	template, err := packageTemplater{}.Generate(spec)
	if err != nil {
		t.Fatalf("generating template: %v", err)
	}
	doc := &Document{
		Meta:   Meta{TitleEN: "Title"},
		Blocks: []Block{HeadingBlock{Level: 1, Text: "Intro"}},
	}
	opts := renderOptions{IncludeCover: true, IncludeTOC: true, TOCTitle: "Contents"}

	first, err := fixedRenderer().Render(doc, spec, template, opts)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := fixedRenderer().Render(doc, spec, template, opts)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("renders with pinned clock and ID differ")
	}
}

func TestRender_RejectsTemplateWithoutStyles(t *testing.T) {
	t.Parallel()

	empty := newDocPackage()
	empty.set(partContentTypes, []byte(contentTypesXML))
	template, err := empty.write()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	_, err = fixedRenderer().Render(&Document{}, genericSpec(t), template, renderOptions{})
	if !errors.Is(err, ErrRenderFailed) {
		t.Errorf("err = %v, want ErrRenderFailed", err)
	}
}

// ---------------------------------------------------------------------------
// TestHeadingStyle - Outline level clamping
// ---------------------------------------------------------------------------

func TestHeadingStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level int
		want  string
	}{
		{1, "heading_1"},
		{3, "heading_3"},
		{6, "heading_6"},
		{9, "heading_6"},
		{0, "heading_1"},
	}
	for _, tt := range tests {
		if got := headingStyle(tt.level); got != tt.want {
			t.Errorf("headingStyle(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
