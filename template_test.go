package docfmt

import (
	"bytes"
	"strings"
	"testing"
)

func genericSpec(t *testing.T) *StyleSpec {
	t.Helper()

	spec, err := builtinCatalog{}.Generic()
	if err != nil {
		t.Fatalf("loading generic spec: %v", err)
	}
	return spec
}

// ---------------------------------------------------------------------------
// TestTemplateGenerate - Fresh template construction
// ---------------------------------------------------------------------------

func TestTemplateGenerate(t *testing.T) {
	t.Parallel()

	spec := genericSpec(t)
	data, err := packageTemplater{}.Generate(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pkg, err := openPackage(data)
	if err != nil {
		t.Fatalf("generated template does not open: %v", err)
	}
	for _, part := range []string{partContentTypes, partRootRels, partDocumentRels, partStyles} {
		if _, ok := pkg.get(part); !ok {
			t.Errorf("part %s missing", part)
		}
	}

	styles, _ := pkg.get(partStyles)
	for _, want := range []string{
		`w:styleId="body"`,
		`w:styleId="heading_1"`,
		`w:styleId="title_cn"`,
		`<w:jc w:val="both"/>`,
		`w:eastAsia="宋体"`,
	} {
		if !bytes.Contains(styles, []byte(want)) {
			t.Errorf("styles part missing %s", want)
		}
	}
	if got := bytes.Count(styles, []byte("<w:style ")); got != len(spec.Styles) {
		t.Errorf("got %d style definitions, want %d", got, len(spec.Styles))
	}
}

// ---------------------------------------------------------------------------
// TestTemplatePatch - Styles-only rewrite
// ---------------------------------------------------------------------------

func TestTemplatePatch(t *testing.T) {
	t.Parallel()

	custom := []byte("<custom>user content</custom>")

	existing := newDocPackage()
	existing.set(partContentTypes, []byte(contentTypesXML))
	existing.set(partRootRels, []byte(rootRelsXML))
	existing.set("word/custom.xml", custom)
	existing.set(partStyles, []byte(xmlHeader+"<w:styles/>"))
	before, err := existing.write()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	patched, err := packageTemplater{}.Patch(genericSpec(t), before)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pkg, err := openPackage(patched)
	if err != nil {
		t.Fatalf("patched template does not open: %v", err)
	}

	// Foreign parts survive byte for byte.
	got, ok := pkg.get("word/custom.xml")
	if !ok {
		t.Fatal("custom part dropped")
	}
	if !bytes.Equal(got, custom) {
		t.Errorf("custom part changed: %q", got)
	}

	styles, _ := pkg.get(partStyles)
	if !bytes.Contains(styles, []byte(`w:styleId="body"`)) {
		t.Error("styles part not rewritten from spec")
	}

	// Entry order is stable across the round trip.
	if pkg.order[2] != "word/custom.xml" {
		t.Errorf("entry order changed: %v", pkg.order)
	}
}

func TestTemplatePatch_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (packageTemplater{}).Patch(genericSpec(t), []byte("not a zip")); err == nil {
		t.Error("garbage template accepted")
	}
}

// ---------------------------------------------------------------------------
// TestAlignmentValue - OOXML justification mapping
// ---------------------------------------------------------------------------

func TestAlignmentValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"center", "center"},
		{"left", "left"},
		{"right", "right"},
		{"justify", "both"},
		{"", "both"},
		{"unknown", "both"},
	}
	for _, tt := range tests {
		if got := alignmentValue(tt.in); got != tt.want {
			t.Errorf("alignmentValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestXMLEscape - Attribute and content escaping
// ---------------------------------------------------------------------------

func TestXMLEscape(t *testing.T) {
	t.Parallel()

	got := xmlEscape(`a<b>&"c"'d'`)
	if strings.ContainsAny(got, `<>"'`) {
		t.Errorf("xmlEscape left raw characters: %q", got)
	}
	if got != "a&lt;b&gt;&amp;&quot;c&quot;&apos;d&apos;" {
		t.Errorf("xmlEscape = %q", got)
	}
}
