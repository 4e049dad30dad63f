package docfmt

import (
	"bytes"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFix - Report-driven package repair
// ---------------------------------------------------------------------------

func TestFix_RemapsUndefinedStyleRefs(t *testing.T) {
	t.Parallel()

	spec := genericSpec(t)
	doc := &Document{
		Blocks: []Block{
			HeadingBlock{Level: 1, Text: "Intro"},
			ParagraphBlock{Style: "weird", Text: "content"},
		},
	}
	data := renderWithSpec(t, doc, spec)

	report, err := packageValidator{}.Validate(data, spec)
	if err != nil {
		t.Fatalf("validating: %v", err)
	}
	if report.OK {
		t.Fatal("fixture should not validate cleanly")
	}

	fixed, err := packageFixer{}.Fix(data, report, spec)
	if err != nil {
		t.Fatalf("fixing: %v", err)
	}

	after, err := packageValidator{}.Validate(fixed, spec)
	if err != nil {
		t.Fatalf("revalidating: %v", err)
	}
	if !after.OK {
		t.Errorf("fixed package still invalid: %+v", after.Issues)
	}

	pkg, err := openPackage(fixed)
	if err != nil {
		t.Fatalf("fixed package does not open: %v", err)
	}
	docXML, _ := pkg.get(partDocument)
	if bytes.Contains(docXML, []byte(`"weird"`)) {
		t.Error("undefined style reference survived the fix")
	}
	if !bytes.Contains(docXML, []byte(`<w:t xml:space="preserve">content</w:t>`)) {
		t.Error("paragraph content lost during remap")
	}
}

func TestFix_RegeneratesMissingStyles(t *testing.T) {
	t.Parallel()

	stripped := &StyleSpec{
		Name:   "stripped",
		Styles: []StyleDef{{ID: "body", Required: true}, {ID: "heading_1", Required: true}},
	}
	doc := &Document{
		Blocks: []Block{
			HeadingBlock{Level: 1, Text: "Intro"},
			ParagraphBlock{Style: "body", Text: "content"},
		},
	}
	data := renderWithSpec(t, doc, stripped)

	spec := genericSpec(t)
	report, err := packageValidator{}.Validate(data, spec)
	if err != nil {
		t.Fatalf("validating: %v", err)
	}
	if report.OK {
		t.Fatal("fixture should be missing required styles")
	}

	fixed, err := packageFixer{}.Fix(data, report, spec)
	if err != nil {
		t.Fatalf("fixing: %v", err)
	}
	after, err := packageValidator{}.Validate(fixed, spec)
	if err != nil {
		t.Fatalf("revalidating: %v", err)
	}
	if !after.OK {
		t.Errorf("fixed package still invalid: %+v", after.Issues)
	}
}

func TestFix_NoIssuesPassesThrough(t *testing.T) {
	t.Parallel()

	spec := genericSpec(t)
	data := renderWithSpec(t, &Document{
		Blocks: []Block{ParagraphBlock{Style: "body", Text: "content"}},
	}, spec)

	tests := []struct {
		name   string
		report *ValidationReport
	}{
		{name: "nil report", report: nil},
		{name: "empty report", report: &ValidationReport{OK: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := packageFixer{}.Fix(data, tt.report, spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, data) {
				t.Error("package changed without issues to fix")
			}
		})
	}
}

func TestFix_UnknownIssueCodeIgnored(t *testing.T) {
	t.Parallel()

	spec := genericSpec(t)
	data := renderWithSpec(t, &Document{
		Blocks: []Block{ParagraphBlock{Style: "body", Text: "content"}},
	}, spec)

	report := &ValidationReport{Issues: []ValidationIssue{{Code: "mystery", Severity: "error"}}}
	fixed, err := packageFixer{}.Fix(data, report, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nothing actionable: the package round-trips but stays valid.
	after, err := packageValidator{}.Validate(fixed, spec)
	if err != nil {
		t.Fatalf("revalidating: %v", err)
	}
	if after.Errors != 0 {
		t.Errorf("errors introduced by no-op fix: %+v", after.Issues)
	}
}
