package docfmt

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestCheck - Pre-flight classification and linting
// ---------------------------------------------------------------------------

func TestCheck_EmptyInput(t *testing.T) {
	t.Parallel()

	report := Check("", ModeLoose)
	if !report.Success {
		t.Fatalf("check failed: %s", report.Err)
	}
	if !report.IsValid {
		t.Error("empty input should be valid")
	}
	if len(report.Paragraphs) != 0 {
		t.Errorf("got %d paragraphs, want 0", len(report.Paragraphs))
	}

	// Strict mode still reports the absent sections, as info only.
	strict := Check("\n\n  \n", ModeStrict)
	if !strict.Success || !strict.IsValid {
		t.Fatalf("strict blank check = %+v", strict)
	}
	kinds := make(map[string]string, len(strict.Issues))
	for _, issue := range strict.Issues {
		kinds[issue.Kind] = issue.Severity
	}
	if kinds["missing_abstract"] != "info" || kinds["missing_keywords"] != "info" {
		t.Errorf("issues = %+v, want info-level missing sections", strict.Issues)
	}
}

func TestCheck_DefaultsToLoose(t *testing.T) {
	t.Parallel()

	report := Check("some text", "")
	if !report.Success {
		t.Fatalf("check failed: %s", report.Err)
	}
	if report.Mode != ModeLoose {
		t.Errorf("Mode = %q, want loose", report.Mode)
	}
}

func TestCheck_StrictSupersetOfLoose(t *testing.T) {
	t.Parallel()

	// No abstract or keywords: strict mode reports the info findings,
	// loose mode filters them out.
	text := "# 标题\n\n正文段落。"

	loose := Check(text, ModeLoose)
	strict := Check(text, ModeStrict)
	if !loose.Success || !strict.Success {
		t.Fatal("check failed")
	}

	if len(loose.Issues) > len(strict.Issues) {
		t.Errorf("loose has %d issues, strict %d; loose must be a subset",
			len(loose.Issues), len(strict.Issues))
	}

	strictKinds := make(map[string]bool)
	for _, issue := range strict.Issues {
		strictKinds[issue.Kind] = true
	}
	if !strictKinds["missing_abstract"] || !strictKinds["missing_keywords"] {
		t.Errorf("strict issues missing section findings: %+v", strict.Issues)
	}
	for _, issue := range loose.Issues {
		if issue.Severity != "error" {
			t.Errorf("loose mode kept non-error issue: %+v", issue)
		}
	}

	// Info findings never invalidate the document.
	if !loose.IsValid || !strict.IsValid {
		t.Error("info-only findings flipped IsValid")
	}
}

func TestCheck_ReportContents(t *testing.T) {
	t.Parallel()

	text := "摘要：本文研究自动排版。\n\n关键词：排版；文档\n\n正文第一段。"
	report := Check(text, ModeStrict)
	if !report.Success {
		t.Fatalf("check failed: %s", report.Err)
	}

	if len(report.Paragraphs) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(report.Paragraphs))
	}
	if report.Paragraphs[0].Type != "abstract_cn" {
		t.Errorf("paragraph 0 type = %q, want abstract_cn", report.Paragraphs[0].Type)
	}
	if report.TypeCounts["body"] != 1 {
		t.Errorf("TypeCounts = %v, want one body", report.TypeCounts)
	}
	if report.MarkedText == "" {
		t.Error("MarkedText empty")
	}
	if len(report.Fingerprint) != 16 {
		t.Errorf("Fingerprint = %q, want 16 hex characters", report.Fingerprint)
	}

	// Fingerprint is stable across calls.
	if again := Check(text, ModeStrict); again.Fingerprint != report.Fingerprint {
		t.Error("fingerprint not stable")
	}
}
