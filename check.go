package docfmt

import (
	"fmt"

	"github.com/alnah/go-docfmt/internal/classify"
	"github.com/alnah/go-docfmt/internal/lint"
)

// Check classifies the text into typed paragraphs and lints the result
// without producing a document. Blank input yields a successful report
// with zero paragraphs. No panic escapes the call.
func Check(text string, mode CheckMode) (report CheckReport) {
	defer func() {
		if r := recover(); r != nil {
			report = CheckReport{
				Success: false,
				Mode:    mode,
				Err:     fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	if mode == "" {
		mode = ModeLoose
	}

	paragraphs := classify.Classify(text)
	issues := lint.Run(paragraphs, text)
	if mode == ModeLoose {
		issues = lint.FilterLoose(issues)
	}

	return CheckReport{
		Success:     true,
		IsValid:     !lint.HasErrors(issues),
		Mode:        mode,
		Issues:      publicIssues(issues),
		Paragraphs:  publicParagraphs(paragraphs),
		MarkedText:  classify.MarkedText(paragraphs),
		TypeCounts:  classify.Histogram(paragraphs),
		Fingerprint: classify.Fingerprint(text),
	}
}

func publicParagraphs(in []classify.Paragraph) []Paragraph {
	out := make([]Paragraph, len(in))
	for i, p := range in {
		out[i] = Paragraph{
			Index:      p.Index,
			Text:       p.Text,
			LineStart:  p.LineStart,
			LineEnd:    p.LineEnd,
			Type:       p.Type,
			Confidence: p.Confidence,
			Explicit:   p.Explicit,
		}
	}
	return out
}

func publicIssues(in []lint.Issue) []Issue {
	out := make([]Issue, len(in))
	for i, issue := range in {
		out[i] = Issue{
			Line:           issue.Line,
			ParagraphIndex: issue.ParagraphIndex,
			Kind:           string(issue.Kind),
			Severity:       string(issue.Severity),
			Message:        issue.Message,
			Suggestion:     issue.Suggestion,
			Preview:        issue.Preview,
		}
	}
	return out
}
