package main

import (
	"errors"
	"fmt"

	docfmt "github.com/alnah/go-docfmt"
)

// ErrCheckInvalid marks a check that found error-severity issues.
var ErrCheckInvalid = errors.New("check found errors")

// runCheck classifies and lints the input without compiling.
func runCheck(positionalArgs []string, flags *checkFlags, deps *Dependencies) error {
	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}
	text, err := readInputFile(inputPath)
	if err != nil {
		return err
	}

	mode := docfmt.ModeLoose
	if flags.strict {
		mode = docfmt.ModeStrict
	}

	report := docfmt.Check(text, mode)
	if !report.Success {
		return fmt.Errorf("check failed: %s", report.Err)
	}

	if flags.common.verbose {
		for _, p := range report.Paragraphs {
			marker := " "
			if p.Explicit {
				marker = "*"
			}
			fmt.Fprintf(deps.Stdout, "%s %4d-%-4d %-16s %.1f  %s\n",
				marker, p.LineStart, p.LineEnd, p.Type, p.Confidence, preview(p.Text))
		}
	}

	for _, issue := range report.Issues {
		fmt.Fprintf(deps.Stdout, "line %d: [%s] %s", issue.Line, issue.Severity, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(deps.Stdout, " (%s)", issue.Suggestion)
		}
		fmt.Fprintln(deps.Stdout)
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "%d paragraph(s), %d issue(s), fingerprint %s\n",
			len(report.Paragraphs), len(report.Issues), report.Fingerprint)
	}

	if !report.IsValid {
		return ErrCheckInvalid
	}
	return nil
}

// preview caps paragraph text for the verbose listing.
func preview(s string) string {
	const limit = 40
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return s
}
