// Package docfmt turns loosely structured academic text into styled
// Word-compatible document packages.
//
// # Quick Start
//
// Create a compiler and compile text:
//
//	c := docfmt.NewCompiler()
//	result := c.Compile(ctx, text, docfmt.DefaultCompileOptions(), nil)
//	if !result.Success {
//	    log.Fatal(result.Err)
//	}
//	os.WriteFile("output.docx", result.Package, 0644)
//
// The result carries the final package bytes, the parsed document tree,
// the resolved style specification, and the last validation report.
//
// # Compile Pipeline
//
// A compile runs six phases in order:
//
//  1. Parse: input text (Markdown or plaintext) becomes a document tree
//  2. Spec: the style specification is resolved (custom, named, or generic)
//  3. Template: a reference package is generated or patched from the spec
//  4. Render: the tree is rendered into the package's document part
//  5. Validate: the package is checked for structural problems
//  6. Fix: found errors are repaired in a bounded loop
//
// Exhausting the fix iteration cap does not fail the compile; the remaining
// error count is reported as a warning on the result.
//
// # AI-Assisted Compilation
//
// CompileWithAI types plaintext paragraphs through an AIService instead
// of the built-in rules. Failures degrade instead of aborting: a
// classification failure falls back to rule-based typing with a warning,
// and any other failure of the AI path retries the whole compile once
// through the deterministic pipeline.
//
//	svc, err := docfmt.NewOpenAIService(docfmt.OpenAIServiceConfig{
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := c.CompileWithAI(ctx, text, svc, docfmt.DefaultCompileOptions(), nil)
//
// # Pre-Flight Checks
//
// Check classifies and lints text without producing a document:
//
//	report := docfmt.Check(text, docfmt.ModeStrict)
//	for _, issue := range report.Issues {
//	    fmt.Printf("line %d: %s\n", issue.Line, issue.Message)
//	}
//
// ModeLoose keeps only error-severity issues; ModeStrict keeps warnings
// and informational findings too. The report also carries the classified
// paragraphs, a canonical marked form of the text, and a content
// fingerprint for caching.
//
// # Progress Reporting
//
// Pass a ProgressFunc to receive phase events during a compile:
//
//	result := c.Compile(ctx, text, opts, func(e docfmt.PhaseEvent) {
//	    fmt.Printf("[%s] %.0f%% %s\n", e.Phase, e.Progress*100, e.Message)
//	})
//
// Events are delivered synchronously on the calling goroutine.
package docfmt
