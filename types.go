package docfmt

import (
	"fmt"
	"time"
)

// Input format selectors.
const (
	FormatAuto      = "auto"
	FormatMarkdown  = "markdown"
	FormatPlaintext = "plaintext"
)

// Compile phases, in pipeline order.
const (
	PhaseParse    = "parse"
	PhaseSpec     = "spec"
	PhaseTemplate = "template"
	PhaseRender   = "render"
	PhaseValidate = "validate"
	PhaseFix      = "fix"
	PhaseDone     = "done"
)

// Defaults for CompileOptions.
const (
	DefaultTOCTitle         = "目 录"
	DefaultMaxFixIterations = 3
)

// CompileOptions configures one compile call. Immutable once passed in.
type CompileOptions struct {
	InputFormat      string     // "auto", "markdown", "plaintext"
	SpecName         string     // named builtin spec ("" = generic default)
	CustomSpec       *StyleSpec // inline spec, takes priority over SpecName
	TemplateBytes    []byte     // existing reference template to patch (nil = generate)
	IncludeCover     bool
	IncludeTOC       bool
	TOCTitle         string
	AutoFix          bool

	// MaxFixIterations caps the fix loop. Zero means the default of 3,
	// not a zero-iteration loop; turn repairs off with AutoFix=false.
	MaxFixIterations int
}

// DefaultCompileOptions returns options matching the documented defaults:
// auto-detected format, generic spec, cover and TOC included, auto-fix on
// with at most 3 iterations.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{
		InputFormat:      FormatAuto,
		TOCTitle:         DefaultTOCTitle,
		IncludeCover:     true,
		IncludeTOC:       true,
		AutoFix:          true,
		MaxFixIterations: DefaultMaxFixIterations,
	}
}

// Validate checks option values. The zero value is accepted: empty strings
// and counts fall back to defaults at compile time.
func (o *CompileOptions) Validate() error {
	switch o.InputFormat {
	case "", FormatAuto, FormatMarkdown, FormatPlaintext:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, o.InputFormat)
	}
	if o.MaxFixIterations < 0 {
		return fmt.Errorf("%w: max fix iterations must not be negative", ErrInvalidOptions)
	}
	return nil
}

// normalized fills in defaulted fields without mutating the caller's copy.
func (o CompileOptions) normalized() CompileOptions {
	if o.InputFormat == "" {
		o.InputFormat = FormatAuto
	}
	if o.TOCTitle == "" {
		o.TOCTitle = DefaultTOCTitle
	}
	if o.MaxFixIterations == 0 {
		o.MaxFixIterations = DefaultMaxFixIterations
	}
	return o
}

// PhaseEvent is a transient progress notification. Progress is fractional
// within the named phase and never decreases for consecutive events of the
// same phase.
type PhaseEvent struct {
	Phase    string
	Progress float64 // in [0,1]
	Message  string
	Detail   string
}

// ProgressFunc receives phase events. It is invoked synchronously on the
// calling goroutine and must not block.
type ProgressFunc func(PhaseEvent)

// CompileResult is the terminal value of one compile call.
type CompileResult struct {
	Success  bool
	Package  []byte            // final document bytes, nil on failure
	Document *Document         // parsed document tree
	Spec     *StyleSpec        // resolved style specification
	Report   *ValidationReport // last validation report
	Warnings []string          // non-fatal notes (degradations, fix exhaustion)
	Err      string            // error message, empty on success
}

// CheckMode selects issue filtering for pre-flight checks.
type CheckMode string

const (
	ModeLoose  CheckMode = "loose"  // keep only error-severity issues
	ModeStrict CheckMode = "strict" // keep everything
)

// Paragraph is one classified paragraph unit of a checked text.
type Paragraph struct {
	Index      int
	Text       string
	LineStart  int
	LineEnd    int
	Type       string
	Confidence float64
	Explicit   bool // pinned by an inline wf:type marker
}

// Issue is one structural finding of a pre-flight check.
type Issue struct {
	Line           int
	ParagraphIndex int // -1 for document-level issues
	Kind           string
	Severity       string // "error", "warning", "info"
	Message        string
	Suggestion     string
	Preview        string
}

// CheckReport is the outcome of one pre-flight check.
type CheckReport struct {
	Success     bool
	IsValid     bool // no error-severity issue after mode filtering
	Mode        CheckMode
	Issues      []Issue
	Paragraphs  []Paragraph
	MarkedText  string         // canonical explicitly-marked text
	TypeCounts  map[string]int // tag -> paragraph count
	Fingerprint string         // stable hash of the normalized input
	Err         string         // set on internal failure
}

// Option configures a Compiler.
type Option func(*Compiler)

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	aiTimeout time.Duration
}

// defaultAITimeout bounds one AI classification call.
const defaultAITimeout = 60 * time.Second

// WithAITimeout sets the timeout for AI classification calls.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithAITimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docfmt: WithAITimeout duration must be positive")
	}
	return func(c *Compiler) {
		c.cfg.aiTimeout = d
	}
}
