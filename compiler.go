package docfmt

import (
	"context"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/alnah/go-docfmt/internal/classify"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ treeBuilder   = (*structuralBuilder)(nil)
	_ specCatalog   = builtinCatalog{}
	_ templateStage = packageTemplater{}
	_ renderStage   = (*packageRenderer)(nil)
	_ validateStage = packageValidator{}
	_ fixStage      = packageFixer{}
)

// treeBuilder converts raw text into a document tree.
type treeBuilder interface {
	FromMarkdown(text string) (*Document, error)
	FromPlaintext(text string) (*Document, error)
	FromPlaintextWithTypes(text string, types []string) (*Document, error)
}

// Compiler drives the six-phase compile pipeline: parse, spec, template,
// render, validate, fix. Each call runs its phases strictly sequentially;
// independent calls may run concurrently since a Compiler holds no
// per-call state.
type Compiler struct {
	cfg       compilerConfig
	builder   treeBuilder
	specs     specCatalog
	templater templateStage
	renderer  renderStage
	validator validateStage
	fixer     fixStage
}

// NewCompiler creates a Compiler with default collaborators.
// Use options to customize behavior (e.g. WithAITimeout).
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		cfg:       compilerConfig{aiTimeout: defaultAITimeout},
		builder:   newStructuralBuilder(),
		specs:     builtinCatalog{},
		templater: packageTemplater{},
		renderer:  newPackageRenderer(),
		validator: packageValidator{},
		fixer:     packageFixer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// notifyFunc is the internal progress emitter shared by all phases.
type notifyFunc func(phase string, progress float64, message, detail string)

func makeNotify(onProgress ProgressFunc) notifyFunc {
	return func(phase string, progress float64, message, detail string) {
		if detail != "" {
			klog.V(4).Infof("docfmt: [%s] %s - %s", phase, message, detail)
		} else {
			klog.V(4).Infof("docfmt: [%s] %s", phase, message)
		}
		if onProgress != nil {
			onProgress(PhaseEvent{Phase: phase, Progress: progress, Message: message, Detail: detail})
		}
	}
}

// Compile runs the deterministic pipeline: rule-based paragraph typing,
// no AI involvement. Failures are returned as a result value; no panic
// escapes the call.
func (c *Compiler) Compile(ctx context.Context, text string, opts CompileOptions, onProgress ProgressFunc) (result CompileResult) {
	var warnings []string
	defer func() {
		if r := recover(); r != nil {
			result = CompileResult{Success: false, Err: fmt.Sprintf("internal error: %v", r), Warnings: warnings}
		}
	}()

	if err := opts.Validate(); err != nil {
		return CompileResult{Success: false, Err: err.Error()}
	}
	opts = opts.normalized()
	if strings.TrimSpace(text) == "" {
		return CompileResult{Success: false, Err: ErrEmptyInput.Error()}
	}

	notify := makeNotify(onProgress)
	notify(PhaseParse, 0.0, "parsing input", "")

	format := opts.InputFormat
	if format == FormatAuto {
		format = DetectInputFormat(text)
	}

	var doc *Document
	var err error
	if format == FormatMarkdown {
		doc, err = c.builder.FromMarkdown(text)
	} else {
		doc, err = c.builder.FromPlaintext(text)
	}
	if err != nil {
		return CompileResult{Success: false, Err: err.Error(), Warnings: warnings}
	}
	notify(PhaseParse, 1.0, "input parsed", fmt.Sprintf("%d blocks", len(doc.Blocks)))

	return c.compileFromTree(ctx, doc, opts, notify, warnings)
}

// CompileWithAI runs the pipeline with AI-assisted paragraph typing for
// plaintext input. Degradation is two-level: an AI classification failure
// falls back to rule-based typing within the parse phase (warning, not
// error); any other failure of the AI-assisted path retries the whole
// compile once through the deterministic entry point before the call is
// allowed to report failure.
func (c *Compiler) CompileWithAI(ctx context.Context, text string, svc AIService, opts CompileOptions, onProgress ProgressFunc) (result CompileResult) {
	var warnings []string

	fallback := func(cause string) CompileResult {
		klog.V(2).Infof("docfmt: AI compile degraded to rule-based mode: %s", cause)
		warnings = append(warnings, "AI compile failed, degraded to rule-based mode: "+cause)
		res := c.Compile(ctx, text, opts, onProgress)
		res.Warnings = append(warnings, res.Warnings...)
		if !res.Success {
			res.Err = fmt.Sprintf("%s (original error: %s)", res.Err, cause)
		}
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			result = fallback(fmt.Sprintf("internal error: %v", r))
		}
	}()

	if err := opts.Validate(); err != nil {
		return CompileResult{Success: false, Err: err.Error()}
	}
	opts = opts.normalized()
	if strings.TrimSpace(text) == "" {
		return CompileResult{Success: false, Err: ErrEmptyInput.Error()}
	}

	notify := makeNotify(onProgress)
	notify(PhaseParse, 0.0, "analyzing text structure", "")

	format := opts.InputFormat
	if format == FormatAuto {
		format = DetectInputFormat(text)
	}

	var doc *Document
	if format == FormatMarkdown {
		parsed, err := c.builder.FromMarkdown(text)
		if err != nil {
			return fallback(err.Error())
		}
		doc = parsed
		notify(PhaseParse, 1.0, "markdown parsed", "")
	} else {
		units := classify.Split(text)
		texts := make([]string, len(units))
		for i, u := range units {
			texts[i] = u.Text
		}
		notify(PhaseParse, 0.3, "classifying paragraphs", fmt.Sprintf("%d paragraphs", len(texts)))

		tags, err := c.classifyWithAI(ctx, svc, texts)
		if err != nil {
			// Level-1 degradation: rule-based typing, warning only.
			warnings = append(warnings, "AI classification failed, using rule-based typing: "+err.Error())
			doc, err = c.builder.FromPlaintext(text)
			if err != nil {
				return fallback(err.Error())
			}
		} else {
			doc, err = c.builder.FromPlaintextWithTypes(text, tags)
			if err != nil {
				return fallback(err.Error())
			}
		}
		notify(PhaseParse, 1.0, "paragraphs classified", fmt.Sprintf("%d blocks", len(doc.Blocks)))
	}

	return c.compileFromTree(ctx, doc, opts, notify, warnings)
}

// classifyWithAI calls the AI service under the configured timeout.
func (c *Compiler) classifyWithAI(ctx context.Context, svc AIService, texts []string) ([]string, error) {
	if svc == nil {
		return nil, ErrAIUnavailable
	}
	aiCtx, cancel := context.WithTimeout(ctx, c.cfg.aiTimeout)
	defer cancel()
	return svc.ClassifyParagraphs(aiCtx, texts)
}

// compileFromTree runs the spec, template, render, validate, and fix
// phases over a parsed tree. Shared by both entry modes.
func (c *Compiler) compileFromTree(ctx context.Context, doc *Document, opts CompileOptions, notify notifyFunc, warnings []string) CompileResult {
	fail := func(err error) CompileResult {
		return CompileResult{Success: false, Err: err.Error(), Warnings: warnings}
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// Spec phase: inline custom spec, then named builtin, then generic.
	notify(PhaseSpec, 0.0, "resolving style specification", "")
	var spec *StyleSpec
	switch {
	case opts.CustomSpec != nil:
		spec = opts.CustomSpec.normalized()
	default:
		if opts.SpecName != "" {
			if builtin, ok := c.specs.Builtin(opts.SpecName); ok {
				spec = builtin
			}
		}
		if spec == nil {
			generic, err := c.specs.Generic()
			if err != nil {
				return fail(err)
			}
			spec = generic
		}
	}
	notify(PhaseSpec, 1.0, "specification resolved", spec.Name)

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// Template phase.
	notify(PhaseTemplate, 0.0, "preparing reference template", "")
	var template []byte
	var err error
	if len(opts.TemplateBytes) > 0 {
		template, err = c.templater.Patch(spec, opts.TemplateBytes)
	} else {
		template, err = c.templater.Generate(spec)
	}
	if err != nil {
		return fail(err)
	}
	notify(PhaseTemplate, 1.0, "template ready", "")

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// Render phase.
	notify(PhaseRender, 0.0, "rendering document", "")
	pkg, err := c.renderer.Render(doc, spec, template, renderOptions{
		IncludeCover: opts.IncludeCover,
		IncludeTOC:   opts.IncludeTOC,
		TOCTitle:     opts.TOCTitle,
	})
	if err != nil {
		return fail(err)
	}
	notify(PhaseRender, 1.0, "document rendered", fmt.Sprintf("%d bytes", len(pkg)))

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// Validate phase.
	notify(PhaseValidate, 0.0, "validating document", "")
	report, err := c.validator.Validate(pkg, spec)
	if err != nil {
		return fail(err)
	}
	notify(PhaseValidate, 1.0, "validation finished",
		fmt.Sprintf("errors: %d, warnings: %d", report.Errors, report.Warnings))

	// Fix phase: bounded convergence loop. Exhausting the cap downgrades
	// to a warning; the call still succeeds.
	if opts.AutoFix && !report.OK {
		notify(PhaseFix, 0.0, "auto-fixing issues", "")
		for i := 0; i < opts.MaxFixIterations; i++ {
			if err := ctx.Err(); err != nil {
				return fail(err)
			}
			pkg, err = c.fixer.Fix(pkg, report, spec)
			if err != nil {
				return fail(err)
			}
			report, err = c.validator.Validate(pkg, spec)
			if err != nil {
				return fail(err)
			}
			notify(PhaseFix, float64(i+1)/float64(opts.MaxFixIterations),
				fmt.Sprintf("fix iteration %d/%d", i+1, opts.MaxFixIterations),
				fmt.Sprintf("errors: %d", report.Errors))
			if report.OK {
				break
			}
		}
		if !report.OK {
			warnings = append(warnings, fmt.Sprintf("%d error(s) remain after auto-fix", report.Errors))
		}
		notify(PhaseFix, 1.0, "fixing finished", "")
	}

	notify(PhaseDone, 1.0, "compile finished", "")
	return CompileResult{
		Success:  true,
		Package:  pkg,
		Document: doc,
		Spec:     spec,
		Report:   report,
		Warnings: warnings,
	}
}
