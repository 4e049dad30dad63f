package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	docfmt "github.com/alnah/go-docfmt"
	"github.com/alnah/go-docfmt/internal/config"
	"github.com/alnah/go-docfmt/internal/fileutil"
	"github.com/alnah/go-docfmt/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadInput        = errors.New("failed to read input file")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrReadSpec         = errors.New("failed to read spec file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md, .markdown, or .txt extension")
	ErrCompileFailed    = errors.New("compilation failed")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runCompile orchestrates the compile command.
func runCompile(ctx context.Context, positionalArgs []string, flags *compileFlags, deps *Dependencies) error {
	cfg, err := loadConfigFor(flags.common.config)
	if err != nil {
		return err
	}
	mergeCompileFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}

	text, err := readInputFile(inputPath)
	if err != nil {
		return err
	}

	opts, err := buildCompileOptions(cfg)
	if err != nil {
		return err
	}

	var onProgress docfmt.ProgressFunc
	if flags.common.verbose {
		start := deps.Now()
		onProgress = func(e docfmt.PhaseEvent) {
			elapsed := deps.Now().Sub(start).Round(time.Millisecond)
			if e.Detail != "" {
				fmt.Fprintf(deps.Stderr, "[%s] %s (%s) %v\n", e.Phase, e.Message, e.Detail, elapsed)
			} else {
				fmt.Fprintf(deps.Stderr, "[%s] %s %v\n", e.Phase, e.Message, elapsed)
			}
		}
	}

	compiler := docfmt.NewCompiler()

	var result docfmt.CompileResult
	if cfg.AI.Enabled {
		svc, err := docfmt.NewOpenAIService(docfmt.OpenAIServiceConfig{
			APIKey:  deps.Getenv("OPENAI_API_KEY"),
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
		})
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForAIUnavailable())
		}
		result = compiler.CompileWithAI(ctx, text, svc, opts, onProgress)
	} else {
		result = compiler.Compile(ctx, text, opts, onProgress)
	}

	if !flags.common.quiet {
		for _, w := range result.Warnings {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", w)
		}
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrCompileFailed, result.Err)
	}

	outputPath := resolveOutputPath(flags.output, cfg, inputPath)
	if err := os.WriteFile(outputPath, result.Package, filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// loadConfigFor loads the named config, or defaults when no name is given.
func loadConfigFor(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeCompileFlags merges CLI flags into the config (CLI wins).
func mergeCompileFlags(flags *compileFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Input.Format = flags.format
	}
	if flags.spec.name != "" {
		cfg.Spec.Name = flags.spec.name
	}
	if flags.spec.template != "" {
		cfg.Spec.Template = flags.spec.template
	}
	if flags.layout.noCover {
		cfg.Cover.Disabled = true
	}
	if flags.layout.noTOC {
		cfg.TOC.Disabled = true
	}
	if flags.layout.tocTitle != "" {
		cfg.TOC.Title = flags.layout.tocTitle
	}
	if flags.fix.disabled {
		cfg.Fix.Disabled = true
	}
	if flags.fix.maxIterations > 0 {
		cfg.Fix.MaxIterations = flags.fix.maxIterations
	}
	if flags.ai.enabled {
		cfg.AI.Enabled = true
	}
	if flags.ai.model != "" {
		cfg.AI.Model = flags.ai.model
	}
	if flags.ai.baseURL != "" {
		cfg.AI.BaseURL = flags.ai.baseURL
	}
}

// buildCompileOptions translates config into library compile options,
// loading spec and template files where paths are given.
func buildCompileOptions(cfg *config.Config) (docfmt.CompileOptions, error) {
	opts := docfmt.DefaultCompileOptions()

	if cfg.Input.Format != "" {
		opts.InputFormat = strings.ToLower(cfg.Input.Format)
	}
	opts.IncludeCover = !cfg.Cover.Disabled
	opts.IncludeTOC = !cfg.TOC.Disabled
	if cfg.TOC.Title != "" {
		opts.TOCTitle = cfg.TOC.Title
	}
	opts.AutoFix = !cfg.Fix.Disabled
	if cfg.Fix.MaxIterations > 0 {
		opts.MaxFixIterations = cfg.Fix.MaxIterations
	}

	if cfg.Spec.Name != "" {
		if fileutil.IsFilePath(cfg.Spec.Name) {
			data, err := os.ReadFile(cfg.Spec.Name) // #nosec G304 -- spec path is user-provided
			if err != nil {
				return opts, fmt.Errorf("%w: %v", ErrReadSpec, err)
			}
			spec, err := docfmt.LoadSpec(data)
			if err != nil {
				return opts, fmt.Errorf("loading spec %s: %w", cfg.Spec.Name, err)
			}
			opts.CustomSpec = spec
		} else {
			if !slices.Contains(docfmt.BuiltinSpecNames(), cfg.Spec.Name) {
				return opts, fmt.Errorf("%w: %q%s", docfmt.ErrUnknownSpec, cfg.Spec.Name,
					hints.ForSpecNotFound(docfmt.BuiltinSpecNames()))
			}
			opts.SpecName = cfg.Spec.Name
		}
	}

	if cfg.Spec.Template != "" {
		data, err := os.ReadFile(cfg.Spec.Template) // #nosec G304 -- template path is user-provided
		if err != nil {
			return opts, fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		opts.TemplateBytes = data
	}

	return opts, nil
}

// resolveInputPath extracts and validates the input file argument.
func resolveInputPath(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoInput
	}
	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt":
		return path, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// readInputFile reads the input text.
func readInputFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// resolveOutputPath picks the output file path: the explicit flag, or the
// input name with a .docx extension in the configured output directory.
func resolveOutputPath(output string, cfg *config.Config, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".docx"

	if output != "" {
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			return filepath.Join(output, base)
		}
		return output
	}

	dir := cfg.Output.DefaultDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base)
}
