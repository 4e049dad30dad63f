package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// specFlags holds style specification flags.
type specFlags struct {
	name     string // builtin spec name or YAML file path
	template string // reference template path to patch
}

// layoutFlags holds cover and TOC flags.
type layoutFlags struct {
	noCover  bool
	noTOC    bool
	tocTitle string
}

// fixFlags holds auto-fix loop flags.
type fixFlags struct {
	disabled      bool
	maxIterations int
}

// aiFlags holds AI-assisted classification flags.
// The API key is read from the OPENAI_API_KEY environment variable, never
// from a flag, to keep it out of shell history and process listings.
type aiFlags struct {
	enabled bool
	model   string
	baseURL string
}

// compileFlags holds all flags for the compile command.
type compileFlags struct {
	common commonFlags
	output string
	format string
	spec   specFlags
	layout layoutFlags
	fix    fixFlags
	ai     aiFlags
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	common commonFlags
	strict bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show phase progress and timing")
}

// addSpecFlags adds style specification flags to a FlagSet.
func addSpecFlags(fs *flag.FlagSet, f *specFlags) {
	fs.StringVarP(&f.name, "spec", "s", "", "style spec name or YAML file path")
	fs.StringVar(&f.template, "template", "", "reference template to patch instead of generating")
}

// addLayoutFlags adds cover and TOC flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.BoolVar(&f.noCover, "no-cover", false, "disable cover page")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")
}

// addFixFlags adds auto-fix flags to a FlagSet.
func addFixFlags(fs *flag.FlagSet, f *fixFlags) {
	fs.BoolVar(&f.disabled, "no-fix", false, "disable the auto-fix loop")
	fs.IntVar(&f.maxIterations, "max-fix-iterations", 0, "auto-fix iteration cap (0 = default)")
}

// addAIFlags adds AI flags to a FlagSet.
func addAIFlags(fs *flag.FlagSet, f *aiFlags) {
	fs.BoolVar(&f.enabled, "ai", false, "classify paragraphs with AI (needs OPENAI_API_KEY)")
	fs.StringVar(&f.model, "ai-model", "", "AI model identifier")
	fs.StringVar(&f.baseURL, "ai-base-url", "", "OpenAI-compatible endpoint URL")
}

// parseCompileFlags parses compile command flags and returns positional args.
func parseCompileFlags(args []string) (*compileFlags, []string, error) {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	f := &compileFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "input format: auto, markdown, plaintext")

	addCommonFlags(fs, &f.common)
	addSpecFlags(fs, &f.spec)
	addLayoutFlags(fs, &f.layout)
	addFixFlags(fs, &f.fix)
	addAIFlags(fs, &f.ai)

	fs.Usage = func() { printCompileUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}

	fs.BoolVar(&f.strict, "strict", false, "report warnings and informational findings too")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCheckUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
