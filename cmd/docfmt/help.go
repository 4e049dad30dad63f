package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfmt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compile    Compile text into a styled document package")
	fmt.Fprintln(w, "  check      Classify and lint text without compiling")
	fmt.Fprintln(w, "  specs      List builtin style specifications")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docfmt help <command>' for details on a specific command.")
}

// printCompileUsage prints usage for the compile command.
func printCompileUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfmt compile <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile a text file into a styled Word-compatible document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown or plaintext file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -f, --format <s>             Input format: auto, markdown, plaintext")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "  -s, --spec <s>               Style spec name or YAML file path")
	fmt.Fprintln(w, "      --template <path>        Reference template to patch")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --no-cover               Disable cover page")
	fmt.Fprintln(w, "      --no-toc                 Disable table of contents")
	fmt.Fprintln(w, "      --toc-title <s>          Table of contents heading")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Auto-Fix:")
	fmt.Fprintln(w, "      --no-fix                 Disable the auto-fix loop")
	fmt.Fprintln(w, "      --max-fix-iterations <n> Auto-fix iteration cap (0 = default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "AI:")
	fmt.Fprintln(w, "      --ai                     Classify paragraphs with AI")
	fmt.Fprintln(w, "      --ai-model <s>           AI model identifier")
	fmt.Fprintln(w, "      --ai-base-url <s>        OpenAI-compatible endpoint URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The AI API key is read from the OPENAI_API_KEY environment variable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show phase progress and timing")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfmt check <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Classify paragraphs and report structural issues without compiling.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown or plaintext file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --strict         Report warnings and informational findings too")
	fmt.Fprintln(w, "  -c, --config <name>  Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet          Only show errors")
	fmt.Fprintln(w, "  -v, --verbose        Show paragraph classification details")
}
