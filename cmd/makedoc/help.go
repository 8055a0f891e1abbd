package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: makedoc <input.html> [version] [flags]")
	fmt.Fprintln(w, "       makedoc <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an asciidoctor HTML page into a docs page module.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.html    asciidoctor HTML file (required)")
	fmt.Fprintln(w, "  version       Version label for heading and file name (default: pre-release)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output-dir <dir>    Output directory (default: src/pages/docs)")
	fmt.Fprintln(w, "      --ext <s>             Output file extension (default: js)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>     Load MAKEDOC_* variables from a .env file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or path (default: src/pages/docs/__template.js)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/{name}.js")
	fmt.Fprintln(w, "      --strict              Fail unless each placeholder appears exactly once")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MAKEDOC_CONFIG, MAKEDOC_OUTPUT_DIR, MAKEDOC_TEMPLATE, MAKEDOC_ASSET_PATH,")
	fmt.Fprintln(w, "  MAKEDOC_EXT, MAKEDOC_DEFAULT_VERSION, MAKEDOC_STRICT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 usage, 2 configuration, 3 I/O.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: makedoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: makedoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
