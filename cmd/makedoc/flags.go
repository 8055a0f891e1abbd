package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// templateFlags holds template-related flags.
type templateFlags struct {
	template  string // Name or path of the page template
	assetPath string // Override asset directory
	strict    bool   // Require each placeholder exactly once
	strictSet bool   // --strict given explicitly (false is meaningful)
}

// outputFlags holds output destination flags.
type outputFlags struct {
	dir       string
	extension string
}

// generateFlags holds all flags for page generation.
type generateFlags struct {
	common   commonFlags
	template templateFlags
	output   outputFlags
	envFile  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/{name}.js")
	fs.BoolVar(&f.strict, "strict", false, "fail unless each placeholder appears exactly once")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output-dir", "o", "", "output directory")
	fs.StringVar(&f.extension, "ext", "", "output file extension")
}

// parseGenerateFlags parses flags for page generation and returns the
// positional arguments. Flags and arguments may be interleaved.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("makedoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.template)
	addOutputFlags(fs, &f.output)
	fs.StringVar(&f.envFile, "env-file", "", "load MAKEDOC_* variables from a .env file")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.template.strictSet = fs.Changed("strict")

	return f, fs.Args(), nil
}
