package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the word2ieee CLI.
type cliFlags struct {
	output    string
	twoColumn bool
	inspect   bool
	config    string
	quiet     bool
	verbose   bool
	version   bool
}

const usageText = `usage: word2ieee [flags] <input.docx>

Converts a Word document to IEEE publication format. Code regions are
delimited by paragraphs containing exactly "<code block start>" and
"<code block end>"; the markers are removed from the output.

Flags:
`

// parseFlags parses CLI flags and returns them with the remaining
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("word2ieee", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&f.output, "output", "o", "", "output path (default: <input>_IEEE.docx)")
	fs.BoolVar(&f.twoColumn, "two-column", false, "use two-column body layout")
	fs.BoolVar(&f.inspect, "inspect", false, "print per-paragraph classification, write nothing")
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file with CLI defaults")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = io.WriteString(out, usageText)
		_, _ = io.WriteString(out, fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
