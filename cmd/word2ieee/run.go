package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	word2ieee "github.com/alnah/go-word2ieee"
	"github.com/alnah/go-word2ieee/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file given")
	ErrTooManyArgs      = errors.New("expected exactly one input file")
	ErrInvalidExtension = errors.New("input must have a .docx extension")
)

var (
	successLine = color.New(color.FgGreen)
	detailLine  = color.New(color.Faint)
)

// run resolves flags and config, then delegates to the converter.
// Output lines go to w so tests can capture them.
func run(ctx context.Context, flags *cliFlags, args []string, conv *word2ieee.Converter, w io.Writer) error {
	switch {
	case len(args) == 0:
		return ErrNoInput
	case len(args) > 1:
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}
	inputPath := args[0]

	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".docx" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}

	cfg := &config.Config{}
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	twoColumn := flags.twoColumn || cfg.Convert.TwoColumn

	if flags.inspect {
		return runInspect(ctx, conv, inputPath, w)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, twoColumn, cfg.Output.DefaultDir)
	}

	if flags.verbose {
		fmt.Fprintf(w, "converting %s -> %s (two-column: %t)\n", inputPath, outputPath, twoColumn)
	}

	result, err := conv.Convert(ctx, word2ieee.Input{
		InputPath:  inputPath,
		OutputPath: outputPath,
		TwoColumn:  twoColumn,
	})
	if err != nil {
		if result != nil {
			for _, issue := range result.Issues {
				fmt.Fprintln(w, detailLine.Sprint(issue))
			}
		}
		return err
	}

	if !flags.quiet {
		fmt.Fprintln(w, successLine.Sprintf("Created %s", outputPath))
	}
	return nil
}

// defaultOutputPath derives the output name from the input: paper.docx
// becomes paper_IEEE.docx, or paper_IEEE_two_column.docx with the
// two-column flag. An empty dir keeps the input's directory.
func defaultOutputPath(inputPath string, twoColumn bool, dir string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	suffix := "_IEEE.docx"
	if twoColumn {
		suffix = "_IEEE_two_column.docx"
	}
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, stem+suffix)
}
