package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	word2ieee "github.com/alnah/go-word2ieee"
)

// excerptLen bounds the text column so the report stays one screen wide.
const excerptLen = 60

// runInspect classifies the document and prints one row per paragraph
// without writing any output file.
func runInspect(ctx context.Context, conv *word2ieee.Converter, inputPath string, w io.Writer) error {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", word2ieee.ErrReadInput, err)
	}

	infos, err := conv.Inspect(ctx, data)
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"#", "Role", "Text"})
	for _, info := range infos {
		if err := table.Append([]string{strconv.Itoa(info.Index), info.Role, excerpt(info.Text)}); err != nil {
			return fmt.Errorf("building report: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLen {
		return s
	}
	return string(runes[:excerptLen-1]) + "…"
}
