// Package output renders engine results in every supported --output format.
package output

import (
	"fmt"
	"io"

	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/termcolor"
)

// Options controls presentation. Zero values produce plain, untruncated output.
type Options struct {
	Fields       FieldSelection
	OnlyProblems bool
	SnippetWidth int
	Quiet        bool

	Color   bool
	Scheme  termcolor.Scheme
	Profile termcolor.Profile

	// Version is reported as the SARIF tool driver version.
	Version string
}

// Write renders res in format, which must already be normalized.
func Write(w io.Writer, format string, res *engine.Result, opts Options) error {
	if res == nil {
		res = &engine.Result{}
	}
	switch format {
	case "", "table":
		return WriteTable(w, res, opts)
	case "tsv":
		return WriteTSV(w, Rows(res, opts.OnlyProblems), withDefaultFields(opts.Fields))
	case "csv":
		return WriteCSV(w, Rows(res, opts.OnlyProblems), withDefaultFields(opts.Fields))
	case "markdown":
		return WriteMarkdownTable(w, Rows(res, opts.OnlyProblems), withDefaultFields(opts.Fields))
	case "json":
		return WriteJSON(w, res)
	case "ndjson":
		return WriteNDJSON(w, Rows(res, opts.OnlyProblems))
	case "sarif":
		return WriteSARIF(w, res, opts.Version)
	case "html":
		return WriteHTML(w, res, opts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func withDefaultFields(sel FieldSelection) FieldSelection {
	if len(sel.Fields) > 0 {
		return sel
	}
	def, _ := ResolveFields("", DefaultRowFields)
	return def
}
