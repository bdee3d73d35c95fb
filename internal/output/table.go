package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/model"
	"github.com/phyten/tagaudit/internal/termcolor"
	"github.com/phyten/tagaudit/internal/textutil"
)

const columnGap = "  "

// WriteTable renders a human readable report: one event table per file followed by
// the final depth, findings and masking warnings.
func WriteTable(w io.Writer, res *engine.Result, opts Options) error {
	sel := opts.Fields
	if len(sel.Fields) == 0 {
		sel, _ = ResolveFields("", DefaultTableFields)
	}
	p := &tablePrinter{w: w, opts: opts, sel: sel}
	printed := false
	for _, fr := range res.Files {
		if opts.Quiet && fr.Balanced && len(fr.Warnings) == 0 {
			continue
		}
		if printed {
			p.println("")
		}
		p.file(fr)
		printed = true
	}
	if len(res.Files) != 1 {
		if printed {
			p.println("")
		}
		p.summary(res)
	}
	return p.err
}

type tablePrinter struct {
	w    io.Writer
	opts Options
	sel  FieldSelection
	err  error
}

func (p *tablePrinter) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *tablePrinter) paint(style termcolor.Style, s string) string {
	return termcolor.Apply(style, s, p.opts.Color)
}

func (p *tablePrinter) file(fr engine.FileReport) {
	title := fr.File
	if fr.Lang != "" {
		title += " (" + fr.Lang + ")"
	}
	p.println(p.paint(termcolor.Style{Bold: true}, title))

	if !p.opts.Quiet {
		if rows := fileRows(fr, p.opts.OnlyProblems); len(rows) > 0 {
			p.events(rows)
		}
	}

	final := fmt.Sprintf("Final depth: %d", fr.Final)
	if fr.Final != 0 {
		final = p.paint(termcolor.ProblemStyle(), final)
	}
	p.println(final)
	for _, f := range fr.Findings() {
		p.println(p.paint(termcolor.ProblemStyle(), f.Message()))
	}
	for _, warn := range fr.Warnings {
		p.println("warning: " + warn.String())
	}
	if fr.Balanced {
		p.println(p.paint(termcolor.OKStyle(), fmt.Sprintf("All <%s> tags balanced.", fr.Tag)))
	}
}

func (p *tablePrinter) events(rows []Row) {
	fields := p.sel.Fields
	cells := make([][]string, len(rows))
	widths := make([]int, len(fields))
	for i, f := range fields {
		widths[i] = textutil.Width(f.Header)
	}
	for r, row := range rows {
		values := RowValues(row, fields)
		for i, f := range fields {
			values[i] = textutil.Cell(values[i])
			if f.Key == "snippet" && p.opts.SnippetWidth > 0 {
				values[i] = textutil.Truncate(values[i], p.opts.SnippetWidth)
			}
			if vw := textutil.Width(values[i]); vw > widths[i] {
				widths[i] = vw
			}
		}
		cells[r] = values
	}

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = p.paint(termcolor.HeaderStyle(), p.pad(f.Header, widths[i], i == len(fields)-1))
	}
	p.println(strings.TrimRight(strings.Join(header, columnGap), " "))

	for r, row := range rows {
		line := make([]string, len(fields))
		for i, f := range fields {
			cell := p.pad(cells[r][i], widths[i], i == len(fields)-1)
			line[i] = p.paint(p.cellStyle(f.Key, row.Event), cell)
		}
		p.println(strings.TrimRight(strings.Join(line, columnGap), " "))
	}
}

func (p *tablePrinter) pad(s string, w int, last bool) string {
	if last {
		return s
	}
	return textutil.PadRight(s, w)
}

func (p *tablePrinter) cellStyle(key string, ev model.Event) termcolor.Style {
	switch key {
	case "kind":
		if ev.Problem() {
			return termcolor.ProblemStyle()
		}
		return termcolor.KindStyle(ev.Kind, p.opts.Scheme, p.opts.Profile)
	case "depth", "after":
		return termcolor.DepthStyle(ev.DepthAfter, p.opts.Profile, termcolor.DefaultMaxDepth)
	case "before":
		return termcolor.DepthStyle(ev.DepthBefore, p.opts.Profile, termcolor.DefaultMaxDepth)
	default:
		return termcolor.Style{}
	}
}

func (p *tablePrinter) summary(res *engine.Result) {
	msg := fmt.Sprintf("Scanned %d %s, %d unbalanced", res.Total, plural(res.Total, "file", "files"), res.Unbalanced)
	if res.ErrorCount > 0 {
		msg += fmt.Sprintf(", %d unreadable", res.ErrorCount)
	}
	style := termcolor.OKStyle()
	if res.Unbalanced > 0 {
		style = termcolor.ProblemStyle()
	}
	p.println(p.paint(style, msg))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
