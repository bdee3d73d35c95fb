package output

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/phyten/tagaudit/internal/colorutil"
	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/model"
	"github.com/phyten/tagaudit/internal/termcolor"
)

var (
	//go:embed templates/report.html
	reportHTML string
	reportOnce sync.Once
	reportTmpl *template.Template
)

var problemBadge = colorutil.RGB{R: 220, G: 38, B: 38}

type htmlReport struct {
	Tag        string
	Total      int
	Unbalanced int
	Errors     []engine.FileError
	Files      []htmlFile
}

type htmlFile struct {
	File     string
	Lang     string
	Final    int
	Balanced bool
	Findings []string
	Warnings []string
	Events   []htmlEvent
}

type htmlEvent struct {
	Line    int
	Kind    string
	Before  int
	After   int
	Snippet string
	Problem bool
	Badge   template.CSS
}

// WriteHTML renders a standalone HTML report. Snippets are escaped by html/template.
func WriteHTML(w io.Writer, res *engine.Result, opts Options) error {
	data := htmlReport{
		Tag:        res.Tag,
		Total:      res.Total,
		Unbalanced: res.Unbalanced,
		Errors:     res.Errors,
	}
	for _, fr := range res.Files {
		if opts.Quiet && fr.Balanced && len(fr.Warnings) == 0 {
			continue
		}
		hf := htmlFile{File: fr.File, Lang: fr.Lang, Final: fr.Final, Balanced: fr.Balanced}
		for _, f := range fr.Findings() {
			hf.Findings = append(hf.Findings, f.Message())
		}
		for _, warn := range fr.Warnings {
			hf.Warnings = append(hf.Warnings, warn.String())
		}
		for _, row := range fileRows(fr, opts.OnlyProblems) {
			hf.Events = append(hf.Events, newHTMLEvent(row.Event))
		}
		data.Files = append(data.Files, hf)
	}
	if err := loadReportTemplate().Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func newHTMLEvent(ev model.Event) htmlEvent {
	bg := termcolor.DepthRGB(ev.DepthAfter, termcolor.DefaultMaxDepth)
	if ev.DepthAfter < 0 {
		bg = problemBadge
	}
	fg := colorutil.TextOn(bg)
	return htmlEvent{
		Line:    ev.Line,
		Kind:    ev.Kind.String(),
		Before:  ev.DepthBefore,
		After:   ev.DepthAfter,
		Snippet: ev.Snippet,
		Problem: ev.Problem(),
		Badge:   template.CSS(fmt.Sprintf("background:%s;color:%s", bg.Hex(), fg.Hex())),
	}
}

func loadReportTemplate() *template.Template {
	reportOnce.Do(func() {
		reportTmpl = template.Must(template.New("report").Parse(reportHTML))
	})
	return reportTmpl
}
