package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/model"
)

const (
	toolName = "tagaudit"
	toolURI  = "https://github.com/phyten/tagaudit"
)

type sarifRule struct {
	id          string
	description string
	level       string
}

var (
	ruleExcessClose = sarifRule{
		id:          string(model.FindingExcessClose),
		description: "A closing tag appears while no matching opening tag is pending.",
		level:       "error",
	}
	ruleUnclosedOpen = sarifRule{
		id:          string(model.FindingUnclosedOpen),
		description: "An opening tag is never closed before the end of the file.",
		level:       "error",
	}
	ruleUnterminatedComment = sarifRule{
		id:          string(model.WarningUnterminatedComment),
		description: "A block comment is not terminated; the rest of the file was ignored.",
		level:       "warning",
	}
	ruleUnterminatedLiteral = sarifRule{
		id:          string(model.WarningUnterminatedLiteral),
		description: "A string or template literal is not terminated; part of the file was ignored.",
		level:       "warning",
	}
)

// WriteSARIF renders findings and masking warnings as a SARIF 2.1.0 log.
func WriteSARIF(w io.Writer, res *engine.Result, version string) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}
	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	if version != "" {
		v := version
		run.Tool.Driver.Version = &v
	}
	for _, rule := range []sarifRule{ruleExcessClose, ruleUnclosedOpen, ruleUnterminatedComment, ruleUnterminatedLiteral} {
		run.AddRule(rule.id).
			WithDescription(rule.description).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: rule.level})
	}

	for _, fr := range res.Files {
		for _, ev := range fr.Events {
			switch {
			case ev.Excess:
				msg := model.Finding{Kind: model.FindingExcessClose, Line: ev.Line}.Message()
				run.AddResult(sarifResult(ruleExcessClose, fr.File, ev.Line, ev.Col, fmt.Sprintf("%s: %s", msg, ev.Snippet)))
			case ev.Unclosed:
				msg := model.Finding{Kind: model.FindingUnclosedOpen, Line: ev.Line}.Message()
				run.AddResult(sarifResult(ruleUnclosedOpen, fr.File, ev.Line, ev.Col, fmt.Sprintf("%s: %s", msg, ev.Snippet)))
			}
		}
		for _, warn := range fr.Warnings {
			rule := ruleUnterminatedLiteral
			if warn.Kind == model.WarningUnterminatedComment {
				rule = ruleUnterminatedComment
			}
			run.AddResult(sarifResult(rule, fr.File, warn.Line, warn.Col, warn.Message))
		}
	}
	report.AddRun(run)
	return report.PrettyWrite(w)
}

func sarifResult(rule sarifRule, file string, line, col int, message string) *sarif.Result {
	region := sarif.NewRegion().WithStartLine(line)
	if col > 0 {
		region = region.WithStartColumn(col)
	}
	location := sarif.NewLocation().WithPhysicalLocation(
		sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(file)).
			WithRegion(region),
	)
	return sarif.NewRuleResult(rule.id).
		WithMessage(sarif.NewTextMessage(message)).
		WithLevel(rule.level).
		WithLocations([]*sarif.Location{location})
}
