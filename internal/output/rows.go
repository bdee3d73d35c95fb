package output

import (
	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/model"
)

// Row is one tag event flattened with the file it belongs to.
type Row struct {
	File string `json:"file"`
	model.Event
}

// Rows flattens the events of every file in report order.
func Rows(res *engine.Result, onlyProblems bool) []Row {
	if res == nil {
		return nil
	}
	var out []Row
	for _, fr := range res.Files {
		out = append(out, fileRows(fr, onlyProblems)...)
	}
	return out
}

func fileRows(fr engine.FileReport, onlyProblems bool) []Row {
	out := make([]Row, 0, len(fr.Events))
	for _, ev := range fr.Events {
		if onlyProblems && !ev.Problem() {
			continue
		}
		out = append(out, Row{File: fr.File, Event: ev})
	}
	return out
}
