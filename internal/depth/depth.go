// Package depth walks classified tag tokens with a stack and reports unmatched
// opening and excess closing tags.
package depth

import "github.com/phyten/tagaudit/internal/model"

// Result is the outcome of one Track call.
type Result struct {
	Events []model.Event
	// Pending holds the lines of opening tags that were never closed, oldest first.
	Pending []int
	// Excess holds the lines of closing tags seen while the stack was empty.
	Excess []int
	Final  int
}

// Balanced reports whether every open had a matching close.
func (r Result) Balanced() bool {
	return len(r.Pending) == 0 && len(r.Excess) == 0 && r.Final == 0
}

// Track processes tokens in order. A close always lowers the depth, so the
// final depth may be negative when closes outnumber opens.
func Track(tokens []model.Token) Result {
	res := Result{Events: make([]model.Event, 0, len(tokens))}
	// stack holds indexes into res.Events for opens that are still pending.
	var stack []int
	depth := 0
	for _, tok := range tokens {
		ev := model.Event{Token: tok, DepthBefore: depth}
		switch tok.Kind {
		case model.KindOpen:
			stack = append(stack, len(res.Events))
		case model.KindClose:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			} else {
				ev.Excess = true
				res.Excess = append(res.Excess, tok.Line)
			}
		}
		depth += tok.Kind.Delta()
		ev.DepthAfter = depth
		res.Events = append(res.Events, ev)
	}
	for _, idx := range stack {
		res.Events[idx].Unclosed = true
		res.Pending = append(res.Pending, res.Events[idx].Line)
	}
	res.Final = depth
	return res
}
