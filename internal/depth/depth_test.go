package depth

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/phyten/tagaudit/internal/model"
)

func tok(kind model.Kind, line int) model.Token {
	return model.Token{Kind: kind, Line: line}
}

func TestTrackMixedSequence(t *testing.T) {
	res := Track([]model.Token{
		tok(model.KindOpen, 1),
		tok(model.KindSelfClose, 2),
		tok(model.KindClose, 4),
		tok(model.KindOpen, 5),
	})
	wantDepths := [][2]int{{0, 1}, {1, 1}, {1, 0}, {0, 1}}
	for i, ev := range res.Events {
		if ev.DepthBefore != wantDepths[i][0] || ev.DepthAfter != wantDepths[i][1] {
			t.Fatalf("event %d depth %d -> %d, want %d -> %d", i, ev.DepthBefore, ev.DepthAfter, wantDepths[i][0], wantDepths[i][1])
		}
	}
	if res.Final != 1 {
		t.Fatalf("Final = %d, want 1", res.Final)
	}
	if !reflect.DeepEqual(res.Pending, []int{5}) {
		t.Fatalf("Pending = %v, want [5]", res.Pending)
	}
	if len(res.Excess) != 0 {
		t.Fatalf("Excess = %v, want none", res.Excess)
	}
	if res.Balanced() {
		t.Fatal("unclosed open must not be balanced")
	}
	if !res.Events[3].Unclosed || res.Events[0].Unclosed {
		t.Fatalf("Unclosed flags wrong: %+v", res.Events)
	}
}

func TestTrackExcessClose(t *testing.T) {
	res := Track([]model.Token{tok(model.KindClose, 1)})
	if res.Final != -1 {
		t.Fatalf("Final = %d, want -1", res.Final)
	}
	if !reflect.DeepEqual(res.Excess, []int{1}) {
		t.Fatalf("Excess = %v, want [1]", res.Excess)
	}
	if len(res.Pending) != 0 {
		t.Fatalf("Pending = %v, want none", res.Pending)
	}
	if !res.Events[0].Excess || !res.Events[0].Problem() {
		t.Fatalf("event should be flagged as excess: %+v", res.Events[0])
	}
}

func TestTrackExcessThenOpen(t *testing.T) {
	// The close underflows, the open brings depth back to zero, yet both are findings.
	res := Track([]model.Token{tok(model.KindClose, 1), tok(model.KindOpen, 2)})
	if res.Final != 0 {
		t.Fatalf("Final = %d, want 0", res.Final)
	}
	if res.Balanced() {
		t.Fatal("zero final depth with findings must not be balanced")
	}
	if !reflect.DeepEqual(res.Excess, []int{1}) || !reflect.DeepEqual(res.Pending, []int{2}) {
		t.Fatalf("Excess=%v Pending=%v", res.Excess, res.Pending)
	}
}

func TestTrackPendingOldestFirst(t *testing.T) {
	res := Track([]model.Token{
		tok(model.KindOpen, 1),
		tok(model.KindOpen, 2),
		tok(model.KindOpen, 3),
		tok(model.KindClose, 4),
	})
	if !reflect.DeepEqual(res.Pending, []int{1, 2}) {
		t.Fatalf("Pending = %v, want [1 2]", res.Pending)
	}
}

func TestTrackEmpty(t *testing.T) {
	res := Track(nil)
	if !res.Balanced() || res.Final != 0 || len(res.Events) != 0 {
		t.Fatalf("empty input should be balanced: %+v", res)
	}
}

func TestTrackRoundTrip(t *testing.T) {
	for n := 0; n < 20; n++ {
		var tokens []model.Token
		for i := 0; i < n; i++ {
			tokens = append(tokens, tok(model.KindOpen, i+1))
		}
		for i := 0; i < n; i++ {
			tokens = append(tokens, tok(model.KindClose, n+i+1))
		}
		if res := Track(tokens); !res.Balanced() {
			t.Fatalf("n=%d: %d opens then %d closes should balance: %+v", n, n, n, res)
		}
	}
}

func TestTrackDepthInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	kinds := []model.Kind{model.KindOpen, model.KindClose, model.KindSelfClose}
	for round := 0; round < 200; round++ {
		tokens := make([]model.Token, rng.Intn(40))
		for i := range tokens {
			tokens[i] = tok(kinds[rng.Intn(len(kinds))], i+1)
		}
		res := Track(tokens)
		opens, closes, excess := 0, 0, 0
		for _, ev := range res.Events {
			switch ev.Kind {
			case model.KindOpen:
				opens++
			case model.KindClose:
				closes++
			}
			if ev.Excess {
				excess++
			}
			if ev.DepthAfter != opens-closes {
				t.Fatalf("round %d: depth %d != opens-closes %d", round, ev.DepthAfter, opens-closes)
			}
			if ev.DepthAfter-ev.DepthBefore != ev.Kind.Delta() {
				t.Fatalf("round %d: depth step %d -> %d for %v", round, ev.DepthBefore, ev.DepthAfter, ev.Kind)
			}
		}
		if res.Final != opens-closes {
			t.Fatalf("round %d: Final %d != %d", round, res.Final, opens-closes)
		}
		if len(res.Pending)-excess != res.Final {
			t.Fatalf("round %d: pending %d - excess %d != final %d", round, len(res.Pending), excess, res.Final)
		}
		if len(res.Excess) != excess {
			t.Fatalf("round %d: Excess lines %d, flagged %d", round, len(res.Excess), excess)
		}
	}
}
