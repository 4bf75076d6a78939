package shadowlint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// chainLink is a hand-built Node for exercising the walker and analyzer
// without a source adapter.
type chainLink struct {
	patterns []Pattern
	bearing  bool
	term     bool
	pred     *chainLink
}

func (l *chainLink) Predecessor() Node {
	if l.pred == nil {
		return nil
	}
	return l.pred
}

func (l *chainLink) IsTerminator() bool { return l.term }

func (l *chainLink) Patterns() ([]Pattern, bool) { return l.patterns, l.bearing }

func terminator() *chainLink {
	return &chainLink{term: true}
}

// terminatorOn builds a terminator link on top of pred, as when rules are
// declared before the authorization root in source order.
func terminatorOn(pred *chainLink) *chainLink {
	return &chainLink{term: true, pred: pred}
}

// decl appends a pattern-bearing link declaring the given patterns on top of
// pred. Each pattern gets a distinct site so tests can tell them apart.
func decl(pred *chainLink, values ...string) *chainLink {
	patterns := make([]Pattern, 0, len(values))
	for i, v := range values {
		patterns = append(patterns, Pattern{
			Value: v,
			Site:  Location{File: "chain.go", Line: chainDepth(pred) + 1, Column: i + 1},
		})
	}
	return &chainLink{patterns: patterns, bearing: true, pred: pred}
}

func chainDepth(l *chainLink) int {
	n := 0
	for cur := l; cur != nil; cur = cur.pred {
		n++
	}
	return n
}

// opaque appends a non-pattern link, such as a permission call between rule
// declarations.
func opaque(pred *chainLink) *chainLink {
	return &chainLink{pred: pred}
}

func patternValues(patterns []Pattern) []string {
	var out []string
	for _, p := range patterns {
		out = append(out, p.Value)
	}
	return out
}

func Test_PriorPatterns(t *testing.T) {
	tests := []struct {
		name string
		node *chainLink
		want []string
	}{
		{
			name: "first declaration after the terminator has no prior patterns",
			node: decl(terminator(), "/admin/**"),
			want: nil,
		},
		{
			name: "prior patterns come back oldest first",
			node: decl(decl(decl(terminator(), "/a"), "/b"), "/c"),
			want: []string{"/a", "/b"},
		},
		{
			name: "argument order within one declaration survives",
			node: decl(decl(terminator(), "/a", "/b", "/c"), "/d"),
			want: []string{"/a", "/b", "/c"},
		},
		{
			name: "non-pattern links between declarations are skipped",
			node: decl(opaque(decl(opaque(terminator()), "/a")), "/b"),
			want: []string{"/a"},
		},
		{
			name: "declarations beneath the terminator are excluded",
			node: decl(terminatorOn(decl(nil, "/early")), "/b"),
			want: nil,
		},
		{
			name: "chain without a terminator walks to its start",
			node: decl(decl(nil, "/a"), "/b"),
			want: []string{"/a"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := patternValues(PriorPatterns(tc.node))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("unexpected prior patterns (-want +got):\n%s", diff)
			}
		})
	}
}
