package shadowlint

// Analyzer checks rule-declaration chains for patterns shadowed by earlier,
// broader declarations. It holds only a compiled-pattern cache, so one
// analyzer may be reused across the chains of a single analysis pass; distinct
// chains never share findings or comparison state.
//
// An Analyzer is not safe for concurrent use; concurrent passes should each
// create their own, which is cheap.
type Analyzer struct {
	compiled map[string]MatchRule
}

// NewAnalyzer returns an analyzer ready for use.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		compiled: make(map[string]MatchRule),
	}
}

// CheckNode evaluates the patterns declared at n against everything declared
// earlier on the same chain. For each of n's patterns the scan runs backward,
// most recently declared first, and stops at the first broader match, so at
// most one finding is emitted per offending pattern. Nodes that bear no
// literal patterns yield nothing.
func (a *Analyzer) CheckNode(n Node) []Finding {
	patterns, ok := n.Patterns()
	if !ok || len(patterns) == 0 {
		return nil
	}

	prior := PriorPatterns(n)
	if len(prior) == 0 {
		return nil
	}

	var findings []Finding
	for _, p := range patterns {
		if f, ok := a.checkPattern(p, prior); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// checkPattern scans prior (oldest-first) from the end, returning the conflict
// with the nearest broader pattern, if any.
func (a *Analyzer) checkPattern(p Pattern, prior []Pattern) (Finding, bool) {
	for i := len(prior) - 1; i >= 0; i-- {
		q := prior[i]
		if a.rule(q.Value).Matches(p.Value) {
			return Finding{Offending: p, Broader: q}, true
		}
	}
	return Finding{}, false
}

func (a *Analyzer) rule(pattern string) MatchRule {
	if r, ok := a.compiled[pattern]; ok {
		return r
	}
	r := Compile(pattern)
	a.compiled[pattern] = r
	return r
}
