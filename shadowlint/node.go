package shadowlint

// Node is one link in a rule-declaration chain, as produced by a source
// adapter (see the gosrc package). The analyzer only ever reads a chain; it is
// owned by whoever parsed it.
//
// Chains are written left to right with later calls wrapping earlier ones, so
// a node's own patterns are declared after all patterns of its predecessor.
type Node interface {
	// Predecessor returns the chain node this one was declared on top of, or
	// nil when the chain starts here. Chains are acyclic by construction.
	Predecessor() Node

	// IsTerminator reports whether this node is the chain's authorization-root
	// sentinel. Nothing declared at or before a terminator takes part in the
	// ordering comparison.
	IsTerminator() bool

	// Patterns returns the literal patterns declared at this node, in their
	// left-to-right argument order, and true when the node is a
	// pattern-bearing rule declaration. Arguments that did not resolve to a
	// string constant are absent.
	Patterns() ([]Pattern, bool)
}

// PriorPatterns collects every pattern already declared relative to n,
// oldest-declared first. The walk follows predecessor links iteratively and
// stops, exclusively, at the first terminator node.
func PriorPatterns(n Node) []Pattern {
	// walking inward visits the most recently declared node first; collect
	// per-node groups so each node's own left-to-right order survives the flip
	var groups [][]Pattern
	for cur := n.Predecessor(); cur != nil; cur = cur.Predecessor() {
		if cur.IsTerminator() {
			break
		}
		if patterns, ok := cur.Patterns(); ok && len(patterns) > 0 {
			groups = append(groups, patterns)
		}
	}

	var oldestFirst []Pattern
	for i := len(groups) - 1; i >= 0; i-- {
		oldestFirst = append(oldestFirst, groups[i]...)
	}
	return oldestFirst
}
