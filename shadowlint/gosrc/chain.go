package gosrc

import (
	"go/ast"
	"go/token"

	"github.com/shadowsec/shadowlint/shadowlint"
)

// fileScope bundles what every node of a file's chains needs: positions,
// method classification, and constant resolution.
type fileScope struct {
	fset        *token.FileSet
	matchers    map[string]struct{}
	terminators map[string]struct{}
	consts      *constResolver
}

// callNode adapts one chained method invocation to shadowlint.Node. The view
// is read-only over the parse tree; patterns are extracted on demand.
type callNode struct {
	call  *ast.CallExpr
	scope *fileScope
}

var _ shadowlint.Node = (*callNode)(nil)

func (n *callNode) Predecessor() shadowlint.Node {
	sel, ok := n.call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}
	call, ok := sel.X.(*ast.CallExpr)
	if !ok {
		return nil
	}
	return &callNode{call: call, scope: n.scope}
}

func (n *callNode) IsTerminator() bool {
	_, ok := n.scope.terminators[methodName(n.call)]
	return ok
}

func (n *callNode) Patterns() ([]shadowlint.Pattern, bool) {
	if _, ok := n.scope.matchers[methodName(n.call)]; !ok {
		return nil, false
	}

	var patterns []shadowlint.Pattern
	for _, arg := range n.call.Args {
		value, ok := n.scope.consts.stringConstant(arg)
		if !ok {
			// not a string constant: contributes nothing, causes no error
			continue
		}
		patterns = append(patterns, shadowlint.Pattern{
			Value: value,
			Site:  siteOf(n.scope.fset, arg),
		})
	}
	return patterns, true
}

func methodName(call *ast.CallExpr) string {
	if sel, ok := call.Fun.(*ast.SelectorExpr); ok {
		return sel.Sel.Name
	}
	if id, ok := call.Fun.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func siteOf(fset *token.FileSet, e ast.Expr) shadowlint.Location {
	pos := fset.Position(e.Pos())
	return shadowlint.Location{
		File:   pos.Filename,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// chainNodes returns a node view for every pattern-bearing declaration in the
// file, in source order. Each is a candidate for the order analyzer.
func chainNodes(fset *token.FileSet, f *ast.File, cfg Config) []shadowlint.Node {
	scope := &fileScope{
		fset:        fset,
		matchers:    toSet(cfg.MatcherMethods),
		terminators: toSet(cfg.TerminatorMethods),
		consts:      newConstResolver(f),
	}

	var nodes []shadowlint.Node
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if _, ok := scope.matchers[methodName(call)]; ok {
			nodes = append(nodes, &callNode{call: call, scope: scope})
		}
		return true
	})
	return nodes
}
