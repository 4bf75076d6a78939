package gosrc

import (
	"go/ast"
	"go/token"
	"strconv"
)

// constResolver resolves argument expressions to string constants without type
// information: string literals, parenthesized expressions, concatenation with
// "+", and identifiers bound by file-local const declarations. Anything else
// is "not a constant" and is silently dropped from analysis.
type constResolver struct {
	decls    map[string]ast.Expr
	resolved map[string]string
}

func newConstResolver(files ...*ast.File) *constResolver {
	r := &constResolver{
		decls:    make(map[string]ast.Expr),
		resolved: make(map[string]string),
	}
	for _, f := range files {
		r.collect(f)
	}
	return r
}

func (r *constResolver) collect(f *ast.File) {
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Names) != len(vs.Values) {
				continue
			}
			for i, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				r.decls[name.Name] = vs.Values[i]
			}
		}
	}
}

// stringConstant returns the literal string value of e, if it has one.
func (r *constResolver) stringConstant(e ast.Expr) (string, bool) {
	return r.resolve(e, make(map[string]struct{}))
}

func (r *constResolver) resolve(e ast.Expr, visiting map[string]struct{}) (string, bool) {
	switch e := e.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return "", false
		}
		v, err := strconv.Unquote(e.Value)
		if err != nil {
			return "", false
		}
		return v, true
	case *ast.ParenExpr:
		return r.resolve(e.X, visiting)
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return "", false
		}
		left, ok := r.resolve(e.X, visiting)
		if !ok {
			return "", false
		}
		right, ok := r.resolve(e.Y, visiting)
		if !ok {
			return "", false
		}
		return left + right, true
	case *ast.Ident:
		if v, ok := r.resolved[e.Name]; ok {
			return v, true
		}
		// guard against cyclic const references in unparsable input
		if _, ok := visiting[e.Name]; ok {
			return "", false
		}
		decl, ok := r.decls[e.Name]
		if !ok {
			return "", false
		}
		visiting[e.Name] = struct{}{}
		v, ok := r.resolve(decl, visiting)
		delete(visiting, e.Name)
		if !ok {
			return "", false
		}
		r.resolved[e.Name] = v
		return v, true
	default:
		return "", false
	}
}
