package delegate

import (
	"go/ast"
	"go/types"
	"iter"
)

// Creations yields the delegate-creation candidates under expr, depth-first.
//
// Candidates are function literals, references to functions and methods,
// and references to function-typed variables. The callee of a call is not a
// candidate, but its arguments are searched; conversions are searched as a
// whole. Function literals are not searched inside.
func Creations(info *types.Info, expr ast.Expr) iter.Seq[ast.Expr] {
	return func(yield func(ast.Expr) bool) {
		stopped := false

		var visit func(n ast.Node) bool
		walk := func(n ast.Node) {
			if n != nil && !stopped {
				ast.Inspect(n, visit)
			}
		}
		emit := func(e ast.Expr) {
			if !yield(e) {
				stopped = true
			}
		}

		visit = func(n ast.Node) bool {
			if stopped {
				return false
			}

			switch n := n.(type) {
			case *ast.FuncLit:
				emit(n)
				return false

			case *ast.CallExpr:
				if tv, ok := info.Types[n.Fun]; ok && tv.IsType() {
					return true
				}
				for _, arg := range n.Args {
					walk(arg)
				}
				return false

			case *ast.KeyValueExpr:
				walk(n.Value)
				return false

			case *ast.SelectorExpr:
				if isCandidate(referent(info, n)) {
					emit(n)
					return false
				}
				walk(n.X)
				return false

			case *ast.Ident:
				if isCandidate(info.Uses[n]) {
					emit(n)
				}
				return false
			}

			return true
		}

		walk(expr)
	}
}

// referent returns the object a selector refers to.
func referent(info *types.Info, sel *ast.SelectorExpr) types.Object {
	if s, ok := info.Selections[sel]; ok {
		return s.Obj()
	}

	return info.Uses[sel.Sel]
}

func isCandidate(obj types.Object) bool {
	switch obj := obj.(type) {
	case *types.Func:
		return true
	case *types.Var:
		if obj.IsField() {
			return false
		}
		_, ok := obj.Type().Underlying().(*types.Signature)
		return ok
	}

	return false
}
