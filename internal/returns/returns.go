// Package returns detects handlers that return MVC action results.
package returns

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/mpyw/minimalactions/internal/delegate"
	"github.com/mpyw/minimalactions/internal/wellknown"
)

// Site is a value handed back to the caller of a handler.
type Site struct {
	Pos  token.Pos
	Type types.Type
}

// Check returns the return sites of target that produce action results.
// A tuple or a bare return yields at most one site, the first offending
// element. Targets without a body yield nothing.
func Check(info *types.Info, set *wellknown.Set, target delegate.Target) []Site {
	body := delegate.Body(target)
	if body == nil {
		return nil
	}

	var found []Site
	for _, site := range Sites(info, target.Signature(), body) {
		// Elements of one tuple or bare return share a position.
		if len(found) > 0 && found[len(found)-1].Pos == site.Pos {
			continue
		}
		if IsActionResult(set, site.Type) {
			found = append(found, site)
		}
	}

	return found
}

// Sites collects the return sites in body, skipping nested function literals.
// A bare return in a function with named results yields each named result.
func Sites(info *types.Info, sig *types.Signature, body *ast.BlockStmt) []Site {
	var sites []Site

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.ReturnStmt:
			if len(n.Results) == 0 {
				results := sig.Results()
				for i := range results.Len() {
					sites = append(sites, Site{Pos: n.Pos(), Type: results.At(i).Type()})
				}
				return false
			}

			for _, expr := range n.Results {
				sites = append(sites, exprSites(info, expr)...)
			}
			return false
		}

		return true
	})

	return sites
}

func exprSites(info *types.Info, expr ast.Expr) []Site {
	t := info.TypeOf(expr)
	if t == nil {
		return nil
	}

	tuple, ok := t.(*types.Tuple)
	if !ok {
		return []Site{{Pos: expr.Pos(), Type: t}}
	}

	sites := make([]Site, 0, tuple.Len())
	for i := range tuple.Len() {
		sites = append(sites, Site{Pos: expr.Pos(), Type: tuple.At(i).Type()})
	}

	return sites
}

// IsActionResult reports whether t is, or converts to, an action result
// without also being a valid result.
func IsActionResult(set *wellknown.Set, t types.Type) bool {
	if isUntypedNil(t) || types.AssignableTo(t, set.Result.Type()) {
		return false
	}

	if types.Identical(t, set.ActionResult.Type()) {
		return true
	}

	if iface, ok := set.ActionResultInterface(); ok && types.Implements(t, iface) {
		return true
	}

	return types.Implements(t, set.ConvertToActionResultInterface())
}

func isUntypedNil(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.UntypedNil
}
