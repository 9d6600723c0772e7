// Package matcher recognizes route-mapping calls.
package matcher

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/mpyw/minimalactions/internal/wellknown"
)

// Prefix is the name prefix shared by all route-mapping functions.
const Prefix = "Map"

// Arity is the number of arguments of a route-mapping call:
// the route builder, the pattern and the handler.
const Arity = 3

// HandlerArgIdx is the index of the handler argument.
const HandlerArgIdx = 2

// Match reports whether call is a route-mapping call and returns its callee.
//
// The callee must be a package-level function of set.Routing whose name
// starts with [Prefix], and the call must pass exactly [Arity] arguments.
func Match(info *types.Info, call *ast.CallExpr, set *wellknown.Set) (*types.Func, bool) {
	fn := typeutil.StaticCallee(info, call)
	if fn == nil {
		return nil, false
	}

	if !strings.HasPrefix(fn.Name(), Prefix) {
		return nil, false
	}

	if fn.Pkg() != set.Routing || fn.Signature().Recv() != nil {
		return nil, false
	}

	if len(call.Args) != Arity {
		return nil, false
	}

	return fn, true
}
