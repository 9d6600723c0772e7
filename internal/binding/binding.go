// Package binding detects model-binding metadata on handler parameters.
//
// Binding metadata travels in parameter types: a parameter declared as
// mvc.FromQuery[int], or as a generic wrapper taking such a type as a type
// argument, carries it. Route handlers bind their parameters on their own,
// so MVC binding metadata is silently ignored there.
package binding

import (
	"go/token"
	"go/types"

	"github.com/mpyw/minimalactions/internal/delegate"
	"github.com/mpyw/minimalactions/internal/typeutil"
	"github.com/mpyw/minimalactions/internal/wellknown"
)

// Finding is an offending metadata type on one parameter.
type Finding struct {
	Param *types.Var
	// Pos is the parameter's declaration position.
	Pos token.Pos
	// Attribute is the display name of the metadata type, e.g. "mvc.Bind".
	Attribute string
}

// Check returns one finding per (parameter, offending metadata type) pair.
// A variadic parameter is checked by its element type. It needs no function
// body.
func Check(set *wellknown.Set, target delegate.Target) []Finding {
	var findings []Finding

	sig := target.Signature()
	params := sig.Params()
	for i := range params.Len() {
		param := params.At(i)
		t := param.Type()
		if sig.Variadic() && i == params.Len()-1 {
			if s, ok := t.(*types.Slice); ok {
				t = s.Elem()
			}
		}
		for _, meta := range Metadata(t) {
			if !offending(set, meta) {
				continue
			}
			findings = append(findings, Finding{
				Param:     param,
				Pos:       param.Pos(),
				Attribute: typeutil.DisplayName(meta.Origin().Obj()),
			})
		}
	}

	return findings
}

// Metadata returns the named types attached to a parameter of type t:
// t itself and its type arguments, pointers stripped, duplicates removed.
func Metadata(t types.Type) []*types.Named {
	named, ok := typeutil.Named(t)
	if !ok {
		return nil
	}

	metas := []*types.Named{named}

	args := named.TypeArgs()
	for i := range args.Len() {
		arg, ok := typeutil.Named(args.At(i))
		if !ok || contains(metas, arg) {
			continue
		}
		metas = append(metas, arg)
	}

	return metas
}

func offending(set *wellknown.Set, meta *types.Named) bool {
	if typeutil.SameOrigin(meta, set.Bind) {
		return true
	}

	return typeutil.Implements(meta, set.BinderTypeProviderInterface())
}

func contains(metas []*types.Named, t *types.Named) bool {
	for _, m := range metas {
		if types.Identical(m, t) {
			return true
		}
	}

	return false
}
