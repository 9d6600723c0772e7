package delegate

import (
	"go/ast"
	"go/types"
)

// Target is the callable a handler argument resolves to.
// It is either an [*AnonymousFunc] or a [*FuncRef].
type Target interface {
	// Signature returns the handler's signature.
	Signature() *types.Signature

	target()
}

// AnonymousFunc is a handler written inline as a function literal.
type AnonymousFunc struct {
	Lit *ast.FuncLit
	Sig *types.Signature
}

// FuncRef is a handler referenced by name: a function, a method value or
// expression, or a variable bound to a function literal.
type FuncRef struct {
	// Obj is a *types.Func or a *types.Var.
	Obj types.Object
	Sig *types.Signature

	// Body is nil when the declaration is not part of the analyzed files
	// or has no body.
	Body *ast.BlockStmt
}

func (f *AnonymousFunc) Signature() *types.Signature { return f.Sig }
func (f *FuncRef) Signature() *types.Signature       { return f.Sig }

func (*AnonymousFunc) target() {}
func (*FuncRef) target()       {}

// Body returns the body of t, or nil if it is unavailable.
func Body(t Target) *ast.BlockStmt {
	switch t := t.(type) {
	case *AnonymousFunc:
		return t.Lit.Body
	case *FuncRef:
		return t.Body
	}

	return nil
}
