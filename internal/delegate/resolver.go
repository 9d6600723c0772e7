package delegate

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
)

// Resolver maps handler arguments to their definitions.
type Resolver struct {
	info  *types.Info
	files []*ast.File
}

// NewResolver creates a resolver over the given type information and files.
// Declarations outside files are treated as unavailable.
func NewResolver(info *types.Info, files []*ast.File) *Resolver {
	return &Resolver{info: info, files: files}
}

// Resolve returns the target of the first delegate creation under expr.
// It returns nil, nil if expr contains none, and ctx.Err() if ctx is done.
func (r *Resolver) Resolve(ctx context.Context, expr ast.Expr) (Target, error) {
	for node := range Creations(r.info, expr) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target, err := r.target(ctx, node)
		if err != nil {
			return nil, err
		}
		if target != nil {
			return target, nil
		}
	}

	return nil, nil
}

func (r *Resolver) target(ctx context.Context, node ast.Expr) (Target, error) {
	if lit, ok := node.(*ast.FuncLit); ok {
		sig, ok := r.info.TypeOf(lit).(*types.Signature)
		if !ok {
			return nil, nil
		}
		return &AnonymousFunc{Lit: lit, Sig: sig}, nil
	}

	ident := refIdent(node)
	if ident == nil {
		return nil, nil
	}

	var obj types.Object
	if sel, ok := node.(*ast.SelectorExpr); ok {
		obj = referent(r.info, sel)
	} else {
		obj = r.info.Uses[ident]
	}

	switch obj := obj.(type) {
	case *types.Func:
		body, err := r.funcBody(ctx, obj)
		if err != nil {
			return nil, err
		}
		return &FuncRef{Obj: obj, Sig: r.signature(ident, obj), Body: body}, nil

	case *types.Var:
		lit, err := r.boundLit(ctx, obj)
		if err != nil || lit == nil {
			return nil, err
		}
		sig, ok := r.info.TypeOf(lit).(*types.Signature)
		if !ok {
			return nil, nil
		}
		return &FuncRef{Obj: obj, Sig: sig, Body: lit.Body}, nil
	}

	return nil, nil
}

// signature returns fn's signature, instantiated if ident instantiates it.
func (r *Resolver) signature(ident *ast.Ident, fn *types.Func) *types.Signature {
	if inst, ok := r.info.Instances[ident]; ok {
		if sig, ok := inst.Type.(*types.Signature); ok {
			return sig
		}
	}

	return fn.Signature()
}

// funcBody locates the body of fn's declaration.
func (r *Resolver) funcBody(ctx context.Context, fn *types.Func) (*ast.BlockStmt, error) {
	path, err := r.declPath(ctx, fn.Origin().Pos())
	if err != nil || len(path) < 2 {
		return nil, err
	}

	decl, ok := path[1].(*ast.FuncDecl)
	if !ok || decl.Name != path[0] {
		return nil, nil
	}

	return decl.Body, nil
}

// boundLit locates the function literal v is declared with.
// Only the declaring assignment or var spec is considered.
func (r *Resolver) boundLit(ctx context.Context, v *types.Var) (*ast.FuncLit, error) {
	path, err := r.declPath(ctx, v.Pos())
	if err != nil || len(path) < 2 {
		return nil, err
	}

	name, ok := path[0].(*ast.Ident)
	if !ok {
		return nil, nil
	}

	var lhs []*ast.Ident
	var rhs []ast.Expr

	switch decl := path[1].(type) {
	case *ast.AssignStmt:
		for _, e := range decl.Lhs {
			id, _ := e.(*ast.Ident)
			lhs = append(lhs, id)
		}
		rhs = decl.Rhs
	case *ast.ValueSpec:
		lhs = decl.Names
		rhs = decl.Values
	default:
		return nil, nil
	}

	if len(lhs) != len(rhs) {
		return nil, nil
	}

	for i, id := range lhs {
		if id != name || r.info.Defs[id] != v {
			continue
		}
		lit, _ := ast.Unparen(rhs[i]).(*ast.FuncLit)
		return lit, nil
	}

	return nil, nil
}

// declPath returns the syntax path enclosing the identifier at pos,
// innermost first, or nil if pos is outside the analyzed files.
func (r *Resolver) declPath(ctx context.Context, pos token.Pos) ([]ast.Node, error) {
	if !pos.IsValid() {
		return nil, nil
	}

	for _, file := range r.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if pos < file.FileStart || pos > file.FileEnd {
			continue
		}

		path, _ := astutil.PathEnclosingInterval(file, pos, pos)
		if len(path) == 0 {
			return nil, nil
		}
		if _, ok := path[0].(*ast.Ident); !ok {
			return nil, nil
		}
		return path, nil
	}

	return nil, nil
}

// refIdent returns the identifier naming the referenced object.
func refIdent(node ast.Expr) *ast.Ident {
	switch n := node.(type) {
	case *ast.Ident:
		return n
	case *ast.SelectorExpr:
		return n.Sel
	}

	return nil
}
