// Package checker runs the binding and action result checks over a pass.
package checker

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/minimalactions/internal/binding"
	"github.com/mpyw/minimalactions/internal/delegate"
	"github.com/mpyw/minimalactions/internal/diagnostic"
	"github.com/mpyw/minimalactions/internal/directives/ignore"
	"github.com/mpyw/minimalactions/internal/matcher"
	"github.com/mpyw/minimalactions/internal/returns"
	"github.com/mpyw/minimalactions/internal/typeutil"
	"github.com/mpyw/minimalactions/internal/wellknown"
)

// Checker holds the per-pass state shared by every route-mapping call.
type Checker struct {
	set       *wellknown.Set
	enabled   ignore.Enabled
	ignores   *ignore.Set
	skipFiles map[string]bool
}

// New creates a checker for one pass.
func New(
	set *wellknown.Set,
	enabled ignore.Enabled,
	ignores *ignore.Set,
	skipFiles map[string]bool,
) *Checker {
	return &Checker{
		set:       set,
		enabled:   enabled,
		ignores:   ignores,
		skipFiles: skipFiles,
	}
}

// Run checks every route-mapping call in the pass.
// It stops early and returns ctx.Err() if ctx is done.
func (c *Checker) Run(ctx context.Context, pass *analysis.Pass, insp *inspector.Inspector) error {
	resolver := delegate.NewResolver(pass.TypesInfo, pass.Files)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	var err error
	insp.Preorder(nodeFilter, func(n ast.Node) {
		if err != nil {
			return
		}

		call := n.(*ast.CallExpr)

		filename := pass.Fset.Position(call.Pos()).Filename
		if c.skipFiles[filename] {
			return
		}

		err = c.checkCall(ctx, pass, resolver, call)
	})

	return err
}

func (c *Checker) checkCall(ctx context.Context, pass *analysis.Pass, resolver *delegate.Resolver, call *ast.CallExpr) error {
	callee, ok := matcher.Match(pass.TypesInfo, call, c.set)
	if !ok {
		return nil
	}

	handler := call.Args[matcher.HandlerArgIdx]

	target, err := resolver.Resolve(ctx, handler)
	if err != nil || target == nil {
		return err
	}

	if c.enabled[ignore.Binding] {
		c.checkBinding(pass, call, handler, callee, target)
	}

	if c.enabled[ignore.ActionResult] {
		c.checkReturns(pass, call, callee, target)
	}

	return nil
}

func (c *Checker) checkBinding(pass *analysis.Pass, call *ast.CallExpr, handler ast.Expr, callee *types.Func, target delegate.Target) {
	for _, f := range binding.Check(c.set, target) {
		pos := f.Pos
		if !inFiles(pass.Files, pos) {
			pos = handler.Pos()
		}

		if c.ignores.Suppressed(ignore.Binding, pos, call.Pos()) {
			continue
		}

		pass.Report(diagnostic.BindingMetadata.New(pos, f.Attribute, callee.Name()))
	}
}

func (c *Checker) checkReturns(pass *analysis.Pass, call *ast.CallExpr, callee *types.Func, target delegate.Target) {
	for _, site := range returns.Check(pass.TypesInfo, c.set, target) {
		if c.ignores.Suppressed(ignore.ActionResult, site.Pos, call.Pos()) {
			continue
		}

		pass.Report(diagnostic.ActionResult.New(
			site.Pos,
			typeutil.DisplayName(c.set.ActionResult),
			callee.Name(),
			c.set.Result.Pkg().Path(),
		))
	}
}

func inFiles(files []*ast.File, pos token.Pos) bool {
	for _, f := range files {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return true
		}
	}

	return false
}
