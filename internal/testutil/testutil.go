// Package testutil type-checks in-memory packages for unit tests.
package testutil

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

// Program is a set of type-checked packages sharing one file set.
type Program struct {
	Fset  *token.FileSet
	Pkgs  map[string]*types.Package
	Files map[string][]*ast.File
	Info  *types.Info
}

// Load parses and type-checks sources, keyed by package path.
// Packages may import each other but not the standard library.
func Load(t testing.TB, sources map[string]string) *Program {
	t.Helper()

	prog := &Program{
		Fset:  token.NewFileSet(),
		Pkgs:  make(map[string]*types.Package),
		Files: make(map[string][]*ast.File),
		Info: &types.Info{
			Types:      make(map[ast.Expr]types.TypeAndValue),
			Defs:       make(map[*ast.Ident]types.Object),
			Uses:       make(map[*ast.Ident]types.Object),
			Selections: make(map[*ast.SelectorExpr]*types.Selection),
			Instances:  make(map[*ast.Ident]types.Instance),
		},
	}

	for path, src := range sources {
		file, err := parser.ParseFile(prog.Fset, path+".go", src, parser.ParseComments)
		require.NoError(t, err, "parse %s", path)
		prog.Files[path] = []*ast.File{file}
	}

	var check func(path string) (*types.Package, error)
	check = func(path string) (*types.Package, error) {
		if pkg, ok := prog.Pkgs[path]; ok {
			return pkg, nil
		}
		files, ok := prog.Files[path]
		if !ok {
			return nil, fmt.Errorf("package %q not found", path)
		}

		conf := types.Config{Importer: importerFunc(check)}
		pkg, err := conf.Check(path, prog.Fset, files, prog.Info)
		if err != nil {
			return nil, err
		}
		prog.Pkgs[path] = pkg
		return pkg, nil
	}

	for path := range sources {
		_, err := check(path)
		require.NoError(t, err, "type-check %s", path)
	}

	return prog
}

// Func returns the declaration of the package-level function name in path.
func (p *Program) Func(t testing.TB, path, name string) *ast.FuncDecl {
	t.Helper()

	for _, file := range p.Files[path] {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == name {
				return fn
			}
		}
	}

	require.FailNow(t, "function not found", "%s.%s", path, name)
	return nil
}

// Calls returns the call expressions in fn's body, in source order.
func Calls(fn *ast.FuncDecl) []*ast.CallExpr {
	var calls []*ast.CallExpr

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			calls = append(calls, call)
		}
		return true
	})

	return calls
}

// Line returns the line of pos.
func (p *Program) Line(pos token.Pos) int {
	return p.Fset.Position(pos).Line
}

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }
