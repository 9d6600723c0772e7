// Package wellknown resolves the framework types the checkers compare against.
package wellknown

import (
	"go/types"

	"github.com/mpyw/minimalactions/internal/typeutil"
)

// Set bundles the resolved framework types for one package under analysis.
// It is read-only once returned by [Resolve].
type Set struct {
	// Routing declares the Map* functions.
	Routing *types.Package

	BinderTypeProvider    *types.TypeName
	Bind                  *types.TypeName
	Result                *types.TypeName
	ActionResult          *types.TypeName
	ConvertToActionResult *types.TypeName

	binderTypeProvider    *types.Interface
	convertToActionResult *types.Interface
	actionResult          *types.Interface // nil if ActionResult is not an interface
}

// Resolve looks up every name in pkg and its transitive imports.
// It reports false if any of them is missing or a capability is not an
// interface; callers then skip the package entirely.
//
// The routing package is expected to import the results package, as the
// Map* signatures of a real framework mention it. A package that imports
// only routing and mvc therefore still resolves.
func Resolve(pkg *types.Package, names Names) (*Set, bool) {
	if pkg == nil {
		return nil, false
	}

	pkgs := reachable(pkg)

	routing, ok := pkgs[names.Routing]
	if !ok {
		return nil, false
	}

	set := &Set{Routing: routing}

	targets := []struct {
		name string
		dst  **types.TypeName
	}{
		{names.BinderTypeProvider, &set.BinderTypeProvider},
		{names.Bind, &set.Bind},
		{names.Result, &set.Result},
		{names.ActionResult, &set.ActionResult},
		{names.ConvertToActionResult, &set.ConvertToActionResult},
	}

	for _, target := range targets {
		obj, ok := lookup(pkgs, target.name)
		if !ok {
			return nil, false
		}
		*target.dst = obj
	}

	if set.binderTypeProvider, ok = typeutil.Interface(set.BinderTypeProvider); !ok {
		return nil, false
	}

	if set.convertToActionResult, ok = typeutil.Interface(set.ConvertToActionResult); !ok {
		return nil, false
	}

	set.actionResult, _ = typeutil.Interface(set.ActionResult)

	return set, true
}

// BinderTypeProviderInterface returns the binder-provider capability.
func (s *Set) BinderTypeProviderInterface() *types.Interface {
	return s.binderTypeProvider
}

// ConvertToActionResultInterface returns the convert-to-action-result capability.
func (s *Set) ConvertToActionResultInterface() *types.Interface {
	return s.convertToActionResult
}

// ActionResultInterface returns the action result interface, if ActionResult is one.
func (s *Set) ActionResultInterface() (*types.Interface, bool) {
	return s.actionResult, s.actionResult != nil
}

// lookup finds a type name among the reachable packages.
func lookup(pkgs map[string]*types.Package, qualified string) (*types.TypeName, bool) {
	name, err := ParseTypeName(qualified)
	if err != nil {
		return nil, false
	}

	pkg, ok := pkgs[name.PkgPath]
	if !ok {
		return nil, false
	}

	obj, ok := pkg.Scope().Lookup(name.Name).(*types.TypeName)
	return obj, ok
}

// reachable indexes pkg and everything it imports, directly or not, by path.
func reachable(pkg *types.Package) map[string]*types.Package {
	pkgs := make(map[string]*types.Package)

	var walk func(p *types.Package)
	walk = func(p *types.Package) {
		if _, seen := pkgs[p.Path()]; seen {
			return
		}
		pkgs[p.Path()] = p
		for _, imp := range p.Imports() {
			walk(imp)
		}
	}
	walk(pkg)

	return pkgs
}
