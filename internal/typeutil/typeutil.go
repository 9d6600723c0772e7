package typeutil

import (
	"go/types"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// Named returns the named type behind t, looking through a single pointer.
// Aliases are resolved first.
func Named(t types.Type) (*types.Named, bool) {
	named, ok := types.Unalias(UnwrapPointer(types.Unalias(t))).(*types.Named)
	return named, ok
}

// SameOrigin reports whether named is obj's type or an instantiation of it.
func SameOrigin(named *types.Named, obj *types.TypeName) bool {
	return named.Origin().Obj() == obj
}

// Interface returns the interface underlying obj's type.
func Interface(obj *types.TypeName) (*types.Interface, bool) {
	iface, ok := obj.Type().Underlying().(*types.Interface)
	return iface, ok
}

// Implements reports whether t or *t implements iface.
// Interface types are checked only as themselves.
func Implements(t types.Type, iface *types.Interface) bool {
	if types.Implements(t, iface) {
		return true
	}

	if types.IsInterface(t) {
		return false
	}

	if _, ok := t.(*types.Pointer); ok {
		return false
	}

	return types.Implements(types.NewPointer(t), iface)
}

// DisplayName renders obj as "pkgname.TypeName".
func DisplayName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Name() + "." + obj.Name()
}
