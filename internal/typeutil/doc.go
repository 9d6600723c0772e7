// Package typeutil provides type checking utilities for minimalactions.
//
// # Overview
//
// The helpers in this package operate on go/types values only. They never
// look at syntax, so every checker can share them regardless of whether the
// handler was written inline or referenced by name.
//
// # Named Types
//
// [Named] looks through aliases and a single pointer:
//
//	Named(mvc.Bind[int])   // mvc.Bind[int]
//	Named(*mvc.Bind[int])  // mvc.Bind[int]
//	Named([]int)           // false
//
// [SameOrigin] compares a possibly instantiated named type with a well-known
// type name by object identity:
//
//	SameOrigin(mvc.Bind[int], bindTypeName)  // true
//
// # Capabilities
//
// [Implements] checks both the value and the pointer method set, so a type
// whose methods have pointer receivers still counts:
//
//	type FromQuery struct{}
//	func (*FromQuery) BinderType() reflect.Type
//
//	Implements(FromQuery, binderTypeProvider)  // true
//
// # Display Names
//
// [DisplayName] renders a type name the way users write it in source, using
// the package name rather than the full import path:
//
//	DisplayName(bindTypeName)  // "mvc.Bind"
package typeutil
