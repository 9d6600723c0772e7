// Package bindingmeta contains test fixtures for the binding metadata checker.
// Handlers here are written inline; see methodref for referenced handlers.
package bindingmeta

import (
	"github.com/gopherlabs/weave/mvc"
	"github.com/gopherlabs/weave/results"
	"github.com/gopherlabs/weave/routing"
)

var app = &routing.App{}

type User struct{ Name string }

type Filter struct{ Term string }

type Store struct{}

// ===== SHOULD REPORT =====

// [BAD]: Bind metadata
//
// mvc.Bind is disallowed even though it selects no binder.
func badBind() {
	routing.MapPost(app, "/users", func(u mvc.Bind[User]) results.Result { // want `mvc.Bind should not be specified for a MapPost delegate parameter`
		return results.Created(u.Value)
	})
}

// [BAD]: Binder provider
//
// mvc.FromQuery implements binding.BinderTypeProvider.
func badFromQuery() {
	routing.MapGet(app, "/search", func(q mvc.FromQuery[string]) results.Result { // want `mvc.FromQuery should not be specified for a MapGet delegate parameter`
		return results.OK(q.Value)
	})
}

// [BAD]: Binder provider behind a pointer
//
// mvc.FromRoute implements the provider with a pointer receiver.
func badFromRoutePointer() {
	routing.MapDelete(app, "/users/{id}", func(id *mvc.FromRoute[int]) results.Result { // want `mvc.FromRoute should not be specified for a MapDelete delegate parameter`
		return results.OK(id.Value)
	})
}

// [BAD]: Unnamed parameter
func badUnnamedParam() {
	routing.MapPost(app, "/ping", func(mvc.Bind[User]) results.Result { // want `mvc.Bind should not be specified for a MapPost delegate parameter`
		return results.OK(nil)
	})
}

// [BAD]: Metadata as a type argument
//
// Tagged itself is not metadata, its second type argument is.
func badTypeArgument() {
	routing.MapGet(app, "/page", func(page mvc.Tagged[int, mvc.ModelBinder]) results.Result { // want `mvc.ModelBinder should not be specified for a MapGet delegate parameter`
		return results.OK(page.Value)
	})
}

// [BAD]: Two kinds of metadata on one parameter
//
// One report per offending type.
func badTwoMetadataTypes() {
	routing.MapGet(app, "/both", func(v mvc.Tagged[mvc.Bind[int], mvc.ModelBinder]) results.Result { // want `mvc.Bind should not be specified` `mvc.ModelBinder should not be specified`
		return results.OK(v.Value)
	})
}

// [BAD]: Several parameters
//
// One report per offending parameter, at the parameter.
func badMultipleParams() {
	routing.MapGet(app, "/items", func(
		q mvc.FromQuery[string], // want `mvc.FromQuery should not be specified for a MapGet delegate parameter`
		svc mvc.FromServices[Store],
		f mvc.Bind[Filter], // want `mvc.Bind should not be specified for a MapGet delegate parameter`
	) results.Result {
		return results.OK(q.Value)
	})
}

// [BAD]: Variadic parameter
//
// The element type carries the metadata.
func badVariadic() {
	routing.MapGet(app, "/tags", func(qs ...mvc.FromQuery[string]) results.Result { // want `mvc.FromQuery should not be specified for a MapGet delegate parameter`
		return results.OK(len(qs))
	})
}

// [BAD]: Generic mapping function
func badGenericMap() {
	routing.MapTyped(app, "/typed", func(q mvc.FromQuery[int]) results.Result { // want `mvc.FromQuery should not be specified for a MapTyped delegate parameter`
		return results.OK(q.Value)
	})
}

// [BAD]: Handler converted before passing
func badConverted() {
	routing.MapGet(app, "/conv", any(func(q mvc.FromQuery[int]) results.Result { // want `mvc.FromQuery should not be specified for a MapGet delegate parameter`
		return results.OK(q.Value)
	}))
}

// [BAD]: Handler wrapped in options
func badInOptions() {
	routing.MapWith(app, "/opts", routing.Options{
		Handler: func(q mvc.FromQuery[int]) results.Result { // want `mvc.FromQuery should not be specified for a MapWith delegate parameter`
			return results.OK(q.Value)
		},
	})
}

// [BAD]: Handler passed through middleware
//
// The first function literal in the argument is the handler.
func badThroughMiddleware() {
	routing.MapGet(app, "/logged", logged(func(u mvc.Bind[User]) results.Result { // want `mvc.Bind should not be specified for a MapGet delegate parameter`
		return results.OK(u.Value)
	}))
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Plain parameters
func goodPlainParams() {
	routing.MapGet(app, "/users/{id}", func(id int, name string, u *User) results.Result {
		return results.OK(id)
	})
}

// [GOOD]: Service metadata
//
// FromServices does not select a binder.
func goodFromServices() {
	routing.MapGet(app, "/store", func(s mvc.FromServices[Store]) results.Result {
		return results.OK(s.Value)
	})
}

// [GOOD]: No parameters
func goodNoParams() {
	routing.MapGet(app, "/", func() results.Result {
		return results.OK("hello")
	})
}

// [GOOD]: Handler built by a call
//
// A handler returned from a call is not a delegate creation.
func goodHandlerFromCall() {
	routing.MapGet(app, "/made", makeHandler())
}

// [GOOD]: Nil handler
func goodNilHandler() {
	routing.MapGet(app, "/nil", nil)
}

func logged(h any) any { return h }

func makeHandler() any {
	return func(q mvc.FromQuery[int]) results.Result {
		return results.OK(q.Value)
	}
}
