// Package noframework does not depend on the mvc package, so the analyzer
// cannot resolve its framework types and stays silent for the package.
package noframework

import (
	"reflect"

	"github.com/gopherlabs/weave/results"
	"github.com/gopherlabs/weave/routing"
)

var app = &routing.App{}

// Bind shares its name with mvc.Bind but is a different type.
type Bind[T any] struct{ Value T }

// FromQuery looks like a binder provider but the interface cannot be resolved.
type FromQuery[T any] struct{ Value T }

func (FromQuery[T]) BinderType() reflect.Type { return nil }

// [GOOD]: Framework types unresolved
func goodUnresolved() {
	routing.MapGet(app, "/items", func(b Bind[int], q FromQuery[string]) results.Result {
		return results.OK(b.Value)
	})
}
