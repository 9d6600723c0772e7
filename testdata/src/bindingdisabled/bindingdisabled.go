// Package bindingdisabled is analyzed with -binding=false.
package bindingdisabled

import (
	"github.com/gopherlabs/weave/mvc"
	"github.com/gopherlabs/weave/routing"
)

var app = &routing.App{}

// [BAD]: Only the action result is reported
func badActionResultOnly() {
	routing.MapGet(app, "/items", func(q mvc.FromQuery[string]) mvc.ActionResult {
		return mvc.Ok(q.Value) // want `mvc.ActionResult instances should not be returned from a MapGet delegate parameter`
	})
}

// [BAD]: Binding ignores are unused while the checker is off
func badIgnoreDisabled() {
	//minimalactions:ignore binding // want `unused minimalactions:ignore directive for checker\(s\): binding`
	routing.MapGet(app, "/other", func(q mvc.FromQuery[string]) any {
		return q.Value
	})
}
