// Package customrouting is analyzed with a configuration naming
// github.com/acme/otherrouting as the routing package.
package customrouting

import (
	"github.com/acme/otherrouting"
	"github.com/gopherlabs/weave/mvc"
	"github.com/gopherlabs/weave/routing"
)

var app = &routing.App{}

// [BAD]: Configured routing package
func badConfigured() {
	otherrouting.MapGet(app, "/items", func(q mvc.FromQuery[string]) mvc.ActionResult { // want `mvc.FromQuery should not be specified for a MapGet delegate parameter`
		return mvc.Ok(q.Value) // want `mvc.ActionResult instances should not be returned from a MapGet delegate parameter`
	})
}

// [GOOD]: Default routing package
//
// The configuration replaces the default, it does not extend it.
func goodDefault() {
	routing.MapGet(app, "/items", func(q mvc.FromQuery[string]) mvc.ActionResult {
		return mvc.Ok(q.Value)
	})
}
