package generated

import (
	"github.com/gopherlabs/weave/mvc"
	"github.com/gopherlabs/weave/routing"
)

func RegisterManual(app *routing.App) {
	routing.MapGet(app, "/manual", func(q mvc.FromQuery[int]) mvc.ActionResult { // want `mvc.FromQuery should not be specified for a MapGet delegate parameter`
		return mvc.Ok(q.Value) // want `mvc.ActionResult instances should not be returned from a MapGet delegate parameter`
	})
}
