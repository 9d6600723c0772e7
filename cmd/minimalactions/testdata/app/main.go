package main

import (
	"example.com/app/weave/mvc"
	"example.com/app/weave/results"
	"example.com/app/weave/routing"
)

func main() {
	app := &routing.App{}

	routing.MapGet(app, "/search", func(q mvc.FromQuery[string]) results.Result {
		return results.OK(q.Value)
	})

	routing.MapPost(app, "/orders", createOrder)
}

func createOrder() mvc.ActionResult {
	return mvc.Ok("created")
}
