package routing

import "example.com/app/weave/results"

type App struct{}

type Endpoint struct{}

func (e *Endpoint) Produces(sample results.Result) *Endpoint { return e }

func MapGet(app *App, pattern string, handler any) *Endpoint  { return &Endpoint{} }
func MapPost(app *App, pattern string, handler any) *Endpoint { return &Endpoint{} }
