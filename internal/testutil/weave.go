package testutil

// Weave returns a minimal copy of the weave framework packages.
// The map is fresh on every call so tests may add their own packages.
func Weave() map[string]string {
	return map[string]string{
		"github.com/gopherlabs/weave/routing": `package routing

import "github.com/gopherlabs/weave/results"

type App struct{}

type Endpoint struct{}

func (e *Endpoint) Produces(sample results.Result) *Endpoint { return e }

func MapGet(app *App, pattern string, handler any)  {}
func MapPost(app *App, pattern string, handler any) {}
func MapFallback(app *App, handler any)             {}
func Handle(app *App, pattern string, handler any)  {}

func (a *App) MapGet(pattern, name string, handler any) {}
`,
		"github.com/gopherlabs/weave/results": `package results

type Result interface{ Execute() error }

type ok struct{}

func (ok) Execute() error { return nil }

func OK() Result { return ok{} }
`,
		"github.com/gopherlabs/weave/mvc/binding": `package binding

type BinderTypeProvider interface{ BinderType() string }
`,
		"github.com/gopherlabs/weave/mvc/infrastructure": `package infrastructure

type ActionContext struct{}

type ConvertToActionResult interface{ Convert() any }
`,
		"github.com/gopherlabs/weave/mvc": `package mvc

import (
	"github.com/gopherlabs/weave/mvc/binding"
	"github.com/gopherlabs/weave/mvc/infrastructure"
)

type ActionResult interface {
	ExecuteResult(ctx *infrastructure.ActionContext) error
}

type Bind[T any] struct{ Value T }

type FromQuery[T any] struct{ Value T }

func (FromQuery[T]) BinderType() string { return "query" }

type FromBody[T any] struct{ Value T }

func (*FromBody[T]) BinderType() string { return "body" }

type OkResult struct{}

func (*OkResult) ExecuteResult(*infrastructure.ActionContext) error { return nil }

func Ok() *OkResult { return &OkResult{} }

type ActionResultOf[T any] struct{ Value T }

func (ActionResultOf[T]) Convert() any { return nil }

var (
	_ binding.BinderTypeProvider           = FromQuery[int]{}
	_ binding.BinderTypeProvider           = &FromBody[int]{}
	_ infrastructure.ConvertToActionResult = ActionResultOf[int]{}
)
`,
	}
}
