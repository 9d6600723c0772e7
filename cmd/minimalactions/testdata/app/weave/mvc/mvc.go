package mvc

import (
	"reflect"

	"example.com/app/weave/mvc/binding"
	"example.com/app/weave/mvc/infrastructure"
)

type ActionResult interface {
	ExecuteResult(ctx *infrastructure.ActionContext) error
}

type okObjectResult struct{ value any }

func (okObjectResult) ExecuteResult(*infrastructure.ActionContext) error { return nil }

func Ok(v any) ActionResult { return okObjectResult{value: v} }

type Bind[T any] struct{ Value T }

type FromQuery[T any] struct{ Value T }

func (FromQuery[T]) BinderType() reflect.Type { return nil }

var _ binding.BinderTypeProvider = FromQuery[int]{}
