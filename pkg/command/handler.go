package command

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"gopkg.in/telebot.v3"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	botType     = reflect.TypeOf((*telebot.Bot)(nil))
	updateType  = reflect.TypeOf((*telebot.Update)(nil))
)

// isNilHandler also catches typed nils such as NoArgs(nil), which compare
// unequal to a nil Handler.
func isNilHandler(h Handler) bool {
	if h == nil {
		return true
	}

	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}

	return false
}

// Handler is an invocable command with a fixed parameter list. Params must not
// be modified by callers. Call receives arguments already checked against Params.
type Handler interface {
	Params() []reflect.Type
	Call(ctx context.Context, args []interface{}) (interface{}, error)
}

// updateCaller is implemented by handlers that take the (client, update) pair
// directly, so dispatching an update to them needs no argument checks.
type updateCaller interface {
	CallUpdate(ctx context.Context, b *telebot.Bot, upd *telebot.Update) (interface{}, error)
}

// NoArgs is a handler that takes no arguments. Dispatched with an update it
// ignores the bot and the update.
type NoArgs func(ctx context.Context) (interface{}, error)

func (f NoArgs) Params() []reflect.Type {
	return nil
}

func (f NoArgs) Call(ctx context.Context, _ []interface{}) (interface{}, error) {
	return f(ctx)
}

func (f NoArgs) CallUpdate(ctx context.Context, _ *telebot.Bot, _ *telebot.Update) (interface{}, error) {
	return f(ctx)
}

// UpdateFunc is a handler for the bot client and the update it received.
type UpdateFunc func(ctx context.Context, b *telebot.Bot, upd *telebot.Update) (interface{}, error)

func (f UpdateFunc) Params() []reflect.Type {
	return []reflect.Type{botType, updateType}
}

func (f UpdateFunc) Call(ctx context.Context, args []interface{}) (interface{}, error) {
	b, _ := args[0].(*telebot.Bot)
	upd, _ := args[1].(*telebot.Update)

	return f(ctx, b, upd)
}

func (f UpdateFunc) CallUpdate(ctx context.Context, b *telebot.Bot, upd *telebot.Update) (interface{}, error) {
	return f(ctx, b, upd)
}

type funcHandler struct {
	fn        reflect.Value
	params    []reflect.Type
	withCtx   bool
	resultIdx int
	errIdx    int
}

// Func wraps an arbitrary function as a Handler. The parameter list is read once
// here and checked on every dispatch. A leading context.Context parameter receives
// the dispatch context and is not part of Params. Supported results are none,
// error, a single value, or a value followed by an error.
//
// Method values bind the receiver, so Func(h.Greet) invokes Greet on h.
func Func(fn interface{}) (Handler, error) {
	switch f := fn.(type) {
	case Handler:
		if isNilHandler(f) {
			return nil, errors.Errorf("command handler %s is nil", typeName(reflect.TypeOf(f)))
		}
		return f, nil
	case func(context.Context) (interface{}, error):
		return NoArgs(f), nil
	case func(context.Context, *telebot.Bot, *telebot.Update) (interface{}, error):
		return UpdateFunc(f), nil
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, errors.Errorf("command handler must be a non nil function, got %s", typeName(reflect.TypeOf(fn)))
	}

	t := v.Type()
	if t.IsVariadic() {
		return nil, errors.Errorf("variadic command handler %s is not supported", t)
	}

	h := &funcHandler{fn: v, resultIdx: -1, errIdx: -1}

	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		if i == 0 && in == contextType {
			h.withCtx = true
			continue
		}
		h.params = append(h.params, in)
	}

	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errorType {
			h.errIdx = 0
		} else {
			h.resultIdx = 0
		}
	case 2:
		if t.Out(1) != errorType {
			return nil, errors.Errorf("second result of command handler %s must be an error", t)
		}
		h.resultIdx = 0
		h.errIdx = 1
	default:
		return nil, errors.Errorf("command handler %s returns too many values", t)
	}

	return h, nil
}

// MustFunc is like Func but panics on an unsupported function.
func MustFunc(fn interface{}) Handler {
	h, err := Func(fn)
	if err != nil {
		panic(err)
	}

	return h
}

func (h *funcHandler) Params() []reflect.Type {
	return h.params
}

func (h *funcHandler) Call(ctx context.Context, args []interface{}) (interface{}, error) {
	in := make([]reflect.Value, 0, len(args)+1)
	if h.withCtx {
		if ctx == nil {
			in = append(in, reflect.Zero(contextType))
		} else {
			in = append(in, reflect.ValueOf(ctx))
		}
	}

	for i, arg := range args {
		if arg == nil {
			in = append(in, reflect.Zero(h.params[i]))
			continue
		}
		in = append(in, reflect.ValueOf(arg))
	}

	out := h.fn.Call(in)

	var (
		res interface{}
		err error
	)
	if h.resultIdx >= 0 {
		res = out[h.resultIdx].Interface()
	}
	if h.errIdx >= 0 && !out[h.errIdx].IsNil() {
		err = out[h.errIdx].Interface().(error)
	}

	return res, err
}

// checkArgs validates arity first, then each position in order.
func checkArgs(params []reflect.Type, args []interface{}) error {
	if len(params) != len(args) {
		return &ArgumentCountError{Expected: len(params), Actual: len(args)}
	}

	for i, p := range params {
		if !accepts(p, args[i]) {
			return &ArgumentTypeError{Position: i, Expected: p, Actual: reflect.TypeOf(args[i])}
		}
	}

	return nil
}

// accepts requires an exact type match for concrete parameters. Interface
// parameters take any implementation, nilable parameters take untyped nil.
func accepts(param reflect.Type, arg interface{}) bool {
	if arg == nil {
		switch param.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		default:
			return false
		}
	}

	actual := reflect.TypeOf(arg)
	if param.Kind() == reflect.Interface {
		return actual.Implements(param)
	}

	return actual == param
}
