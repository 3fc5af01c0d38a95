package command

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/telebot.v3"
)

// Dispatch resolves name in priority order, checks args against the handler's
// parameters and invokes it. The handler's result and error are returned as is.
func (r *Registry) Dispatch(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}

	return r.invoke(ctx, e, args)
}

// DispatchIn is Dispatch limited to one category.
func (r *Registry) DispatchIn(ctx context.Context, category Category, name string, args ...interface{}) (interface{}, error) {
	e, err := r.entryIn(category, name)
	if err != nil {
		return nil, err
	}

	return r.invoke(ctx, e, args)
}

// DispatchUpdate invokes the handler registered under name with the bot and the
// update. UpdateFunc and NoArgs handlers are called directly; any other handler
// goes through the same checks as Dispatch.
func (r *Registry) DispatchUpdate(ctx context.Context, name string, b *telebot.Bot, upd *telebot.Update) (interface{}, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}

	return r.invokeUpdate(ctx, e, b, upd)
}

// DispatchUpdateIn is DispatchUpdate limited to one category.
func (r *Registry) DispatchUpdateIn(
	ctx context.Context,
	category Category,
	name string,
	b *telebot.Bot,
	upd *telebot.Update,
) (interface{}, error) {
	e, err := r.entryIn(category, name)
	if err != nil {
		return nil, err
	}

	return r.invokeUpdate(ctx, e, b, upd)
}

func (r *Registry) invoke(ctx context.Context, e Entry, args []interface{}) (interface{}, error) {
	log := r.logger(ctx, e)

	err := checkArgs(e.Handler.Params(), args)
	if err != nil {
		log.Debugf("rejected command arguments: %v", err)
		return nil, errors.WithStack(err)
	}

	log.Debugf("will invoke command with %d arguments", len(args))

	return e.Handler.Call(ctx, args)
}

func (r *Registry) invokeUpdate(ctx context.Context, e Entry, b *telebot.Bot, upd *telebot.Update) (interface{}, error) {
	uc, ok := e.Handler.(updateCaller)
	if !ok {
		return r.invoke(ctx, e, []interface{}{b, upd})
	}

	r.logger(ctx, e).Debug("will invoke update command")

	return uc.CallUpdate(ctx, b, upd)
}
