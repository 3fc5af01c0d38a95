package telegram

import (
	"context"
	"strings"
	"testing"

	"botCommands/pkg/command"
	"botCommands/pkg/msg"

	"github.com/pkg/errors"
	"gopkg.in/telebot.v3"
)

// fakeContext implements the parts of telebot.Context the bot uses.
type fakeContext struct {
	telebot.Context

	upd       telebot.Update
	sent      []string
	responses []*telebot.CallbackResponse
}

func (c *fakeContext) Update() telebot.Update {
	return c.upd
}

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	text, _ := what.(string)
	c.sent = append(c.sent, text)
	return nil
}

func (c *fakeContext) Respond(resp ...*telebot.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

func newTestBot(t *testing.T, table command.Table) *Bot {
	t.Helper()

	r := command.NewRegistry()
	if err := r.RegisterAll(table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &Bot{conf: &Config{}, registry: r}
}

func reply(text string) command.Handler {
	return command.NoArgs(func(context.Context) (interface{}, error) {
		return msg.SuccessResponse(text), nil
	})
}

func TestHandleDispatchesByCategory(t *testing.T) {
	b := newTestBot(t, command.Table{
		command.Text("menu", reply("text")),
		command.Callback("menu", reply("callback")),
		command.Reply("menu", reply("reply")),
	})

	tests := []struct {
		name string
		upd  telebot.Update
		want string
	}{
		{name: "text", upd: telebot.Update{Message: &telebot.Message{Text: "/menu"}}, want: "text"},
		{name: "callback", upd: telebot.Update{Callback: &telebot.Callback{Data: "\fmenu"}}, want: "callback"},
		{name: "reply", upd: telebot.Update{Message: &telebot.Message{Text: "menu"}}, want: "reply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeContext{upd: tt.upd}

			if err := b.handle(context.Background(), c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(c.sent) != 1 || c.sent[0] != tt.want {
				t.Fatalf("expected %q to be sent, got %v", tt.want, c.sent)
			}
		})
	}
}

func TestHandleAnswersCallbacks(t *testing.T) {
	b := newTestBot(t, command.Table{command.Callback("like", reply("liked"))})

	c := &fakeContext{upd: telebot.Update{Callback: &telebot.Callback{Data: "\flike|42"}}}
	if err := b.handle(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.responses) != 1 {
		t.Fatalf("expected the callback to be answered once, got %d", len(c.responses))
	}
}

func TestHandleUnknownCommands(t *testing.T) {
	b := newTestBot(t, command.Table{})

	text := &fakeContext{upd: telebot.Update{Message: &telebot.Message{Text: "/ghost"}}}
	if err := b.handle(context.Background(), text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(text.sent) != 1 || !strings.Contains(text.sent[0], `unsupported command "/ghost"`) {
		t.Fatalf("expected unsupported command message, got %v", text.sent)
	}

	plain := &fakeContext{upd: telebot.Update{Message: &telebot.Message{Text: "hello there"}}}
	if err := b.handle(context.Background(), plain); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plain.sent) != 0 {
		t.Fatalf("expected plain text to be ignored, got %v", plain.sent)
	}

	button := &fakeContext{upd: telebot.Update{Callback: &telebot.Callback{Data: "\fghost"}}}
	if err := b.handle(context.Background(), button); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(button.responses) != 1 || button.responses[0].Text == "" {
		t.Fatalf("expected the callback to be answered with a notice, got %v", button.responses)
	}
}

func TestHandleCommandError(t *testing.T) {
	boom := errors.New("boom")
	b := newTestBot(t, command.Table{
		command.Text("fail", command.NoArgs(func(context.Context) (interface{}, error) {
			return nil, boom
		})),
	})

	c := &fakeContext{upd: telebot.Update{Message: &telebot.Message{Text: "/fail"}}}

	err := b.handle(context.Background(), c)
	if err != boom {
		t.Fatalf("expected handler error, got %v", err)
	}
	if len(c.sent) != 1 || c.sent[0] != "Unexpected error" {
		t.Fatalf("expected generic error message, got %v", c.sent)
	}
}

func TestHandleSignatureMismatch(t *testing.T) {
	b := newTestBot(t, command.Table{
		command.Text("greet", command.MustFunc(func(name string) string { return "hi " + name })),
	})

	c := &fakeContext{upd: telebot.Update{Message: &telebot.Message{Text: "/greet"}}}

	err := b.handle(context.Background(), c)

	var countErr *command.ArgumentCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("expected ArgumentCountError, got %v", err)
	}
}
