package telegram

import (
	"context"
	"testing"

	"botCommands/pkg/command"
	"botCommands/pkg/msg"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/telebot.v3"
)

func TestBuildMessage(t *testing.T) {
	text, opts := buildMessage(msg.ResponseMessage{
		Message: "boom",
		Type:    msg.Error,
		Options: (&msg.Options{}).WithFormat(msg.OutputFormatMarkdown2),
	})

	if text != "❗boom❗" {
		t.Fatalf("unexpected text %q", text)
	}
	if opts.ParseMode != telebot.ModeMarkdownV2 {
		t.Fatalf("unexpected parse mode %q", opts.ParseMode)
	}
	if opts.ReplyMarkup != nil {
		t.Fatalf("expected no markup, got %+v", opts.ReplyMarkup)
	}
}

func TestBuildMarkupInlineWins(t *testing.T) {
	op := (&msg.Options{}).
		WithInlineButton("Clear", "notes_clear").
		WithReplyButton("Clear notes")

	markup := buildMarkup(op)
	if markup == nil || len(markup.InlineKeyboard) != 1 {
		t.Fatalf("expected one inline row, got %+v", markup)
	}

	btn := markup.InlineKeyboard[0][0]
	if btn.Text != "Clear" || btn.Unique != "notes_clear" {
		t.Fatalf("unexpected inline button %+v", btn)
	}
	if len(markup.ReplyKeyboard) != 0 {
		t.Fatalf("expected no reply keyboard, got %+v", markup.ReplyKeyboard)
	}
}

func TestBuildMarkupReplyKeyboard(t *testing.T) {
	op := (&msg.Options{}).
		WithReplyButton("Clear notes").
		WithReplyButton("Cancel").
		WithIsTempPredefinedResponse()

	markup := buildMarkup(op)
	if markup == nil {
		t.Fatal("expected markup")
	}

	var got []string
	for _, row := range markup.ReplyKeyboard {
		for _, btn := range row {
			got = append(got, btn.Text)
		}
	}
	if diff := cmp.Diff([]string{"Clear notes", "Cancel"}, got); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}
	if !markup.OneTimeKeyboard || !markup.ResizeKeyboard {
		t.Fatalf("expected a resized one time keyboard, got %+v", markup)
	}
}

func TestResultMessages(t *testing.T) {
	tests := []struct {
		name   string
		res    interface{}
		want   []msg.ResponseMessage
		wantOK bool
	}{
		{name: "nil", res: nil, wantOK: true},
		{name: "nil response", res: (*msg.Response)(nil), wantOK: true},
		{name: "empty string", res: "", wantOK: true},
		{
			name:   "string",
			res:    "done",
			want:   []msg.ResponseMessage{{Message: "done", Type: msg.Success}},
			wantOK: true,
		},
		{
			name:   "response",
			res:    msg.ErrorResponse("oops"),
			want:   []msg.ResponseMessage{{Message: "oops", Type: msg.Error}},
			wantOK: true,
		},
		{name: "other type", res: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resultMessages(tt.res)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMenuCommands(t *testing.T) {
	noop := command.NoArgs(func(context.Context) (interface{}, error) { return nil, nil })

	r := command.NewRegistry()
	err := r.RegisterAll(command.Table{
		command.Text("start", noop).Describe("start the bot"),
		command.Text("debug", noop),
		command.Callback("like", noop).Describe("like"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []telebot.Command{{Text: "start", Description: "start the bot"}}
	if diff := cmp.Diff(want, menuCommands(r)); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
}
