package telegram

import (
	"testing"

	"botCommands/pkg/command"

	"gopkg.in/telebot.v3"
)

func TestRouteUpdate(t *testing.T) {
	tests := []struct {
		name   string
		upd    *telebot.Update
		want   Route
		wantOK bool
	}{
		{
			name:   "slash command",
			upd:    &telebot.Update{Message: &telebot.Message{Text: "/note buy milk"}},
			want:   Route{Category: command.CategoryText, Name: "note"},
			wantOK: true,
		},
		{
			name:   "slash command addressed to the bot",
			upd:    &telebot.Update{Message: &telebot.Message{Text: "/start@notes_bot"}},
			want:   Route{Category: command.CategoryText, Name: "start"},
			wantOK: true,
		},
		{
			name:   "keyboard button",
			upd:    &telebot.Update{Message: &telebot.Message{Text: " Clear notes "}},
			want:   Route{Category: command.CategoryReply, Name: "Clear notes"},
			wantOK: true,
		},
		{
			name:   "inline button with unique",
			upd:    &telebot.Update{Callback: &telebot.Callback{Data: "\fnotes_clear"}},
			want:   Route{Category: command.CategoryCallback, Name: "notes_clear"},
			wantOK: true,
		},
		{
			name:   "inline button with payload",
			upd:    &telebot.Update{Callback: &telebot.Callback{Data: "\flike|42"}},
			want:   Route{Category: command.CategoryCallback, Name: "like"},
			wantOK: true,
		},
		{
			name:   "callback already split by telebot",
			upd:    &telebot.Update{Callback: &telebot.Callback{Unique: "like", Data: "42"}},
			want:   Route{Category: command.CategoryCallback, Name: "like"},
			wantOK: true,
		},
		{
			name:   "plain callback data",
			upd:    &telebot.Update{Callback: &telebot.Callback{Data: "help"}},
			want:   Route{Category: command.CategoryCallback, Name: "help"},
			wantOK: true,
		},
		{name: "empty callback", upd: &telebot.Update{Callback: &telebot.Callback{}}},
		{name: "bare prefix", upd: &telebot.Update{Message: &telebot.Message{Text: "/"}}},
		{name: "message without text", upd: &telebot.Update{Message: &telebot.Message{}}},
		{name: "empty update", upd: &telebot.Update{}},
		{name: "nil update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RouteUpdate(tt.upd)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
