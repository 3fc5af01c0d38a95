package telegram

import (
	"strings"

	"botCommands/pkg/command"

	"gopkg.in/telebot.v3"
)

const CommandPrefix = "/"

// Route names the command an update should be dispatched to.
type Route struct {
	Category command.Category
	Name     string
}

// RouteUpdate maps slash commands to text commands, other message text to reply
// commands (reply keyboard buttons) and callback data to callback commands.
func RouteUpdate(upd *telebot.Update) (Route, bool) {
	if upd == nil {
		return Route{}, false
	}

	if upd.Callback != nil {
		name := callbackCommand(upd.Callback)
		if name == "" {
			return Route{}, false
		}
		return Route{Category: command.CategoryCallback, Name: name}, true
	}

	if upd.Message == nil {
		return Route{}, false
	}

	text := strings.TrimSpace(upd.Message.Text)
	if text == "" {
		return Route{}, false
	}

	if strings.HasPrefix(text, CommandPrefix) {
		name := textCommand(text)
		if name == "" {
			return Route{}, false
		}
		return Route{Category: command.CategoryText, Name: name}, true
	}

	return Route{Category: command.CategoryReply, Name: text}, true
}

// textCommand extracts "start" from "/start@my_bot payload".
func textCommand(text string) string {
	name := strings.Fields(text)[0]
	name = strings.TrimPrefix(name, CommandPrefix)

	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}

	return name
}

// callbackCommand extracts the command from inline button data which telebot
// encodes as "\funique|data".
func callbackCommand(cb *telebot.Callback) string {
	if cb.Unique != "" {
		return cb.Unique
	}

	data := strings.TrimPrefix(cb.Data, "\f")
	if i := strings.Index(data, "|"); i >= 0 {
		data = data[:i]
	}

	return strings.TrimSpace(data)
}
