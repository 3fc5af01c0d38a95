package help

import (
	"context"
	"fmt"
	"strings"

	"botCommands/pkg/command"
	"botCommands/pkg/msg"
)

const (
	helpCommand  = "help"
	startCommand = "start"
)

// Lister exposes the registered commands, usually a *command.Registry.
type Lister interface {
	Entries(category command.Category) []command.Entry
}

type Handler struct {
	commands Lister
}

func NewHandler(commands Lister) *Handler {
	return &Handler{commands: commands}
}

func (h *Handler) Commands() []command.Entry {
	return []command.Entry{
		command.Text(startCommand, command.NoArgs(h.start)).Describe("start the bot"),
		command.Text(helpCommand, command.NoArgs(h.help)).Describe("show this help"),
		command.Callback(helpCommand, command.NoArgs(h.help)),
	}
}

func (h *Handler) start(context.Context) (interface{}, error) {
	op := (&msg.Options{}).WithInlineButton("Help", helpCommand)

	return msg.NewResponse(msg.ResponseMessage{
		Message: fmt.Sprintf("The bot is started, send /%s to see what it can do", helpCommand),
		Type:    msg.Success,
		Options: op,
	}), nil
}

func (h *Handler) help(context.Context) (interface{}, error) {
	return msg.SuccessResponse(h.Text()), nil
}

// Text lists described text commands followed by the keyboard buttons the bot
// understands.
func (h *Handler) Text() string {
	var sb strings.Builder
	sb.WriteString("List of available commands\n")

	for _, e := range h.commands.Entries(command.CategoryText) {
		if e.Description == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n/%s: %s", e.Name, e.Description))
	}

	var buttons []string
	for _, e := range h.commands.Entries(command.CategoryReply) {
		if e.Description == "" {
			continue
		}
		buttons = append(buttons, fmt.Sprintf("%q: %s", e.Name, e.Description))
	}

	if len(buttons) > 0 {
		sb.WriteString("\n\nKeyboard buttons\n\n")
		sb.WriteString(strings.Join(buttons, "\n"))
	}
	sb.WriteString("\n")

	return sb.String()
}
