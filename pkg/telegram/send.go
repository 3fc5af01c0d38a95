package telegram

import (
	"fmt"

	"botCommands/pkg/command"
	"botCommands/pkg/msg"

	"gopkg.in/telebot.v3"
)

func parseMode(f msg.OutputFormat) telebot.ParseMode {
	switch f {
	case msg.OutputFormatMarkdown1:
		return telebot.ModeMarkdown
	case msg.OutputFormatMarkdown2:
		return telebot.ModeMarkdownV2
	case msg.OutputFormatHTML:
		return telebot.ModeHTML
	default:
		return telebot.ModeDefault
	}
}

// buildMarkup turns predefined responses into buttons. A message carries one
// keyboard only, so inline buttons win over reply keyboard buttons.
func buildMarkup(op *msg.Options) *telebot.ReplyMarkup {
	var inline, outline []msg.PredefinedResponse
	for _, p := range op.GetPredefinedResponses() {
		if p.Type == msg.PredefinedResponseInline {
			inline = append(inline, p)
		} else {
			outline = append(outline, p)
		}
	}

	markup := &telebot.ReplyMarkup{}

	switch {
	case len(inline) > 0:
		rows := make([]telebot.Row, len(inline))
		for i, p := range inline {
			rows[i] = markup.Row(markup.Data(p.Text, p.Data))
		}
		markup.Inline(rows...)
	case len(outline) > 0:
		rows := make([]telebot.Row, len(outline))
		for i, p := range outline {
			rows[i] = markup.Row(markup.Text(p.Text))
		}
		markup.Reply(rows...)
		markup.ResizeKeyboard = true
		markup.OneTimeKeyboard = op.IsTempPredefinedResponse()
	default:
		return nil
	}

	return markup
}

func buildMessage(rm msg.ResponseMessage) (string, *telebot.SendOptions) {
	text := rm.Message
	if rm.Type == msg.Error {
		text = `❗` + text + `❗`
	}

	return text, &telebot.SendOptions{
		ParseMode:   parseMode(rm.Options.GetFormat()),
		ReplyMarkup: buildMarkup(rm.Options),
	}
}

// resultMessages converts a handler result into messages to send. Results of
// other types are not sent.
func resultMessages(res interface{}) ([]msg.ResponseMessage, bool) {
	switch r := res.(type) {
	case *msg.Response:
		if r == nil {
			return nil, true
		}
		return r.Messages, true
	case string:
		if r == "" {
			return nil, true
		}
		return []msg.ResponseMessage{{Message: r, Type: msg.Success}}, true
	case nil:
		return nil, true
	default:
		return nil, false
	}
}

// menuCommands lists described text commands for the bot menu.
func menuCommands(r *command.Registry) []telebot.Command {
	var cmds []telebot.Command
	for _, e := range r.Entries(command.CategoryText) {
		if e.Description == "" {
			continue
		}
		cmds = append(cmds, telebot.Command{Text: e.Name, Description: e.Description})
	}

	return cmds
}

func unsupportedCommand(name string) msg.ResponseMessage {
	return msg.ResponseMessage{
		Message: fmt.Sprintf("unsupported command %q, send %shelp to see the available commands", CommandPrefix+name, CommandPrefix),
		Type:    msg.Error,
	}
}
