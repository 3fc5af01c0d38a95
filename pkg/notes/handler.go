package notes

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"botCommands/pkg/command"
	"botCommands/pkg/msg"
	"botCommands/pkg/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	notesValidity = time.Hour * 24 * 30
	maxNotes      = 50

	addCommand   = "note"
	listCommand  = "notes"
	clearCommand = "notes_clear"
	clearButton  = "Clear notes"
)

type Note struct {
	Text      string
	CreatedAt time.Time
}

// Handler keeps short text notes per chat.
type Handler struct {
	db  storage.Client
	now func() time.Time
}

func NewHandler(db storage.Client) *Handler {
	return &Handler{
		db:  db,
		now: time.Now,
	}
}

func (h *Handler) Commands() []command.Entry {
	return []command.Entry{
		command.Text(addCommand, command.UpdateFunc(h.add)).Describe("save a note, e.g. /note buy milk"),
		command.Text(listCommand, command.UpdateFunc(h.list)).Describe("list saved notes"),
		command.Callback(clearCommand, command.UpdateFunc(h.clear)),
		command.Reply(clearButton, command.UpdateFunc(h.clear)).Describe("remove all notes"),
	}
}

func notesKey(chatID int64) string {
	return storage.GenerateCacheKey("v1", "telegram", "notes", strconv.FormatInt(chatID, 10))
}

func chatID(upd *telebot.Update) (int64, error) {
	if upd == nil {
		return 0, errors.New("no update provided")
	}

	m := upd.Message
	if m == nil && upd.Callback != nil {
		m = upd.Callback.Message
	}

	if m == nil || m.Chat == nil {
		return 0, errors.Errorf("update %d has no chat", upd.ID)
	}

	return m.Chat.ID, nil
}

func (h *Handler) load(ctx context.Context, id int64) ([]Note, error) {
	var notes []Note
	_, err := h.db.Load(ctx, notesKey(id), &notes)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *Handler) add(ctx context.Context, _ *telebot.Bot, upd *telebot.Update) (interface{}, error) {
	log := logrus.WithContext(ctx)

	id, err := chatID(upd)
	if err != nil {
		return nil, err
	}

	if upd.Message == nil {
		return nil, errors.Errorf("update %d carries no message to take the note from", upd.ID)
	}

	text := strings.TrimSpace(upd.Message.Payload)
	if text == "" {
		return msg.ErrorResponse(fmt.Sprintf("empty note provided, use /%s #text#", addCommand)), nil
	}

	notes, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(notes) >= maxNotes {
		return msg.ErrorResponse(fmt.Sprintf("you cannot keep more than %d notes, clear them first", maxNotes)), nil
	}

	notes = append(notes, Note{Text: text, CreatedAt: h.now().UTC()})

	err = h.db.Save(ctx, notesKey(id), notes, notesValidity)
	if err != nil {
		return nil, err
	}

	log.Debugf("saved note %d for chat %d", len(notes), id)

	op := (&msg.Options{}).
		WithReplyButton(clearButton).
		WithIsTempPredefinedResponse()

	return msg.NewResponse(msg.ResponseMessage{
		Message: fmt.Sprintf("Remembered note %q", text),
		Type:    msg.Success,
		Options: op,
	}), nil
}

func (h *Handler) list(ctx context.Context, _ *telebot.Bot, upd *telebot.Update) (interface{}, error) {
	id, err := chatID(upd)
	if err != nil {
		return nil, err
	}

	notes, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(notes) == 0 {
		return msg.SuccessResponse(fmt.Sprintf("You have no notes, add one with /%s #text#", addCommand)), nil
	}

	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = fmt.Sprintf("%d. %s", i+1, n.Text)
	}

	op := (&msg.Options{}).WithInlineButton("Clear", clearCommand)

	return msg.NewResponse(msg.ResponseMessage{
		Message: strings.Join(lines, "\n"),
		Type:    msg.Success,
		Options: op,
	}), nil
}

func (h *Handler) clear(ctx context.Context, _ *telebot.Bot, upd *telebot.Update) (interface{}, error) {
	id, err := chatID(upd)
	if err != nil {
		return nil, err
	}

	err = h.db.Delete(ctx, notesKey(id))
	if err != nil {
		return nil, err
	}

	logrus.WithContext(ctx).Debugf("cleared notes of chat %d", id)

	return msg.SuccessResponse("Successfully cleared your notes"), nil
}
