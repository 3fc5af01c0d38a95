package help

import (
	"context"
	"testing"

	"botCommands/pkg/command"
	"botCommands/pkg/msg"

	"github.com/google/go-cmp/cmp"
)

func buildRegistry(t *testing.T) *command.Registry {
	t.Helper()

	noop := command.NoArgs(func(context.Context) (interface{}, error) { return nil, nil })

	r := command.NewRegistry()
	err := r.RegisterAll(command.Table{
		command.Text("note", noop).Describe("save a note"),
		command.Text("hidden", noop),
		command.Reply("Clear notes", noop).Describe("remove all notes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.RegisterAll(NewHandler(r)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return r
}

func TestHelpListsDescribedCommands(t *testing.T) {
	r := buildRegistry(t)

	res, err := r.DispatchIn(context.Background(), command.CategoryText, "help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := msg.SuccessResponse(`List of available commands

/help: show this help
/note: save a note
/start: start the bot

Keyboard buttons

"Clear notes": remove all notes
`)
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpCallbackMatchesTextCommand(t *testing.T) {
	r := buildRegistry(t)

	fromText, err := r.DispatchUpdateIn(context.Background(), command.CategoryText, "help", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromButton, err := r.DispatchUpdateIn(context.Background(), command.CategoryCallback, "help", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(fromText, fromButton); diff != "" {
		t.Fatalf("callback help differs (-text +callback):\n%s", diff)
	}
}

func TestStartOffersHelpButton(t *testing.T) {
	r := buildRegistry(t)

	res, err := r.Dispatch(context.Background(), "start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, ok := res.(*msg.Response)
	if !ok || len(resp.Messages) != 1 {
		t.Fatalf("unexpected response %#v", res)
	}

	want := []msg.PredefinedResponse{{Text: "Help", Data: "help", Type: msg.PredefinedResponseInline}}
	if diff := cmp.Diff(want, resp.Messages[0].Options.GetPredefinedResponses()); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}
}
