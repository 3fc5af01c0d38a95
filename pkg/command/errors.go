package command

import (
	"fmt"
	"reflect"
)

type DuplicateCommandError struct {
	Category Category
	Name     string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command with name %q is already registered in %s commands", e.Name, e.Category)
}

type CommandNotFoundError struct {
	Name string
	// Category is empty when the lookup was not scoped to a category.
	Category Category
}

func (e *CommandNotFoundError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("command with name %q is not registered", e.Name)
	}

	return fmt.Sprintf("command with name %q is not registered in %s commands", e.Name, e.Category)
}

type ArgumentCountError struct {
	Expected int
	Actual   int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf(
		"wrong number of arguments to invoke the command: handler accepts %d, got %d",
		e.Expected,
		e.Actual,
	)
}

type ArgumentTypeError struct {
	Position int
	Expected reflect.Type
	// Actual is nil for an untyped nil argument.
	Actual reflect.Type
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf(
		"argument %d has type %s, handler expects %s",
		e.Position,
		typeName(e.Actual),
		typeName(e.Expected),
	)
}

type InvalidEntryError struct {
	Category Category
	Name     string
	Reason   string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid %s command %q: %s", e.Category, e.Name, e.Reason)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
