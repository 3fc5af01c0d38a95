package command

// Entry ties a handler to its command identifier within one category.
type Entry struct {
	Category    Category
	Name        string
	Description string
	Handler     Handler
}

// Describe returns a copy of the entry with a human readable description, shown
// by help listings and the bot menu.
func (e Entry) Describe(description string) Entry {
	e.Description = description
	return e
}

// Arity is the number of arguments the argument-list dispatch expects.
func (e Entry) Arity() int {
	if e.Handler == nil {
		return 0
	}

	return len(e.Handler.Params())
}

func Text(name string, h Handler) Entry {
	return Entry{Category: CategoryText, Name: name, Handler: h}
}

func Callback(name string, h Handler) Entry {
	return Entry{Category: CategoryCallback, Name: name, Handler: h}
}

func Reply(name string, h Handler) Entry {
	return Entry{Category: CategoryReply, Name: name, Handler: h}
}

// Provider is a handler-bearing container. Commands returns its registration
// table and is called once per Register call.
type Provider interface {
	Commands() []Entry
}

// Table is a Provider over a literal list of entries.
type Table []Entry

func (t Table) Commands() []Entry {
	return t
}
