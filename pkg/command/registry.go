package command

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Option func(r *Registry)

// WithFoldCase makes identifiers case insensitive on registration and lookup.
func WithFoldCase() Option {
	return func(r *Registry) {
		r.foldCase = true
	}
}

// WithPriority replaces the order category-agnostic lookups search in.
func WithPriority(categories ...Category) Option {
	return func(r *Registry) {
		r.priority = append([]Category{}, categories...)
	}
}

// Registry maps command identifiers to handlers per category. Entries are never
// replaced or removed once registered.
type Registry struct {
	mu       sync.RWMutex
	commands map[Category]map[string]Entry
	priority []Category
	foldCase bool
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		commands: map[Category]map[string]Entry{},
		priority: append([]Category{}, DefaultPriority...),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Registry) key(name string) string {
	if r.foldCase {
		return strings.ToLower(name)
	}

	return name
}

// Register adds every entry of the given category from the provider's table.
// It stops at the first failing entry; entries added before it stay registered.
func (r *Registry) Register(category Category, p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range p.Commands() {
		if e.Category != category {
			continue
		}

		err := r.add(e)
		if err != nil {
			return err
		}
	}

	return nil
}

// RegisterAll adds the provider's entries of every category in table order.
func (r *Registry) RegisterAll(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range p.Commands() {
		err := r.add(e)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) add(e Entry) error {
	switch {
	case e.Category == "":
		return errors.WithStack(&InvalidEntryError{Category: e.Category, Name: e.Name, Reason: "empty category"})
	case e.Name == "":
		return errors.WithStack(&InvalidEntryError{Category: e.Category, Name: e.Name, Reason: "empty command name"})
	case isNilHandler(e.Handler):
		return errors.WithStack(&InvalidEntryError{Category: e.Category, Name: e.Name, Reason: "no handler"})
	}

	commands, ok := r.commands[e.Category]
	if !ok {
		commands = map[string]Entry{}
		r.commands[e.Category] = commands
		if !r.inPriority(e.Category) {
			r.priority = append(r.priority, e.Category)
		}
	}

	key := r.key(e.Name)
	if _, exists := commands[key]; exists {
		return errors.WithStack(&DuplicateCommandError{Category: e.Category, Name: e.Name})
	}

	commands[key] = e

	logrus.Debugf("registered %s command %q accepting %d arguments", e.Category, e.Name, e.Arity())

	return nil
}

func (r *Registry) inPriority(category Category) bool {
	for _, c := range r.priority {
		if c == category {
			return true
		}
	}

	return false
}

// ResolveIn returns the handler registered under name in the category.
func (r *Registry) ResolveIn(category Category, name string) (Handler, error) {
	e, err := r.entryIn(category, name)
	if err != nil {
		return nil, err
	}

	return e.Handler, nil
}

// Resolve searches the categories in priority order, text then callback then
// reply by default, and returns the first match. A name registered in more than
// one category therefore always resolves to the earliest of them here; use
// ResolveIn to reach the others.
func (r *Registry) Resolve(name string) (Handler, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}

	return e.Handler, nil
}

func (r *Registry) entryIn(category Category, name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.commands[category][r.key(name)]
	if !ok {
		return Entry{}, errors.WithStack(&CommandNotFoundError{Name: name, Category: category})
	}

	return e, nil
}

func (r *Registry) entry(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := r.key(name)
	for _, category := range r.priority {
		if e, ok := r.commands[category][key]; ok {
			return e, nil
		}
	}

	return Entry{}, errors.WithStack(&CommandNotFoundError{Name: name})
}

// Categories lists the categories holding at least one command, in lookup order.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]Category, 0, len(r.commands))
	for _, c := range r.priority {
		if len(r.commands[c]) > 0 {
			categories = append(categories, c)
		}
	}

	return categories
}

// Entries lists the commands of a category sorted by name.
func (r *Registry) Entries(category Category) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.commands[category]))
	for _, e := range r.commands[category] {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

func (r *Registry) logger(ctx context.Context, e Entry) *logrus.Entry {
	return logrus.WithContext(ctx).WithFields(logrus.Fields{
		"command":  e.Name,
		"category": e.Category,
	})
}
