package command

// Category is the logical channel a command arrives through. Each category owns
// its own identifier space.
type Category string

const (
	CategoryText     Category = "text"
	CategoryCallback Category = "callback"
	CategoryReply    Category = "reply"
)

// DefaultPriority is the order Resolve searches categories in.
var DefaultPriority = []Category{CategoryText, CategoryCallback, CategoryReply}

func (c Category) String() string {
	return string(c)
}
