package board

// Container is the activities list area. Content is markup.
type Container interface {
	SetContent(html string)
	AppendChild(html string)
}

// Selector is the activity selection control. SetContent replaces every option
// with the given markup and clears the selection; AddOption appends one option
// whose value and label are plain text. Choose reports whether value matched an
// option.
type Selector interface {
	SetContent(html string)
	AddOption(value, label string)
	Choose(value string) bool
	Value() string
}

// Form is the signup form.
type Form interface {
	Value(field string) string
	Reset()
}

// MessageArea shows feedback text. Text is plain, never markup.
type MessageArea interface {
	SetText(text string)
	SetClass(class string)
	ToggleClass(class string, on bool)
}

// Surfaces is the set of page elements the board renders into.
type Surfaces struct {
	List    Container
	Select  Selector
	Form    Form
	Message MessageArea
}

const (
	FieldEmail    = "email"
	FieldActivity = "activity"
)
