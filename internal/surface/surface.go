// Package surface holds in-memory page elements for the board and renders them
// as one HTML page. Elements are not safe for concurrent use; the board
// serialises access to them.
package surface

import (
	"html/template"
	"slices"
	"strings"
)

// Container holds raw markup built by the board.
type Container struct {
	children []string
}

func (c *Container) SetContent(html string) {
	c.children = c.children[:0]
	if html != "" {
		c.children = append(c.children, html)
	}
}

func (c *Container) AppendChild(html string) {
	c.children = append(c.children, html)
}

func (c *Container) HTML() template.HTML {
	return template.HTML(strings.Join(c.children, "\n"))
}

type Option struct {
	Value string
	Label string
}

// Select is a selection control. Its leading markup comes from SetContent and
// is followed by the options added since.
type Select struct {
	content  string
	options  []Option
	selected string
}

func (s *Select) SetContent(html string) {
	s.content = html
	s.options = nil
	s.selected = ""
}

func (s *Select) AddOption(value, label string) {
	s.options = append(s.options, Option{Value: value, Label: label})
}

// Choose selects value if an option carries it.
func (s *Select) Choose(value string) bool {
	for _, o := range s.options {
		if o.Value == value {
			s.selected = value
			return true
		}
	}

	return false
}

func (s *Select) Value() string {
	return s.selected
}

func (s *Select) Content() template.HTML {
	return template.HTML(s.content)
}

func (s *Select) Options() []Option {
	return slices.Clone(s.options)
}

// Form keeps the submitted field values so a rejected signup re-renders them.
// Resetting it also clears the selection of its linked control.
type Form struct {
	fields map[string]string
	linked *Select
}

func NewForm(linked *Select) *Form {
	return &Form{linked: linked}
}

func (f *Form) Set(field, value string) {
	if f.fields == nil {
		f.fields = make(map[string]string)
	}
	f.fields[field] = value
}

func (f *Form) Value(field string) string {
	return f.fields[field]
}

func (f *Form) Reset() {
	clear(f.fields)

	if f.linked != nil {
		f.linked.selected = ""
	}
}

// Message is the feedback area. It starts hidden.
type Message struct {
	text    string
	classes []string
}

func NewMessage() *Message {
	return &Message{classes: []string{"hidden"}}
}

func (m *Message) SetText(text string) {
	m.text = text
}

func (m *Message) SetClass(class string) {
	m.classes = strings.Fields(class)
}

func (m *Message) ToggleClass(class string, on bool) {
	idx := slices.Index(m.classes, class)

	switch {
	case on && idx < 0:
		m.classes = append(m.classes, class)
	case !on && idx >= 0:
		m.classes = slices.Delete(m.classes, idx, idx+1)
	}
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) Class() string {
	return strings.Join(m.classes, " ")
}

func (m *Message) HasClass(class string) bool {
	return slices.Contains(m.classes, class)
}

func (m *Message) Visible() bool {
	return !m.HasClass("hidden")
}
