package surface

import (
	"activityBoard/internal/board"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/page.html"))

// Page is the full set of elements the board renders into.
type Page struct {
	List    *Container
	Select  *Select
	Form    *Form
	Message *Message
}

func NewPage() *Page {
	sel := &Select{}

	return &Page{
		List:    &Container{},
		Select:  sel,
		Form:    NewForm(sel),
		Message: NewMessage(),
	}
}

func (p *Page) Surfaces() board.Surfaces {
	return board.Surfaces{
		List:    p.List,
		Select:  p.Select,
		Form:    p.Form,
		Message: p.Message,
	}
}

// Fill stores what the user typed and picked in the signup form.
func (p *Page) Fill(email, activityName string) {
	p.Form.Set(board.FieldEmail, email)
	p.Form.Set(board.FieldActivity, activityName)
	p.Select.Choose(activityName)
}

// VisitCookie names the cookie that carries a Visit across the redirect after a
// signup post.
const VisitCookie = "board_visit"

// Visit is what one visitor typed into the form and the feedback they got for
// it. The catalogue is shared between visitors; a Visit is not.
type Visit struct {
	Email    string `json:"email,omitempty"`
	Activity string `json:"activity,omitempty"`
	Message  string `json:"message,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// MessageClass is the class list of the message area for this visit.
func (v Visit) MessageClass() string {
	if v.Message == "" {
		return board.ClassHidden
	}

	return v.Kind
}

type pageView struct {
	*Page
	Visit       Visit
	HideAfterMS int64
}

// Render writes the page as v sees it: the shared list and options, with v's
// form values and feedback. Callers hold the board's lock while rendering.
func (p *Page) Render(w io.Writer, v Visit) error {
	return pageTmpl.Execute(w, pageView{
		Page:        p,
		Visit:       v,
		HideAfterMS: board.HideAfter.Milliseconds(),
	})
}
