package submitSignup

import (
	"activityBoard/internal/board"
	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/surface"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Response struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FormSubmitter
type FormSubmitter interface {
	SubmitForm(ctx context.Context, fill func()) (board.Feedback, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FormFiller
type FormFiller interface {
	Fill(email, activityName string)
}

// New handles the signup form post. Browsers are redirected back to the board
// with their own form values and feedback in a flash cookie; clients asking for
// JSON get the feedback message directly.
func New(log *slog.Logger, submitter FormSubmitter, form FormFiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.board.submitSignup.New"

		log := log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Error(w, "failed to parse form", http.StatusBadRequest)
			return
		}

		email := r.PostForm.Get("email")
		activityName := r.PostForm.Get("activity")

		fb, err := submitter.SubmitForm(r.Context(), func() {
			form.Fill(email, activityName)
		})
		if err != nil {
			log.Info("signup not completed", sl.Err(err))
		}

		if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
			if fb.Kind == board.KindError {
				render.Status(r, http.StatusBadRequest)
			}
			render.JSON(w, r, Response{Message: fb.Text, Kind: string(fb.Kind)})
			return
		}

		visit := surface.Visit{Message: fb.Text, Kind: string(fb.Kind)}

		// An accepted signup clears the form; anything else keeps what was typed.
		if fb.Kind != board.KindSuccess {
			visit.Email = email
			visit.Activity = activityName
		}

		if err = flash.Set(w, surface.VisitCookie, visit); err != nil {
			log.Error("failed to store visit", sl.Err(err))
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
