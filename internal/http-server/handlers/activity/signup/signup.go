package signup

import (
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/storage"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"net/url"
)

type Request struct {
	Email string `validate:"required,email"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantSigner
type ParticipantSigner interface {
	SignupParticipant(activityName, email string) error
}

func New(log *slog.Logger, signer ParticipantSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.signup.New"

		log := log.With(slog.String("op", op))

		// chi matches on RawPath when it is set, leaving params still escaped.
		activityName := chi.URLParam(r, "name")
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(activityName); err == nil {
				activityName = unescaped
			}
		}

		if activityName == "" {
			log.Error("activity name is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("activity name is required"))
			return
		}

		log = log.With(slog.String("activity", activityName))

		req := Request{Email: r.URL.Query().Get("email")}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err := signer.SignupParticipant(activityName, req.Email)
		if err != nil {
			log.Error("failed to sign up participant", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrActivityNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Activity not found"))
			case errors.Is(err, storage.ErrAlreadySignedUp):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Student already signed up for this activity"))
			case errors.Is(err, storage.ErrActivityFull):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Activity is full"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to sign up"))
			}
			return
		}

		log.Info("participant signed up", slog.String("email", req.Email))

		render.JSON(w, r, response.OK(fmt.Sprintf("Signed up %s for %s", req.Email, activityName)))
	}
}
