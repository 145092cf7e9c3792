// Package board renders the activity catalogue and drives participant signups.
//
// A Board owns a set of page surfaces. LoadActivities replaces the activity
// list and the selection control from one API response; SubmitSignup posts a
// signup, shows the outcome in the message area for HideAfter, and reloads the
// catalogue when the signup was accepted.
//
// Surfaces are only touched while the board's lock is held. Readers that render
// the surfaces must do so through Observe.
package board

import (
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// HideAfter is how long a feedback message stays visible.
const HideAfter = 5000 * time.Millisecond

const (
	ClassSuccess = "success"
	ClassError   = "error"
	ClassHidden  = "hidden"

	fallbackDetail   = "An error occurred"
	signupFailedText = "Failed to sign up. Please try again."
)

// Load and signup outcomes reported to the Recorder.
const (
	LoadOK    = "ok"
	LoadError = "error"
	LoadStale = "stale"

	SignupSuccess  = "success"
	SignupRejected = "rejected"
	SignupFailed   = "failed"
)

var (
	ErrFetchFailure    = errors.New("failed to load activities")
	ErrSignupRejected  = errors.New("signup rejected")
	ErrSignupTransport = errors.New("failed to sign up")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivitiesGetter
type ActivitiesGetter interface {
	GetActivities(ctx context.Context) (models.Activities, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SignupSubmitter
type SignupSubmitter interface {
	Signup(ctx context.Context, activityName, email string) (*models.SignupResult, error)
}

// Recorder receives one call per finished load and per finished signup.
type Recorder interface {
	LoadFinished(result string)
	SignupFinished(outcome string)
}

type Kind string

const (
	KindSuccess Kind = ClassSuccess
	KindError   Kind = ClassError
)

// Feedback is the message shown to the user after a signup attempt.
type Feedback struct {
	Text string
	Kind Kind
}

type Board struct {
	log       *slog.Logger
	getter    ActivitiesGetter
	submitter SignupSubmitter
	surfaces  Surfaces
	clock     Scheduler
	recorder  Recorder

	mu sync.Mutex

	// started is the generation of the most recently started load; applied is
	// the generation whose response the surfaces currently show.
	started uint64
	applied uint64

	hideTimer Timer
	feedbacks uint64
}

type Option func(*Board)

func WithScheduler(s Scheduler) Option {
	return func(b *Board) {
		b.clock = s
	}
}

func WithRecorder(r Recorder) Option {
	return func(b *Board) {
		b.recorder = r
	}
}

func New(log *slog.Logger, getter ActivitiesGetter, submitter SignupSubmitter, surfaces Surfaces, opts ...Option) *Board {
	b := &Board{
		log:       log.With(slog.String("component", "board")),
		getter:    getter,
		submitter: submitter,
		surfaces:  surfaces,
		clock:     realClock{},
		recorder:  nopRecorder{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// LoadActivities fetches the catalogue and rebuilds the list and the selection
// control from it. When loads overlap, a response is applied only if no later
// started load has already been applied.
func (b *Board) LoadActivities(ctx context.Context) error {
	const op = "board.LoadActivities"

	log := b.log.With(slog.String("op", op))

	b.mu.Lock()
	b.started++
	gen := b.started
	b.mu.Unlock()

	activities, err := b.getter.GetActivities(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if gen < b.applied {
		log.Debug("discarding stale activities response", slog.Uint64("generation", gen))
		b.recorder.LoadFinished(LoadStale)
		return nil
	}

	b.applied = gen

	if err != nil {
		b.surfaces.List.SetContent(loadFailedHTML)
		log.Error("error fetching activities", sl.Err(err))
		b.recorder.LoadFinished(LoadError)
		return fmt.Errorf("%s: %w: %w", op, ErrFetchFailure, err)
	}

	b.surfaces.List.SetContent("")
	b.surfaces.Select.SetContent(selectPlaceholder)

	for _, a := range activities {
		b.surfaces.List.AppendChild(renderCard(a))
		b.surfaces.Select.AddOption(a.Name, a.Name)
	}

	// Rebuilding the options drops the selection; keep the one the form holds.
	if picked := b.surfaces.Form.Value(FieldActivity); picked != "" {
		b.surfaces.Select.Choose(picked)
	}

	log.Debug("activities rendered", slog.Int("count", len(activities)))
	b.recorder.LoadFinished(LoadOK)

	return nil
}

// SubmitSignup signs email up for activityName and reports the outcome in the
// message area. On success the form is reset and the catalogue reloaded once.
// The returned error classifies failures; the feedback has already been shown.
func (b *Board) SubmitSignup(ctx context.Context, email, activityName string) (Feedback, error) {
	const op = "board.SubmitSignup"

	log := b.log.With(
		slog.String("op", op),
		slog.String("activity", activityName),
	)

	result, err := b.submitter.Signup(ctx, activityName, email)
	if err != nil {
		log.Error("error signing up", sl.Err(err))

		fb := Feedback{Text: signupFailedText, Kind: KindError}
		b.showFeedback(fb)
		b.recorder.SignupFinished(SignupFailed)

		return fb, fmt.Errorf("%s: %w: %w", op, ErrSignupTransport, err)
	}

	if !result.OK() {
		detail := result.Detail
		if detail == "" {
			detail = fallbackDetail
		}

		log.Info("signup rejected", slog.Int("status", result.StatusCode), slog.String("detail", detail))

		fb := Feedback{Text: detail, Kind: KindError}
		b.showFeedback(fb)
		b.recorder.SignupFinished(SignupRejected)

		return fb, fmt.Errorf("%s: %w: %s", op, ErrSignupRejected, detail)
	}

	log.Info("signed up")

	fb := Feedback{Text: result.Message, Kind: KindSuccess}

	b.mu.Lock()
	b.surfaces.Form.Reset()
	b.mu.Unlock()

	b.showFeedback(fb)
	b.recorder.SignupFinished(SignupSuccess)

	if err = b.LoadActivities(ctx); err != nil {
		log.Warn("reload after signup failed", sl.Err(err))
	}

	return fb, nil
}

// SubmitForm reads the email and activity fields from the form surface and
// submits them. A non-nil fill runs first, in the same critical section as the
// read, so concurrent submitters never see each other's input.
func (b *Board) SubmitForm(ctx context.Context, fill func()) (Feedback, error) {
	b.mu.Lock()
	if fill != nil {
		fill()
	}
	email := b.surfaces.Form.Value(FieldEmail)
	activityName := b.surfaces.Form.Value(FieldActivity)
	b.mu.Unlock()

	return b.SubmitSignup(ctx, email, activityName)
}

// Observe runs fn with the surfaces locked, so fn sees the list and the
// selection control from the same load.
func (b *Board) Observe(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fn()
}

// Close cancels a pending message hide.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hideTimer != nil {
		b.hideTimer.Stop()
		b.hideTimer = nil
	}
	b.feedbacks++
}

// showFeedback makes fb visible and schedules its hide. Only the hide of the
// latest feedback may run.
func (b *Board) showFeedback(fb Feedback) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.surfaces.Message.SetText(fb.Text)
	b.surfaces.Message.SetClass(string(fb.Kind))
	b.surfaces.Message.ToggleClass(ClassHidden, false)

	if b.hideTimer != nil {
		b.hideTimer.Stop()
	}

	b.feedbacks++
	seq := b.feedbacks

	b.hideTimer = b.clock.AfterFunc(HideAfter, func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if seq != b.feedbacks {
			return
		}

		b.surfaces.Message.ToggleClass(ClassHidden, true)
		b.hideTimer = nil
	})
}

type nopRecorder struct{}

func (nopRecorder) LoadFinished(string)   {}
func (nopRecorder) SignupFinished(string) {}
