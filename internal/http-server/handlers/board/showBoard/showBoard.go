package showBoard

import (
	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/surface"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BoardLoader
type BoardLoader interface {
	LoadActivities(ctx context.Context) error
	Observe(fn func())
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PageRenderer
type PageRenderer interface {
	Render(w io.Writer, v surface.Visit) error
}

// New reloads the catalogue and serves the rendered page. A failed load still
// serves the page; the list then carries the failure notice. Form values and
// feedback come only from the visitor's own flash cookie.
func New(log *slog.Logger, board BoardLoader, page PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.board.showBoard.New"

		log := log.With(slog.String("op", op))

		var visit surface.Visit
		if _, err := flash.Pop(w, r, surface.VisitCookie, &visit); err != nil {
			log.Warn("ignoring malformed visit cookie", sl.Err(err))
			visit = surface.Visit{}
		}

		if err := board.LoadActivities(r.Context()); err != nil {
			log.Warn("serving board without fresh activities", sl.Err(err))
		}

		var (
			buf bytes.Buffer
			err error
		)

		board.Observe(func() {
			err = page.Render(&buf, visit)
		})

		if err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
