package board_test

import (
	"activityBoard/internal/board"
	"activityBoard/internal/clients/activities"
	"activityBoard/internal/http-server/handlers/activity/getActivities"
	"activityBoard/internal/http-server/handlers/activity/signup"
	"activityBoard/internal/http-server/handlers/activity/unregister"
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"activityBoard/internal/models"
	"activityBoard/internal/storage/memory"
	"activityBoard/internal/surface"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T, seed models.Activities) *httptest.Server {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	store := memory.New(seed)

	router := chi.NewRouter()
	router.Get("/activities", getActivities.New(log, store))
	router.Post("/activities/{name}/signup", signup.New(log, store))
	router.Post("/activities/{name}/unregister", unregister.New(log, store))

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func TestBoardAgainstAPI(t *testing.T) {
	ts := newAPIServer(t, models.Activities{
		{Name: "Chess Club", Description: "d", Schedule: "Mon", MaxParticipants: 10, Participants: []string{}},
		{Name: "Art & <Craft>", Description: "glue", Schedule: "Sat", MaxParticipants: 2, Participants: []string{"a@x.com"}},
	})

	client, err := activities.New(ts.URL, activities.WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	clock := &fakeClock{}
	page := surface.NewPage()
	b := board.New(slogdiscard.NewDiscardLogger(), client, client, page.Surfaces(), board.WithScheduler(clock))

	ctx := context.Background()
	require.NoError(t, b.LoadActivities(ctx))

	assert.Equal(t, []surface.Option{
		{Value: "Chess Club", Label: "Chess Club"},
		{Value: "Art & <Craft>", Label: "Art & <Craft>"},
	}, page.Select.Options())
	assert.Contains(t, string(page.List.HTML()), "<h4>Art &amp; &lt;Craft&gt;</h4>")
	assert.Contains(t, string(page.List.HTML()), "1 spots left")

	fb, err := b.SubmitForm(ctx, func() { page.Fill("b@x.com", "Art & <Craft>") })
	require.NoError(t, err)
	assert.Equal(t, "Signed up b@x.com for Art & <Craft>", fb.Text)
	assert.Contains(t, string(page.List.HTML()), "0 spots left")
	assert.Contains(t, string(page.List.HTML()), "<li>b@x.com</li>")
	assert.Empty(t, page.Form.Value(board.FieldEmail))

	fb, err = b.SubmitForm(ctx, func() { page.Fill("b@x.com", "Art & <Craft>") })
	assert.ErrorIs(t, err, board.ErrSignupRejected)
	assert.Equal(t, board.Feedback{Text: "Student already signed up for this activity", Kind: board.KindError}, fb)
	assert.Equal(t, "b@x.com", page.Form.Value(board.FieldEmail))

	fb, err = b.SubmitForm(ctx, func() { page.Fill("c@x.com", "Art & <Craft>") })
	assert.ErrorIs(t, err, board.ErrSignupRejected)
	assert.Equal(t, "Activity is full", fb.Text)

	assert.Len(t, clock.timers, 3)
	assert.Equal(t, 1, strings.Count(string(page.List.HTML()), "<h4>Chess Club</h4>"))
}

func TestSignupForNamesWithEscapes(t *testing.T) {
	names := []string{"100%25 Fitness", "50%/50 Club", "Q&A?"}

	seed := make(models.Activities, 0, len(names))
	for _, n := range names {
		seed = append(seed, models.Activity{Name: n, Description: "d", Schedule: "Tue", MaxParticipants: 5, Participants: []string{}})
	}

	ts := newAPIServer(t, seed)

	client, err := activities.New(ts.URL, activities.WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	ctx := context.Background()

	for _, n := range names {
		res, err := client.Signup(ctx, n, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode, n)
		assert.Equal(t, "Signed up a@x.com for "+n, res.Message)

		res, err = client.Unregister(ctx, n, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode, n)
		assert.Equal(t, "Unregistered a@x.com from "+n, res.Message)
	}
}

func TestBoardWithUnreachableAPI(t *testing.T) {
	ts := newAPIServer(t, nil)
	ts.Close()

	client, err := activities.New(ts.URL, activities.WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	page := surface.NewPage()
	b := board.New(slogdiscard.NewDiscardLogger(), client, client, page.Surfaces(), board.WithScheduler(&fakeClock{}))

	err = b.LoadActivities(context.Background())
	assert.ErrorIs(t, err, board.ErrFetchFailure)
	assert.Contains(t, string(page.List.HTML()), "Failed to load activities")

	fb, err := b.SubmitSignup(context.Background(), "a@x.com", "Chess Club")
	assert.ErrorIs(t, err, board.ErrSignupTransport)
	assert.Equal(t, "Failed to sign up. Please try again.", fb.Text)
}
