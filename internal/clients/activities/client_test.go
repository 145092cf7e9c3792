package activities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("localhost:8000")
	assert.Error(t, err)

	c, err := New("http://localhost:8000/", WithTimeout(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", c.baseURL.String())
	assert.Equal(t, 2*time.Second, c.httpClient.Timeout)
}

func TestGetActivities(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse string
		status         int
		wantErr        string
		wantNames      []string
	}{
		{
			name: "success",
			serverResponse: `{
				"Chess Club": {"description":"d","schedule":"Mon","max_participants":10,"participants":[]},
				"Art Workshop": {"description":"a","schedule":"Sat","max_participants":5,"participants":["x@y.z"]}
			}`,
			status:    http.StatusOK,
			wantNames: []string{"Chess Club", "Art Workshop"},
		},
		{
			name:           "http error",
			serverResponse: "internal server error",
			status:         http.StatusInternalServerError,
			wantErr:        "unexpected status code: 500",
		},
		{
			name:           "not json",
			serverResponse: "<html>oops</html>",
			status:         http.StatusOK,
			wantErr:        "decoding activities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/activities", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.serverResponse))
			}))
			defer ts.Close()

			client, err := New(ts.URL)
			require.NoError(t, err)

			activities, err := client.GetActivities(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, activities.Names())
		})
	}
}

func TestGetActivitiesTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	client, err := New(ts.URL)
	require.NoError(t, err)

	_, err = client.GetActivities(context.Background())
	assert.ErrorContains(t, err, "fetching activities")
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse string
		status         int
		wantErr        string
		wantOK         bool
		wantMessage    string
		wantDetail     string
	}{
		{
			name:           "success",
			serverResponse: `{"message":"Signed up!"}`,
			status:         http.StatusOK,
			wantOK:         true,
			wantMessage:    "Signed up!",
		},
		{
			name:           "rejected",
			serverResponse: `{"detail":"Already signed up"}`,
			status:         http.StatusBadRequest,
			wantDetail:     "Already signed up",
		},
		{
			name:           "rejected without detail",
			serverResponse: `{}`,
			status:         http.StatusNotFound,
		},
		{
			name:           "not json",
			serverResponse: "Bad Gateway",
			status:         http.StatusBadGateway,
			wantErr:        "decoding signup response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/activities/Chess Club & Co/signup", r.URL.Path)
				assert.Equal(t, "/activities/Chess%20Club%20%26%20Co/signup", r.URL.EscapedPath())
				assert.Equal(t, "a+b@x.com", r.URL.Query().Get("email"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.serverResponse))
			}))
			defer ts.Close()

			client, err := New(ts.URL)
			require.NoError(t, err)

			result, err := client.Signup(context.Background(), "Chess Club & Co", "a+b@x.com")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, result.StatusCode)
			assert.Equal(t, tt.wantOK, result.OK())
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.wantDetail, result.Detail)
		})
	}
}

func TestUnregister(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/Swimming Team/unregister", r.URL.Path)
		assert.Equal(t, "s@x.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{"message":"Unregistered s@x.com from Swimming Team"}`))
	}))
	defer ts.Close()

	client, err := New(ts.URL)
	require.NoError(t, err)

	result, err := client.Unregister(context.Background(), "Swimming Team", "s@x.com")
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, "Unregistered s@x.com from Swimming Team", result.Message)
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "Chess%20Club", encodeComponent("Chess Club"))
	assert.Equal(t, "a%2Bb%40x.com", encodeComponent("a+b@x.com"))
	assert.Equal(t, "Arts%2FCrafts%3F", encodeComponent("Arts/Crafts?"))
	assert.Equal(t, "Rock%20'n'%20Roll%20(Live)!*~", encodeComponent("Rock 'n' Roll (Live)!*~"))
	assert.Equal(t, "100%25%20Fitness", encodeComponent("100% Fitness"))
}
