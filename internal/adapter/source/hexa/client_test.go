package hexa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 0, nil)
}

func TestClient_FetchPage(t *testing.T) {
	var gotPath, gotPage string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{
			"success": true,
			"total": 45,
			"movies": [{
				"id": 155,
				"title": "The Dark Knight",
				"overview": "Batman raises the stakes.",
				"release_date": "2008-07-16",
				"runtime": 152,
				"vote_average": 8.5,
				"genres": [{"id": 18, "name": "Drama"}, {"id": 28, "name": "Action"}],
				"backdrop_with_title": "https://img/dk.jpg",
				"quality": "4K"
			}, {
				"id": 7,
				"title": "Untimed",
				"overview": "",
				"release_date": "",
				"runtime": null,
				"backdrop_path": "https://img/plain.jpg"
			}]
		}`))
	})

	page, err := c.FetchPage(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "/api/4k", gotPath)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, 45, page.Total)
	require.Len(t, page.Records, 2)

	dk := page.Records[0]
	assert.Equal(t, 155, dk.ID)
	assert.Equal(t, 8.5, dk.Rating)
	assert.Equal(t, 152, dk.RuntimeMinutes())
	assert.True(t, dk.HasGenre(28))
	assert.Equal(t, "https://img/dk.jpg", dk.ImageURL)

	untimed := page.Records[1]
	assert.Nil(t, untimed.Runtime)
	assert.Zero(t, untimed.Rating)
	assert.Empty(t, untimed.Genres)
	assert.Equal(t, "https://img/plain.jpg", untimed.ImageURL)
}

func TestClient_FetchPage_MissingTotalFallsBackToPageSize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "movies": [{"id": 1}, {"id": 2}]}`))
	})

	page, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestClient_FetchPage_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"success false", http.StatusOK, `{"success": false, "movies": []}`, domain.ErrMalformedResponse},
		{"movies not array", http.StatusOK, `{"success": true, "movies": {"id": 1}}`, domain.ErrMalformedResponse},
		{"movies missing", http.StatusOK, `{"success": true, "total": 3}`, domain.ErrMalformedResponse},
		{"movies null", http.StatusOK, `{"success": true, "movies": null}`, domain.ErrMalformedResponse},
		{"not json", http.StatusOK, `<html>oops</html>`, domain.ErrMalformedResponse},
		{"server error", http.StatusBadGateway, `{"success": true, "movies": []}`, domain.ErrSourceOffline},
		{"not found", http.StatusNotFound, ``, domain.ErrSourceOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.FetchPage(context.Background(), 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_FetchPage_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, 0, nil)
	_, err := c.FetchPage(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrSourceOffline)
}
