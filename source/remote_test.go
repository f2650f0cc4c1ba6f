package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemote_EmptyURL(t *testing.T) {
	_, err := Remote("")
	assert.Equal(t, ErrEmptyURL, err)
}

func TestRemote_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`["Apple", {"title": "Banana", "keywords": ["fruit", 7]}]`))
	}))
	defer server.Close()

	src, err := Remote(server.URL)
	require.NoError(t, err)

	records, err := src.Fetch(context.Background(), "whatever")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, core.Record{Title: "Apple", Value: "Apple"}, records[0])
	assert.Equal(t, "Banana", records[1].Title)
	assert.Equal(t, []string{"fruit", "7"}, records[1].Keywords)
}

func TestRemote_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	src, err := Remote(server.URL)
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "x")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestRemote_BadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `][`},
		{name: "top-level object", body: `{"items": []}`},
		{name: "top-level string", body: `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			src, err := Remote(server.URL)
			require.NoError(t, err)

			_, err = src.Fetch(context.Background(), "x")
			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.ErrorIs(t, err, ErrNotJSONArray)
		})
	}
}

func TestRemote_InvalidElementShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["Apple", 42]`))
	}))
	defer server.Close()

	src, err := Remote(server.URL)
	require.NoError(t, err)

	// A valid array of invalidly-shaped elements is a data-shape problem,
	// not a transport failure.
	_, err = src.Fetch(context.Background(), "x")
	assert.ErrorIs(t, err, core.ErrInvalidData)
	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr))
}

func TestRemote_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before the fetch

	src, err := Remote(server.URL)
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "x")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 0, fetchErr.Status)
}

func TestRemote_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	defer server.Close()
	defer close(release)

	src, err := Remote(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := src.Fetch(ctx, "x")
		done <- err
	}()

	<-started
	cancel()

	err = <-done
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorIs(t, err, context.Canceled)
}
