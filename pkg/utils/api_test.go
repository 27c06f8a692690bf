package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/champions", r.URL.Path)
		assert.Equal(t, "en_US", r.URL.Query().Get("lang"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`[{"id":1,"name":"Annie"}]`))
	}))
	defer server.Close()

	api := NewAPI(server.URL, time.Second)

	var out []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := api.Get(context.Background(), "/lol/champions", url.Values{"lang": {"en_US"}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Annie", out[0].Name)
}

func TestAPIGetBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var out []any
	err := NewAPI(server.URL, time.Second).Get(context.Background(), "/", nil, &out)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func TestAPIGetInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var out []any
	err := NewAPI(server.URL, time.Second).Get(context.Background(), "/", nil, &out)
	assert.Error(t, err)
}

func TestAPIGetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out []any
	err := NewAPI(server.URL, time.Second).Get(ctx, "/", nil, &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("jpeg bytes"))
	}))
	defer server.Close()

	api := NewAPI("https://ignored.example/", time.Second)

	content, err := api.Download(context.Background(), server.URL+"/Ahri_0.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))

	_, err = api.Download(context.Background(), server.URL+"/missing.jpg")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}
