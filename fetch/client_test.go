package fetch

import (
	"context"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Object(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Contains(t, r.Header.Get("Accept"), "application/activity+json")
		w.Header().Set("Content-Type", "application/activity+json")
		_, _ = w.Write([]byte(`{"type": "Person", "id": "https://example.com/u/alice"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{})
	doc, err := c.Object(context.Background(), srv.URL+"/u/alice")
	require.NoError(t, err)
	assert.True(t, doc.HasType("Person"))
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_Object_CachesPerURI(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/activity+json")
		_, _ = w.Write([]byte(`{"type": "Note"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{})
	for i := 0; i < 5; i++ {
		_, err := c.Object(context.Background(), srv.URL+"/notes/1")
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, hits.Load(), "repeated references must not re-fetch")
}

func TestClient_Object_CachesFailures(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Options{})
	_, err1 := c.Object(context.Background(), srv.URL+"/gone")
	_, err2 := c.Object(context.Background(), srv.URL+"/gone")
	require.Error(t, err1)
	require.Error(t, err2)
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_Object_MalformedURI(t *testing.T) {
	c := NewClient(Options{})
	_, err := c.Object(context.Background(), "not a uri")
	assert.Error(t, err)

	_, err = c.Object(context.Background(), "ftp://example.com/file")
	assert.Error(t, err)
}

func TestClient_Object_NonObjectDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["just", "an", "array"]`))
	}))
	defer srv.Close()

	c := NewClient(Options{})
	_, err := c.Object(context.Background(), srv.URL+"/arr")
	assert.ErrorIs(t, err, ErrNotAnObject)
}

func TestClient_Object_FollowsHTMLAlternate(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/profile", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head>
			<link rel="stylesheet" href="/style.css">
			<link rel="alternate" type="application/activity+json" href="/actor.json">
			</head><body>profile page</body></html>`))
	})
	mux.HandleFunc("/actor.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/activity+json")
		_, _ = w.Write([]byte(`{"type": "Person", "preferredUsername": "alice"}`))
	})

	c := NewClient(Options{})
	doc, err := c.Object(context.Background(), srv.URL+"/profile")
	require.NoError(t, err)
	assert.True(t, doc.HasType("Person"))
}

func TestClient_Object_HTMLWithoutAlternate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	c := NewClient(Options{})
	_, err := c.Object(context.Background(), srv.URL+"/page")
	assert.Error(t, err)
}

func TestAlternateLink_ResolvesRelativeHref(t *testing.T) {
	base, _ := url.Parse("https://social.example/users/alice")
	body := []byte(`<html><head><link rel="alternate" type="application/ld+json; profile=foo" href="alice.json"></head></html>`)
	got := AlternateLink(body, base)
	assert.Equal(t, "https://social.example/users/alice.json", got)
}

func TestAlternateLink_NoMatch(t *testing.T) {
	base, _ := url.Parse("https://social.example/")
	assert.Empty(t, AlternateLink([]byte(`<html></html>`), base))
	assert.Empty(t, AlternateLink([]byte(`<link rel="alternate" type="text/calendar" href="x">`), base))
}
