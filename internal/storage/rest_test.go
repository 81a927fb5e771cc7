package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/normalize"
)

func wireFixture() *normalize.WireDocument {
	return &normalize.WireDocument{
		Title:    "My Resume",
		Template: "modern",
		Personal: normalize.WirePersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
	}
}

func respond(t *testing.T, w http.ResponseWriter, status int, doc *normalize.WireDocument) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": doc}))
}

func TestRESTStore_FetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "opaque-token", srv.Client())
	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc, "404 means no resume yet, not an error")
}

func TestRESTStore_FetchSendsBearerToken(t *testing.T) {
	var gotAuth, gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		gotPath = r.URL.Path
		respond(t, w, http.StatusOK, wireFixture())
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL+"/", "opaque-token", srv.Client())
	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer opaque-token", gotAuth)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/resume", gotPath)
	assert.Equal(t, "Jane Doe", doc.Personal.FullName)
}

func TestRESTStore_CreatePostsEnvelope(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody normalize.WireDocument
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		saved := gotBody
		saved.ID = "srv-42"
		respond(t, w, http.StatusCreated, &saved)
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "opaque-token", srv.Client())
	saved, err := store.Create(context.Background(), wireFixture())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "My Resume", gotBody.Title)
	assert.Equal(t, "srv-42", saved.ID, "server-assigned identifier must be surfaced")
}

func TestRESTStore_UpdateUsesPut(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		respond(t, w, http.StatusOK, wireFixture())
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "opaque-token", srv.Client())
	_, err := store.Update(context.Background(), wireFixture())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestRESTStore_ServerErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "opaque-token", srv.Client())

	_, err := store.Fetch(context.Background())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "load", terr.Op)

	_, err = store.Create(context.Background(), wireFixture())
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "save", terr.Op)
}

func TestRESTStore_MissingEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "opaque-token", srv.Client())
	_, err := store.Fetch(context.Background())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}

func TestRESTStore_ExpiredTokenFailsBeforeRequest(t *testing.T) {
	var requested bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requested = true
		respond(t, w, http.StatusOK, wireFixture())
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, testJWT(t, time.Now().Add(-time.Hour)), srv.Client())
	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, requested, "expired token must fail before any round trip")
}

func TestRESTStore_ValidJWTPasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, http.StatusOK, wireFixture())
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, testJWT(t, time.Now().Add(time.Hour)), srv.Client())
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)
}

func TestRESTStore_EmptyToken(t *testing.T) {
	store := NewRESTStore("http://127.0.0.1:1", "", nil)
	_, err := store.Fetch(context.Background())
	require.Error(t, err)
}

func TestCheckToken_OpaqueTokensPassThrough(t *testing.T) {
	assert.NoError(t, checkToken("not-a-jwt"))
	assert.NoError(t, checkToken("a.b.c"))
}

// testJWT builds an unsigned JWT with the given expiry. The claims are read
// without signature verification, so an empty signature segment is enough.
func testJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := enc(map[string]string{"alg": "none", "typ": "JWT"})
	claims := enc(map[string]any{"exp": exp.Unix()})
	return header + "." + claims + "."
}
