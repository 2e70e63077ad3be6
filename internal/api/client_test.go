package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListWorks_ParsesJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"title":"Chair","imageUrl":"/img/1.png","category":{"id":10,"name":"Objets"}}]`)
	}))
	defer srv.Close()

	works, err := New(srv.URL).ListWorks(context.Background())
	if err != nil {
		t.Fatalf("ListWorks: %v", err)
	}
	if len(works) != 1 || works[0].ID != 1 || works[0].Category == nil || works[0].Category.Name != "Objets" {
		t.Fatalf("unexpected works %#v", works)
	}
}

func TestListWorks_Non2xxIsHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListWorks(context.Background())
	if StatusOf(err) != http.StatusInternalServerError {
		t.Fatalf("expected HTTPError 500, got %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "user@example.com", "nope")
	if !IsInvalidCredentials(err) {
		t.Fatalf("expected invalid-credentials error, got %v", err)
	}
}

func TestLogin_SendsJSONAndParsesSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("login content type = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(raw), `"email":"user@example.com"`) {
			t.Errorf("login body missing email: %s", raw)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"token":"tok-123","userId":7}`)
	}))
	defer srv.Close()

	s, err := New(srv.URL).Login(context.Background(), "user@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Token != "tok-123" || s.UserID != 7 {
		t.Fatalf("unexpected session %#v", s)
	}
}

func TestCreateWork_MultipartPassthroughAndBearer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization = %q", got)
		}
		// The prepared multipart body must pass through untouched, keeping its
		// own boundary-carrying Content-Type.
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got := r.FormValue("title"); got != "Chair" {
			t.Errorf("title = %q", got)
		}
		if got := r.FormValue("category"); got != "10" {
			t.Errorf("category = %q", got)
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image part: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		if hdr.Filename != "chair.png" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":9,"title":"Chair","imageUrl":"/img/9.png","categoryId":10}`)
	}))
	defer srv.Close()

	work, err := New(srv.URL).CreateWork(context.Background(), CreateWorkRequest{
		Title:      "Chair",
		CategoryID: 10,
		ImageName:  "chair.png",
		Image:      strings.NewReader("png-bytes"),
	}, "tok-123")
	if err != nil {
		t.Fatalf("CreateWork: %v", err)
	}
	if work.ID != 9 || work.CategoryID != 10 {
		t.Fatalf("unexpected work %#v", work)
	}
}

func TestDeleteWork_204IsSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/works/2" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization = %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).DeleteWork(context.Background(), 2, "tok-123"); err != nil {
		t.Fatalf("DeleteWork: %v", err)
	}
}

func TestDo_NonJSONBodyIsDiscarded(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "not json")
	}))
	defer srv.Close()

	works, err := New(srv.URL).ListWorks(context.Background())
	if err != nil {
		t.Fatalf("expected success with discarded body, got %v", err)
	}
	if works != nil {
		t.Fatalf("expected no decoded works, got %#v", works)
	}
}

func TestDo_TransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := New(srv.URL).ListWorks(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if StatusOf(err) != 0 {
		t.Fatalf("transport failure must not carry an HTTP status")
	}
}
