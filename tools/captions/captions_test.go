package captions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestVideoID(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/abc_123", "abc_123", true},
		{"https://www.youtube.com/embed/xyz", "xyz", true},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := VideoID(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("VideoID(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("VideoID(%q) expected error", tc.in)
		}
	}
}

func TestTimedTextFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("v"); got != "vid42" {
			t.Errorf("v = %q, want vid42", got)
		}
		if got := r.URL.Query().Get("lang"); got != "en" {
			t.Errorf("lang = %q, want en", got)
		}
		w.Write([]byte(`<transcript><text start="0">Hello &amp; welcome</text><text start="2"> to the show </text></transcript>`))
	}))
	defer srv.Close()

	f := NewTimedTextFetcher(5 * time.Second)
	f.BaseURL = srv.URL

	got, err := f.Fetch(context.Background(), "vid42")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if want := "Hello & welcome to the show"; got != want {
		t.Fatalf("captions = %q, want %q", got, want)
	}
}

func TestTimedTextFetchEmptyTrack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript></transcript>`))
	}))
	defer srv.Close()

	f := NewTimedTextFetcher(5 * time.Second)
	f.BaseURL = srv.URL
	if _, err := f.Fetch(context.Background(), "vid42"); err == nil {
		t.Fatal("expected error for empty caption track")
	}
}

func TestTimedTextFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewTimedTextFetcher(5 * time.Second)
	f.BaseURL = srv.URL
	if _, err := f.Fetch(context.Background(), "vid42"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
