package covers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchCoverImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("q"); got != "intitle:War and Peace" {
			t.Errorf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 2,
			"items": [
				{"volumeInfo": {"title": "War and Peace", "imageLinks": {"thumbnail": "http://covers.example/war-and-peace.jpg"}}},
				{"volumeInfo": {"title": "War and Peace, Vol. 2", "imageLinks": {"thumbnail": "http://covers.example/other.jpg"}}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	got := client.FetchCoverImage(context.Background(), "War and Peace")
	if got != "http://covers.example/war-and-peace.jpg" {
		t.Errorf("expected first item's thumbnail, got %q", got)
	}
}

func TestFetchCoverImage_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "zero result items",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"totalItems": 0, "items": []}`))
			},
		},
		{
			name: "item without image links",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"title": "Bare"}}]}`))
			},
		},
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed response body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": [`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second)
			if got := client.FetchCoverImage(context.Background(), "Anything"); got != "" {
				t.Errorf("expected empty string, got %q", got)
			}
		})
	}
}

func TestFetchCoverImage_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 20*time.Millisecond)
	if got := client.FetchCoverImage(context.Background(), "Slow Book"); got != "" {
		t.Errorf("expected empty string on timeout, got %q", got)
	}
}

func TestFetchCoverImage_BlankTitle(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)
	if got := client.FetchCoverImage(context.Background(), "   "); got != "" {
		t.Errorf("expected empty string for blank title, got %q", got)
	}
}
