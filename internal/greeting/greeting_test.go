package greeting

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInstanceGreeting(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "unset", id: "", expected: "Hello World from Unknown Instance!"},
		{name: "whitespace kept", id: "  ", expected: "Hello World from   !"},
		{name: "worker", id: "worker-2", expected: "Hello World from worker-2!"},
		{name: "spaces kept", id: "app one", expected: "Hello World from app one!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstanceGreeting(tt.id); got != tt.expected {
				t.Errorf("InstanceGreeting(%q) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "instance greeting",
			body:       InstanceGreeting("worker-2"),
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "Hello World from worker-2!",
		},
		{
			name:       "default instance greeting",
			body:       InstanceGreeting(""),
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "Hello World from Unknown Instance!",
		},
		{
			name:       "nginx greeting",
			body:       NginxGreeting,
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "Hello World with NGINX!",
		},
		{
			name:       "query string ignored",
			body:       NginxGreeting,
			method:     http.MethodGet,
			path:       "/?name=x",
			wantStatus: http.StatusOK,
			wantBody:   "Hello World with NGINX!",
		},
		{
			name:       "head",
			body:       NginxGreeting,
			method:     http.MethodHead,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "delete",
			body:       NginxGreeting,
			method:     http.MethodDelete,
			path:       "/",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown path",
			body:       NginxGreeting,
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrong method",
			body:       NginxGreeting,
			method:     http.MethodPost,
			path:       "/",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)

			NewRouter(tt.body).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
					t.Errorf("expected text/plain content type, got %q", ct)
				}
			}
		})
	}
}
