package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
	"github.com/IvanChernomyrdin/bytebite/internal/shared/logger"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", acc)
		}
		if id := r.Header.Get(api.RequestIDHeader); id == "" {
			t.Fatalf("expected %s header", api.RequestIDHeader)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got["a"] != float64(1) { // json numbers decode as float64 into map
			t.Fatalf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.WithHTTPClient(srv.Client()))

	var resp map[string]any
	err := c.PostJSON(context.Background(), "/x", map[string]any{"a": 1}, &resp)
	if err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_PostJSON_NilBody_NoContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Fatalf("expected empty Content-Type, got %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		if len(b) != 0 {
			t.Fatalf("expected empty body, got %q", string(b))
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	if err := c.PostJSON(context.Background(), "/x", nil, &resp); err != nil {
		t.Fatalf("expected nil error on 204, got %v", err)
	}
}

func TestClient_RequestIDIsUniquePerRequest(t *testing.T) {
	var ids []string
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(api.RequestIDHeader))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)
	require.NoError(t, c.GetJSON(context.Background(), "/x", nil))
	require.NoError(t, c.GetJSON(context.Background(), "/x", nil))

	require.Len(t, ids, 2)
	require.NotEqual(t, ids[0], ids[1])
}

func TestClient_EmptyBody_IsOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	if err := c.GetJSON(context.Background(), "/x", &resp); err != nil {
		t.Fatalf("expected nil error on empty body, got %v", err)
	}
}

func TestClient_Non2xx_ReturnsAPIError(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		wantMessage string
		wantError   string
	}{
		{"json error", "application/json", `{"error":"Incorrect password"}`, http.StatusUnauthorized, "Incorrect password", "Incorrect password"},
		{"plain text", "text/plain", "  user exists \n", http.StatusConflict, "user exists", "user exists"},
		{"empty body", "", "", http.StatusBadRequest, "", "400 Bad Request"},
		{"json without error", "application/json", `{"message":"nope"}`, http.StatusInternalServerError, "", "500 Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			srv := httptest.NewServer(mux)
			defer srv.Close()

			c := api.NewClient(srv.URL)
			err := c.PostJSON(context.Background(), "/x", map[string]string{"a": "b"}, nil)

			var apiErr *api.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.Status)
			require.Equal(t, tt.wantMessage, apiErr.Message)
			require.Equal(t, tt.wantError, err.Error())
			require.ErrorIs(t, err, serr.ErrRejected)
			require.NotErrorIs(t, err, serr.ErrUnreachable)
		})
	}
}

func TestClient_MalformedJSON_IsUnreachable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, "{not-json")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	err := c.GetJSON(context.Background(), "/x", &resp)
	require.ErrorIs(t, err, serr.ErrUnreachable)
	require.NotErrorIs(t, err, serr.ErrRejected)
	require.True(t, strings.Contains(err.Error(), "malformed response"))
}

func TestClient_NoServer_IsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := api.NewClient(url)
	err := c.GetJSON(context.Background(), "/x", nil)
	require.ErrorIs(t, err, serr.ErrUnreachable)
}

func TestClient_Timeout_IsUnreachable(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	defer close(release)

	c := api.NewClient(srv.URL, api.WithTimeout(50*time.Millisecond))

	err := c.GetJSON(context.Background(), "/slow", nil)
	require.ErrorIs(t, err, serr.ErrUnreachable)
}

func TestClient_ContextCanceled_IsUnreachable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := api.NewClient(srv.URL)
	err := c.GetJSON(ctx, "/x", nil)
	require.ErrorIs(t, err, serr.ErrUnreachable)
}

func TestClient_BaseURL_TrimsSlash(t *testing.T) {
	c := api.NewClient("http://localhost:5000///")
	require.Equal(t, "http://localhost:5000", c.BaseURL())
}

func TestClient_LogsEveryRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"hi"}`)
	})
	mux.HandleFunc("/bad", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "http.log")
	log := logger.NewFileLogger(path, "info")

	c := api.NewClient(srv.URL, api.WithLogger(log))
	require.NoError(t, c.GetJSON(context.Background(), "/ok", nil))
	require.Error(t, c.GetJSON(context.Background(), "/bad", nil))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, bytes.Count(data, []byte("HTTP request")))
	require.Contains(t, string(data), "/ok")
	require.Contains(t, string(data), "/bad")
	require.Contains(t, string(data), "request_id")
}
