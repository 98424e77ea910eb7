package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	srv := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	srv := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/scenes", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body["scenes"]) == 0 {
		t.Error("Expected at least one scene")
	}
}

func TestHandleRender(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"small default render", "/api/render?width=16&height=9&depth=2", http.StatusOK},
		{"named scene", "/api/render?scene=mirrors&width=16&height=9", http.StatusOK},
		{"unknown scene", "/api/render?scene=nope&width=16&height=9", http.StatusBadRequest},
		{"width out of range", "/api/render?width=0&height=9", http.StatusBadRequest},
		{"non-numeric height", "/api/render?width=16&height=abc", http.StatusBadRequest},
		{"negative depth", "/api/render?width=16&height=9&depth=-1", http.StatusBadRequest},
	}

	srv := NewServer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.query, nil)
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
					t.Errorf("Expected image/png content type, got %q", ct)
				}
				img, err := png.Decode(rec.Body)
				if err != nil {
					t.Fatalf("Expected a decodable PNG: %v", err)
				}
				if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
					t.Errorf("Expected 16x9 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
				}
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expected    int
		expectError bool
	}{
		{"missing uses default", "", 42, false},
		{"valid value", "width=100", 100, false},
		{"below minimum", "width=0", 0, true},
		{"above maximum", "width=9999", 0, true},
		{"not a number", "width=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)

			got, err := parseIntParam(values, "width", 42, 1, 2000)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
