// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the lookup helpers behind the one-shot commands.

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AleutianAI/taskflow/pkg/logging"
	"github.com/AleutianAI/taskflow/pkg/session"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
)

// testApp wires an appContext to a fake server, skipping config loading.
func testApp(t *testing.T, handler http.Handler) *appContext {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemStore()
	if err := store.Save(session.Session{Token: "tok", Username: "jane"}); err != nil {
		t.Fatal(err)
	}
	return &appContext{
		client:   taskapi.New(server.URL, store),
		sessions: store,
		logger:   logging.New(logging.Config{Quiet: true}),
	}
}

func TestResolveCategory(t *testing.T) {
	categories := []taskapi.Category{
		{ID: "1", Name: "Work", Color: "#6366f1"},
		{ID: "2", Name: "Home", Color: "#22c55e"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"by id", "2", "2", false},
		{"by name", "Work", "1", false},
		{"name is case-insensitive", "home", "2", false},
		{"empty means uncategorized", "", "", false},
		{"none clears it", "none", "", false},
		{"unknown", "Errands", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveCategory(categories, tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveCategory: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveCategory_UnknownNamesExisting(t *testing.T) {
	categories := []taskapi.Category{{ID: "1", Name: "Work", Color: "#6366f1"}}

	_, err := resolveCategory(categories, "Errands")
	if err == nil || !strings.Contains(err.Error(), "Work") {
		t.Errorf("err = %v, want it to list the categories that do exist", err)
	}
}

func TestFindTask(t *testing.T) {
	app := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 7, "title": "Write report", "desc": "", "category_id": null,
			 "priority": "high", "status": "pending", "due_date": null,
			 "created_at": "2025-03-01T10:00:00"}
		]`))
	}))

	got, err := findTask(app, "7")
	if err != nil {
		t.Fatalf("findTask: %v", err)
	}
	if got.Title != "Write report" {
		t.Errorf("Title = %q, want the matching task", got.Title)
	}

	_, err = findTask(app, "99")
	if err == nil || !strings.Contains(err.Error(), "99") {
		t.Errorf("err = %v, want a not-found naming the id", err)
	}
}

func TestFindCategory(t *testing.T) {
	app := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 3, "name": "Work", "color": "#6366f1"}]`))
	}))

	got, err := findCategory(app, "work")
	if err != nil {
		t.Fatalf("findCategory: %v", err)
	}
	if got.ID != "3" {
		t.Errorf("ID = %q, want 3", got.ID)
	}

	if _, err := findCategory(app, "Missing"); err == nil {
		t.Error("expected a not-found error")
	}
}
