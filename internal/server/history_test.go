package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestMemoryHistoryNewestFirstAndCapped(t *testing.T) {
	store := NewMemoryHistory()
	ctx := context.Background()
	for i := 0; i < 105; i++ {
		err := store.Add(ctx, HistoryRecord{ID: fmt.Sprintf("%d", i), Email: "User@Example.com", Prompt: "p"})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	records, err := store.Recent(ctx, "user@example.com", 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 100 {
		t.Fatalf("got %d records, want capped 100", len(records))
	}
	if records[0].ID != "104" {
		t.Fatalf("first record id = %q, want newest (104)", records[0].ID)
	}

	records, err = store.Recent(ctx, "user@example.com", 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
}

func TestHistorySaveAndList(t *testing.T) {
	e := echo.New()
	h := &HistoryHandler{Store: NewMemoryHistory(), Limit: 50}

	body := `{"email":"a@b.c","prompt":"write a blog","content_type":"blog","recommended_agent":"blogging"}`
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Save(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var saved HistoryRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("record not stamped: %+v", saved)
	}

	req = httptest.NewRequest(http.MethodGet, "/history?email=a@b.c", nil)
	rec = httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("List: %v", err)
	}
	var out struct {
		History []HistoryRecord `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.History) != 1 || out.History[0].RecommendedAgent != "blogging" {
		t.Fatalf("unexpected history: %+v", out.History)
	}
}

func TestHistoryValidation(t *testing.T) {
	e := echo.New()
	h := &HistoryHandler{Store: NewMemoryHistory(), Limit: 50}

	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(`{"email":"","prompt":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Save(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	rec = httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
