package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/gradetrack/gradetrack/internal/api/http"
	"github.com/gradetrack/gradetrack/internal/track"
)

func fp(v float64) *float64 { return &v }

func newRouter(store track.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/classes", api.PutClassHandler(store))
	r.Get("/classes/{classID}/overview", api.ClassOverviewHandler(store))
	r.Post("/classes/{classID}/items", api.PutItemHandler(store))
	r.Post("/items/{itemID}/score", api.ScoreItemHandler(store))
	r.Get("/gpa", api.GPAHandler(store))
	r.Post("/gpa/whatif", api.WhatIfGPAHandler(store))
	r.Get("/report", api.ReportHandler(store))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

func TestPutClassHandler_Validation(t *testing.T) {
	r := newRouter(track.NewInMemoryStore())

	rec := doJSON(t, r, "POST", "/classes", map[string]any{"name": "", "credits": 3}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty name: expected 400, got %d", rec.Code)
	}
	rec = doJSON(t, r, "POST", "/classes", map[string]any{"name": "Bio", "credits": 0}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero credits: expected 400, got %d", rec.Code)
	}
	rec = doJSON(t, r, "POST", "/classes", map[string]any{"name": "Bio", "credits": 3, "threshold": "D"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad threshold: expected 400, got %d", rec.Code)
	}

	var c track.Class
	rec = doJSON(t, r, "POST", "/classes", map[string]any{"name": "Bio", "credits": 3}, &c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if c.Threshold != "C" {
		t.Fatalf("expected default threshold C, got %q", c.Threshold)
	}
}

func TestClassOverviewEndpoint(t *testing.T) {
	store := track.NewInMemoryStore()
	r := newRouter(store)

	var c track.Class
	doJSON(t, r, "POST", "/classes", map[string]any{"name": "Calc", "credits": 4, "threshold": "B"}, &c)

	var it track.GradedItem
	doJSON(t, r, "POST", "/classes/"+c.ID+"/items",
		map[string]any{"name": "Midterm", "weight": 40}, &it)
	doJSON(t, r, "POST", "/items/"+it.ID+"/score", map[string]any{"score": 85}, nil)
	doJSON(t, r, "POST", "/classes/"+c.ID+"/items",
		map[string]any{"name": "Final", "weight": 60}, nil)

	var ov track.ClassOverview
	rec := doJSON(t, r, "GET", "/classes/"+c.ID+"/overview", nil, &ov)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ov.Grade == nil || *ov.Grade != 85 {
		t.Fatalf("expected grade 85 (only graded item), got %v", ov.Grade)
	}
	if ov.Status != "green" {
		t.Fatalf("expected green against B at 85, got %s", ov.Status)
	}
	if len(ov.Targets) != 3 {
		t.Fatalf("expected 3 target rows, got %d", len(ov.Targets))
	}

	rec = doJSON(t, r, "GET", "/classes/missing/overview", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOverview_NullGradeSerializesAsNull(t *testing.T) {
	store := track.NewInMemoryStore()
	r := newRouter(store)

	var c track.Class
	doJSON(t, r, "POST", "/classes", map[string]any{"name": "New", "credits": 3}, &c)

	req := httptest.NewRequest("GET", "/classes/"+c.ID+"/overview", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// callers render null as "—", never as 0
	if string(raw["grade"]) != "null" {
		t.Fatalf("expected grade null, got %s", raw["grade"])
	}
}

func TestGPAEndpoints(t *testing.T) {
	store := track.NewInMemoryStore()
	r := newRouter(store)
	ctx := context.Background()

	if _, err := store.PutClass(ctx, track.Class{Name: "Done", Credits: 3, Threshold: "C", GPAPoints: fp(3.0)}); err != nil {
		t.Fatalf("seed class: %v", err)
	}
	inprog, err := store.PutClass(ctx, track.Class{Name: "Now", Credits: 3, Threshold: "C"})
	if err != nil {
		t.Fatalf("seed class: %v", err)
	}

	var gpaResp struct {
		GPA     float64 `json:"gpa"`
		Credits int     `json:"completed_credits"`
	}
	doJSON(t, r, "GET", "/gpa", nil, &gpaResp)
	if gpaResp.GPA != 3.0 || gpaResp.Credits != 3 {
		t.Fatalf("expected gpa 3.0 over 3 credits, got %+v", gpaResp)
	}

	var whatIf struct {
		GPA       float64 `json:"gpa"`
		Projected float64 `json:"projected"`
	}
	doJSON(t, r, "POST", "/gpa/whatif",
		map[string]any{"simulated": map[string]string{inprog.ID: "A"}}, &whatIf)
	// (3.0*3 + 4.0*3) / 6 = 3.5
	if whatIf.Projected != 3.5 {
		t.Fatalf("expected projected 3.5, got %v", whatIf.Projected)
	}
	if whatIf.GPA != 3.0 {
		t.Fatalf("base gpa must be unchanged, got %v", whatIf.GPA)
	}
}

func TestReportMatchesOverview(t *testing.T) {
	store := track.NewInMemoryStore()
	r := newRouter(store)
	ctx := context.Background()

	c, _ := store.PutClass(ctx, track.Class{Name: "Stats", Credits: 3, Threshold: "C"})
	_, _ = store.PutItem(ctx, track.GradedItem{ClassID: c.ID, Name: "Quiz", Weight: 30, Score: fp(76.66)})

	var ov track.ClassOverview
	doJSON(t, r, "GET", "/classes/"+c.ID+"/overview", nil, &ov)

	var rep api.Report
	doJSON(t, r, "GET", "/report", nil, &rep)
	if len(rep.Classes) != 1 {
		t.Fatalf("expected 1 class in report, got %d", len(rep.Classes))
	}
	got := rep.Classes[0].Grade
	if got == nil || ov.Grade == nil || *got != *ov.Grade {
		t.Fatalf("report grade %v must equal overview grade %v", got, ov.Grade)
	}
	if *got != 76.7 {
		t.Fatalf("expected one-decimal rounding to 76.7, got %v", *got)
	}
}
