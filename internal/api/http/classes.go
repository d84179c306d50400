package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gradetrack/gradetrack/internal/track"
)

// POST /classes  (also updates when "id" is set)
func PutClassHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c track.Class
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(c.Name) == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		if c.Credits <= 0 {
			http.Error(w, "credits must be positive", http.StatusBadRequest)
			return
		}
		switch c.Threshold {
		case "A", "B", "C":
		case "":
			c.Threshold = "C"
		default:
			http.Error(w, "threshold must be A, B or C", http.StatusBadRequest)
			return
		}
		out, err := store.PutClass(r.Context(), c)
		if err != nil {
			storeErr(w, err, "class")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /classes
func ListClassesHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListClasses(r.Context(), listOpts(r))
		if err != nil {
			storeErr(w, err, "classes")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /classes/{classID}
func GetClassHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "classID")
		c, err := store.GetClass(r.Context(), id)
		if err != nil {
			storeErr(w, err, "class")
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// DELETE /classes/{classID}
func DeleteClassHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteClass(r.Context(), chi.URLParam(r, "classID")); err != nil {
			storeErr(w, err, "class")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /classes/{classID}/overview — the computed view: grade, status,
// weight check, per-category averages, A/B/C target table.
func ClassOverviewHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ov, err := track.LoadOverview(r.Context(), store, chi.URLParam(r, "classID"))
		if err != nil {
			storeErr(w, err, "class")
			return
		}
		writeJSON(w, http.StatusOK, ov)
	}
}
