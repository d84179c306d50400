package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gradetrack/gradetrack/internal/grades"
	"github.com/gradetrack/gradetrack/internal/track"
)

// POST /classes/{classID}/categories
func PutCategoryHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c track.Category
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		c.ClassID = chi.URLParam(r, "classID")
		if strings.TrimSpace(c.Name) == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		out, err := store.PutCategory(r.Context(), c)
		if err != nil {
			storeErr(w, err, "category")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /classes/{classID}/categories — each with the validator's verdict on
// the full set, so the UI can show "Total: X% (must equal 100%)".
func ListCategoriesHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := store.ListCategories(r.Context(), chi.URLParam(r, "classID"))
		if err != nil {
			storeErr(w, err, "categories")
			return
		}
		weights := make([]float64, 0, len(cats))
		for _, c := range cats {
			weights = append(weights, c.Weight)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": cats,
			"weights":    grades.ValidateCategoryWeights(weights),
		})
	}
}

// DELETE /categories/{categoryID}
func DeleteCategoryHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
			storeErr(w, err, "category")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /classes/{classID}/items
func PutItemHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var it track.GradedItem
		if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		it.ClassID = chi.URLParam(r, "classID")
		if strings.TrimSpace(it.Name) == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		out, err := store.PutItem(r.Context(), it)
		if err != nil {
			storeErr(w, err, "item")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /classes/{classID}/items
func ListItemsHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListItems(r.Context(), chi.URLParam(r, "classID"))
		if err != nil {
			storeErr(w, err, "items")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /items/{itemID}/score  { "score": 87.5 } — null clears the grade.
func ScoreItemHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Score *float64 `json:"score"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		it, err := store.GetItem(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			storeErr(w, err, "item")
			return
		}
		it.Score = req.Score
		out, err := store.PutItem(r.Context(), it)
		if err != nil {
			storeErr(w, err, "item")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// DELETE /items/{itemID}
func DeleteItemHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
			storeErr(w, err, "item")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
