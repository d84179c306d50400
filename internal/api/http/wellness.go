package http

import (
	"encoding/json"
	"net/http"

	"github.com/gradetrack/gradetrack/internal/track"
)

// Data-entry endpoints for the non-grade records: study sessions, expenses,
// mood. Plain create/list; the engine never sees these.

func AddSessionHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s track.StudySession
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if s.Minutes <= 0 {
			http.Error(w, "minutes must be positive", http.StatusBadRequest)
			return
		}
		out, err := store.AddSession(r.Context(), s)
		if err != nil {
			storeErr(w, err, "session")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ListSessionsHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListSessions(r.Context(), listOpts(r))
		if err != nil {
			storeErr(w, err, "sessions")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func AddExpenseHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e track.Expense
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		out, err := store.AddExpense(r.Context(), e)
		if err != nil {
			storeErr(w, err, "expense")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ListExpensesHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListExpenses(r.Context(), listOpts(r))
		if err != nil {
			storeErr(w, err, "expenses")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func AddMoodHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m track.MoodEntry
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if m.Rating < 1 || m.Rating > 5 {
			http.Error(w, "rating must be 1..5", http.StatusBadRequest)
			return
		}
		out, err := store.AddMood(r.Context(), m)
		if err != nil {
			storeErr(w, err, "mood")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ListMoodsHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListMoods(r.Context(), listOpts(r))
		if err != nil {
			storeErr(w, err, "moods")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
