package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gradetrack/gradetrack/internal/track"
)

// Handlers only — routes remain in main.go.

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func storeErr(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, track.ErrNotFound) {
		http.Error(w, what+" not found", http.StatusNotFound)
		return
	}
	http.Error(w, what+": "+err.Error(), http.StatusInternalServerError)
}

func listOpts(r *http.Request) track.ListOpts {
	q := r.URL.Query()
	opts := track.ListOpts{}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = n
	}
	if n, err := strconv.Atoi(q.Get("offset")); err == nil {
		opts.Offset = n
	}
	return opts
}
