package http

import (
	"net/http"

	"github.com/gradetrack/gradetrack/internal/grades"
	"github.com/gradetrack/gradetrack/internal/journal"
	"github.com/gradetrack/gradetrack/internal/track"
)

// Report is the cross-class summary an exporter (PDF, email) consumes. It
// goes through the same overview builder and rounding as the class screens,
// so a report can never show a different grade than the app.
type Report struct {
	Classes []track.ClassOverview `json:"classes"`
	GPA     float64               `json:"gpa"`
	Credits int                   `json:"completed_credits"`
}

// GET /report
func ReportHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classes, err := store.ListClasses(r.Context(), track.ListOpts{})
		if err != nil {
			storeErr(w, err, "classes")
			return
		}
		rep := Report{Classes: make([]track.ClassOverview, 0, len(classes))}
		for _, c := range classes {
			ov, err := track.LoadOverview(r.Context(), store, c.ID)
			if err != nil {
				storeErr(w, err, "overview")
				return
			}
			rep.Classes = append(rep.Classes, ov)
		}
		gpa, credits := overallGPA(classes)
		rep.GPA = grades.Round2(gpa)
		rep.Credits = credits
		writeJSON(w, http.StatusOK, rep)
	}
}

// GET /activity — recent change events from the journal.
func ActivityHandler(j *journal.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOpts(r)
		events, err := j.Recent(r.Context(), opts.Limit)
		if err != nil {
			http.Error(w, "activity: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if events == nil {
			events = []journal.Event{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}
