package http

import (
	"encoding/json"
	"net/http"

	"github.com/gradetrack/gradetrack/internal/grades"
	"github.com/gradetrack/gradetrack/internal/track"
)

// GET /gpa — overall GPA across completed classes, plus the credits behind
// it so the what-if endpoint can build on the same base.
func GPAHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classes, err := store.ListClasses(r.Context(), track.ListOpts{})
		if err != nil {
			storeErr(w, err, "classes")
			return
		}
		gpa, credits := overallGPA(classes)
		writeJSON(w, http.StatusOK, map[string]any{
			"gpa":               grades.Round2(gpa),
			"completed_credits": credits,
		})
	}
}

type whatIfReq struct {
	Simulated map[string]string `json:"simulated"` // classID -> letter grade
}

// POST /gpa/whatif — projects GPA with simulated letter grades for
// in-progress classes. Classes not mentioned (or given an unknown letter)
// are left out, not assumed failing.
func WhatIfGPAHandler(store track.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req whatIfReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		classes, err := store.ListClasses(r.Context(), track.ListOpts{})
		if err != nil {
			storeErr(w, err, "classes")
			return
		}
		gpa, credits := overallGPA(classes)
		var sims []grades.SimulatedClass
		for _, c := range classes {
			if c.GPAPoints != nil {
				continue // already counted in the base
			}
			letter, ok := req.Simulated[c.ID]
			if !ok {
				continue
			}
			sims = append(sims, grades.SimulatedClass{Credits: c.Credits, Letter: letter})
		}
		projected := grades.WhatIfGPA(gpa, credits, sims)
		writeJSON(w, http.StatusOK, map[string]any{
			"gpa":       grades.Round2(gpa),
			"projected": grades.Round2(projected),
		})
	}
}

func overallGPA(classes []track.Class) (gpa float64, completedCredits int) {
	entries := make([]grades.ClassGPA, 0, len(classes))
	for _, c := range classes {
		entries = append(entries, grades.ClassGPA{Credits: c.Credits, Points: c.GPAPoints})
		if c.GPAPoints != nil {
			completedCredits += c.Credits
		}
	}
	return grades.GPA(entries), completedCredits
}
