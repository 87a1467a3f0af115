package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
)

type courseDetail struct {
	catalog.Course
	Steps  []string `json:"steps"`
	Prompt string   `json:"prompt"`
}

// GET /courses
func ListCoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.All())
	}
}

// GET /courses/{courseID}
func GetCourseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := catalog.ByID(chi.URLParam(r, "courseID"))
		if !ok {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, courseDetail{Course: c, Steps: catalog.Steps(c), Prompt: catalog.Prompt(c)})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
