package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	authmw "github.com/mind-engage/serendipity-ink/internal/auth/middleware"
	"github.com/mind-engage/serendipity-ink/internal/catalog"
	"github.com/mind-engage/serendipity-ink/internal/learner"
	"github.com/mind-engage/serendipity-ink/internal/logger"
	"github.com/mind-engage/serendipity-ink/internal/rbac"
)

// POST /sessions
func CreateSessionHandler(store learner.Store, authSvc *authmw.AuthService, log *logger.Logger) http.HandlerFunc {
	type out struct {
		SessionID   string       `json:"session_id"`
		AccessToken string       `json:"access_token"`
		View        learner.View `json:"view"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := store.Create()
		if err != nil {
			http.Error(w, "create session", http.StatusInternalServerError)
			return
		}
		tok, err := authSvc.IssueJWT(v.SessionID, rbac.RoleLearner)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		log.Info("session created", "session_id", v.SessionID, "sessions", store.Len())
		writeJSON(w, http.StatusCreated, out{SessionID: v.SessionID, AccessToken: tok, View: v})
	}
}

// GET /session
func GetSessionHandler(store learner.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := store.View(authmw.SubjectFromContext(r.Context()))
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /session/token
//
// Token expiry is fixed at issue time while the session's idle timer resets
// on every action, so a client in long use swaps its token here for a fresh
// one while the session is still live.
func RefreshTokenHandler(store learner.Store, authSvc *authmw.AuthService) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := authmw.SubjectFromContext(r.Context())
		if _, err := store.View(id); err != nil {
			writeSessionError(w, err)
			return
		}
		tok, err := authSvc.IssueJWT(id, rbac.RoleFromContext(r.Context()))
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out{AccessToken: tok})
	}
}

// POST /session/profile {"name": "..."}
//
// An empty name is accepted and leaves the session on the profile screen.
func CreateProfileHandler(store learner.Store, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		id := authmw.SubjectFromContext(r.Context())
		created := false
		v, err := store.Do(id, func(s *learner.Session) error {
			if err := s.SetName(req.Name); err != nil {
				return err
			}
			ok, err := s.CreateProfile()
			created = ok
			return err
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		if created {
			log.Info("profile created", "session_id", id, "name", req.Name)
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /session/course {"course_id": "3"}
func SelectCourseHandler(store learner.Store, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CourseID string `json:"course_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		c, ok := catalog.ByID(req.CourseID)
		if !ok {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		id := authmw.SubjectFromContext(r.Context())
		v, err := store.Do(id, func(s *learner.Session) error { return s.SelectCourse(c) })
		if err != nil {
			writeSessionError(w, err)
			return
		}
		log.Debug("course selected", "session_id", id, "course_id", c.ID)
		writeJSON(w, http.StatusOK, v)
	}
}

// PUT /session/answer {"answer": "..."}
func SetAnswerHandler(store learner.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answer string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		v, err := store.Do(authmw.SubjectFromContext(r.Context()), func(s *learner.Session) error {
			return s.SetAnswer(req.Answer)
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /session/answer/submit {"answer": "..."}
//
// The body is optional; without it the answer stored by PUT /session/answer
// is graded.
func SubmitAnswerHandler(store learner.Store, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answer *string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		id := authmw.SubjectFromContext(r.Context())
		var courseID string
		var passed bool
		v, err := store.Do(id, func(s *learner.Session) error {
			if req.Answer != nil {
				if err := s.SetAnswer(*req.Answer); err != nil {
					return err
				}
			}
			res, err := s.SubmitAnswer()
			if err != nil {
				return err
			}
			c, _ := s.Course()
			courseID, passed = c.ID, res.Passed
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		log.Info("answer graded", "session_id", id, "course_id", courseID, "passed", passed)
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /session/back
func GoBackHandler(store learner.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := store.Do(authmw.SubjectFromContext(r.Context()), func(s *learner.Session) error {
			return s.GoBack()
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, learner.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, learner.ErrActionNotAllowed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
