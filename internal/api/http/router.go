package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authmw "github.com/mind-engage/serendipity-ink/internal/auth/middleware"
	"github.com/mind-engage/serendipity-ink/internal/learner"
	"github.com/mind-engage/serendipity-ink/internal/logger"
	"github.com/mind-engage/serendipity-ink/internal/rbac"
)

type RouterDeps struct {
	Store       learner.Store
	Auth        *authmw.AuthService
	Log         *logger.Logger
	CORSOrigins []string
	LogRequests bool
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	if d.LogRequests {
		r.Use(RequestLogger(d.Log))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	r.Get("/courses", ListCoursesHandler())
	r.Get("/courses/{courseID}", GetCourseHandler())
	r.Post("/sessions", CreateSessionHandler(d.Store, d.Auth, d.Log))

	// Bearer-bound session routes
	r.Route("/session", func(sr chi.Router) {
		sr.Use(authmw.JWTMiddleware(d.Auth))

		sr.With(rbac.RequireAny(rbac.PermSessionView, rbac.PermSessionAct)).
			Get("/", GetSessionHandler(d.Store))
		sr.With(rbac.RequireAny(rbac.PermSessionView, rbac.PermSessionAct)).
			Post("/token", RefreshTokenHandler(d.Store, d.Auth))

		sr.Group(func(ar chi.Router) {
			ar.Use(rbac.Require(rbac.PermSessionAct))
			ar.Post("/profile", CreateProfileHandler(d.Store, d.Log))
			ar.Post("/course", SelectCourseHandler(d.Store, d.Log))
			ar.Put("/answer", SetAnswerHandler(d.Store))
			ar.Post("/answer/submit", SubmitAnswerHandler(d.Store, d.Log))
			ar.Post("/back", GoBackHandler(d.Store))
		})
	})
	return r
}
