package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/skillverse-api/internal/aiquiz"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/certificate"
	"github.com/saulo-duarte/skillverse-api/internal/course"
	_ "github.com/saulo-duarte/skillverse-api/internal/docs"
	"github.com/saulo-duarte/skillverse-api/internal/feedback"
	"github.com/saulo-duarte/skillverse-api/internal/middlewares"
	"github.com/saulo-duarte/skillverse-api/internal/progress"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"github.com/saulo-duarte/skillverse-api/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	CourseHandler      *course.Handler
	QuizHandler        *quiz.Handler
	ProgressHandler    *progress.Handler
	FeedbackHandler    *feedback.Handler
	CertificateHandler *certificate.Handler
	AIQuizHandler      *aiquiz.Handler
	AuthHandler        *auth.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/logout", cfg.AuthHandler.Logout)
		r.With(auth.AuthMiddleware).Post("/refresh", cfg.UserHandler.RefreshToken)
	})

	r.Mount("/courses", course.Routes(cfg.CourseHandler))
	r.Get("/modules/{courseId}", cfg.CourseHandler.ListModules)
	r.Get("/certificates/verify", cfg.CertificateHandler.Verify)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/api/feedback", feedback.Routes(cfg.FeedbackHandler))
		r.Mount("/api/certificates", certificate.Routes(cfg.CertificateHandler))

		r.Get("/api/modules/{moduleId}", cfg.CourseHandler.GetModule)
		r.Get("/api/modules/{moduleId}/quiz", cfg.QuizHandler.ListQuestions)
		progress.Register(r, cfg.ProgressHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleCreator))

			r.Post("/add-course", cfg.CourseHandler.CreateCourse)
			r.Delete("/delete-course/{id}", cfg.CourseHandler.DeleteCourse)
			r.Delete("/delete-module/{id}", cfg.CourseHandler.DeleteModule)
			r.Mount("/api/quiz", quiz.Routes(cfg.QuizHandler))
			aiquiz.Register(r, cfg.AIQuizHandler)
		})
	})
	return r
}
