package progress

import "github.com/go-chi/chi/v5"

// Register mounts the progress endpoints on r. They expect AuthMiddleware to
// have run.
func Register(r chi.Router, h *Handler) {
	r.Get("/api/next-incomplete-module/{userId}/{courseId}", h.NextIncompleteModule)
	r.Get("/module-completion/{userId}/{courseId}", h.CourseCompletion)
	r.Post("/api/submit-quiz", h.SubmitQuiz)
	r.Post("/api/complete-course", h.CompleteCourse)
	r.Post("/api/enroll", h.Enroll)
	r.Get("/api/enrollment/{userId}/{courseId}", h.EnrollmentState)
	r.Post("/api/restart-course", h.RestartCourse)
	r.Get("/api/user-progress/{userId}", h.UserProgress)
}
