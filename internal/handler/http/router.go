package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/payflow-hq/payflow-backend-go/internal/handler/http/middleware"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Department   DepartmentHandler
	Attendance   AttendanceHandler
	Settings     SettingsHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payflow-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/change-password", h.Auth.ChangePassword)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Employee self-service
			r.Route("/me", func(r chi.Router) {
				r.Get("/attendance/today", h.Attendance.TodayStatus)
				r.Post("/attendance/check-in", h.Attendance.CheckIn)
				r.Post("/attendance/check-out", h.Attendance.CheckOut)
				r.Get("/attendance", h.Attendance.MyHistory)
				r.Get("/profile", h.Employee.MyProfile)
				r.Get("/notifications", h.Notification.MyNotifications)
				r.Get("/salary-report", h.Report.MySalaryReport)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/email-suggestions", h.Employee.SuggestEmails)
					r.Get("/{id}", h.Employee.GetByID)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Route("/departments", func(r chi.Router) {
					r.Get("/", h.Department.List)
					r.Post("/", h.Department.Create)
					r.Get("/{id}", h.Department.GetByID)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", h.Attendance.ListByDate)
					r.Post("/bulk", h.Attendance.BulkMark)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", h.Settings.Get)
					r.Put("/", h.Settings.Update)
				})

				r.Get("/statistics", h.Dashboard.Statistics)
				r.Get("/salary-report/{id}", h.Report.SalaryReport)
			})
		})
	})

	return r
}
