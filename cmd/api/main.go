package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/payflow-hq/payflow-backend-go/internal/config"
	appHTTP "github.com/payflow-hq/payflow-backend-go/internal/handler/http"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/cron"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/jwt"
	"github.com/payflow-hq/payflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payflow-hq/payflow-backend-go/internal/service/attendance"
	authService "github.com/payflow-hq/payflow-backend-go/internal/service/auth"
	dashboardService "github.com/payflow-hq/payflow-backend-go/internal/service/dashboard"
	departmentService "github.com/payflow-hq/payflow-backend-go/internal/service/department"
	employeeService "github.com/payflow-hq/payflow-backend-go/internal/service/employee"
	notificationService "github.com/payflow-hq/payflow-backend-go/internal/service/notification"
	reportService "github.com/payflow-hq/payflow-backend-go/internal/service/report"
	settingsService "github.com/payflow-hq/payflow-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Invalid APP_TIMEZONE, falling back to UTC:", err)
		loc = time.UTC
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, employeeRepo, JWTRepository, JWTService, cfg.Admin)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, settingsRepo, cfg.Provision)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, settingsRepo, loc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, departmentRepo, attendanceRepo, settingsRepo, loc)
	notificationSvc := notificationService.NewNotificationService(attendanceRepo)
	reportSvc := reportService.NewReportService(employeeRepo, settingsRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(JWTRepository).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
