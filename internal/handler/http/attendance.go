package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-hq/payflow-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	BulkMark(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Employee identity missing from token")
		return
	}

	resp, err := a.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Employee identity missing from token")
		return
	}

	resp, err := a.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

// TodayStatus implements AttendanceHandler.
func (a *AttendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Employee identity missing from token")
		return
	}

	resp, err := a.attendanceService.TodayStatus(r.Context(), employeeID)
	if err != nil {
		slog.Error("TodayStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MyHistory implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Employee identity missing from token")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	resp, err := a.attendanceService.ListForEmployee(r.Context(), employeeID, limit)
	if err != nil {
		slog.Error("MyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByDate implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	resp, err := a.attendanceService.ListForDate(r.Context(), date)
	if err != nil {
		slog.Error("ListByDate service error", "error", err)
		response.BadRequest(w, "Invalid date filter", nil)
		return
	}

	response.Success(w, resp)
}

// BulkMark implements AttendanceHandler.
func (a *AttendanceHandlerImpl) BulkMark(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkMarkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkMark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.attendanceService.BulkMark(r.Context(), &req)
	if err != nil {
		slog.Error("BulkMark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", resp)
}
