package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/report"
	"github.com/payflow-hq/payflow-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MySalaryReport(w http.ResponseWriter, r *http.Request)
	SalaryReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func (h *ReportHandlerImpl) writeReport(w http.ResponseWriter, r *http.Request, employeeID string) {
	rep, err := h.reportService.SalaryReport(r.Context(), employeeID)
	if err != nil {
		slog.Error("SalaryReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=salary_report_%s.txt", rep.EmployeeID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rep.Content))
}

// MySalaryReport implements ReportHandler.
func (h *ReportHandlerImpl) MySalaryReport(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Employee identity missing from token")
		return
	}

	h.writeReport(w, r, employeeID)
}

// SalaryReport implements ReportHandler.
func (h *ReportHandlerImpl) SalaryReport(w http.ResponseWriter, r *http.Request) {
	h.writeReport(w, r, chi.URLParam(r, "id"))
}
