package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/branch-hr-api/internal/service"
)

type ReportHandler struct {
	responder
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		responder:     newResponder(logger),
		reportService: reportService,
	}
}

func (h *ReportHandler) Headcount(w http.ResponseWriter, r *http.Request) {
	report, warnings, err := h.reportService.Headcount(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.logWarnings(r, warnings)

	h.respondJSON(w, http.StatusOK, report)
}

// SalarySheet отдаёт ведомость в CSV. Отчёт собирается в буфер, чтобы
// ошибка не оборвала уже начатый ответ.
func (h *ReportHandler) SalarySheet(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	warnings, err := h.reportService.WriteSalarySheetCSV(r.Context(), &buf)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.logWarnings(r, warnings)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="salary-sheet.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write salary sheet", slog.Any("error", err))
	}
}
