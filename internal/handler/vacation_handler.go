package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/service"
)

type VacationHandler struct {
	responder
	vacService service.VacationService
}

func NewVacationHandler(vacService service.VacationService, logger *slog.Logger) *VacationHandler {
	return &VacationHandler{
		responder:  newResponder(logger),
		vacService: vacService,
	}
}

// Preview считает отпуск по переданным датам. Некорректные даты не являются
// ошибкой запроса: расчёт просто возвращает нули.
func (h *VacationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.VacationPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, toPreviewResponse(h.vacService.Preview(&req)))
}

func (h *VacationHandler) PreviewForEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	var req dto.EmployeeVacationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	preview, err := h.vacService.PreviewForEmployee(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPreviewResponse(preview))
}

func (h *VacationHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	var req dto.EmployeeVacationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	v, preview, err := h.vacService.Create(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.CreateVacationResponse{
		Vacation: toVacationResponse(v),
		Accrual:  toPreviewResponse(preview),
	})
}

func (h *VacationHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	vacations, err := h.vacService.ListByEmployee(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.VacationResponse, len(vacations))
	for i := range vacations {
		resp[i] = toVacationResponse(&vacations[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *VacationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "vacation")
	if !ok {
		return
	}

	if err := h.vacService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPreviewResponse(p service.VacationPreview) dto.VacationPreviewResponse {
	return dto.VacationPreviewResponse{
		LastReturnOrArrival: optionalDate(p.LastReturnOrArrival.String()),
		Accrual:             p.Accrual,
	}
}

func toVacationResponse(v *domain.Vacation) dto.VacationResponse {
	return dto.VacationResponse{
		ID:            v.ID,
		EmployeeID:    v.EmployeeID,
		TravelDate:    v.TravelDate.String(),
		ReturnDate:    v.ReturnDate.String(),
		RegularDays:   v.RegularDays,
		DeductionDays: v.DeductionDays,
		TotalDays:     v.TotalDays,
		CreatedAt:     v.CreatedAt,
	}
}
