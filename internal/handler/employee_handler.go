package handler

import (
	"log/slog"
	"net/http"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/service"
)

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  newResponder(logger),
		empService: empService,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

// List отдаёт сотрудников, опционально отфильтрованных по имени подразделения
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	var department *string
	if r.URL.Query().Has("department") {
		d := r.URL.Query().Get("department")
		department = &d
	}

	employees, err := h.empService.List(r.Context(), department)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:            emp.ID,
		EmployeeNo:    emp.EmployeeNo,
		FullName:      emp.FullName,
		Position:      emp.Position,
		Department:    emp.Department,
		Nationality:   emp.Nationality,
		ArrivalDate:   optionalDate(emp.ArrivalDate.String()),
		Salary:        emp.Salary.StringFixed(2),
		ResidenceRoom: emp.ResidenceRoom,
		CreatedAt:     emp.CreatedAt,
	}
}
