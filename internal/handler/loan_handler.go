package handler

import (
	"log/slog"
	"net/http"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/service"
)

type LoanHandler struct {
	responder
	loanService service.LoanService
}

func NewLoanHandler(loanService service.LoanService, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{
		responder:   newResponder(logger),
		loanService: loanService,
	}
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	loan, err := h.loanService.Create(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toLoanResponse(loan))
}

func (h *LoanHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	loans, err := h.loanService.ListByEmployee(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.LoanResponse, len(loans))
	for i := range loans {
		resp[i] = toLoanResponse(&loans[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *LoanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "loan")
	if !ok {
		return
	}

	if err := h.loanService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toLoanResponse(l *domain.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:          l.ID,
		EmployeeID:  l.EmployeeID,
		Destination: l.Destination,
		StartDate:   l.StartDate.String(),
		EndDate:     optionalDate(l.EndDate.String()),
		CreatedAt:   l.CreatedAt,
	}
}
