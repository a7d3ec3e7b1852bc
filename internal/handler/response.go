package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/hierarchy"
)

// responder - общая часть хендлеров: валидация, ответы и маппинг ошибок
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: validator.New(),
		logger:    logger,
	}
}

// decodeAndValidate читает тело запроса и проверяет его. При ошибке ответ уже записан.
func (h responder) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}

	return true
}

// extractID читает числовой идентификатор из параметра маршрута
func (h responder) extractID(w http.ResponseWriter, r *http.Request, what string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		details := "id must be a positive integer"
		if err != nil {
			details = err.Error()
		}
		h.respondError(w, http.StatusBadRequest, "invalid "+what+" id", details)
		return 0, false
	}
	return id, true
}

// logWarnings пишет в лог нарушения целостности иерархии
func (h responder) logWarnings(r *http.Request, warnings []hierarchy.Warning) {
	for _, warn := range warnings {
		h.logger.Warn("department hierarchy integrity",
			slog.String("department_id", warn.DepartmentID),
			slog.String("department_name", warn.DepartmentName),
			slog.String("message", warn.Message),
			slog.String("request_id", chimiddleware.GetReqID(r.Context())),
		)
	}
}

func (h responder) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound):
		h.respondError(w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrVacationNotFound):
		h.respondError(w, http.StatusNotFound, "vacation not found", "")
	case errors.Is(err, domain.ErrLoanNotFound):
		h.respondError(w, http.StatusNotFound, "loan not found", "")
	case errors.Is(err, domain.ErrDuplicateDepartmentName):
		h.respondError(w, http.StatusConflict, "department with this name already exists", "")
	case errors.Is(err, domain.ErrDuplicateEmployeeNo):
		h.respondError(w, http.StatusConflict, "employee with this number already exists", "")
	case errors.Is(err, domain.ErrSelfReference):
		h.respondError(w, http.StatusBadRequest, "department cannot be its own parent", "")
	case errors.Is(err, domain.ErrCyclicReference):
		h.respondError(w, http.StatusConflict, "moving department would create a cycle", "")
	case errors.Is(err, domain.ErrInvalidDeleteMode):
		h.respondError(w, http.StatusBadRequest, "invalid delete mode, use 'cascade' or 'reassign'", "")
	case errors.Is(err, domain.ErrReassignTargetRequired):
		h.respondError(w, http.StatusBadRequest, "reassign_to_department_id is required when mode is reassign", "")
	case errors.Is(err, domain.ErrReassignTargetNotFound):
		h.respondError(w, http.StatusNotFound, "target department for reassignment not found", "")
	case errors.Is(err, domain.ErrCannotReassignToSelf):
		h.respondError(w, http.StatusBadRequest, "cannot reassign to the same department being deleted", "")
	case errors.Is(err, domain.ErrInvalidDate):
		h.respondError(w, http.StatusBadRequest, "invalid date, use YYYY-MM-DD", err.Error())
	case errors.Is(err, domain.ErrInvalidSalary):
		h.respondError(w, http.StatusBadRequest, "invalid salary", err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange):
		h.respondError(w, http.StatusBadRequest, "end date must be after start date", "")
	case errors.Is(err, domain.ErrVacationOverlap):
		h.respondError(w, http.StatusConflict, "vacation overlaps an existing vacation", "")
	case errors.Is(err, domain.ErrLoanOverlap):
		h.respondError(w, http.StatusConflict, "loan overlaps an existing loan", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// optionalDate возвращает nil для нулевой даты
func optionalDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
