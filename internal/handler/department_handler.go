package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/hierarchy"
	"github.com/branch-hr-api/internal/service"
)

type DepartmentHandler struct {
	responder
	deptService service.DepartmentService
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		responder:   newResponder(logger),
		deptService: deptService,
	}
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toDepartmentResponse(dept))
}

// List отдаёт плоский список в порядке отображения: родитель перед детьми
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	tree, err := h.deptService.Hierarchy(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.logWarnings(r, tree.Warnings)

	resp := dto.DepartmentListResponse{
		Departments: make([]dto.DepartmentListItem, len(tree.Flattened)),
		Warnings:    tree.Warnings,
	}
	for i, e := range tree.Flattened {
		resp.Departments[i] = dto.DepartmentListItem{
			ID:       parseID(e.Department.ID),
			Name:     e.Department.Name,
			ParentID: parseParentID(e.Department.ParentID),
			Level:    e.Level,
		}
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.deptService.Hierarchy(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.logWarnings(r, tree.Warnings)

	resp := make([]dto.DepartmentTreeNode, len(tree.Roots))
	for i, root := range tree.Roots {
		resp[i] = toTreeNode(root)
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Roots отдаёт соответствие имя подразделения -> имя корня
func (h *DepartmentHandler) Roots(w http.ResponseWriter, r *http.Request) {
	tree, err := h.deptService.Hierarchy(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.logWarnings(r, tree.Warnings)

	h.respondJSON(w, http.StatusOK, tree.RootNameByDepartmentName)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "department")
	if !ok {
		return
	}

	query := parseGetQuery(r)
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id, &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponseWithChildren(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "department")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "department")
	if !ok {
		return
	}

	query := parseDeleteQuery(r)
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id, &query); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseGetQuery(r *http.Request) dto.GetDepartmentQuery {
	query := dto.GetDepartmentQuery{Depth: 1}

	if depthStr := r.URL.Query().Get("depth"); depthStr != "" {
		if depth, err := strconv.Atoi(depthStr); err == nil {
			query.Depth = depth
		}
	}

	return query
}

func parseDeleteQuery(r *http.Request) dto.DeleteDepartmentQuery {
	query := dto.DeleteDepartmentQuery{
		Mode: r.URL.Query().Get("mode"),
	}

	if reassignStr := r.URL.Query().Get("reassign_to_department_id"); reassignStr != "" {
		if reassignID, err := strconv.ParseInt(reassignStr, 10, 64); err == nil {
			query.ReassignToDepartmentID = &reassignID
		}
	}

	return query
}

// parseID возвращает идентификатор из снимка иерархии. Снимок строится
// из числовых ключей, поэтому ошибка разбора невозможна.
func parseID(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}

func parseParentID(id string) *int64 {
	if id == "" {
		return nil
	}
	n := parseID(id)
	return &n
}

func toTreeNode(n *hierarchy.Node) dto.DepartmentTreeNode {
	out := dto.DepartmentTreeNode{
		ID:       parseID(n.Department.ID),
		Name:     n.Department.Name,
		ParentID: parseParentID(n.Department.ParentID),
		Level:    n.Level,
	}
	if len(n.Children) > 0 {
		out.Children = make([]dto.DepartmentTreeNode, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = toTreeNode(child)
		}
	}
	return out
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		ParentID:  dept.ParentID,
		CreatedAt: dept.CreatedAt,
	}
}

func toDepartmentResponseWithChildren(dept *domain.Department) dto.DepartmentResponse {
	resp := toDepartmentResponse(dept)

	if len(dept.Children) > 0 {
		resp.Children = make([]dto.DepartmentResponse, len(dept.Children))
		for i := range dept.Children {
			resp.Children[i] = toDepartmentResponseWithChildren(&dept.Children[i])
		}
	}

	return resp
}
