package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/hierarchy"
	"github.com/branch-hr-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetByID(ctx context.Context, id int64, query *dto.GetDepartmentQuery) (*domain.Department, error)
	Hierarchy(ctx context.Context) (hierarchy.Result, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64, query *dto.DeleteDepartmentQuery) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, empRepo repository.EmployeeRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
	}
}

// ToHierarchy приводит подразделения к снимку со строковыми идентификаторами
func ToHierarchy(depts []domain.Department) []hierarchy.Department {
	out := make([]hierarchy.Department, len(depts))
	for i, d := range depts {
		out[i] = hierarchy.Department{
			ID:   strconv.FormatInt(d.ID, 10),
			Name: d.Name,
		}
		if d.ParentID != nil {
			out[i].ParentID = strconv.FormatInt(*d.ParentID, 10)
		}
	}
	return out
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	name := strings.TrimSpace(req.Name)

	// Проверяем существование родительского подразделения
	if req.ParentID != nil {
		_, err := s.deptRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
	}

	// Проверяем уникальность имени
	exists, err := s.deptRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept := &domain.Department{
		Name:     name,
		ParentID: req.ParentID,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64, query *dto.GetDepartmentQuery) (*domain.Department, error) {
	return s.deptRepo.GetByIDWithChildren(ctx, id, query.Depth)
}

// Hierarchy строит дерево по текущему снимку подразделений
func (s *departmentService) Hierarchy(ctx context.Context) (hierarchy.Result, error) {
	depts, err := s.deptRepo.List(ctx)
	if err != nil {
		return hierarchy.Result{}, err
	}
	return hierarchy.Build(ToHierarchy(depts)), nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Обновляем parent_id, если передано
	if req.ParentID != nil {
		newParentID := *req.ParentID

		// Проверка: нельзя сделать подразделение родителем самого себя
		if newParentID == id {
			return nil, domain.ErrSelfReference
		}

		// Проверяем существование нового родителя
		_, err := s.deptRepo.GetByID(ctx, newParentID)
		if err != nil {
			return nil, err
		}

		// Проверка на циклическую ссылку: нельзя переместить в своего потомка
		isDescendant, err := s.deptRepo.IsDescendant(ctx, id, newParentID)
		if err != nil {
			return nil, err
		}
		if isDescendant {
			return nil, domain.ErrCyclicReference
		}
	}

	oldName := dept.Name

	// Обновляем имя, если передано
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)

		exists, err := s.deptRepo.ExistsByName(ctx, name, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateDepartmentName
		}

		dept.Name = name
	}

	if req.ParentID != nil {
		dept.ParentID = req.ParentID
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	// Сотрудники ссылаются на подразделение по имени
	if oldName != dept.Name {
		if err := s.empRepo.ReassignDepartments(ctx, []string{oldName}, dept.Name); err != nil {
			return nil, err
		}
	}

	return dept, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64, query *dto.DeleteDepartmentQuery) error {
	// Проверяем существование подразделения
	_, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch query.Mode {
	case "cascade":
		// Сотрудники сохраняют текстовое имя подразделения и в отчётах
		// становятся собственным корнем
		return s.deptRepo.Delete(ctx, id)

	case "reassign":
		if query.ReassignToDepartmentID == nil {
			return domain.ErrReassignTargetRequired
		}

		targetID := *query.ReassignToDepartmentID

		// Нельзя переназначить в то же подразделение
		if targetID == id {
			return domain.ErrCannotReassignToSelf
		}

		// Проверяем существование целевого подразделения
		target, err := s.deptRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, domain.ErrDepartmentNotFound) {
				return domain.ErrReassignTargetNotFound
			}
			return err
		}

		descendants, err := s.deptRepo.GetAllDescendantIDs(ctx, id)
		if err != nil {
			return err
		}

		subtree := make(map[int64]bool, len(descendants)+1)
		subtree[id] = true
		for _, descID := range descendants {
			subtree[descID] = true
		}

		// Целевое подразделение не может быть удалено вместе с поддеревом
		if subtree[targetID] {
			return domain.ErrCannotReassignToSelf
		}

		names, err := s.subtreeNames(ctx, subtree)
		if err != nil {
			return err
		}

		// Переназначаем сотрудников всего поддерева
		if err := s.empRepo.ReassignDepartments(ctx, names, target.Name); err != nil {
			return err
		}

		// Удаляем подразделение (дети удалятся каскадно из-за FK constraint)
		return s.deptRepo.Delete(ctx, id)

	default:
		return domain.ErrInvalidDeleteMode
	}
}

func (s *departmentService) subtreeNames(ctx context.Context, subtree map[int64]bool) ([]string, error) {
	depts, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(subtree))
	for _, d := range depts {
		if subtree[d.ID] {
			names = append(names, d.Name)
		}
	}
	return names, nil
}
