package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/branch-hr-api/internal/domain"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByIDWithChildren(ctx context.Context, id int64, depth int) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	IsDescendant(ctx context.Context, ancestorID, descendantID int64) (bool, error)
	GetAllDescendantIDs(ctx context.Context, id int64) ([]int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Omit("Children").Create(dept).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByIDWithChildren(ctx context.Context, id int64, depth int) (*domain.Department, error) {
	dept, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Рекурсивно загружаем дочерние подразделения
	if depth > 0 {
		if err := r.loadChildren(ctx, dept, depth); err != nil {
			return nil, err
		}
	}

	return dept, nil
}

func (r *departmentRepository) loadChildren(ctx context.Context, dept *domain.Department, depth int) error {
	if depth <= 0 {
		return nil
	}

	var children []domain.Department
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", dept.ID).
		Order("id ASC").
		Find(&children).Error
	if err != nil {
		return err
	}

	for i := range children {
		if err := r.loadChildren(ctx, &children[i], depth-1); err != nil {
			return err
		}
	}

	dept.Children = children
	return nil
}

// List возвращает все подразделения в порядке создания
func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Omit("Children").Save(dept).Error
}

// Delete удаляет подразделение; дочерние удаляются каскадно по внешнему ключу
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// ExistsByName проверяет имя среди всех подразделений: сотрудники
// ссылаются на подразделение по имени
func (r *departmentRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Department{}).Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) IsDescendant(ctx context.Context, ancestorID, descendantID int64) (bool, error) {
	descendants, err := r.GetAllDescendantIDs(ctx, ancestorID)
	if err != nil {
		return false, err
	}

	for _, id := range descendants {
		if id == descendantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *departmentRepository) GetAllDescendantIDs(ctx context.Context, id int64) ([]int64, error) {
	var result []int64

	// Рекурсивный CTE работает и в SQLite, и в PostgreSQL.
	// UNION вместо UNION ALL не даёт зациклиться на испорченных данных.
	query := `
		WITH RECURSIVE descendants(id) AS (
			SELECT id FROM departments WHERE parent_id = ?
			UNION
			SELECT d.id FROM departments d
			INNER JOIN descendants ds ON d.parent_id = ds.id
		)
		SELECT id FROM descendants
	`

	rows, err := r.db.WithContext(ctx).Raw(query, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var descendantID int64
		if err := rows.Scan(&descendantID); err != nil {
			return nil, err
		}
		result = append(result, descendantID)
	}

	return result, rows.Err()
}
