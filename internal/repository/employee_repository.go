package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/branch-hr-api/internal/domain"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, department *string) ([]domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmployeeNo(ctx context.Context, employeeNo string, excludeID *int64) (bool, error)
	ReassignDepartments(ctx context.Context, fromNames []string, toName string) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// List возвращает сотрудников, при department != nil - только этого подразделения
func (r *employeeRepository) List(ctx context.Context, department *string) ([]domain.Employee, error) {
	var employees []domain.Employee
	query := r.db.WithContext(ctx)
	if department != nil {
		query = query.Where("department = ?", *department)
	}
	err := query.Order("full_name ASC, id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

// Delete удаляет сотрудника вместе с отпусками и командировками (каскад)
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) ExistsByEmployeeNo(ctx context.Context, employeeNo string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("employee_no = ?", employeeNo)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ReassignDepartments переводит сотрудников из подразделений fromNames в toName
func (r *employeeRepository) ReassignDepartments(ctx context.Context, fromNames []string, toName string) error {
	if len(fromNames) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("department IN ?", fromNames).
		Update("department", toName).Error
}
