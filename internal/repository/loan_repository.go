package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/branch-hr-api/internal/domain"
)

// LoanRepository определяет интерфейс для работы с командировками
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Loan, error)
	Delete(ctx context.Context, id int64) error
}

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository создаёт новый экземпляр репозитория
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	var loan domain.Loan
	err := r.db.WithContext(ctx).First(&loan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date ASC").
		Find(&loans).Error
	return loans, err
}

func (r *loanRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Loan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLoanNotFound
	}
	return nil
}
