package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/branch-hr-api/internal/calendar"
	"github.com/branch-hr-api/internal/domain"
)

// VacationRepository определяет интерфейс для работы с отпусками
type VacationRepository interface {
	Create(ctx context.Context, v *domain.Vacation) error
	GetByID(ctx context.Context, id int64) (*domain.Vacation, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Vacation, error)
	LastReturnOnOrBefore(ctx context.Context, employeeID int64, date calendar.Date) (calendar.Date, error)
	HasOverlap(ctx context.Context, employeeID int64, travelDate, returnDate calendar.Date) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type vacationRepository struct {
	db *gorm.DB
}

// NewVacationRepository создаёт новый экземпляр репозитория
func NewVacationRepository(db *gorm.DB) VacationRepository {
	return &vacationRepository{db: db}
}

func (r *vacationRepository) Create(ctx context.Context, v *domain.Vacation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vacationRepository) GetByID(ctx context.Context, id int64) (*domain.Vacation, error) {
	var v domain.Vacation
	err := r.db.WithContext(ctx).First(&v, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVacationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vacationRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Vacation, error) {
	var vacations []domain.Vacation
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("travel_date ASC").
		Find(&vacations).Error
	return vacations, err
}

// LastReturnOnOrBefore возвращает самую позднюю дату возвращения из отпуска,
// не позже date. Нулевая дата - отпусков ещё не было.
func (r *vacationRepository) LastReturnOnOrBefore(ctx context.Context, employeeID int64, date calendar.Date) (calendar.Date, error) {
	var v domain.Vacation
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND return_date <= ?", employeeID, date).
		Order("return_date DESC").
		Take(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendar.Date{}, nil
		}
		return calendar.Date{}, err
	}
	return v.ReturnDate, nil
}

// HasOverlap проверяет пересечение дней отсутствия (travel, return)
// с уже сохранёнными отпусками
func (r *vacationRepository) HasOverlap(ctx context.Context, employeeID int64, travelDate, returnDate calendar.Date) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Vacation{}).
		Where("employee_id = ? AND travel_date < ? AND return_date > ?", employeeID, returnDate, travelDate).
		Count(&count).Error
	return count > 0, err
}

func (r *vacationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Vacation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVacationNotFound
	}
	return nil
}
