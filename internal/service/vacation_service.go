package service

import (
	"context"

	"github.com/branch-hr-api/internal/calendar"
	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/repository"
	"github.com/branch-hr-api/internal/vacation"
)

// VacationPreview - расчёт отпуска с датой последнего возвращения,
// от которой считались отработанные дни
type VacationPreview struct {
	LastReturnOrArrival calendar.Date
	Accrual             vacation.Result
}

// VacationService определяет интерфейс бизнес-логики для отпусков
type VacationService interface {
	Preview(req *dto.VacationPreviewRequest) VacationPreview
	PreviewForEmployee(ctx context.Context, employeeID int64, req *dto.EmployeeVacationRequest) (VacationPreview, error)
	Create(ctx context.Context, employeeID int64, req *dto.EmployeeVacationRequest) (*domain.Vacation, VacationPreview, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Vacation, error)
	Delete(ctx context.Context, id int64) error
}

type vacationService struct {
	vacRepo repository.VacationRepository
	empRepo repository.EmployeeRepository
}

// NewVacationService создаёт новый экземпляр сервиса
func NewVacationService(vacRepo repository.VacationRepository, empRepo repository.EmployeeRepository) VacationService {
	return &vacationService{
		vacRepo: vacRepo,
		empRepo: empRepo,
	}
}

// Preview считает отпуск по произвольным датам без обращения к истории
func (s *vacationService) Preview(req *dto.VacationPreviewRequest) VacationPreview {
	return VacationPreview{
		LastReturnOrArrival: calendar.ParseOptional(req.LastReturnOrArrival),
		Accrual:             vacation.ComputeStrings(req.LastReturnOrArrival, req.TravelDate, req.ReturnDate),
	}
}

func (s *vacationService) PreviewForEmployee(ctx context.Context, employeeID int64, req *dto.EmployeeVacationRequest) (VacationPreview, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return VacationPreview{}, err
	}

	travel, ret, err := parseVacationDates(req)
	if err != nil {
		return VacationPreview{}, err
	}

	return s.preview(ctx, emp, travel, ret)
}

func (s *vacationService) Create(ctx context.Context, employeeID int64, req *dto.EmployeeVacationRequest) (*domain.Vacation, VacationPreview, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, VacationPreview{}, err
	}

	travel, ret, err := parseVacationDates(req)
	if err != nil {
		return nil, VacationPreview{}, err
	}

	// Сохраняем только отпуск хотя бы с одним днём отсутствия
	if !ret.After(travel.AddDays(1)) {
		return nil, VacationPreview{}, domain.ErrInvalidDateRange
	}

	overlap, err := s.vacRepo.HasOverlap(ctx, employeeID, travel, ret)
	if err != nil {
		return nil, VacationPreview{}, err
	}
	if overlap {
		return nil, VacationPreview{}, domain.ErrVacationOverlap
	}

	preview, err := s.preview(ctx, emp, travel, ret)
	if err != nil {
		return nil, VacationPreview{}, err
	}

	v := &domain.Vacation{
		EmployeeID:    employeeID,
		TravelDate:    travel,
		ReturnDate:    ret,
		RegularDays:   preview.Accrual.RegularDays,
		DeductionDays: preview.Accrual.DeductionDays,
		TotalDays:     preview.Accrual.TotalDays,
	}

	if err := s.vacRepo.Create(ctx, v); err != nil {
		return nil, VacationPreview{}, err
	}

	return v, preview, nil
}

func (s *vacationService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Vacation, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.vacRepo.ListByEmployee(ctx, employeeID)
}

func (s *vacationService) Delete(ctx context.Context, id int64) error {
	return s.vacRepo.Delete(ctx, id)
}

// preview берёт последнее возвращение из истории отпусков, иначе дату приезда
func (s *vacationService) preview(ctx context.Context, emp *domain.Employee, travel, ret calendar.Date) (VacationPreview, error) {
	last, err := s.vacRepo.LastReturnOnOrBefore(ctx, emp.ID, travel)
	if err != nil {
		return VacationPreview{}, err
	}
	if last.IsZero() {
		last = emp.ArrivalDate
	}

	return VacationPreview{
		LastReturnOrArrival: last,
		Accrual:             vacation.Compute(last, travel, ret),
	}, nil
}

func parseVacationDates(req *dto.EmployeeVacationRequest) (calendar.Date, calendar.Date, error) {
	travel, err := parseDate(req.TravelDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	return travel, ret, nil
}
