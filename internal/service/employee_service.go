package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/branch-hr-api/internal/calendar"
	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, department *string) ([]domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		empRepo: empRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	emp := &domain.Employee{
		FullName:      strings.TrimSpace(req.FullName),
		Position:      strings.TrimSpace(req.Position),
		Department:    strings.TrimSpace(req.Department),
		Nationality:   strings.TrimSpace(req.Nationality),
		ResidenceRoom: strings.TrimSpace(req.ResidenceRoom),
	}

	if err := s.setEmployeeNo(ctx, emp, req.EmployeeNo, nil); err != nil {
		return nil, err
	}

	// Парсим дату приезда, если передана
	if req.ArrivalDate != nil {
		arrival, err := parseDate(*req.ArrivalDate)
		if err != nil {
			return nil, err
		}
		emp.ArrivalDate = arrival
	}

	if req.Salary != nil {
		salary, err := parseSalary(*req.Salary)
		if err != nil {
			return nil, err
		}
		emp.Salary = salary
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, department *string) ([]domain.Employee, error) {
	return s.empRepo.List(ctx, department)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmployeeNo != nil {
		if err := s.setEmployeeNo(ctx, emp, req.EmployeeNo, &id); err != nil {
			return nil, err
		}
	}
	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Position != nil {
		emp.Position = strings.TrimSpace(*req.Position)
	}
	if req.Department != nil {
		emp.Department = strings.TrimSpace(*req.Department)
	}
	if req.Nationality != nil {
		emp.Nationality = strings.TrimSpace(*req.Nationality)
	}
	if req.ResidenceRoom != nil {
		emp.ResidenceRoom = strings.TrimSpace(*req.ResidenceRoom)
	}
	if req.ArrivalDate != nil {
		arrival, err := parseDate(*req.ArrivalDate)
		if err != nil {
			return nil, err
		}
		emp.ArrivalDate = arrival
	}
	if req.Salary != nil {
		salary, err := parseSalary(*req.Salary)
		if err != nil {
			return nil, err
		}
		emp.Salary = salary
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

// setEmployeeNo проверяет уникальность табельного номера
func (s *employeeService) setEmployeeNo(ctx context.Context, emp *domain.Employee, employeeNo *string, excludeID *int64) error {
	if employeeNo == nil {
		return nil
	}

	no := strings.TrimSpace(*employeeNo)
	if no == "" {
		emp.EmployeeNo = nil
		return nil
	}

	exists, err := s.empRepo.ExistsByEmployeeNo(ctx, no, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateEmployeeNo
	}

	emp.EmployeeNo = &no
	return nil
}

func parseSalary(s string) (decimal.Decimal, error) {
	salary, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidSalary, s)
	}
	return salary.Round(2), nil
}

// parseDate приводит ошибку разбора даты к бизнес-ошибке
func parseDate(s string) (calendar.Date, error) {
	d, err := calendar.Parse(s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return d, nil
}
