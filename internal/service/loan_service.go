package service

import (
	"context"
	"strings"

	"github.com/branch-hr-api/internal/calendar"
	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/repository"
)

// LoanService определяет интерфейс бизнес-логики для откомандирований
type LoanService interface {
	Create(ctx context.Context, employeeID int64, req *dto.CreateLoanRequest) (*domain.Loan, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Loan, error)
	Delete(ctx context.Context, id int64) error
}

type loanService struct {
	loanRepo repository.LoanRepository
	empRepo  repository.EmployeeRepository
}

// NewLoanService создаёт новый экземпляр сервиса
func NewLoanService(loanRepo repository.LoanRepository, empRepo repository.EmployeeRepository) LoanService {
	return &loanService{
		loanRepo: loanRepo,
		empRepo:  empRepo,
	}
}

func (s *loanService) Create(ctx context.Context, employeeID int64, req *dto.CreateLoanRequest) (*domain.Loan, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	var end calendar.Date
	if req.EndDate != nil {
		end, err = parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		if end.Before(start) {
			return nil, domain.ErrInvalidDateRange
		}
	}

	existing, err := s.loanRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if l.Overlaps(start, end) {
			return nil, domain.ErrLoanOverlap
		}
	}

	loan := &domain.Loan{
		EmployeeID:  employeeID,
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   start,
		EndDate:     end,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

func (s *loanService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Loan, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.loanRepo.ListByEmployee(ctx, employeeID)
}

func (s *loanService) Delete(ctx context.Context, id int64) error {
	return s.loanRepo.Delete(ctx, id)
}
