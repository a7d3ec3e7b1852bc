package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/branch-hr-api/internal/domain"
	"github.com/branch-hr-api/internal/dto"
	"github.com/branch-hr-api/internal/hierarchy"
	"github.com/branch-hr-api/internal/repository"
)

// salarySheetHeader - колонки ведомости по зарплате
var salarySheetHeader = []string{"employee_no", "full_name", "position", "department", "root_department", "salary"}

// ReportService строит сводные отчёты по корневым подразделениям
type ReportService interface {
	Headcount(ctx context.Context) (*dto.HeadcountReport, []hierarchy.Warning, error)
	WriteSalarySheetCSV(ctx context.Context, w io.Writer) ([]hierarchy.Warning, error)
}

type reportService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(deptRepo repository.DepartmentRepository, empRepo repository.EmployeeRepository) ReportService {
	return &reportService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
	}
}

// snapshot - сотрудники и иерархия на один момент
type snapshot struct {
	tree      hierarchy.Result
	employees []domain.Employee
	rootRank  map[string]int
	deptRank  map[string]int
}

func (s *reportService) load(ctx context.Context) (*snapshot, error) {
	depts, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	employees, err := s.empRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	snap := &snapshot{
		tree:      hierarchy.Build(ToHierarchy(depts)),
		employees: employees,
		rootRank:  make(map[string]int),
		deptRank:  make(map[string]int),
	}
	for i, root := range snap.tree.Roots {
		if _, ok := snap.rootRank[root.Department.Name]; !ok {
			snap.rootRank[root.Department.Name] = i
		}
	}
	for i, e := range snap.tree.Flattened {
		if _, ok := snap.deptRank[e.Department.Name]; !ok {
			snap.deptRank[e.Department.Name] = i
		}
	}
	return snap, nil
}

// lessName упорядочивает имена: известные по рангу, затем прочие по алфавиту,
// пустое имя последним
func lessName(rank map[string]int, a, b string) bool {
	if a == b {
		return false
	}
	if a == "" || b == "" {
		return b == ""
	}
	ra, okA := rank[a]
	rb, okB := rank[b]
	switch {
	case okA && okB:
		return ra < rb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func (s *reportService) Headcount(ctx context.Context) (*dto.HeadcountReport, []hierarchy.Warning, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[string]int)
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, emp := range snap.employees {
		root := snap.tree.RootOf(emp.Department)
		counts[root]++
		totals[root] = totals[root].Add(emp.Salary)
		grand = grand.Add(emp.Salary)
	}

	roots := make([]string, 0, len(counts))
	for root := range counts {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return lessName(snap.rootRank, roots[i], roots[j])
	})

	report := &dto.HeadcountReport{
		Rows:           make([]dto.HeadcountRow, 0, len(roots)),
		TotalEmployees: len(snap.employees),
		TotalSalary:    grand.StringFixed(2),
	}
	for _, root := range roots {
		report.Rows = append(report.Rows, dto.HeadcountRow{
			RootDepartment: root,
			Employees:      counts[root],
			SalaryTotal:    totals[root].StringFixed(2),
		})
	}

	return report, snap.tree.Warnings, nil
}

// WriteSalarySheetCSV пишет зарплатную ведомость: строка на сотрудника
// и итоговая строка в конце
func (s *reportService) WriteSalarySheetCSV(ctx context.Context, w io.Writer) ([]hierarchy.Warning, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	employees := snap.employees
	sort.SliceStable(employees, func(i, j int) bool {
		a, b := employees[i], employees[j]
		rootA, rootB := snap.tree.RootOf(a.Department), snap.tree.RootOf(b.Department)
		if rootA != rootB {
			return lessName(snap.rootRank, rootA, rootB)
		}
		if a.Department != b.Department {
			return lessName(snap.deptRank, a.Department, b.Department)
		}
		return a.FullName < b.FullName
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(salarySheetHeader); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, emp := range employees {
		no := ""
		if emp.EmployeeNo != nil {
			no = *emp.EmployeeNo
		}
		record := []string{
			no,
			emp.FullName,
			emp.Position,
			emp.Department,
			snap.tree.RootOf(emp.Department),
			emp.Salary.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
		total = total.Add(emp.Salary)
	}

	if err := cw.Write([]string{"", "TOTAL", "", "", "", total.StringFixed(2)}); err != nil {
		return nil, err
	}

	cw.Flush()
	return snap.tree.Warnings, cw.Error()
}
