package dto

import (
	"time"

	"github.com/branch-hr-api/internal/hierarchy"
	"github.com/branch-hr-api/internal/vacation"
)

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,min=1"`
}

// UpdateDepartmentRequest - запрос на обновление подразделения
type UpdateDepartmentRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	ParentID *int64  `json:"parent_id" validate:"omitempty,min=1"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	ParentID  *int64               `json:"parent_id"`
	CreatedAt time.Time            `json:"created_at"`
	Children  []DepartmentResponse `json:"children,omitempty"`
}

// DepartmentListItem - элемент плоского списка подразделений для отображения
type DepartmentListItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
	Level    int    `json:"level"`
}

// DepartmentListResponse - плоский список в порядке дерева
type DepartmentListResponse struct {
	Departments []DepartmentListItem `json:"departments"`
	Warnings    []hierarchy.Warning  `json:"warnings,omitempty"`
}

// DepartmentTreeNode - узел полного дерева подразделений
type DepartmentTreeNode struct {
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	ParentID *int64               `json:"parent_id"`
	Level    int                  `json:"level"`
	Children []DepartmentTreeNode `json:"children,omitempty"`
}

// DeleteDepartmentQuery - параметры запроса удаления
type DeleteDepartmentQuery struct {
	Mode                   string `validate:"required,oneof=cascade reassign"`
	ReassignToDepartmentID *int64 `validate:"required_if=Mode reassign,omitempty,min=1"`
}

// GetDepartmentQuery - параметры запроса получения подразделения
type GetDepartmentQuery struct {
	Depth int `validate:"min=1,max=5"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	EmployeeNo    *string `json:"employee_no" validate:"omitempty,min=1,max=50"`
	FullName      string  `json:"full_name" validate:"required,min=1,max=200"`
	Position      string  `json:"position" validate:"required,min=1,max=200"`
	Department    string  `json:"department" validate:"max=200"`
	Nationality   string  `json:"nationality" validate:"max=100"`
	ArrivalDate   *string `json:"arrival_date" validate:"omitempty,datetime=2006-01-02"`
	Salary        *string `json:"salary" validate:"omitempty,numeric"`
	ResidenceRoom string  `json:"residence_room" validate:"max=50"`
}

// UpdateEmployeeRequest - запрос на частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	EmployeeNo    *string `json:"employee_no" validate:"omitempty,min=1,max=50"`
	FullName      *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Position      *string `json:"position" validate:"omitempty,min=1,max=200"`
	Department    *string `json:"department" validate:"omitempty,max=200"`
	Nationality   *string `json:"nationality" validate:"omitempty,max=100"`
	ArrivalDate   *string `json:"arrival_date" validate:"omitempty,datetime=2006-01-02"`
	Salary        *string `json:"salary" validate:"omitempty,numeric"`
	ResidenceRoom *string `json:"residence_room" validate:"omitempty,max=50"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID            int64     `json:"id"`
	EmployeeNo    *string   `json:"employee_no,omitempty"`
	FullName      string    `json:"full_name"`
	Position      string    `json:"position"`
	Department    string    `json:"department"`
	Nationality   string    `json:"nationality,omitempty"`
	ArrivalDate   *string   `json:"arrival_date,omitempty"`
	Salary        string    `json:"salary"`
	ResidenceRoom string    `json:"residence_room,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// VacationPreviewRequest - произвольные даты для предварительного расчёта.
// Даты не валидируются: некорректные считаются отсутствующими.
type VacationPreviewRequest struct {
	LastReturnOrArrival *string `json:"last_return_or_arrival"`
	TravelDate          *string `json:"travel_date"`
	ReturnDate          *string `json:"return_date"`
}

// EmployeeVacationRequest - даты отпуска сотрудника
type EmployeeVacationRequest struct {
	TravelDate string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	ReturnDate string `json:"return_date" validate:"required,datetime=2006-01-02"`
}

// VacationPreviewResponse - расчёт отпуска и использованная дата
// последнего возвращения
type VacationPreviewResponse struct {
	LastReturnOrArrival *string         `json:"last_return_or_arrival"`
	Accrual             vacation.Result `json:"accrual"`
}

// VacationResponse - сохранённый отпуск
type VacationResponse struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	TravelDate    string    `json:"travel_date"`
	ReturnDate    string    `json:"return_date"`
	RegularDays   int       `json:"regular_days"`
	DeductionDays int       `json:"deduction_days"`
	TotalDays     int       `json:"total_days"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateVacationResponse - сохранённый отпуск вместе с полным расчётом
type CreateVacationResponse struct {
	Vacation VacationResponse        `json:"vacation"`
	Accrual  VacationPreviewResponse `json:"accrual"`
}

// CreateLoanRequest - запрос на откомандирование
type CreateLoanRequest struct {
	Destination string  `json:"destination" validate:"required,min=1,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// LoanResponse - ответ с данными откомандирования
type LoanResponse struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// HeadcountRow - численность и фонд оплаты корневого подразделения
type HeadcountRow struct {
	RootDepartment string `json:"root_department"`
	Employees      int    `json:"employees"`
	SalaryTotal    string `json:"salary_total"`
}

// HeadcountReport - свод по корневым подразделениям
type HeadcountReport struct {
	Rows           []HeadcountRow `json:"rows"`
	TotalEmployees int            `json:"total_employees"`
	TotalSalary    string         `json:"total_salary"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
