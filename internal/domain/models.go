package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/branch-hr-api/internal/calendar"
)

// Department представляет подразделение (центр затрат) филиала
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	ParentID  *int64    `json:"parent_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Children []Department `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника. Department - свободное текстовое имя
// подразделения, не внешний ключ.
type Employee struct {
	ID            int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeNo    *string         `json:"employee_no" gorm:"type:varchar(50);uniqueIndex"`
	FullName      string          `json:"full_name" gorm:"type:varchar(200);not null"`
	Position      string          `json:"position" gorm:"type:varchar(200);not null"`
	Department    string          `json:"department" gorm:"type:varchar(200);index"`
	Nationality   string          `json:"nationality" gorm:"type:varchar(100)"`
	ArrivalDate   calendar.Date   `json:"arrival_date" gorm:"type:date"`
	Salary        decimal.Decimal `json:"salary" gorm:"type:numeric(12,2);not null"`
	ResidenceRoom string          `json:"residence_room" gorm:"type:varchar(50)"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Vacation - отпуск сотрудника с рассчитанным разбиением дней
type Vacation struct {
	ID            int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID    int64         `json:"employee_id" gorm:"not null;index"`
	TravelDate    calendar.Date `json:"travel_date" gorm:"type:date;not null"`
	ReturnDate    calendar.Date `json:"return_date" gorm:"type:date;not null"`
	RegularDays   int           `json:"regular_days" gorm:"not null"`
	DeductionDays int           `json:"deduction_days" gorm:"not null"`
	TotalDays     int           `json:"total_days" gorm:"not null"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Vacation) TableName() string {
	return "vacations"
}

// Loan - временное откомандирование сотрудника. Пустая EndDate - командировка
// без даты окончания.
type Loan struct {
	ID          int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID  int64         `json:"employee_id" gorm:"not null;index"`
	Destination string        `json:"destination" gorm:"type:varchar(200);not null"`
	StartDate   calendar.Date `json:"start_date" gorm:"type:date;not null"`
	EndDate     calendar.Date `json:"end_date" gorm:"type:date"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Loan) TableName() string {
	return "loans"
}

// Overlaps проверяет пересечение периода командировки с [start, end].
// Нулевой конец означает открытый период.
func (l Loan) Overlaps(start, end calendar.Date) bool {
	if !end.IsZero() && end.Before(l.StartDate) {
		return false
	}
	if !l.EndDate.IsZero() && l.EndDate.Before(start) {
		return false
	}
	return true
}
