// Package vacation считает разбиение отпуска на обычные дни (покрытые
// накопленным правом) и удерживаемые дни сверх накопленного.
//
// Правило накопления: один день отпуска за каждые 8 отработанных дней.
// Дробная часть округляется вверх только если она строго больше 0.5.
package vacation

import (
	"github.com/shopspring/decimal"

	"github.com/branch-hr-api/internal/calendar"
)

// WorkedDaysPerAccruedDay - сколько отработанных дней дают один день отпуска
const WorkedDaysPerAccruedDay = 8

var (
	workedDaysPerAccruedDay = decimal.NewFromInt(WorkedDaysPerAccruedDay)
	roundingThreshold       = decimal.NewFromFloat(0.5)
)

// Result - результат расчёта отпуска. Даты без значения сериализуются
// как пустые и опускаются в JSON. При нуле обычных дней RegularEndDate
// равна дате выезда.
type Result struct {
	RegularDays        int           `json:"regular_days"`
	DeductionDays      int           `json:"deduction_days"`
	TotalDays          int           `json:"total_days"`
	VacationStartDate  calendar.Date `json:"vacation_start_date,omitzero"`
	RegularEndDate     calendar.Date `json:"regular_end_date,omitzero"`
	DeductionStartDate calendar.Date `json:"deduction_start_date,omitzero"`
	DeductionEndDate   calendar.Date `json:"deduction_end_date,omitzero"`
}

// HasDeduction сообщает, есть ли в отпуске удерживаемые дни
func (r Result) HasDeduction() bool {
	return r.DeductionDays > 0
}

// AccruedDays переводит отработанные дни в накопленные дни отпуска.
// Ровно 0.5 не округляется вверх.
func AccruedDays(workedDays int) int {
	raw := decimal.NewFromInt(int64(workedDays)).Div(workedDaysPerAccruedDay)
	whole := raw.Floor()

	accrued := whole.IntPart()
	if raw.Sub(whole).GreaterThan(roundingThreshold) {
		accrued++
	}
	if accrued < 0 {
		return 0
	}
	return int(accrued)
}

// WorkedDays - дни с последнего возвращения (или приезда) по дату выезда
// включительно
func WorkedDays(lastReturnOrArrival, travelDate calendar.Date) int {
	return travelDate.DaysSince(lastReturnOrArrival) + 1
}

// Compute считает разбиение отпуска.
//
// Без даты выезда или возвращения возвращается нулевой результат. Без даты
// последнего возвращения все дни считаются обычными. Если возвращение не
// позже первого дня отпуска, TotalDays остаётся неположительным, а обычные
// и удерживаемые дни равны нулю.
func Compute(lastReturnOrArrival, travelDate, returnDate calendar.Date) Result {
	if travelDate.IsZero() || returnDate.IsZero() {
		return Result{}
	}

	start := travelDate.AddDays(1)
	total := returnDate.DaysSince(start)
	lastDay := returnDate.AddDays(-1)

	res := Result{
		TotalDays:         total,
		VacationStartDate: start,
	}

	if total <= 0 {
		res.RegularEndDate = lastDay
		return res
	}

	if lastReturnOrArrival.IsZero() {
		res.RegularDays = total
		res.RegularEndDate = lastDay
		return res
	}

	accrued := AccruedDays(WorkedDays(lastReturnOrArrival, travelDate))
	res.RegularDays = min(total, accrued)
	res.DeductionDays = max(0, total-res.RegularDays)

	if res.DeductionDays == 0 {
		res.RegularEndDate = lastDay
		return res
	}

	// при нуле обычных дней совпадает с датой выезда
	res.RegularEndDate = start.AddDays(res.RegularDays - 1)
	res.DeductionStartDate = start.AddDays(res.RegularDays)
	res.DeductionEndDate = lastDay

	return res
}

// ComputeStrings разбирает даты YYYY-MM-DD и вызывает Compute.
// Некорректные даты считаются отсутствующими.
func ComputeStrings(lastReturnOrArrival, travelDate, returnDate *string) Result {
	return Compute(
		calendar.ParseOptional(lastReturnOrArrival),
		calendar.ParseOptional(travelDate),
		calendar.ParseOptional(returnDate),
	)
}
