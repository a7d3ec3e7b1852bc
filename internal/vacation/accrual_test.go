package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/branch-hr-api/internal/calendar"
)

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.New(year, month, day)
}

func strPtr(s string) *string {
	return &s
}

func TestAccruedDays(t *testing.T) {
	cases := []struct {
		worked int
		want   int
	}{
		{0, 0},
		{7, 1}, // 0.875
		{4, 0}, // 0.5 не округляется
		{5, 1}, // 0.625
		{8, 1},
		{36, 4}, // 4.5
		{37, 5}, // 4.625
		{70, 9}, // 8.75
		{-10, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AccruedDays(c.worked), "worked=%d", c.worked)
	}
}

func TestAccruedDays_MatchesIntegerRule(t *testing.T) {
	for worked := 0; worked <= 400; worked++ {
		want := worked / WorkedDaysPerAccruedDay
		if rem := worked % WorkedDaysPerAccruedDay; rem*2 > WorkedDaysPerAccruedDay {
			want++
		}
		assert.Equal(t, want, AccruedDays(worked), "worked=%d", worked)
	}
}

func TestWorkedDays_Inclusive(t *testing.T) {
	assert.Equal(t, 70, WorkedDays(date(2024, time.January, 1), date(2024, time.March, 10)))
	assert.Equal(t, 1, WorkedDays(date(2024, time.March, 10), date(2024, time.March, 10)))
}

func TestCompute_NoHistory(t *testing.T) {
	res := Compute(calendar.Date{}, date(2024, time.June, 1), date(2024, time.June, 11))

	assert.Equal(t, 9, res.TotalDays)
	assert.Equal(t, 9, res.RegularDays)
	assert.Equal(t, 0, res.DeductionDays)
	assert.Equal(t, date(2024, time.June, 2), res.VacationStartDate)
	assert.Equal(t, date(2024, time.June, 10), res.RegularEndDate)
	assert.True(t, res.DeductionStartDate.IsZero())
	assert.True(t, res.DeductionEndDate.IsZero())
	assert.False(t, res.HasDeduction())
}

func TestCompute_PartialDeduction(t *testing.T) {
	res := Compute(date(2024, time.January, 1), date(2024, time.March, 10), date(2024, time.March, 25))

	start := date(2024, time.March, 11)
	assert.Equal(t, 14, res.TotalDays)
	assert.Equal(t, 9, res.RegularDays)
	assert.Equal(t, 5, res.DeductionDays)
	assert.Equal(t, start, res.VacationStartDate)
	assert.Equal(t, start.AddDays(8), res.RegularEndDate)
	assert.Equal(t, start.AddDays(9), res.DeductionStartDate)
	assert.Equal(t, date(2024, time.March, 24), res.DeductionEndDate)
	assert.True(t, res.HasDeduction())
}

func TestCompute_FullyCovered(t *testing.T) {
	// 100 отработанных дней = 12.5 -> 12 дней права, отпуск 10 дней
	last := date(2024, time.January, 1)
	travel := last.AddDays(99)
	ret := travel.AddDays(11)

	res := Compute(last, travel, ret)

	assert.Equal(t, 10, res.TotalDays)
	assert.Equal(t, 10, res.RegularDays)
	assert.Equal(t, 0, res.DeductionDays)
	assert.Equal(t, ret.AddDays(-1), res.RegularEndDate)
	assert.True(t, res.DeductionStartDate.IsZero())
}

func TestCompute_NoEntitlement(t *testing.T) {
	// 4 отработанных дня = 0.5 -> 0 дней права
	last := date(2024, time.May, 1)
	travel := date(2024, time.May, 4)
	ret := date(2024, time.May, 10)

	res := Compute(last, travel, ret)

	assert.Equal(t, 5, res.TotalDays)
	assert.Equal(t, 0, res.RegularDays)
	assert.Equal(t, 5, res.DeductionDays)
	// обычный отрезок пуст и заканчивается в день выезда
	assert.Equal(t, travel, res.RegularEndDate)
	assert.Equal(t, date(2024, time.May, 5), res.DeductionStartDate)
	assert.Equal(t, date(2024, time.May, 9), res.DeductionEndDate)
}

func TestCompute_MissingDates(t *testing.T) {
	assert.Equal(t, Result{}, Compute(calendar.Date{}, calendar.Date{}, date(2024, time.June, 11)))
	assert.Equal(t, Result{}, Compute(date(2024, time.January, 1), date(2024, time.June, 1), calendar.Date{}))
}

func TestCompute_NonPositiveTotal(t *testing.T) {
	travel := date(2024, time.June, 10)

	res := Compute(date(2024, time.January, 1), travel, travel.AddDays(1))
	assert.Equal(t, 0, res.TotalDays)
	assert.Equal(t, 0, res.RegularDays)
	assert.Equal(t, 0, res.DeductionDays)
	assert.Equal(t, travel.AddDays(1), res.VacationStartDate)

	res = Compute(date(2024, time.January, 1), travel, travel.AddDays(-3))
	assert.Equal(t, -4, res.TotalDays)
	assert.Equal(t, 0, res.RegularDays)
	assert.Equal(t, 0, res.DeductionDays)
}

func TestCompute_Invariants(t *testing.T) {
	last := date(2023, time.November, 15)
	for travelOffset := 0; travelOffset < 120; travelOffset += 7 {
		travel := last.AddDays(travelOffset)
		for length := 2; length < 40; length += 3 {
			ret := travel.AddDays(length)
			res := Compute(last, travel, ret)

			assert.Equal(t, travel.AddDays(1), res.VacationStartDate)
			assert.Equal(t, length-1, res.TotalDays)
			assert.Equal(t, res.TotalDays, res.RegularDays+res.DeductionDays)
			assert.Equal(t, min(res.TotalDays, AccruedDays(travelOffset+1)), res.RegularDays)
		}
	}
}

func TestComputeStrings(t *testing.T) {
	res := ComputeStrings(strPtr("2024-01-01"), strPtr("2024-03-10"), strPtr("2024-03-25"))
	assert.Equal(t, 9, res.RegularDays)
	assert.Equal(t, 5, res.DeductionDays)

	res = ComputeStrings(nil, strPtr("2024-06-01"), strPtr("2024-06-11"))
	assert.Equal(t, 9, res.RegularDays)

	// некорректная дата возвращения трактуется как отсутствующая
	assert.Equal(t, Result{}, ComputeStrings(nil, strPtr("2024-06-01"), strPtr("11.06.2024")))

	// некорректная дата последнего возвращения - как отсутствие истории
	res = ComputeStrings(strPtr("garbage"), strPtr("2024-06-01"), strPtr("2024-06-11"))
	assert.Equal(t, 9, res.RegularDays)
	assert.Equal(t, 0, res.DeductionDays)
}
