package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/branch-hr-api/internal/calendar"
)

func TestLoanOverlaps(t *testing.T) {
	d := func(day int) calendar.Date { return calendar.New(2024, time.May, day) }

	closed := Loan{StartDate: d(10), EndDate: d(20)}
	open := Loan{StartDate: d(10)}

	cases := []struct {
		name       string
		loan       Loan
		start, end calendar.Date
		want       bool
	}{
		{"before", closed, d(1), d(9), false},
		{"touching start", closed, d(1), d(10), true},
		{"inside", closed, d(12), d(15), true},
		{"touching end", closed, d(20), d(25), true},
		{"after", closed, d(21), d(25), false},
		{"open new period", closed, d(15), calendar.Date{}, true},
		{"open new period after", closed, d(21), calendar.Date{}, false},
		{"open existing", open, d(25), d(30), true},
		{"open existing before", open, d(1), d(9), false},
		{"both open", open, d(1), calendar.Date{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.loan.Overlaps(c.start, c.end))
		})
	}
}
