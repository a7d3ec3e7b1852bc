package calendar

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout - формат календарной даты на границе API и в БД
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date - календарная дата без времени суток и часового пояса.
// Нулевое значение означает отсутствующую дату.
type Date struct {
	t time.Time
}

// New создаёт дату из года, месяца и дня
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime берёт год, месяц и день из t в его собственной зоне
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// Today возвращает текущую дату по местному времени
func Today() Date {
	return FromTime(time.Now())
}

// Parse разбирает строку YYYY-MM-DD
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// ParseOptional разбирает необязательную дату: nil, пустая строка
// и некорректный формат дают нулевую дату
func ParseOptional(s *string) Date {
	if s == nil || *s == "" {
		return Date{}
	}
	d, err := Parse(*s)
	if err != nil {
		return Date{}
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Time() time.Time    { return d.t }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysSince возвращает количество дней от other до d (d - other).
// Считается по номерам дней от эпохи, без арифметики временных меток.
func (d Date) DaysSince(other Date) int {
	return int(d.epochDay() - other.epochDay())
}

func (d Date) epochDay() int64 {
	return d.t.Unix() / secondsPerDay
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner. Драйверы возвращают DATE либо как time.Time,
// либо как строку.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into calendar.Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer: нулевая дата пишется как NULL
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
