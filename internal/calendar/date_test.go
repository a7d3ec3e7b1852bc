package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2024-02-29", d.String())

	_, err = Parse("2023-02-29")
	assert.Error(t, err)

	_, err = Parse("29/02/2024")
	assert.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	empty := ""
	bad := "not-a-date"
	good := "2024-06-01"

	assert.True(t, ParseOptional(nil).IsZero())
	assert.True(t, ParseOptional(&empty).IsZero())
	assert.True(t, ParseOptional(&bad).IsZero())
	assert.Equal(t, New(2024, time.June, 1), ParseOptional(&good))
}

func TestDaysSince(t *testing.T) {
	cases := []struct {
		from, to Date
		want     int
	}{
		{New(2024, time.January, 1), New(2024, time.March, 10), 69},
		{New(2024, time.March, 11), New(2024, time.March, 25), 14},
		{New(2024, time.March, 25), New(2024, time.March, 11), -14},
		// переход на летнее время не влияет на разницу дат
		{New(2024, time.March, 30), New(2024, time.April, 1), 2},
		{New(2023, time.December, 31), New(2024, time.January, 1), 1},
		{New(1969, time.December, 30), New(1970, time.January, 2), 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.to.DaysSince(c.from), "%s - %s", c.to, c.from)
	}
}

func TestFromTimeIgnoresZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, time.June, 1, 1, 30, 0, 0, loc)
	assert.Equal(t, "2024-06-01", FromTime(ts).String())
}

func TestAddDays(t *testing.T) {
	d := New(2024, time.February, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-02-27", d.AddDays(-1).String())
}

func TestScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-06-11"))
	assert.Equal(t, New(2024, time.June, 11), d)

	require.NoError(t, d.Scan([]byte("2024-06-12T00:00:00Z")))
	assert.Equal(t, New(2024, time.June, 12), d)

	require.NoError(t, d.Scan(time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, New(2024, time.June, 13), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = New(2024, time.June, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", v)
}

func TestJSON(t *testing.T) {
	type payload struct {
		At Date `json:"at"`
	}

	data, err := json.Marshal(payload{At: New(2024, time.June, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-06-01"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-03-25"}`), &p))
	assert.Equal(t, New(2024, time.March, 25), p.At)

	assert.Error(t, json.Unmarshal([]byte(`{"at":"25.03.2024"}`), &p))
}
