package youtrack

import (
	"fmt"
	"strconv"
	"time"
)

// DateTime is an instant carried as Unix epoch milliseconds on the wire.
type DateTime struct {
	time.Time
}

// NewDateTime returns a DateTime normalized to UTC with millisecond
// precision, matching what a wire round trip produces.
func NewDateTime(t time.Time) DateTime {
	return DateTime{time.UnixMilli(t.UnixMilli()).UTC()}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.UnixMilli(), 10), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &TypeMismatchError{Want: "epoch milliseconds", Got: string(data)}
	}
	d.Time = time.UnixMilli(ms).UTC()
	return nil
}

// Date is a calendar date. The server carries date-typed custom field values
// as the epoch milliseconds of noon UTC on that date; decoding subtracts
// twelve hours before truncating so that any instant within the day maps to
// the intended date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the calendar date for the given components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	noon := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	return strconv.AppendInt(nil, noon.UnixMilli(), 10), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &TypeMismatchError{Want: "epoch milliseconds", Got: string(data)}
	}
	*d = DateOf(time.UnixMilli(ms).UTC().Add(-12 * time.Hour))
	return nil
}
