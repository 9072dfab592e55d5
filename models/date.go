package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals to
// JSON as "YYYY-MM-DD" and maps onto a PostgreSQL DATE column.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON accepts either a "YYYY-MM-DD" string or JSON null.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("error decoding date: %w", err)
	}
	if s == nil {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return fmt.Errorf("error parsing date %q: %w", *s, err)
	}

	d.Time = t
	return nil
}

// MarshalJSON renders the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// Scan implements sql.Scanner so a DATE column can be read directly.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("error scanning date %q: %w", v, err)
		}
		d.Time = t
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported date source type %T", src)
	}
}

// Value implements driver.Valuer; the date is stored as time.Time.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
