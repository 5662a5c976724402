package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"hotel/shared/constant"
	"hotel/shared/timezone"
)

// Date is a calendar day. It is bound to SQL as YYYY-MM-DD so the session
// timezone of the server cannot shift it.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func (d Date) String() string {
	if d.IsZero() {
		return constant.Empty
	}

	return d.Format(constant.DateFormat)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.Format(constant.DateFormat), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		*d = NewDate(v)
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}

	return nil
}

func (d *Date) parse(value string) error {
	if len(value) > len(constant.DateFormat) {
		value = value[:len(constant.DateFormat)]
	}

	t, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return fmt.Errorf("cannot parse %q as date: %w", value, err)
	}

	d.Time = t

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
