package models

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day. It serializes as YYYY-MM-DD
// in JSON, form values and the database.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errors.WithStack(err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid date %s", s)
	}
	return d.UnmarshalText([]byte(s[1 : len(s)-1]))
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		y, m, day := v.Date()
		*d = NewDate(y, m, day)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	// Drivers may hand back a full timestamp for DATE columns.
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	return d.UnmarshalText([]byte(s))
}
