package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without time of day. The zero value means "no date".
type Date struct {
	t time.Time
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO day ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return d.t }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", an empty string or null. The last two decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DatePtr returns nil for the zero Date.
func DatePtr(d Date) *Date {
	if d.IsZero() {
		return nil
	}
	return &d
}

// OptionalDate distinguishes an absent field from an explicit null in partial updates.
type OptionalDate struct {
	Set   bool
	Value *Date
}

// KeepDate leaves the stored date untouched.
func KeepDate() OptionalDate { return OptionalDate{} }

// SetDate requests an exact date.
func SetDate(d Date) OptionalDate { return OptionalDate{Set: true, Value: DatePtr(d)} }

// ClearDate requests an explicit null.
func ClearDate() OptionalDate { return OptionalDate{Set: true} }

// UnmarshalJSON is only invoked when the key is present, which marks the field as set.
func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	var d Date
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	o.Set = true
	o.Value = DatePtr(d)
	return nil
}
