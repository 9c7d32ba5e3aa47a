// Package fecha provides a calendar-date type for the request/response bodies
// and DATE columns of the API: JSON format "2006-01-02", no time-of-day
// component.
package fecha

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Fecha is a calendar date. The zero value is the zero time.
type Fecha struct {
	time.Time
}

// Parse parses a "2006-01-02" string. Full RFC 3339 timestamps are accepted
// and truncated to their date.
func Parse(s string) (Fecha, error) {
	if t, err := time.Parse(layout, s); err == nil {
		return Fecha{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q, se esperaba AAAA-MM-DD", s)
	}
	return Fecha{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}, nil
}

func (f Fecha) String() string {
	return f.Format(layout)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + f.Format(layout) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = Fecha{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Scan implements sql.Scanner so DATE columns land here.
func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = Fecha{v}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into fecha.Fecha", src)
	}
}

// Value implements driver.Valuer.
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}
