package fecha

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	f, err := Parse("2026-03-15")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.String() != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", f.String())
	}
}

func TestParse_RFC3339(t *testing.T) {
	f, err := Parse("2026-03-15T14:30:00Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.String() != "2026-03-15" {
		t.Errorf("expected truncated date 2026-03-15, got %s", f.String())
	}
}

func TestParse_RFC3339ConOffset(t *testing.T) {
	f, err := Parse("2026-03-15T10:00:00-06:00")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.String() != "2026-03-15" {
		t.Errorf("expected local calendar date 2026-03-15, got %s", f.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("15/03/2026"); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestMarshalJSON(t *testing.T) {
	f, _ := Parse("2026-03-15")
	got, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `"2026-03-15"` {
		t.Errorf("expected quoted date, got %s", got)
	}
}

func TestMarshalJSON_Zero(t *testing.T) {
	got, err := json.Marshal(Fecha{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != "null" {
		t.Errorf("expected null for zero fecha, got %s", got)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var f Fecha
	if err := json.Unmarshal([]byte(`"2026-03-15"`), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.String() != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", f.String())
	}

	if err := json.Unmarshal([]byte(`"no-es-fecha"`), &f); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestUnmarshalJSON_Null(t *testing.T) {
	f, _ := Parse("2026-03-15")
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !f.IsZero() {
		t.Errorf("expected zero fecha after null, got %s", f.String())
	}
}

func TestScan(t *testing.T) {
	var f Fecha
	if err := f.Scan(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time: %v", err)
	}
	if f.String() != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", f.String())
	}

	if err := f.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if !f.IsZero() {
		t.Error("expected zero fecha after nil scan")
	}

	if err := f.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestValue(t *testing.T) {
	v, err := Fecha{}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil driver value for zero fecha, got %v", v)
	}

	f, _ := Parse("2026-03-15")
	v, err = f.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if _, ok := v.(time.Time); !ok {
		t.Errorf("expected time.Time driver value, got %T", v)
	}
}
