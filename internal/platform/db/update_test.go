package db

import "testing"

func TestSetBuilder_SQL(t *testing.T) {
	var b SetBuilder
	b.Set("nombre", "Ana").Set("telefono", "9999-8888")

	sql, args := b.SQL("persona", "idPersona", int64(7))

	want := "UPDATE persona SET nombre = $1, telefono = $2 WHERE idPersona = $3"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != "Ana" || args[1] != "9999-8888" || args[2] != int64(7) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestSetBuilder_SingleColumn(t *testing.T) {
	var b SetBuilder
	b.Set("grado", "4to")

	sql, args := b.SQL("paciente", "NHC", int64(1))
	want := "UPDATE paciente SET grado = $1 WHERE NHC = $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestSetBuilder_Empty(t *testing.T) {
	var b SetBuilder
	if !b.Empty() {
		t.Error("new builder should be empty")
	}
	b.Set("x", 1)
	if b.Empty() {
		t.Error("builder with one column should not be empty")
	}
}
