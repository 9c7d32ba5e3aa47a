package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clinsalud/api/internal/platform/apperr"
)

// Postgres error codes the repositories care about.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// fkEntityNames maps the referenced table of a foreign-key constraint to the
// entity name surfaced in error messages. Constraint names in the schema
// follow fk_<tabla>_<referencia>.
var fkEntityNames = map[string]string{
	"persona":     "persona",
	"rol":         "rol",
	"usuario":     "usuario",
	"paciente":    "paciente",
	"medicamento": "medicamento",
	"agenda":      "agenda",
}

// TranslateError converts low-level pgx failures into the application error
// taxonomy: no rows → NotFound for the given entity, foreign-key violations →
// NotFound for the referenced entity, unique violations → Validation,
// anything else → StorageError. Foreign keys are enforced by the schema, so
// this translation is the single enforcement point for reference existence.
func TranslateError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			if name, ok := fkEntityNames[referencedTable(pgErr.ConstraintName)]; ok {
				return apperr.NotFound(name)
			}
			return apperr.NotFound("referencia")
		case codeUniqueViolation:
			return apperr.Validation("el registro viola una restricción de unicidad: " + pgErr.ConstraintName)
		}
	}
	return apperr.Storage(op, err)
}

// referencedTable extracts the referenced table from a fk_<tabla>_<referencia>
// constraint name.
func referencedTable(constraint string) string {
	for i := len(constraint) - 1; i >= 0; i-- {
		if constraint[i] == '_' {
			return constraint[i+1:]
		}
	}
	return constraint
}
