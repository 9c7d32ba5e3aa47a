package identity

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// -- Persona Repository --

type personaRepoPG struct {
	pool *pgxpool.Pool
}

func NewPersonaRepo(pool *pgxpool.Pool) PersonaRepository {
	return &personaRepoPG{pool: pool}
}

func (r *personaRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const personaColumns = `idPersona, carnet_identidad, nombre, apellido1, apellido2,
	fecha_nacimiento, escuela, telefono, email, departamento, municipio,
	colonia, direccion`

func (r *personaRepoPG) Create(ctx context.Context, persona *Persona) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO persona (
			carnet_identidad, nombre, apellido1, apellido2, fecha_nacimiento,
			escuela, telefono, email, departamento, municipio, colonia, direccion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING idPersona`,
		persona.CarnetIdentidad, persona.Nombre, persona.Apellido1, persona.Apellido2,
		persona.FechaNacimiento, persona.Escuela, persona.Telefono, persona.Email,
		persona.Departamento, persona.Municipio, persona.Colonia, persona.Direccion,
	).Scan(&persona.IDPersona)
	return db.TranslateError("crear persona", "persona", err)
}

func (r *personaRepoPG) GetByID(ctx context.Context, id int64) (*Persona, error) {
	p, err := scanPersona(r.conn(ctx).QueryRow(ctx,
		`SELECT `+personaColumns+` FROM persona WHERE idPersona = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar persona", "persona", err)
	}
	return p, nil
}

func (r *personaRepoPG) GetByCarnet(ctx context.Context, carnet string) (*Persona, error) {
	p, err := scanPersona(r.conn(ctx).QueryRow(ctx,
		`SELECT `+personaColumns+` FROM persona WHERE carnet_identidad = $1`, carnet))
	if err != nil {
		return nil, db.TranslateError("buscar persona por carnet", "persona", err)
	}
	return p, nil
}

func (r *personaRepoPG) FindByNombre(ctx context.Context, nombre string) ([]*Persona, error) {
	return r.find(ctx,
		`SELECT `+personaColumns+` FROM persona WHERE nombre ILIKE $1 ORDER BY idPersona`,
		"%"+nombre+"%")
}

func (r *personaRepoPG) FindByApellido1(ctx context.Context, apellido string) ([]*Persona, error) {
	return r.find(ctx,
		`SELECT `+personaColumns+` FROM persona WHERE apellido1 ILIKE $1 ORDER BY idPersona`,
		"%"+apellido+"%")
}

func (r *personaRepoPG) FindByApellido2(ctx context.Context, apellido string) ([]*Persona, error) {
	return r.find(ctx,
		`SELECT `+personaColumns+` FROM persona WHERE apellido2 ILIKE $1 ORDER BY idPersona`,
		"%"+apellido+"%")
}

func (r *personaRepoPG) List(ctx context.Context) ([]*Persona, error) {
	return r.find(ctx, `SELECT `+personaColumns+` FROM persona ORDER BY idPersona`)
}

func (r *personaRepoPG) ListOrdenadasPorNombre(ctx context.Context) ([]*Persona, error) {
	return r.find(ctx, `SELECT `+personaColumns+` FROM persona ORDER BY nombre`)
}

func (r *personaRepoPG) ListOrdenadasPorApellidos(ctx context.Context) ([]*Persona, error) {
	return r.find(ctx, `SELECT `+personaColumns+` FROM persona ORDER BY apellido1, apellido2`)
}

func (r *personaRepoPG) find(ctx context.Context, sql string, args ...interface{}) ([]*Persona, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener personas", "persona", err)
	}
	defer rows.Close()

	personas := []*Persona{}
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, db.TranslateError("leer personas", "persona", err)
		}
		personas = append(personas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer personas", "persona", err)
	}
	return personas, nil
}

func (r *personaRepoPG) Update(ctx context.Context, id int64, upd *PersonaUpdate) error {
	var b db.SetBuilder
	if upd.CarnetIdentidad != nil {
		b.Set("carnet_identidad", *upd.CarnetIdentidad)
	}
	if upd.Nombre != nil {
		b.Set("nombre", *upd.Nombre)
	}
	if upd.Apellido1 != nil {
		b.Set("apellido1", *upd.Apellido1)
	}
	if upd.Apellido2 != nil {
		b.Set("apellido2", *upd.Apellido2)
	}
	if upd.FechaNacimiento != nil {
		b.Set("fecha_nacimiento", *upd.FechaNacimiento)
	}
	if upd.Escuela != nil {
		b.Set("escuela", *upd.Escuela)
	}
	if upd.Telefono != nil {
		b.Set("telefono", *upd.Telefono)
	}
	if upd.Email != nil {
		b.Set("email", *upd.Email)
	}
	if upd.Departamento != nil {
		b.Set("departamento", *upd.Departamento)
	}
	if upd.Municipio != nil {
		b.Set("municipio", *upd.Municipio)
	}
	if upd.Colonia != nil {
		b.Set("colonia", *upd.Colonia)
	}
	if upd.Direccion != nil {
		b.Set("direccion", *upd.Direccion)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("persona", "idPersona", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar persona", "persona", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("persona")
	}
	return nil
}

func (r *personaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM persona WHERE idPersona = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar persona", "persona", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("persona")
	}
	return nil
}

func scanPersona(row pgx.Row) (*Persona, error) {
	var p Persona
	err := row.Scan(
		&p.IDPersona, &p.CarnetIdentidad, &p.Nombre, &p.Apellido1, &p.Apellido2,
		&p.FechaNacimiento, &p.Escuela, &p.Telefono, &p.Email,
		&p.Departamento, &p.Municipio, &p.Colonia, &p.Direccion,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// -- Paciente Repository --

type pacienteRepoPG struct {
	pool *pgxpool.Pool
}

func NewPacienteRepo(pool *pgxpool.Pool) PacienteRepository {
	return &pacienteRepoPG{pool: pool}
}

func (r *pacienteRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const pacienteColumns = `NHC, tutor_info, grado, otra_info`

func (r *pacienteRepoPG) Create(ctx context.Context, paciente *Paciente) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO paciente (NHC, tutor_info, grado, otra_info)
		VALUES ($1, $2, $3, $4)`,
		paciente.NHC, paciente.TutorInfo, paciente.Grado, paciente.OtraInfo,
	)
	return db.TranslateError("crear paciente", "paciente", err)
}

func (r *pacienteRepoPG) GetByNHC(ctx context.Context, nhc int64) (*Paciente, error) {
	p, err := scanPaciente(r.conn(ctx).QueryRow(ctx,
		`SELECT `+pacienteColumns+` FROM paciente WHERE NHC = $1`, nhc))
	if err != nil {
		return nil, db.TranslateError("buscar paciente", "paciente", err)
	}
	return p, nil
}

func (r *pacienteRepoPG) GetDetalle(ctx context.Context, nhc int64) (*PacienteDetalle, error) {
	var d PacienteDetalle
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT pa.NHC, pe.nombre, pe.apellido1, pe.apellido2, pe.fecha_nacimiento,
			pe.telefono, pe.email, pa.tutor_info, pa.grado, pa.otra_info
		FROM paciente pa
		JOIN persona pe ON pe.idPersona = pa.NHC
		WHERE pa.NHC = $1`, nhc,
	).Scan(
		&d.NHC, &d.Nombre, &d.Apellido1, &d.Apellido2, &d.FechaNacimiento,
		&d.Telefono, &d.Email, &d.TutorInfo, &d.Grado, &d.OtraInfo,
	)
	if err != nil {
		return nil, db.TranslateError("obtener detalle de paciente", "paciente", err)
	}
	return &d, nil
}

func (r *pacienteRepoPG) List(ctx context.Context) ([]*Paciente, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+pacienteColumns+` FROM paciente ORDER BY NHC`)
	if err != nil {
		return nil, db.TranslateError("obtener pacientes", "paciente", err)
	}
	defer rows.Close()

	pacientes := []*Paciente{}
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, db.TranslateError("leer pacientes", "paciente", err)
		}
		pacientes = append(pacientes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer pacientes", "paciente", err)
	}
	return pacientes, nil
}

func (r *pacienteRepoPG) Update(ctx context.Context, nhc int64, upd *PacienteUpdate) error {
	var b db.SetBuilder
	if upd.TutorInfo != nil {
		b.Set("tutor_info", *upd.TutorInfo)
	}
	if upd.Grado != nil {
		b.Set("grado", *upd.Grado)
	}
	if upd.OtraInfo != nil {
		b.Set("otra_info", *upd.OtraInfo)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("paciente", "NHC", nhc)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar paciente", "paciente", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("paciente")
	}
	return nil
}

func (r *pacienteRepoPG) Delete(ctx context.Context, nhc int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM paciente WHERE NHC = $1`, nhc)
	if err != nil {
		return db.TranslateError("eliminar paciente", "paciente", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("paciente")
	}
	return nil
}

func scanPaciente(row pgx.Row) (*Paciente, error) {
	var p Paciente
	if err := row.Scan(&p.NHC, &p.TutorInfo, &p.Grado, &p.OtraInfo); err != nil {
		return nil, err
	}
	return &p, nil
}
