package scheduling

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/db"
	"github.com/clinsalud/api/pkg/fecha"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// -- Agenda Repository --

type agendaRepoPG struct {
	pool *pgxpool.Pool
}

func NewAgendaRepo(pool *pgxpool.Pool) AgendaRepository {
	return &agendaRepoPG{pool: pool}
}

func (r *agendaRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const agendaColumns = `idAgenda, descripcion, horario`

func (r *agendaRepoPG) Create(ctx context.Context, agenda *Agenda) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO agenda (descripcion, horario) VALUES ($1, $2) RETURNING idAgenda`,
		agenda.Descripcion, agenda.Horario,
	).Scan(&agenda.IDAgenda)
	return db.TranslateError("crear agenda", "agenda", err)
}

func (r *agendaRepoPG) GetByID(ctx context.Context, id int64) (*Agenda, error) {
	a, err := scanAgenda(r.conn(ctx).QueryRow(ctx,
		`SELECT `+agendaColumns+` FROM agenda WHERE idAgenda = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar agenda", "agenda", err)
	}
	return a, nil
}

func (r *agendaRepoPG) FindByDescripcion(ctx context.Context, descripcion string) ([]*Agenda, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+agendaColumns+` FROM agenda WHERE descripcion ILIKE $1 ORDER BY idAgenda`,
		"%"+descripcion+"%")
	if err != nil {
		return nil, db.TranslateError("buscar agendas por descripción", "agenda", err)
	}
	return collectAgendas(rows)
}

func (r *agendaRepoPG) List(ctx context.Context) ([]*Agenda, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+agendaColumns+` FROM agenda ORDER BY idAgenda`)
	if err != nil {
		return nil, db.TranslateError("obtener agendas", "agenda", err)
	}
	return collectAgendas(rows)
}

func (r *agendaRepoPG) Update(ctx context.Context, id int64, upd *AgendaUpdate) error {
	var b db.SetBuilder
	if upd.Descripcion != nil {
		b.Set("descripcion", *upd.Descripcion)
	}
	if upd.Horario != nil {
		b.Set("horario", *upd.Horario)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("agenda", "idAgenda", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar agenda", "agenda", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("agenda")
	}
	return nil
}

func (r *agendaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM agenda WHERE idAgenda = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar agenda", "agenda", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("agenda")
	}
	return nil
}

func scanAgenda(row pgx.Row) (*Agenda, error) {
	var a Agenda
	if err := row.Scan(&a.IDAgenda, &a.Descripcion, &a.Horario); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAgendas(rows pgx.Rows) ([]*Agenda, error) {
	defer rows.Close()
	agendas := []*Agenda{}
	for rows.Next() {
		a, err := scanAgenda(rows)
		if err != nil {
			return nil, db.TranslateError("leer agendas", "agenda", err)
		}
		agendas = append(agendas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer agendas", "agenda", err)
	}
	return agendas, nil
}

// -- Cita Repository --

type citaRepoPG struct {
	pool *pgxpool.Pool
}

func NewCitaRepo(pool *pgxpool.Pool) CitaRepository {
	return &citaRepoPG{pool: pool}
}

func (r *citaRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const citaColumns = `idCita, fecha, hora, NHC_paciente, doctor_id, agenda_id, informacion_cita`

const citaDetalleQuery = `
	SELECT c.idCita, c.fecha, c.hora,
		pe.nombre || ' ' || pe.apellido1 AS paciente,
		u.nombre_usuario AS doctor,
		a.descripcion AS agenda,
		c.informacion_cita
	FROM cita c
	JOIN paciente pa ON pa.NHC = c.NHC_paciente
	JOIN persona pe ON pe.idPersona = pa.NHC
	JOIN usuario u ON u.idUsuario = c.doctor_id
	JOIN agenda a ON a.idAgenda = c.agenda_id`

func (r *citaRepoPG) Create(ctx context.Context, cita *Cita) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO cita (fecha, hora, NHC_paciente, doctor_id, agenda_id, informacion_cita)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING idCita`,
		cita.Fecha, cita.Hora, cita.NHCPaciente, cita.DoctorID, cita.AgendaID, cita.InformacionCita,
	).Scan(&cita.IDCita)
	return db.TranslateError("crear cita", "cita", err)
}

func (r *citaRepoPG) GetByID(ctx context.Context, id int64) (*Cita, error) {
	cita, err := scanCita(r.conn(ctx).QueryRow(ctx,
		`SELECT `+citaColumns+` FROM cita WHERE idCita = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar cita", "cita", err)
	}
	return cita, nil
}

func (r *citaRepoPG) FindByPaciente(ctx context.Context, nhc int64) ([]*Cita, error) {
	return r.find(ctx,
		`SELECT `+citaColumns+` FROM cita WHERE NHC_paciente = $1 ORDER BY fecha, hora`, nhc)
}

func (r *citaRepoPG) FindByDoctor(ctx context.Context, doctorID int64) ([]*Cita, error) {
	return r.find(ctx,
		`SELECT `+citaColumns+` FROM cita WHERE doctor_id = $1 ORDER BY fecha, hora`, doctorID)
}

func (r *citaRepoPG) FindByAgenda(ctx context.Context, agendaID int64) ([]*Cita, error) {
	return r.find(ctx,
		`SELECT `+citaColumns+` FROM cita WHERE agenda_id = $1 ORDER BY fecha, hora`, agendaID)
}

func (r *citaRepoPG) FindByNombreAgenda(ctx context.Context, nombre string) ([]*Cita, error) {
	return r.find(ctx, `
		SELECT `+prefixedCitaColumns+` FROM cita c
		JOIN agenda a ON a.idAgenda = c.agenda_id
		WHERE a.descripcion ILIKE $1 ORDER BY c.fecha, c.hora`,
		"%"+nombre+"%")
}

func (r *citaRepoPG) FindByRange(ctx context.Context, desde, hasta fecha.Fecha) ([]*Cita, error) {
	return r.find(ctx,
		`SELECT `+citaColumns+` FROM cita WHERE fecha BETWEEN $1 AND $2 ORDER BY fecha, hora`,
		desde, hasta)
}

func (r *citaRepoPG) List(ctx context.Context) ([]*Cita, error) {
	return r.find(ctx, `SELECT `+citaColumns+` FROM cita ORDER BY fecha, hora`)
}

const prefixedCitaColumns = `c.idCita, c.fecha, c.hora, c.NHC_paciente, c.doctor_id, c.agenda_id, c.informacion_cita`

func (r *citaRepoPG) find(ctx context.Context, sql string, args ...interface{}) ([]*Cita, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener citas", "cita", err)
	}
	defer rows.Close()

	citas := []*Cita{}
	for rows.Next() {
		cita, err := scanCita(rows)
		if err != nil {
			return nil, db.TranslateError("leer citas", "cita", err)
		}
		citas = append(citas, cita)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer citas", "cita", err)
	}
	return citas, nil
}

func (r *citaRepoPG) ListDetalles(ctx context.Context) ([]*CitaDetalle, error) {
	return r.findDetalles(ctx, citaDetalleQuery+` ORDER BY c.fecha, c.hora`)
}

func (r *citaRepoPG) ListDetallesByRange(ctx context.Context, desde, hasta fecha.Fecha) ([]*CitaDetalle, error) {
	return r.findDetalles(ctx,
		citaDetalleQuery+` WHERE c.fecha BETWEEN $1 AND $2 ORDER BY c.fecha, c.hora`,
		desde, hasta)
}

func (r *citaRepoPG) findDetalles(ctx context.Context, sql string, args ...interface{}) ([]*CitaDetalle, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener detalles de citas", "cita", err)
	}
	defer rows.Close()

	detalles := []*CitaDetalle{}
	for rows.Next() {
		var d CitaDetalle
		err := rows.Scan(&d.IDCita, &d.Fecha, &d.Hora, &d.Paciente, &d.Doctor, &d.Agenda, &d.InformacionCita)
		if err != nil {
			return nil, db.TranslateError("leer detalles de citas", "cita", err)
		}
		detalles = append(detalles, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer detalles de citas", "cita", err)
	}
	return detalles, nil
}

func (r *citaRepoPG) Update(ctx context.Context, id int64, upd *CitaUpdate) error {
	var b db.SetBuilder
	if upd.Fecha != nil {
		b.Set("fecha", *upd.Fecha)
	}
	if upd.Hora != nil {
		b.Set("hora", *upd.Hora)
	}
	if upd.InformacionCita != nil {
		b.Set("informacion_cita", *upd.InformacionCita)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("cita", "idCita", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar cita", "cita", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("cita")
	}
	return nil
}

func (r *citaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM cita WHERE idCita = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar cita", "cita", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("cita")
	}
	return nil
}

func scanCita(row pgx.Row) (*Cita, error) {
	var cita Cita
	err := row.Scan(
		&cita.IDCita, &cita.Fecha, &cita.Hora, &cita.NHCPaciente,
		&cita.DoctorID, &cita.AgendaID, &cita.InformacionCita,
	)
	if err != nil {
		return nil, err
	}
	return &cita, nil
}
