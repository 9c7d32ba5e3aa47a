package clinical

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

// -- Episodio Repository --

type episodioRepoPG struct {
	pool *pgxpool.Pool
}

func NewEpisodioRepo(pool *pgxpool.Pool) EpisodioRepository {
	return &episodioRepoPG{pool: pool}
}

func (r *episodioRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const episodioColumns = `idEpisodio, NHC_paciente, Medico, fecha_episodio,
	tipo_asistencia, motivo_consulta, anamnesis, diagnostico, tratamiento,
	peso, pa, spo2`

func (r *episodioRepoPG) Create(ctx context.Context, e *Episodio) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO episodio (
			NHC_paciente, Medico, fecha_episodio, tipo_asistencia,
			motivo_consulta, anamnesis, diagnostico, tratamiento, peso, pa, spo2
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING idEpisodio`,
		e.NHCPaciente, e.Medico, e.FechaEpisodio, e.TipoAsistencia,
		e.MotivoConsulta, e.Anamnesis, e.Diagnostico, e.Tratamiento,
		e.Peso, e.PA, e.SpO2,
	).Scan(&e.IDEpisodio)
	return db.TranslateError("crear episodio", "episodio", err)
}

func (r *episodioRepoPG) GetByID(ctx context.Context, id int64) (*Episodio, error) {
	e, err := scanEpisodio(r.conn(ctx).QueryRow(ctx,
		`SELECT `+episodioColumns+` FROM episodio WHERE idEpisodio = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar episodio", "episodio", err)
	}
	return e, nil
}

func (r *episodioRepoPG) FindByPaciente(ctx context.Context, nhc int64) ([]*Episodio, error) {
	return r.find(ctx,
		`SELECT `+episodioColumns+` FROM episodio WHERE NHC_paciente = $1 ORDER BY fecha_episodio DESC, idEpisodio DESC`,
		nhc)
}

func (r *episodioRepoPG) List(ctx context.Context) ([]*Episodio, error) {
	return r.find(ctx, `SELECT `+episodioColumns+` FROM episodio ORDER BY idEpisodio`)
}

func (r *episodioRepoPG) find(ctx context.Context, sql string, args ...interface{}) ([]*Episodio, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener episodios", "episodio", err)
	}
	defer rows.Close()

	episodios := []*Episodio{}
	for rows.Next() {
		e, err := scanEpisodio(rows)
		if err != nil {
			return nil, db.TranslateError("leer episodios", "episodio", err)
		}
		episodios = append(episodios, e)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer episodios", "episodio", err)
	}
	return episodios, nil
}

func (r *episodioRepoPG) Update(ctx context.Context, id int64, upd *EpisodioUpdate) error {
	var b db.SetBuilder
	if upd.FechaEpisodio != nil {
		b.Set("fecha_episodio", *upd.FechaEpisodio)
	}
	if upd.TipoAsistencia != nil {
		b.Set("tipo_asistencia", *upd.TipoAsistencia)
	}
	if upd.MotivoConsulta != nil {
		b.Set("motivo_consulta", *upd.MotivoConsulta)
	}
	if upd.Anamnesis != nil {
		b.Set("anamnesis", *upd.Anamnesis)
	}
	if upd.Diagnostico != nil {
		b.Set("diagnostico", *upd.Diagnostico)
	}
	if upd.Tratamiento != nil {
		b.Set("tratamiento", *upd.Tratamiento)
	}
	if upd.Peso != nil {
		b.Set("peso", *upd.Peso)
	}
	if upd.PA != nil {
		b.Set("pa", *upd.PA)
	}
	if upd.SpO2 != nil {
		b.Set("spo2", *upd.SpO2)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("episodio", "idEpisodio", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar episodio", "episodio", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("episodio")
	}
	return nil
}

func (r *episodioRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM episodio WHERE idEpisodio = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar episodio", "episodio", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("episodio")
	}
	return nil
}

func scanEpisodio(row pgx.Row) (*Episodio, error) {
	var e Episodio
	err := row.Scan(
		&e.IDEpisodio, &e.NHCPaciente, &e.Medico, &e.FechaEpisodio,
		&e.TipoAsistencia, &e.MotivoConsulta, &e.Anamnesis, &e.Diagnostico,
		&e.Tratamiento, &e.Peso, &e.PA, &e.SpO2,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// -- HCE Repository --

type hceRepoPG struct {
	pool *pgxpool.Pool
}

func NewHCERepo(pool *pgxpool.Pool) HCERepository {
	return &hceRepoPG{pool: pool}
}

func (r *hceRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const hceColumns = `NHC_paciente, sexo, grupo_sanguineo, alergias, antecedentes_clinicos`

func (r *hceRepoPG) Create(ctx context.Context, h *HCE) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO hce (NHC_paciente, sexo, grupo_sanguineo, alergias, antecedentes_clinicos)
		VALUES ($1, $2, $3, $4, $5)`,
		h.NHCPaciente, h.Sexo, h.GrupoSanguineo, h.Alergias, h.AntecedentesClinicos,
	)
	return db.TranslateError("crear hce", "hce", err)
}

func (r *hceRepoPG) GetByNHC(ctx context.Context, nhc int64) (*HCE, error) {
	h, err := scanHCE(r.conn(ctx).QueryRow(ctx,
		`SELECT `+hceColumns+` FROM hce WHERE NHC_paciente = $1`, nhc))
	if err != nil {
		return nil, db.TranslateError("buscar hce", "hce", err)
	}
	return h, nil
}

func (r *hceRepoPG) List(ctx context.Context) ([]*HCE, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+hceColumns+` FROM hce ORDER BY NHC_paciente`)
	if err != nil {
		return nil, db.TranslateError("obtener hces", "hce", err)
	}
	defer rows.Close()

	hces := []*HCE{}
	for rows.Next() {
		h, err := scanHCE(rows)
		if err != nil {
			return nil, db.TranslateError("leer hces", "hce", err)
		}
		hces = append(hces, h)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer hces", "hce", err)
	}
	return hces, nil
}

func (r *hceRepoPG) Update(ctx context.Context, nhc int64, upd *HCEUpdate) error {
	var b db.SetBuilder
	if upd.Sexo != nil {
		b.Set("sexo", *upd.Sexo)
	}
	if upd.GrupoSanguineo != nil {
		b.Set("grupo_sanguineo", *upd.GrupoSanguineo)
	}
	if upd.Alergias != nil {
		b.Set("alergias", *upd.Alergias)
	}
	if upd.AntecedentesClinicos != nil {
		b.Set("antecedentes_clinicos", *upd.AntecedentesClinicos)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("hce", "NHC_paciente", nhc)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar hce", "hce", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("hce")
	}
	return nil
}

func (r *hceRepoPG) Delete(ctx context.Context, nhc int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hce WHERE NHC_paciente = $1`, nhc)
	if err != nil {
		return db.TranslateError("eliminar hce", "hce", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("hce")
	}
	return nil
}

func scanHCE(row pgx.Row) (*HCE, error) {
	var h HCE
	err := row.Scan(&h.NHCPaciente, &h.Sexo, &h.GrupoSanguineo, &h.Alergias, &h.AntecedentesClinicos)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// -- DatoAntropometrico Repository --

type datoAntropometricoRepoPG struct {
	pool *pgxpool.Pool
}

func NewDatoAntropometricoRepo(pool *pgxpool.Pool) DatoAntropometricoRepository {
	return &datoAntropometricoRepoPG{pool: pool}
}

func (r *datoAntropometricoRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const datoColumns = `idDatoAntropometrico, NHC_paciente, fecha_registro, peso,
	altura, IMC, circunferencia_cintura, circunferencia_cadera, circunferencia_cabeza`

func (r *datoAntropometricoRepoPG) Create(ctx context.Context, d *DatoAntropometrico) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO datos_antropometricos (
			NHC_paciente, fecha_registro, peso, altura, IMC,
			circunferencia_cintura, circunferencia_cadera, circunferencia_cabeza
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING idDatoAntropometrico`,
		d.NHCPaciente, d.FechaRegistro, d.Peso, d.Altura, d.IMC,
		d.CircunferenciaCintura, d.CircunferenciaCadera, d.CircunferenciaCabeza,
	).Scan(&d.IDDatoAntropometrico)
	return db.TranslateError("crear datos antropométricos", "datos antropométricos", err)
}

func (r *datoAntropometricoRepoPG) GetByID(ctx context.Context, id int64) (*DatoAntropometrico, error) {
	d, err := scanDato(r.conn(ctx).QueryRow(ctx,
		`SELECT `+datoColumns+` FROM datos_antropometricos WHERE idDatoAntropometrico = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar datos antropométricos", "datos antropométricos", err)
	}
	return d, nil
}

func (r *datoAntropometricoRepoPG) FindByPaciente(ctx context.Context, nhc int64) ([]*DatoAntropometrico, error) {
	return r.find(ctx,
		`SELECT `+datoColumns+` FROM datos_antropometricos WHERE NHC_paciente = $1 ORDER BY fecha_registro DESC, idDatoAntropometrico DESC`,
		nhc)
}

func (r *datoAntropometricoRepoPG) List(ctx context.Context) ([]*DatoAntropometrico, error) {
	return r.find(ctx, `SELECT `+datoColumns+` FROM datos_antropometricos ORDER BY idDatoAntropometrico`)
}

func (r *datoAntropometricoRepoPG) find(ctx context.Context, sql string, args ...interface{}) ([]*DatoAntropometrico, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener datos antropométricos", "datos antropométricos", err)
	}
	defer rows.Close()

	datos := []*DatoAntropometrico{}
	for rows.Next() {
		d, err := scanDato(rows)
		if err != nil {
			return nil, db.TranslateError("leer datos antropométricos", "datos antropométricos", err)
		}
		datos = append(datos, d)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer datos antropométricos", "datos antropométricos", err)
	}
	return datos, nil
}

func (r *datoAntropometricoRepoPG) Update(ctx context.Context, id int64, upd *DatoAntropometricoUpdate) error {
	var b db.SetBuilder
	if upd.FechaRegistro != nil {
		b.Set("fecha_registro", *upd.FechaRegistro)
	}
	if upd.Peso != nil {
		b.Set("peso", *upd.Peso)
	}
	if upd.Altura != nil {
		b.Set("altura", *upd.Altura)
	}
	if upd.IMC != nil {
		b.Set("IMC", *upd.IMC)
	}
	if upd.CircunferenciaCintura != nil {
		b.Set("circunferencia_cintura", *upd.CircunferenciaCintura)
	}
	if upd.CircunferenciaCadera != nil {
		b.Set("circunferencia_cadera", *upd.CircunferenciaCadera)
	}
	if upd.CircunferenciaCabeza != nil {
		b.Set("circunferencia_cabeza", *upd.CircunferenciaCabeza)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("datos_antropometricos", "idDatoAntropometrico", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar datos antropométricos", "datos antropométricos", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("datos antropométricos")
	}
	return nil
}

func (r *datoAntropometricoRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM datos_antropometricos WHERE idDatoAntropometrico = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar datos antropométricos", "datos antropométricos", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("datos antropométricos")
	}
	return nil
}

func scanDato(row pgx.Row) (*DatoAntropometrico, error) {
	var d DatoAntropometrico
	err := row.Scan(
		&d.IDDatoAntropometrico, &d.NHCPaciente, &d.FechaRegistro, &d.Peso,
		&d.Altura, &d.IMC, &d.CircunferenciaCintura, &d.CircunferenciaCadera,
		&d.CircunferenciaCabeza,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
