package pharmacy

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

// -- Medicamento Repository --

type medicamentoRepoPG struct {
	pool *pgxpool.Pool
}

func NewMedicamentoRepo(pool *pgxpool.Pool) MedicamentoRepository {
	return &medicamentoRepoPG{pool: pool}
}

func (r *medicamentoRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const medicamentoColumns = `idMedicamento, nombre_medicamento, principio_activo,
	descripcion_medicamento, fecha_caducidad, forma_dispensacion`

func (r *medicamentoRepoPG) Create(ctx context.Context, m *Medicamento) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medicamento (
			nombre_medicamento, principio_activo, descripcion_medicamento,
			fecha_caducidad, forma_dispensacion
		) VALUES ($1, $2, $3, $4, $5) RETURNING idMedicamento`,
		m.NombreMedicamento, m.PrincipioActivo, m.DescripcionMedicamento,
		m.FechaCaducidad, m.FormaDispensacion,
	).Scan(&m.IDMedicamento)
	return db.TranslateError("crear medicamento", "medicamento", err)
}

func (r *medicamentoRepoPG) GetByID(ctx context.Context, id int64) (*Medicamento, error) {
	m, err := scanMedicamento(r.conn(ctx).QueryRow(ctx,
		`SELECT `+medicamentoColumns+` FROM medicamento WHERE idMedicamento = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar medicamento", "medicamento", err)
	}
	return m, nil
}

func (r *medicamentoRepoPG) FindByNombre(ctx context.Context, nombre string) ([]*Medicamento, error) {
	return r.find(ctx,
		`SELECT `+medicamentoColumns+` FROM medicamento WHERE nombre_medicamento ILIKE $1 ORDER BY idMedicamento`,
		"%"+nombre+"%")
}

func (r *medicamentoRepoPG) FindByPrincipioActivo(ctx context.Context, principio string) ([]*Medicamento, error) {
	return r.find(ctx,
		`SELECT `+medicamentoColumns+` FROM medicamento WHERE principio_activo ILIKE $1 ORDER BY idMedicamento`,
		"%"+principio+"%")
}

func (r *medicamentoRepoPG) List(ctx context.Context) ([]*Medicamento, error) {
	return r.find(ctx, `SELECT `+medicamentoColumns+` FROM medicamento ORDER BY idMedicamento`)
}

func (r *medicamentoRepoPG) find(ctx context.Context, sql string, args ...interface{}) ([]*Medicamento, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener medicamentos", "medicamento", err)
	}
	defer rows.Close()

	meds := []*Medicamento{}
	for rows.Next() {
		m, err := scanMedicamento(rows)
		if err != nil {
			return nil, db.TranslateError("leer medicamentos", "medicamento", err)
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer medicamentos", "medicamento", err)
	}
	return meds, nil
}

func (r *medicamentoRepoPG) Update(ctx context.Context, id int64, upd *MedicamentoUpdate) error {
	var b db.SetBuilder
	if upd.NombreMedicamento != nil {
		b.Set("nombre_medicamento", *upd.NombreMedicamento)
	}
	if upd.PrincipioActivo != nil {
		b.Set("principio_activo", *upd.PrincipioActivo)
	}
	if upd.DescripcionMedicamento != nil {
		b.Set("descripcion_medicamento", *upd.DescripcionMedicamento)
	}
	if upd.FechaCaducidad != nil {
		b.Set("fecha_caducidad", *upd.FechaCaducidad)
	}
	if upd.FormaDispensacion != nil {
		b.Set("forma_dispensacion", *upd.FormaDispensacion)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("medicamento", "idMedicamento", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar medicamento", "medicamento", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicamento")
	}
	return nil
}

func (r *medicamentoRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM medicamento WHERE idMedicamento = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar medicamento", "medicamento", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicamento")
	}
	return nil
}

func scanMedicamento(row pgx.Row) (*Medicamento, error) {
	var m Medicamento
	err := row.Scan(
		&m.IDMedicamento, &m.NombreMedicamento, &m.PrincipioActivo,
		&m.DescripcionMedicamento, &m.FechaCaducidad, &m.FormaDispensacion,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// -- Inventario Repository --

type inventarioRepoPG struct {
	pool *pgxpool.Pool
}

func NewInventarioRepo(pool *pgxpool.Pool) InventarioRepository {
	return &inventarioRepoPG{pool: pool}
}

func (r *inventarioRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const inventarioColumns = `idInventario, idMedicamento, cantidad_actual, fecha_registro`

func (r *inventarioRepoPG) Create(ctx context.Context, inv *Inventario) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO inventario_medicamentos (idMedicamento, cantidad_actual, fecha_registro)
		VALUES ($1, $2, $3) RETURNING idInventario`,
		inv.IDMedicamento, inv.CantidadActual, inv.FechaRegistro,
	).Scan(&inv.IDInventario)
	return db.TranslateError("crear registro de inventario", "inventario", err)
}

func (r *inventarioRepoPG) GetByID(ctx context.Context, id int64) (*Inventario, error) {
	inv, err := scanInventario(r.conn(ctx).QueryRow(ctx,
		`SELECT `+inventarioColumns+` FROM inventario_medicamentos WHERE idInventario = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar registro de inventario", "inventario", err)
	}
	return inv, nil
}

func (r *inventarioRepoPG) GetByIDMedicamento(ctx context.Context, idMedicamento int64) (*Inventario, error) {
	inv, err := scanInventario(r.conn(ctx).QueryRow(ctx,
		`SELECT `+inventarioColumns+` FROM inventario_medicamentos WHERE idMedicamento = $1`, idMedicamento))
	if err != nil {
		return nil, db.TranslateError("buscar inventario por medicamento", "inventario", err)
	}
	return inv, nil
}

func (r *inventarioRepoPG) List(ctx context.Context) ([]*Inventario, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+inventarioColumns+` FROM inventario_medicamentos ORDER BY idInventario`)
	if err != nil {
		return nil, db.TranslateError("obtener inventario", "inventario", err)
	}
	defer rows.Close()

	registros := []*Inventario{}
	for rows.Next() {
		inv, err := scanInventario(rows)
		if err != nil {
			return nil, db.TranslateError("leer inventario", "inventario", err)
		}
		registros = append(registros, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer inventario", "inventario", err)
	}
	return registros, nil
}

func (r *inventarioRepoPG) Update(ctx context.Context, id int64, upd *InventarioUpdate) error {
	var b db.SetBuilder
	if upd.CantidadActual != nil {
		b.Set("cantidad_actual", *upd.CantidadActual)
	}
	if upd.FechaRegistro != nil {
		b.Set("fecha_registro", *upd.FechaRegistro)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("inventario_medicamentos", "idInventario", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar inventario", "inventario", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("inventario")
	}
	return nil
}

func (r *inventarioRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM inventario_medicamentos WHERE idInventario = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar registro de inventario", "inventario", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("inventario")
	}
	return nil
}

func scanInventario(row pgx.Row) (*Inventario, error) {
	var inv Inventario
	err := row.Scan(&inv.IDInventario, &inv.IDMedicamento, &inv.CantidadActual, &inv.FechaRegistro)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// -- Receta Repository --

type recetaRepoPG struct {
	pool *pgxpool.Pool
}

func NewRecetaRepo(pool *pgxpool.Pool) RecetaRepository {
	return &recetaRepoPG{pool: pool}
}

func (r *recetaRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const recetaColumns = `idReceta, nhc_paciente, id_medicamento, id_medico, fecha_receta, recomendaciones`

const recetaDetalleQuery = `
	SELECT r.idReceta, r.fecha_receta, r.recomendaciones,
		pe.nombre || ' ' || pe.apellido1 AS paciente,
		m.nombre_medicamento, u.nombre_usuario AS medico
	FROM receta r
	JOIN paciente pa ON pa.NHC = r.nhc_paciente
	JOIN persona pe ON pe.idPersona = pa.NHC
	JOIN medicamento m ON m.idMedicamento = r.id_medicamento
	JOIN usuario u ON u.idUsuario = r.id_medico`

func (r *recetaRepoPG) Create(ctx context.Context, receta *Receta) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO receta (nhc_paciente, id_medicamento, id_medico, fecha_receta, recomendaciones)
		VALUES ($1, $2, $3, $4, $5) RETURNING idReceta`,
		receta.NHCPaciente, receta.IDMedicamento, receta.IDMedico,
		receta.FechaReceta, receta.Recomendaciones,
	).Scan(&receta.IDReceta)
	return db.TranslateError("crear receta", "receta", err)
}

func (r *recetaRepoPG) GetByID(ctx context.Context, id int64) (*Receta, error) {
	receta, err := scanReceta(r.conn(ctx).QueryRow(ctx,
		`SELECT `+recetaColumns+` FROM receta WHERE idReceta = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar receta", "receta", err)
	}
	return receta, nil
}

func (r *recetaRepoPG) FindByPaciente(ctx context.Context, nhc int64) ([]*Receta, error) {
	return r.find(ctx,
		`SELECT `+recetaColumns+` FROM receta WHERE nhc_paciente = $1 ORDER BY idReceta`, nhc)
}

func (r *recetaRepoPG) FindByMedicamento(ctx context.Context, idMedicamento int64) ([]*Receta, error) {
	return r.find(ctx,
		`SELECT `+recetaColumns+` FROM receta WHERE id_medicamento = $1 ORDER BY idReceta`, idMedicamento)
}

func (r *recetaRepoPG) List(ctx context.Context) ([]*Receta, error) {
	return r.find(ctx, `SELECT `+recetaColumns+` FROM receta ORDER BY idReceta`)
}

func (r *recetaRepoPG) find(ctx context.Context, sql string, args ...interface{}) ([]*Receta, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslateError("obtener recetas", "receta", err)
	}
	defer rows.Close()

	recetas := []*Receta{}
	for rows.Next() {
		receta, err := scanReceta(rows)
		if err != nil {
			return nil, db.TranslateError("leer recetas", "receta", err)
		}
		recetas = append(recetas, receta)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer recetas", "receta", err)
	}
	return recetas, nil
}

func (r *recetaRepoPG) ListDetalles(ctx context.Context) ([]*RecetaDetalle, error) {
	rows, err := r.conn(ctx).Query(ctx, recetaDetalleQuery+` ORDER BY r.idReceta`)
	if err != nil {
		return nil, db.TranslateError("obtener detalles de recetas", "receta", err)
	}
	defer rows.Close()

	detalles := []*RecetaDetalle{}
	for rows.Next() {
		d, err := scanRecetaDetalle(rows)
		if err != nil {
			return nil, db.TranslateError("leer detalles de recetas", "receta", err)
		}
		detalles = append(detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer detalles de recetas", "receta", err)
	}
	return detalles, nil
}

func (r *recetaRepoPG) GetDetalle(ctx context.Context, id int64) (*RecetaDetalle, error) {
	d, err := scanRecetaDetalle(r.conn(ctx).QueryRow(ctx,
		recetaDetalleQuery+` WHERE r.idReceta = $1`, id))
	if err != nil {
		return nil, db.TranslateError("obtener detalle de receta", "receta", err)
	}
	return d, nil
}

func (r *recetaRepoPG) Update(ctx context.Context, id int64, upd *RecetaUpdate) error {
	var b db.SetBuilder
	if upd.FechaReceta != nil {
		b.Set("fecha_receta", *upd.FechaReceta)
	}
	if upd.Recomendaciones != nil {
		b.Set("recomendaciones", *upd.Recomendaciones)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("receta", "idReceta", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar receta", "receta", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("receta")
	}
	return nil
}

func (r *recetaRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM receta WHERE idReceta = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar receta", "receta", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("receta")
	}
	return nil
}

func scanReceta(row pgx.Row) (*Receta, error) {
	var receta Receta
	err := row.Scan(
		&receta.IDReceta, &receta.NHCPaciente, &receta.IDMedicamento,
		&receta.IDMedico, &receta.FechaReceta, &receta.Recomendaciones,
	)
	if err != nil {
		return nil, err
	}
	return &receta, nil
}

func scanRecetaDetalle(row pgx.Row) (*RecetaDetalle, error) {
	var d RecetaDetalle
	err := row.Scan(
		&d.IDReceta, &d.FechaReceta, &d.Recomendaciones,
		&d.Paciente, &d.NombreMedicamento, &d.Medico,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
