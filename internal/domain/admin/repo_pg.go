package admin

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

// -- Rol Repository --

type rolRepoPG struct {
	pool *pgxpool.Pool
}

func NewRolRepo(pool *pgxpool.Pool) RolRepository {
	return &rolRepoPG{pool: pool}
}

func (r *rolRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const rolColumns = `idRol, descripcion_rol`

func (r *rolRepoPG) Create(ctx context.Context, rol *Rol) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO rol (descripcion_rol) VALUES ($1) RETURNING idRol`,
		rol.DescripcionRol,
	).Scan(&rol.IDRol)
	return db.TranslateError("crear rol", "rol", err)
}

func (r *rolRepoPG) GetByID(ctx context.Context, id int64) (*Rol, error) {
	rol, err := scanRol(r.conn(ctx).QueryRow(ctx,
		`SELECT `+rolColumns+` FROM rol WHERE idRol = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar rol", "rol", err)
	}
	return rol, nil
}

func (r *rolRepoPG) FindByDescripcion(ctx context.Context, descripcion string) ([]*Rol, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+rolColumns+` FROM rol WHERE descripcion_rol ILIKE $1 ORDER BY idRol`,
		"%"+descripcion+"%")
	if err != nil {
		return nil, db.TranslateError("buscar roles por descripción", "rol", err)
	}
	return collectRoles(rows)
}

func (r *rolRepoPG) List(ctx context.Context) ([]*Rol, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+rolColumns+` FROM rol ORDER BY idRol`)
	if err != nil {
		return nil, db.TranslateError("obtener roles", "rol", err)
	}
	return collectRoles(rows)
}

func (r *rolRepoPG) Update(ctx context.Context, id int64, upd *RolUpdate) error {
	var b db.SetBuilder
	if upd.DescripcionRol != nil {
		b.Set("descripcion_rol", *upd.DescripcionRol)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("rol", "idRol", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar rol", "rol", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("rol")
	}
	return nil
}

func (r *rolRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM rol WHERE idRol = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar rol", "rol", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("rol")
	}
	return nil
}

func scanRol(row pgx.Row) (*Rol, error) {
	var rol Rol
	if err := row.Scan(&rol.IDRol, &rol.DescripcionRol); err != nil {
		return nil, err
	}
	return &rol, nil
}

func collectRoles(rows pgx.Rows) ([]*Rol, error) {
	defer rows.Close()
	roles := []*Rol{}
	for rows.Next() {
		rol, err := scanRol(rows)
		if err != nil {
			return nil, db.TranslateError("leer roles", "rol", err)
		}
		roles = append(roles, rol)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer roles", "rol", err)
	}
	return roles, nil
}

// -- Usuario Repository --

type usuarioRepoPG struct {
	pool *pgxpool.Pool
}

func NewUsuarioRepo(pool *pgxpool.Pool) UsuarioRepository {
	return &usuarioRepoPG{pool: pool}
}

func (r *usuarioRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const usuarioColumns = `idUsuario, nombre_usuario, contrasena, rol_usuario`

const usuarioDetalleQuery = `
	SELECT u.idUsuario, u.nombre_usuario, p.email, r.descripcion_rol
	FROM usuario u
	JOIN rol r ON r.idRol = u.rol_usuario
	LEFT JOIN persona p ON p.idPersona = u.idUsuario`

func (r *usuarioRepoPG) Create(ctx context.Context, usuario *Usuario) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO usuario (nombre_usuario, contrasena, rol_usuario)
		VALUES ($1, $2, $3) RETURNING idUsuario`,
		usuario.NombreUsuario, usuario.Contrasena, usuario.RolUsuario,
	).Scan(&usuario.IDUsuario)
	return db.TranslateError("crear usuario", "usuario", err)
}

func (r *usuarioRepoPG) GetByID(ctx context.Context, id int64) (*Usuario, error) {
	u, err := scanUsuario(r.conn(ctx).QueryRow(ctx,
		`SELECT `+usuarioColumns+` FROM usuario WHERE idUsuario = $1`, id))
	if err != nil {
		return nil, db.TranslateError("buscar usuario", "usuario", err)
	}
	return u, nil
}

func (r *usuarioRepoPG) GetByNombreUsuario(ctx context.Context, nombre string) (*Usuario, error) {
	u, err := scanUsuario(r.conn(ctx).QueryRow(ctx,
		`SELECT `+usuarioColumns+` FROM usuario WHERE nombre_usuario = $1`, nombre))
	if err != nil {
		return nil, db.TranslateError("buscar usuario por nombre", "usuario", err)
	}
	return u, nil
}

func (r *usuarioRepoPG) List(ctx context.Context) ([]*Usuario, error) {
	return r.list(ctx, `SELECT `+usuarioColumns+` FROM usuario ORDER BY idUsuario`)
}

func (r *usuarioRepoPG) ListOrdenadosPorNombre(ctx context.Context) ([]*Usuario, error) {
	return r.list(ctx, `SELECT `+usuarioColumns+` FROM usuario ORDER BY nombre_usuario`)
}

func (r *usuarioRepoPG) list(ctx context.Context, sql string) ([]*Usuario, error) {
	rows, err := r.conn(ctx).Query(ctx, sql)
	if err != nil {
		return nil, db.TranslateError("obtener usuarios", "usuario", err)
	}
	defer rows.Close()

	usuarios := []*Usuario{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, db.TranslateError("leer usuarios", "usuario", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer usuarios", "usuario", err)
	}
	return usuarios, nil
}

func (r *usuarioRepoPG) ListDetalles(ctx context.Context) ([]*UsuarioDetalle, error) {
	rows, err := r.conn(ctx).Query(ctx, usuarioDetalleQuery+` ORDER BY u.idUsuario`)
	if err != nil {
		return nil, db.TranslateError("obtener detalles de usuarios", "usuario", err)
	}
	defer rows.Close()

	detalles := []*UsuarioDetalle{}
	for rows.Next() {
		d, err := scanUsuarioDetalle(rows)
		if err != nil {
			return nil, db.TranslateError("leer detalles de usuarios", "usuario", err)
		}
		detalles = append(detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError("leer detalles de usuarios", "usuario", err)
	}
	return detalles, nil
}

func (r *usuarioRepoPG) GetDetalle(ctx context.Context, id int64) (*UsuarioDetalle, error) {
	d, err := scanUsuarioDetalle(r.conn(ctx).QueryRow(ctx,
		usuarioDetalleQuery+` WHERE u.idUsuario = $1`, id))
	if err != nil {
		return nil, db.TranslateError("obtener detalle de usuario", "usuario", err)
	}
	return d, nil
}

func (r *usuarioRepoPG) Update(ctx context.Context, id int64, upd *UsuarioUpdate) error {
	var b db.SetBuilder
	if upd.NombreUsuario != nil {
		b.Set("nombre_usuario", *upd.NombreUsuario)
	}
	if upd.Contrasena != nil {
		b.Set("contrasena", *upd.Contrasena)
	}
	if upd.RolUsuario != nil {
		b.Set("rol_usuario", *upd.RolUsuario)
	}
	if b.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	sql, args := b.SQL("usuario", "idUsuario", id)
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return db.TranslateError("actualizar usuario", "usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("usuario")
	}
	return nil
}

func (r *usuarioRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM usuario WHERE idUsuario = $1`, id)
	if err != nil {
		return db.TranslateError("eliminar usuario", "usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("usuario")
	}
	return nil
}

func scanUsuario(row pgx.Row) (*Usuario, error) {
	var u Usuario
	if err := row.Scan(&u.IDUsuario, &u.NombreUsuario, &u.Contrasena, &u.RolUsuario); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUsuarioDetalle(row pgx.Row) (*UsuarioDetalle, error) {
	var d UsuarioDetalle
	if err := row.Scan(&d.IDUsuario, &d.NombreUsuario, &d.Email, &d.DescripcionRol); err != nil {
		return nil, err
	}
	return &d, nil
}
