package admin

import (
	"context"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/auth"
)

type Service struct {
	roles    RolRepository
	usuarios UsuarioRepository
	hasher   *auth.PasswordHasher
}

func NewService(roles RolRepository, usuarios UsuarioRepository, hasher *auth.PasswordHasher) *Service {
	return &Service{roles: roles, usuarios: usuarios, hasher: hasher}
}

// -- Rol --

func (s *Service) CreateRol(ctx context.Context, rol *Rol) error {
	if rol.DescripcionRol == "" {
		return apperr.Validation("la descripción del rol es requerida")
	}
	return s.roles.Create(ctx, rol)
}

func (s *Service) GetRol(ctx context.Context, id int64) (*Rol, error) {
	return s.roles.GetByID(ctx, id)
}

func (s *Service) FindRolesByDescripcion(ctx context.Context, descripcion string) ([]*Rol, error) {
	return s.roles.FindByDescripcion(ctx, descripcion)
}

func (s *Service) ListRoles(ctx context.Context) ([]*Rol, error) {
	return s.roles.List(ctx)
}

func (s *Service) UpdateRol(ctx context.Context, id int64, upd *RolUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.DescripcionRol != nil && *upd.DescripcionRol == "" {
		return apperr.Validation("la descripción del rol no puede estar vacía")
	}
	return s.roles.Update(ctx, id, upd)
}

func (s *Service) DeleteRol(ctx context.Context, id int64) error {
	return s.roles.Delete(ctx, id)
}

// -- Usuario --

// CreateUsuario hashes the supplied plaintext password and stores the new
// account. The returned Usuario carries the assigned id, never the hash in
// its JSON form.
func (s *Service) CreateUsuario(ctx context.Context, nuevo *UsuarioNuevo) (*Usuario, error) {
	var errores []string
	if nuevo.NombreUsuario == "" {
		errores = append(errores, "el nombre de usuario es requerido")
	}
	if nuevo.Contrasena == "" {
		errores = append(errores, "la contraseña es requerida")
	}
	if nuevo.RolUsuario == 0 {
		errores = append(errores, "el rol del usuario es requerido")
	}
	if len(errores) > 0 {
		return nil, apperr.Validation(errores...)
	}

	hashed, err := s.hasher.Hash(nuevo.Contrasena)
	if err != nil {
		return nil, apperr.Storage("hashear contraseña", err)
	}
	usuario := &Usuario{
		NombreUsuario: nuevo.NombreUsuario,
		Contrasena:    hashed,
		RolUsuario:    nuevo.RolUsuario,
	}
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (s *Service) GetUsuario(ctx context.Context, id int64) (*Usuario, error) {
	return s.usuarios.GetByID(ctx, id)
}

func (s *Service) GetUsuarioByNombre(ctx context.Context, nombre string) (*Usuario, error) {
	return s.usuarios.GetByNombreUsuario(ctx, nombre)
}

func (s *Service) ListUsuarios(ctx context.Context) ([]*Usuario, error) {
	return s.usuarios.List(ctx)
}

func (s *Service) ListUsuariosOrdenadosPorNombre(ctx context.Context) ([]*Usuario, error) {
	return s.usuarios.ListOrdenadosPorNombre(ctx)
}

func (s *Service) ListUsuarioDetalles(ctx context.Context) ([]*UsuarioDetalle, error) {
	return s.usuarios.ListDetalles(ctx)
}

func (s *Service) GetUsuarioDetalle(ctx context.Context, id int64) (*UsuarioDetalle, error) {
	return s.usuarios.GetDetalle(ctx, id)
}

// UpdateUsuario applies a partial update; a supplied plaintext password is
// hashed before it is stored.
func (s *Service) UpdateUsuario(ctx context.Context, id int64, upd *UsuarioUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.Contrasena != nil {
		if *upd.Contrasena == "" {
			return apperr.Validation("la contraseña no puede estar vacía")
		}
		hashed, err := s.hasher.Hash(*upd.Contrasena)
		if err != nil {
			return apperr.Storage("hashear contraseña", err)
		}
		upd.Contrasena = &hashed
	}
	return s.usuarios.Update(ctx, id, upd)
}

func (s *Service) DeleteUsuario(ctx context.Context, id int64) error {
	return s.usuarios.Delete(ctx, id)
}
