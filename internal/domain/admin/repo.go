package admin

import "context"

type RolRepository interface {
	Create(ctx context.Context, rol *Rol) error
	GetByID(ctx context.Context, id int64) (*Rol, error)
	FindByDescripcion(ctx context.Context, descripcion string) ([]*Rol, error)
	List(ctx context.Context) ([]*Rol, error)
	Update(ctx context.Context, id int64, upd *RolUpdate) error
	Delete(ctx context.Context, id int64) error
}

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *Usuario) error
	GetByID(ctx context.Context, id int64) (*Usuario, error)
	GetByNombreUsuario(ctx context.Context, nombre string) (*Usuario, error)
	List(ctx context.Context) ([]*Usuario, error)
	ListOrdenadosPorNombre(ctx context.Context) ([]*Usuario, error)
	ListDetalles(ctx context.Context) ([]*UsuarioDetalle, error)
	GetDetalle(ctx context.Context, id int64) (*UsuarioDetalle, error)
	Update(ctx context.Context, id int64, upd *UsuarioUpdate) error
	Delete(ctx context.Context, id int64) error
}
