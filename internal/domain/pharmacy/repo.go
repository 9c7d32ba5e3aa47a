package pharmacy

import "context"

type MedicamentoRepository interface {
	Create(ctx context.Context, m *Medicamento) error
	GetByID(ctx context.Context, id int64) (*Medicamento, error)
	FindByNombre(ctx context.Context, nombre string) ([]*Medicamento, error)
	FindByPrincipioActivo(ctx context.Context, principio string) ([]*Medicamento, error)
	List(ctx context.Context) ([]*Medicamento, error)
	Update(ctx context.Context, id int64, upd *MedicamentoUpdate) error
	Delete(ctx context.Context, id int64) error
}

type InventarioRepository interface {
	Create(ctx context.Context, inv *Inventario) error
	GetByID(ctx context.Context, id int64) (*Inventario, error)
	GetByIDMedicamento(ctx context.Context, idMedicamento int64) (*Inventario, error)
	List(ctx context.Context) ([]*Inventario, error)
	Update(ctx context.Context, id int64, upd *InventarioUpdate) error
	Delete(ctx context.Context, id int64) error
}

type RecetaRepository interface {
	Create(ctx context.Context, receta *Receta) error
	GetByID(ctx context.Context, id int64) (*Receta, error)
	FindByPaciente(ctx context.Context, nhc int64) ([]*Receta, error)
	FindByMedicamento(ctx context.Context, idMedicamento int64) ([]*Receta, error)
	List(ctx context.Context) ([]*Receta, error)
	ListDetalles(ctx context.Context) ([]*RecetaDetalle, error)
	GetDetalle(ctx context.Context, id int64) (*RecetaDetalle, error)
	Update(ctx context.Context, id int64, upd *RecetaUpdate) error
	Delete(ctx context.Context, id int64) error
}
