package pharmacy

import (
	"context"

	"github.com/clinsalud/api/internal/platform/apperr"
)

type Service struct {
	medicamentos MedicamentoRepository
	inventario   InventarioRepository
	recetas      RecetaRepository
}

func NewService(medicamentos MedicamentoRepository, inventario InventarioRepository, recetas RecetaRepository) *Service {
	return &Service{medicamentos: medicamentos, inventario: inventario, recetas: recetas}
}

// -- Medicamento --

func (s *Service) CreateMedicamento(ctx context.Context, m *Medicamento) error {
	if m.NombreMedicamento == "" {
		return apperr.Validation("el nombre del medicamento es requerido")
	}
	return s.medicamentos.Create(ctx, m)
}

func (s *Service) GetMedicamento(ctx context.Context, id int64) (*Medicamento, error) {
	return s.medicamentos.GetByID(ctx, id)
}

func (s *Service) FindMedicamentosByNombre(ctx context.Context, nombre string) ([]*Medicamento, error) {
	return s.medicamentos.FindByNombre(ctx, nombre)
}

func (s *Service) FindMedicamentosByPrincipioActivo(ctx context.Context, principio string) ([]*Medicamento, error) {
	return s.medicamentos.FindByPrincipioActivo(ctx, principio)
}

func (s *Service) ListMedicamentos(ctx context.Context) ([]*Medicamento, error) {
	return s.medicamentos.List(ctx)
}

func (s *Service) UpdateMedicamento(ctx context.Context, id int64, upd *MedicamentoUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.NombreMedicamento != nil && *upd.NombreMedicamento == "" {
		return apperr.Validation("el nombre del medicamento no puede estar vacío")
	}
	return s.medicamentos.Update(ctx, id, upd)
}

func (s *Service) DeleteMedicamento(ctx context.Context, id int64) error {
	return s.medicamentos.Delete(ctx, id)
}

// -- Inventario --

func (s *Service) CreateInventario(ctx context.Context, inv *Inventario) error {
	var errores []string
	if inv.IDMedicamento == 0 {
		errores = append(errores, "el medicamento del registro es requerido")
	}
	if inv.CantidadActual < 0 {
		errores = append(errores, "la cantidad actual no puede ser negativa")
	}
	if len(errores) > 0 {
		return apperr.Validation(errores...)
	}
	return s.inventario.Create(ctx, inv)
}

func (s *Service) GetInventario(ctx context.Context, id int64) (*Inventario, error) {
	return s.inventario.GetByID(ctx, id)
}

func (s *Service) GetInventarioByMedicamento(ctx context.Context, idMedicamento int64) (*Inventario, error) {
	return s.inventario.GetByIDMedicamento(ctx, idMedicamento)
}

func (s *Service) ListInventario(ctx context.Context) ([]*Inventario, error) {
	return s.inventario.List(ctx)
}

func (s *Service) UpdateInventario(ctx context.Context, id int64, upd *InventarioUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.CantidadActual != nil && *upd.CantidadActual < 0 {
		return apperr.Validation("la cantidad actual no puede ser negativa")
	}
	return s.inventario.Update(ctx, id, upd)
}

func (s *Service) DeleteInventario(ctx context.Context, id int64) error {
	return s.inventario.Delete(ctx, id)
}

// -- Receta --

func (s *Service) CreateReceta(ctx context.Context, receta *Receta) error {
	var errores []string
	if receta.NHCPaciente == 0 {
		errores = append(errores, "el NHC del paciente es requerido")
	}
	if receta.IDMedicamento == 0 {
		errores = append(errores, "el medicamento de la receta es requerido")
	}
	if receta.IDMedico == 0 {
		errores = append(errores, "el médico de la receta es requerido")
	}
	if len(errores) > 0 {
		return apperr.Validation(errores...)
	}
	return s.recetas.Create(ctx, receta)
}

func (s *Service) GetReceta(ctx context.Context, id int64) (*Receta, error) {
	return s.recetas.GetByID(ctx, id)
}

func (s *Service) FindRecetasByPaciente(ctx context.Context, nhc int64) ([]*Receta, error) {
	return s.recetas.FindByPaciente(ctx, nhc)
}

func (s *Service) FindRecetasByMedicamento(ctx context.Context, idMedicamento int64) ([]*Receta, error) {
	return s.recetas.FindByMedicamento(ctx, idMedicamento)
}

func (s *Service) ListRecetas(ctx context.Context) ([]*Receta, error) {
	return s.recetas.List(ctx)
}

func (s *Service) ListRecetaDetalles(ctx context.Context) ([]*RecetaDetalle, error) {
	return s.recetas.ListDetalles(ctx)
}

func (s *Service) GetRecetaDetalle(ctx context.Context, id int64) (*RecetaDetalle, error) {
	return s.recetas.GetDetalle(ctx, id)
}

func (s *Service) UpdateReceta(ctx context.Context, id int64, upd *RecetaUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	return s.recetas.Update(ctx, id, upd)
}

func (s *Service) DeleteReceta(ctx context.Context, id int64) error {
	return s.recetas.Delete(ctx, id)
}
