package scheduling

import (
	"context"

	"github.com/clinsalud/api/pkg/fecha"
)

type AgendaRepository interface {
	Create(ctx context.Context, agenda *Agenda) error
	GetByID(ctx context.Context, id int64) (*Agenda, error)
	FindByDescripcion(ctx context.Context, descripcion string) ([]*Agenda, error)
	List(ctx context.Context) ([]*Agenda, error)
	Update(ctx context.Context, id int64, upd *AgendaUpdate) error
	Delete(ctx context.Context, id int64) error
}

type CitaRepository interface {
	Create(ctx context.Context, cita *Cita) error
	GetByID(ctx context.Context, id int64) (*Cita, error)
	FindByPaciente(ctx context.Context, nhc int64) ([]*Cita, error)
	FindByDoctor(ctx context.Context, doctorID int64) ([]*Cita, error)
	FindByAgenda(ctx context.Context, agendaID int64) ([]*Cita, error)
	FindByNombreAgenda(ctx context.Context, nombre string) ([]*Cita, error)
	FindByRange(ctx context.Context, desde, hasta fecha.Fecha) ([]*Cita, error)
	List(ctx context.Context) ([]*Cita, error)
	ListDetalles(ctx context.Context) ([]*CitaDetalle, error)
	ListDetallesByRange(ctx context.Context, desde, hasta fecha.Fecha) ([]*CitaDetalle, error)
	Update(ctx context.Context, id int64, upd *CitaUpdate) error
	Delete(ctx context.Context, id int64) error
}
