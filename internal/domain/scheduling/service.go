package scheduling

import (
	"context"
	"time"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/pkg/fecha"
)

type Service struct {
	agendas AgendaRepository
	citas   CitaRepository
	// now is replaceable so the current-week window is testable.
	now func() time.Time
}

func NewService(agendas AgendaRepository, citas CitaRepository) *Service {
	return &Service{agendas: agendas, citas: citas, now: time.Now}
}

// SemanaActual returns the Monday and Sunday bounding the current week.
func (s *Service) SemanaActual() (fecha.Fecha, fecha.Fecha) {
	now := s.now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(hoy.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	lunes := hoy.AddDate(0, 0, 1-weekday)
	domingo := lunes.AddDate(0, 0, 6)
	return fecha.Fecha{Time: lunes}, fecha.Fecha{Time: domingo}
}

// -- Agenda --

func (s *Service) CreateAgenda(ctx context.Context, agenda *Agenda) error {
	if agenda.Descripcion == "" {
		return apperr.Validation("la descripción de la agenda es requerida")
	}
	return s.agendas.Create(ctx, agenda)
}

func (s *Service) GetAgenda(ctx context.Context, id int64) (*Agenda, error) {
	return s.agendas.GetByID(ctx, id)
}

func (s *Service) FindAgendasByDescripcion(ctx context.Context, descripcion string) ([]*Agenda, error) {
	return s.agendas.FindByDescripcion(ctx, descripcion)
}

func (s *Service) ListAgendas(ctx context.Context) ([]*Agenda, error) {
	return s.agendas.List(ctx)
}

func (s *Service) UpdateAgenda(ctx context.Context, id int64, upd *AgendaUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.Descripcion != nil && *upd.Descripcion == "" {
		return apperr.Validation("la descripción de la agenda no puede estar vacía")
	}
	return s.agendas.Update(ctx, id, upd)
}

func (s *Service) DeleteAgenda(ctx context.Context, id int64) error {
	return s.agendas.Delete(ctx, id)
}

// -- Cita --

func (s *Service) CreateCita(ctx context.Context, cita *Cita) error {
	var errores []string
	if cita.NHCPaciente == 0 {
		errores = append(errores, "el NHC del paciente es requerido")
	}
	if cita.DoctorID == 0 {
		errores = append(errores, "el doctor de la cita es requerido")
	}
	if cita.AgendaID == 0 {
		errores = append(errores, "la agenda de la cita es requerida")
	}
	if cita.Hora != nil {
		if _, err := time.Parse("15:04", *cita.Hora); err != nil {
			errores = append(errores, "la hora debe tener el formato HH:MM")
		}
	}
	if len(errores) > 0 {
		return apperr.Validation(errores...)
	}
	return s.citas.Create(ctx, cita)
}

func (s *Service) GetCita(ctx context.Context, id int64) (*Cita, error) {
	return s.citas.GetByID(ctx, id)
}

func (s *Service) FindCitasByPaciente(ctx context.Context, nhc int64) ([]*Cita, error) {
	return s.citas.FindByPaciente(ctx, nhc)
}

func (s *Service) FindCitasByDoctor(ctx context.Context, doctorID int64) ([]*Cita, error) {
	return s.citas.FindByDoctor(ctx, doctorID)
}

func (s *Service) FindCitasByAgenda(ctx context.Context, agendaID int64) ([]*Cita, error) {
	return s.citas.FindByAgenda(ctx, agendaID)
}

func (s *Service) FindCitasByNombreAgenda(ctx context.Context, nombre string) ([]*Cita, error) {
	return s.citas.FindByNombreAgenda(ctx, nombre)
}

// FindCitasByRange returns the citas between desde and hasta; when either
// bound is missing the current week is used.
func (s *Service) FindCitasByRange(ctx context.Context, desde, hasta *fecha.Fecha) ([]*Cita, error) {
	if desde == nil || hasta == nil {
		lunes, domingo := s.SemanaActual()
		return s.citas.FindByRange(ctx, lunes, domingo)
	}
	if hasta.Before(desde.Time) {
		return nil, apperr.Validation("la fecha final no puede ser anterior a la inicial")
	}
	return s.citas.FindByRange(ctx, *desde, *hasta)
}

func (s *Service) ListCitas(ctx context.Context) ([]*Cita, error) {
	return s.citas.List(ctx)
}

func (s *Service) ListCitaDetalles(ctx context.Context) ([]*CitaDetalle, error) {
	return s.citas.ListDetalles(ctx)
}

// ListCitaDetallesSemanaActual returns the joined citas of the current week.
func (s *Service) ListCitaDetallesSemanaActual(ctx context.Context) ([]*CitaDetalle, error) {
	lunes, domingo := s.SemanaActual()
	return s.citas.ListDetallesByRange(ctx, lunes, domingo)
}

func (s *Service) UpdateCita(ctx context.Context, id int64, upd *CitaUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.Hora != nil {
		if _, err := time.Parse("15:04", *upd.Hora); err != nil {
			return apperr.Validation("la hora debe tener el formato HH:MM")
		}
	}
	return s.citas.Update(ctx, id, upd)
}

func (s *Service) DeleteCita(ctx context.Context, id int64) error {
	return s.citas.Delete(ctx, id)
}
