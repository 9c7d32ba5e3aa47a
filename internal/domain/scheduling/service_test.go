package scheduling

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/pkg/fecha"
)

type mockAgendaRepo struct {
	agendas map[int64]*Agenda
	nextID  int64
}

func newMockAgendaRepo() *mockAgendaRepo {
	return &mockAgendaRepo{agendas: make(map[int64]*Agenda), nextID: 1}
}

func (m *mockAgendaRepo) Create(_ context.Context, agenda *Agenda) error {
	agenda.IDAgenda = m.nextID
	m.nextID++
	cp := *agenda
	m.agendas[agenda.IDAgenda] = &cp
	return nil
}

func (m *mockAgendaRepo) GetByID(_ context.Context, id int64) (*Agenda, error) {
	agenda, ok := m.agendas[id]
	if !ok {
		return nil, apperr.NotFound("agenda")
	}
	cp := *agenda
	return &cp, nil
}

func (m *mockAgendaRepo) FindByDescripcion(_ context.Context, descripcion string) ([]*Agenda, error) {
	var out []*Agenda
	for _, agenda := range m.agendas {
		if strings.Contains(strings.ToLower(agenda.Descripcion), strings.ToLower(descripcion)) {
			cp := *agenda
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockAgendaRepo) List(_ context.Context) ([]*Agenda, error) {
	out := make([]*Agenda, 0, len(m.agendas))
	for _, agenda := range m.agendas {
		cp := *agenda
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDAgenda < out[j].IDAgenda })
	return out, nil
}

func (m *mockAgendaRepo) Update(_ context.Context, id int64, upd *AgendaUpdate) error {
	agenda, ok := m.agendas[id]
	if !ok {
		return apperr.NotFound("agenda")
	}
	if upd.Descripcion != nil {
		agenda.Descripcion = *upd.Descripcion
	}
	if upd.Horario != nil {
		agenda.Horario = upd.Horario
	}
	return nil
}

func (m *mockAgendaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.agendas[id]; !ok {
		return apperr.NotFound("agenda")
	}
	delete(m.agendas, id)
	return nil
}

type mockCitaRepo struct {
	citas   map[int64]*Cita
	agendas *mockAgendaRepo
	nextID  int64
}

func newMockCitaRepo(agendas *mockAgendaRepo) *mockCitaRepo {
	return &mockCitaRepo{citas: make(map[int64]*Cita), agendas: agendas, nextID: 1}
}

func (m *mockCitaRepo) Create(_ context.Context, cita *Cita) error {
	if _, ok := m.agendas.agendas[cita.AgendaID]; !ok {
		return apperr.NotFound("agenda")
	}
	cita.IDCita = m.nextID
	m.nextID++
	cp := *cita
	m.citas[cita.IDCita] = &cp
	return nil
}

func (m *mockCitaRepo) GetByID(_ context.Context, id int64) (*Cita, error) {
	cita, ok := m.citas[id]
	if !ok {
		return nil, apperr.NotFound("cita")
	}
	cp := *cita
	return &cp, nil
}

func (m *mockCitaRepo) filter(keep func(*Cita) bool) []*Cita {
	var out []*Cita
	for _, cita := range m.citas {
		if keep(cita) {
			cp := *cita
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDCita < out[j].IDCita })
	return out
}

func (m *mockCitaRepo) FindByPaciente(_ context.Context, nhc int64) ([]*Cita, error) {
	return m.filter(func(c *Cita) bool { return c.NHCPaciente == nhc }), nil
}

func (m *mockCitaRepo) FindByDoctor(_ context.Context, doctorID int64) ([]*Cita, error) {
	return m.filter(func(c *Cita) bool { return c.DoctorID == doctorID }), nil
}

func (m *mockCitaRepo) FindByAgenda(_ context.Context, agendaID int64) ([]*Cita, error) {
	return m.filter(func(c *Cita) bool { return c.AgendaID == agendaID }), nil
}

func (m *mockCitaRepo) FindByNombreAgenda(_ context.Context, nombre string) ([]*Cita, error) {
	return m.filter(func(c *Cita) bool {
		agenda, ok := m.agendas.agendas[c.AgendaID]
		return ok && strings.EqualFold(agenda.Descripcion, nombre)
	}), nil
}

func (m *mockCitaRepo) FindByRange(_ context.Context, desde, hasta fecha.Fecha) ([]*Cita, error) {
	return m.filter(func(c *Cita) bool {
		if c.Fecha == nil {
			return false
		}
		return !c.Fecha.Before(desde.Time) && !c.Fecha.After(hasta.Time)
	}), nil
}

func (m *mockCitaRepo) List(_ context.Context) ([]*Cita, error) {
	return m.filter(func(*Cita) bool { return true }), nil
}

func (m *mockCitaRepo) detalle(c *Cita) *CitaDetalle {
	agenda := m.agendas.agendas[c.AgendaID]
	return &CitaDetalle{
		IDCita:          c.IDCita,
		Fecha:           c.Fecha,
		Hora:            c.Hora,
		Paciente:        "Paciente Prueba",
		Doctor:          "doctor",
		Agenda:          agenda.Descripcion,
		InformacionCita: c.InformacionCita,
	}
}

func (m *mockCitaRepo) ListDetalles(_ context.Context) ([]*CitaDetalle, error) {
	citas, _ := m.List(context.Background())
	out := make([]*CitaDetalle, 0, len(citas))
	for _, c := range citas {
		out = append(out, m.detalle(c))
	}
	return out, nil
}

func (m *mockCitaRepo) ListDetallesByRange(ctx context.Context, desde, hasta fecha.Fecha) ([]*CitaDetalle, error) {
	citas, _ := m.FindByRange(ctx, desde, hasta)
	out := make([]*CitaDetalle, 0, len(citas))
	for _, c := range citas {
		out = append(out, m.detalle(c))
	}
	return out, nil
}

func (m *mockCitaRepo) Update(_ context.Context, id int64, upd *CitaUpdate) error {
	cita, ok := m.citas[id]
	if !ok {
		return apperr.NotFound("cita")
	}
	if upd.Fecha != nil {
		cita.Fecha = upd.Fecha
	}
	if upd.Hora != nil {
		cita.Hora = upd.Hora
	}
	if upd.InformacionCita != nil {
		cita.InformacionCita = upd.InformacionCita
	}
	return nil
}

func (m *mockCitaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.citas[id]; !ok {
		return apperr.NotFound("cita")
	}
	delete(m.citas, id)
	return nil
}

func newTestService() (*Service, *mockAgendaRepo, *mockCitaRepo) {
	agendas := newMockAgendaRepo()
	citas := newMockCitaRepo(agendas)
	return NewService(agendas, citas), agendas, citas
}

func strptr(s string) *string { return &s }

func fechaptr(t *testing.T, s string) *fecha.Fecha {
	t.Helper()
	f, err := fecha.Parse(s)
	if err != nil {
		t.Fatalf("fecha.Parse(%q): %v", s, err)
	}
	return &f
}

func seedAgenda(t *testing.T, svc *Service, descripcion string) *Agenda {
	t.Helper()
	agenda := &Agenda{Descripcion: descripcion}
	if err := svc.CreateAgenda(context.Background(), agenda); err != nil {
		t.Fatalf("CreateAgenda: %v", err)
	}
	return agenda
}

func seedCita(t *testing.T, svc *Service, agendaID int64, dia string) *Cita {
	t.Helper()
	cita := &Cita{
		Fecha:       fechaptr(t, dia),
		Hora:        strptr("10:30"),
		NHCPaciente: 1,
		DoctorID:    2,
		AgendaID:    agendaID,
	}
	if err := svc.CreateCita(context.Background(), cita); err != nil {
		t.Fatalf("CreateCita: %v", err)
	}
	return cita
}

func TestService_CreateAgendaRequiereDescripcion(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.CreateAgenda(context.Background(), &Agenda{})
	if _, ok := apperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_CreateCitaValidaCampos(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.CreateCita(context.Background(), &Cita{})
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Errores) != 3 {
		t.Fatalf("expected 3 errores, got %d: %v", len(ve.Errores), ve.Errores)
	}
}

func TestService_CreateCitaHoraInvalida(t *testing.T) {
	svc, _, _ := newTestService()
	agenda := seedAgenda(t, svc, "Pediatría")

	err := svc.CreateCita(context.Background(), &Cita{
		NHCPaciente: 1, DoctorID: 2, AgendaID: agenda.IDAgenda, Hora: strptr("25:99"),
	})
	if _, ok := apperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_CreateCitaAgendaInexistente(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.CreateCita(context.Background(), &Cita{NHCPaciente: 1, DoctorID: 2, AgendaID: 99})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestService_FindCitasByRange(t *testing.T) {
	svc, _, _ := newTestService()
	agenda := seedAgenda(t, svc, "Pediatría")
	dentro := seedCita(t, svc, agenda.IDAgenda, "2026-03-10")
	seedCita(t, svc, agenda.IDAgenda, "2026-04-01")

	citas, err := svc.FindCitasByRange(context.Background(), fechaptr(t, "2026-03-01"), fechaptr(t, "2026-03-31"))
	if err != nil {
		t.Fatalf("FindCitasByRange: %v", err)
	}
	if len(citas) != 1 || citas[0].IDCita != dentro.IDCita {
		t.Fatalf("expected only cita %d, got %+v", dentro.IDCita, citas)
	}
}

func TestService_FindCitasByRangeInvertido(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.FindCitasByRange(context.Background(), fechaptr(t, "2026-03-31"), fechaptr(t, "2026-03-01"))
	if _, ok := apperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_FindCitasByRangeSemanaActual(t *testing.T) {
	svc, _, _ := newTestService()
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC) } // miércoles
	agenda := seedAgenda(t, svc, "Pediatría")
	enSemana := seedCita(t, svc, agenda.IDAgenda, "2026-03-13")
	seedCita(t, svc, agenda.IDAgenda, "2026-03-20")

	citas, err := svc.FindCitasByRange(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("FindCitasByRange: %v", err)
	}
	if len(citas) != 1 || citas[0].IDCita != enSemana.IDCita {
		t.Fatalf("expected only cita %d, got %+v", enSemana.IDCita, citas)
	}
}

func TestService_SemanaActualDomingo(t *testing.T) {
	svc, _, _ := newTestService()
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC) } // domingo

	lunes, domingo := svc.SemanaActual()
	if got := lunes.String(); got != "2026-03-09" {
		t.Fatalf("expected lunes 2026-03-09, got %s", got)
	}
	if got := domingo.String(); got != "2026-03-15" {
		t.Fatalf("expected domingo 2026-03-15, got %s", got)
	}
}

func TestService_ListCitaDetallesSemanaActual(t *testing.T) {
	svc, _, _ := newTestService()
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC) }
	agenda := seedAgenda(t, svc, "Pediatría")
	seedCita(t, svc, agenda.IDAgenda, "2026-03-13")
	seedCita(t, svc, agenda.IDAgenda, "2026-05-01")

	detalles, err := svc.ListCitaDetallesSemanaActual(context.Background())
	if err != nil {
		t.Fatalf("ListCitaDetallesSemanaActual: %v", err)
	}
	if len(detalles) != 1 {
		t.Fatalf("expected 1 detalle, got %d", len(detalles))
	}
	if detalles[0].Agenda != "Pediatría" {
		t.Fatalf("expected agenda Pediatría, got %q", detalles[0].Agenda)
	}
}

func TestService_FindCitasByNombreAgenda(t *testing.T) {
	svc, _, _ := newTestService()
	pediatria := seedAgenda(t, svc, "Pediatría")
	seedAgenda(t, svc, "Vacunación")
	cita := seedCita(t, svc, pediatria.IDAgenda, "2026-03-10")

	citas, err := svc.FindCitasByNombreAgenda(context.Background(), "pediatría")
	if err != nil {
		t.Fatalf("FindCitasByNombreAgenda: %v", err)
	}
	if len(citas) != 1 || citas[0].IDCita != cita.IDCita {
		t.Fatalf("expected cita %d, got %+v", cita.IDCita, citas)
	}
}

func TestService_UpdateCitaVacia(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.UpdateCita(context.Background(), 1, &CitaUpdate{})
	if _, ok := apperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_UpdateCita(t *testing.T) {
	svc, _, citas := newTestService()
	agenda := seedAgenda(t, svc, "Pediatría")
	cita := seedCita(t, svc, agenda.IDAgenda, "2026-03-10")

	err := svc.UpdateCita(context.Background(), cita.IDCita, &CitaUpdate{Hora: strptr("11:45")})
	if err != nil {
		t.Fatalf("UpdateCita: %v", err)
	}
	got := citas.citas[cita.IDCita]
	if got.Hora == nil || *got.Hora != "11:45" {
		t.Fatalf("expected hora 11:45, got %v", got.Hora)
	}
}

func TestService_UpdateAgendaDescripcionVacia(t *testing.T) {
	svc, _, _ := newTestService()
	agenda := seedAgenda(t, svc, "Pediatría")

	err := svc.UpdateAgenda(context.Background(), agenda.IDAgenda, &AgendaUpdate{Descripcion: strptr("")})
	if _, ok := apperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_DeleteCitaInexistente(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteCita(context.Background(), 42)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
