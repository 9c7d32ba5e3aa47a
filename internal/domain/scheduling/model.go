package scheduling

import "github.com/clinsalud/api/pkg/fecha"

// Agenda is a bookable consultation calendar.
type Agenda struct {
	IDAgenda    int64   `json:"idAgenda"`
	Descripcion string  `json:"descripcion"`
	Horario     *string `json:"horario"`
}

type AgendaUpdate struct {
	Descripcion *string `json:"descripcion"`
	Horario     *string `json:"horario"`
}

func (u *AgendaUpdate) Empty() bool {
	return u.Descripcion == nil && u.Horario == nil
}

// Cita is an appointment of a paciente with a doctor on an agenda.
type Cita struct {
	IDCita          int64        `json:"idCita"`
	Fecha           *fecha.Fecha `json:"fecha"`
	Hora            *string      `json:"hora"`
	NHCPaciente     int64        `json:"NHC_paciente"`
	DoctorID        int64        `json:"doctor_id"`
	AgendaID        int64        `json:"agenda_id"`
	InformacionCita *string      `json:"informacion_cita"`
}

type CitaUpdate struct {
	Fecha           *fecha.Fecha `json:"fecha"`
	Hora            *string      `json:"hora"`
	InformacionCita *string      `json:"informacion_cita"`
}

func (u *CitaUpdate) Empty() bool {
	return u.Fecha == nil && u.Hora == nil && u.InformacionCita == nil
}

// CitaDetalle is the joined view of a cita with the patient's name, the
// doctor's username and the agenda description.
type CitaDetalle struct {
	IDCita          int64        `json:"idCita"`
	Fecha           *fecha.Fecha `json:"fecha"`
	Hora            *string      `json:"hora"`
	Paciente        string       `json:"paciente"`
	Doctor          string       `json:"doctor"`
	Agenda          string       `json:"agenda"`
	InformacionCita *string      `json:"informacion_cita"`
}
