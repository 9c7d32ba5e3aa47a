package clinical

import "github.com/clinsalud/api/pkg/fecha"

// Episodio is a single clinical encounter of a paciente with a doctor.
type Episodio struct {
	IDEpisodio     int64        `json:"idEpisodio"`
	NHCPaciente    int64        `json:"NHC_paciente"`
	Medico         int64        `json:"Medico"`
	FechaEpisodio  *fecha.Fecha `json:"fecha_episodio"`
	TipoAsistencia *string      `json:"tipo_asistencia"`
	MotivoConsulta *string      `json:"motivo_consulta"`
	Anamnesis      *string      `json:"anamnesis"`
	Diagnostico    *string      `json:"diagnostico"`
	Tratamiento    *string      `json:"tratamiento"`
	Peso           *float64     `json:"peso"`
	PA             *string      `json:"pa"`
	SpO2           *int         `json:"spo2"`
}

type EpisodioUpdate struct {
	FechaEpisodio  *fecha.Fecha `json:"fecha_episodio"`
	TipoAsistencia *string      `json:"tipo_asistencia"`
	MotivoConsulta *string      `json:"motivo_consulta"`
	Anamnesis      *string      `json:"anamnesis"`
	Diagnostico    *string      `json:"diagnostico"`
	Tratamiento    *string      `json:"tratamiento"`
	Peso           *float64     `json:"peso"`
	PA             *string      `json:"pa"`
	SpO2           *int         `json:"spo2"`
}

func (u *EpisodioUpdate) Empty() bool {
	return u.FechaEpisodio == nil && u.TipoAsistencia == nil && u.MotivoConsulta == nil &&
		u.Anamnesis == nil && u.Diagnostico == nil && u.Tratamiento == nil &&
		u.Peso == nil && u.PA == nil && u.SpO2 == nil
}

// HCE is the historia clínica electrónica of a paciente, keyed by NHC.
type HCE struct {
	NHCPaciente          int64   `json:"NHC_paciente"`
	Sexo                 *string `json:"sexo"`
	GrupoSanguineo       *string `json:"grupo_sanguineo"`
	Alergias             *string `json:"alergias"`
	AntecedentesClinicos *string `json:"antecedentes_clinicos"`
}

type HCEUpdate struct {
	Sexo                 *string `json:"sexo"`
	GrupoSanguineo       *string `json:"grupo_sanguineo"`
	Alergias             *string `json:"alergias"`
	AntecedentesClinicos *string `json:"antecedentes_clinicos"`
}

func (u *HCEUpdate) Empty() bool {
	return u.Sexo == nil && u.GrupoSanguineo == nil && u.Alergias == nil &&
		u.AntecedentesClinicos == nil
}

// DatoAntropometrico is one dated anthropometric measurement of a paciente.
type DatoAntropometrico struct {
	IDDatoAntropometrico  int64        `json:"idDatoAntropometrico"`
	NHCPaciente           int64        `json:"NHC_paciente"`
	FechaRegistro         *fecha.Fecha `json:"fecha_registro"`
	Peso                  *float64     `json:"peso"`
	Altura                *float64     `json:"altura"`
	IMC                   *float64     `json:"IMC"`
	CircunferenciaCintura *float64     `json:"circunferencia_cintura"`
	CircunferenciaCadera  *float64     `json:"circunferencia_cadera"`
	CircunferenciaCabeza  *float64     `json:"circunferencia_cabeza"`
}

type DatoAntropometricoUpdate struct {
	FechaRegistro         *fecha.Fecha `json:"fecha_registro"`
	Peso                  *float64     `json:"peso"`
	Altura                *float64     `json:"altura"`
	IMC                   *float64     `json:"IMC"`
	CircunferenciaCintura *float64     `json:"circunferencia_cintura"`
	CircunferenciaCadera  *float64     `json:"circunferencia_cadera"`
	CircunferenciaCabeza  *float64     `json:"circunferencia_cabeza"`
}

func (u *DatoAntropometricoUpdate) Empty() bool {
	return u.FechaRegistro == nil && u.Peso == nil && u.Altura == nil && u.IMC == nil &&
		u.CircunferenciaCintura == nil && u.CircunferenciaCadera == nil &&
		u.CircunferenciaCabeza == nil
}
