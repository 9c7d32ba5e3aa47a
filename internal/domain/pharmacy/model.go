package pharmacy

import "github.com/clinsalud/api/pkg/fecha"

// Medicamento is a drug in the clinic's catalog.
type Medicamento struct {
	IDMedicamento          int64        `json:"idMedicamento"`
	NombreMedicamento      string       `json:"nombre_medicamento"`
	PrincipioActivo        *string      `json:"principio_activo"`
	DescripcionMedicamento *string      `json:"descripcion_medicamento"`
	FechaCaducidad         *fecha.Fecha `json:"fecha_caducidad"`
	FormaDispensacion      *string      `json:"forma_dispensacion"`
}

type MedicamentoUpdate struct {
	NombreMedicamento      *string      `json:"nombre_medicamento"`
	PrincipioActivo        *string      `json:"principio_activo"`
	DescripcionMedicamento *string      `json:"descripcion_medicamento"`
	FechaCaducidad         *fecha.Fecha `json:"fecha_caducidad"`
	FormaDispensacion      *string      `json:"forma_dispensacion"`
}

func (u *MedicamentoUpdate) Empty() bool {
	return u.NombreMedicamento == nil && u.PrincipioActivo == nil &&
		u.DescripcionMedicamento == nil && u.FechaCaducidad == nil &&
		u.FormaDispensacion == nil
}

// Inventario tracks the current stock of a medicamento.
type Inventario struct {
	IDInventario   int64        `json:"idInventario"`
	IDMedicamento  int64        `json:"idMedicamento"`
	CantidadActual int          `json:"cantidad_actual"`
	FechaRegistro  *fecha.Fecha `json:"fecha_registro"`
}

type InventarioUpdate struct {
	CantidadActual *int         `json:"cantidad_actual"`
	FechaRegistro  *fecha.Fecha `json:"fecha_registro"`
}

func (u *InventarioUpdate) Empty() bool {
	return u.CantidadActual == nil && u.FechaRegistro == nil
}

// Receta is a prescription linking a paciente, a medicamento and the
// prescribing usuario.
type Receta struct {
	IDReceta        int64        `json:"idReceta"`
	NHCPaciente     int64        `json:"nhc_paciente"`
	IDMedicamento   int64        `json:"id_medicamento"`
	IDMedico        int64        `json:"id_medico"`
	FechaReceta     *fecha.Fecha `json:"fecha_receta"`
	Recomendaciones *string      `json:"recomendaciones"`
}

type RecetaUpdate struct {
	FechaReceta     *fecha.Fecha `json:"fecha_receta"`
	Recomendaciones *string      `json:"recomendaciones"`
}

func (u *RecetaUpdate) Empty() bool {
	return u.FechaReceta == nil && u.Recomendaciones == nil
}

// RecetaDetalle is the joined view of a receta with the patient's name, the
// drug name and the prescriber's username.
type RecetaDetalle struct {
	IDReceta          int64        `json:"idReceta"`
	FechaReceta       *fecha.Fecha `json:"fecha_receta"`
	Recomendaciones   *string      `json:"recomendaciones"`
	Paciente          string       `json:"paciente"`
	NombreMedicamento string       `json:"nombre_medicamento"`
	Medico            string       `json:"medico"`
}
