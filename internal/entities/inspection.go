package entities

import (
	"time"

	"fleet-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// Inspection is one inspection event for one piece of equipment. It is
// created atomically with its checklist items and photos and is never edited
// afterwards; Semaforo is always derived from the items, never set by hand.
type Inspection struct {
	ID             uint64    `json:"id"`
	EquipoID       uint64    `json:"equipo_id"`
	InspectorID    uint64    `json:"inspector_id"`
	TipoInspeccion string    `json:"tipo_inspeccion"`
	FechaHora      time.Time `json:"fecha_hora"`
	// HorometroOdometro keeps the raw meter reading; some equipment reports
	// hours, some kilometers, so it stays a string.
	HorometroOdometro      string      `json:"horometro_odometro"`
	Ubicacion              string      `json:"ubicacion"`
	ObservacionesGenerales null.String `json:"observaciones_generales,omitempty"`
	Semaforo               string      `json:"semaforo"`
	// InspeccionEnvioRelacionada links a recepción back to the envío it
	// closes. Only meaningful for tipo recepcion; at most one recepción may
	// claim a given envío.
	InspeccionEnvioRelacionada null.Uint64 `json:"inspeccion_envio_relacionada,omitempty"`

	types.BaseEntity
}

// ChecklistTemplate is one inspectable item defined for an equipment
// category. Each new inspection builds its required-answer set from these.
type ChecklistTemplate struct {
	ID         uint64 `json:"id"`
	TipoEquipo string `json:"tipo_equipo"`
	Categoria  string `json:"categoria"`
	ItemNombre string `json:"item_nombre"`
	EsCritico  bool   `json:"es_critico"`
	Orden      int    `json:"orden"`
}

// ChecklistItem is one answered line of an inspection's checklist, frozen at
// creation time.
type ChecklistItem struct {
	ID           uint64      `json:"id"`
	InspeccionID uint64      `json:"inspeccion_id"`
	Categoria    string      `json:"categoria"`
	ItemNombre   string      `json:"item_nombre"`
	EsCritico    bool        `json:"es_critico"`
	Estado       string      `json:"estado"`
	Observacion  null.String `json:"observacion,omitempty"`
}

// InspectionPhoto references an uploaded photo attached to an inspection.
type InspectionPhoto struct {
	ID           uint64      `json:"id"`
	InspeccionID uint64      `json:"inspeccion_id"`
	URL          string      `json:"url"`
	PublicID     string      `json:"public_id"`
	Descripcion  null.String `json:"descripcion,omitempty"`
	Tipo         string      `json:"tipo"`
}
