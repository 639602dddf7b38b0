package entities

import (
	"fleet-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// Maintenance is one repair/maintenance workflow instance for one piece of
// equipment.
type Maintenance struct {
	ID           uint64      `json:"id"`
	EquipoID     uint64      `json:"equipo_id"`
	InspeccionID null.Uint64 `json:"inspeccion_id,omitempty"`
	// TipoMantenimiento: Correctivo carries a numero_aviso, Preventivo a
	// numero_orden.
	TipoMantenimiento string      `json:"tipo_mantenimiento"`
	NumeroAviso       null.String `json:"numero_aviso,omitempty"`
	NumeroOrden       null.String `json:"numero_orden,omitempty"`
	DescripcionAveria string      `json:"descripcion_averia"`
	Prioridad         string      `json:"prioridad"`
	FechaInicioAveria null.Time   `json:"fecha_inicio_averia,omitempty"`
	FechaIngresoTaller null.Time  `json:"fecha_ingreso_taller,omitempty"`
	FechaLiberacion   null.Time   `json:"fecha_liberacion,omitempty"`
	// Pedido flags a ticket whose equipment is awaited back by a site. The
	// ticket stays "outstanding" until Estado reaches Taller Salida.
	Pedido bool `json:"pedido"`
	// IngresaTallerYpane marks tickets that enter the internal workshop and
	// trigger the e-mail webhook on creation.
	IngresaTallerYpane bool   `json:"ingresa_taller_ypane"`
	Estado             string `json:"estado"`
	EmailEnviado       bool   `json:"email_enviado"`
	FechaEmailEnviado  null.Time `json:"fecha_email_enviado,omitempty"`

	types.BaseEntity
}
