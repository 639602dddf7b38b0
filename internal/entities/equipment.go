package entities

import (
	"fleet-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// Equipment is one physical asset of the fleet: a vehicle, a heavy machine,
// a vessel or a small tool, identified by its human-readable code.
type Equipment struct {
	ID                   uint64 `json:"id"`
	NumeroIdentificacion string `json:"numero_identificacion"`
	// TipoEquipo is one of the category codes in pkg/constants (V, P, B, M).
	TipoEquipo   string      `json:"tipo_equipo"`
	Denominacion string      `json:"denominacion"`
	Marca        null.String `json:"marca,omitempty"`
	Modelo       null.String `json:"modelo,omitempty"`
	// UbicacionActual tracks where the asset currently is; an envío
	// inspection moves it.
	UbicacionActual null.String `json:"ubicacion_actual,omitempty"`
	// SemaforoActual caches the semaforo of the latest inspection. NULL means
	// the equipment has never been inspected (status "unknown").
	SemaforoActual null.String `json:"semaforo_actual,omitempty"`
	// EstadoOperativo is set manually; operativo_restricciones requires a
	// non-empty ObservacionesRestricciones.
	EstadoOperativo            string      `json:"estado_operativo"`
	ObservacionesRestricciones null.String `json:"observaciones_restricciones,omitempty"`

	types.BaseEntity
}
