package dto

type CreateEquipmentDTO struct {
	NumeroIdentificacion string `json:"numero_identificacion" validate:"required"`
	TipoEquipo           string `json:"tipo_equipo" validate:"required,oneof=V P B M"`
	Denominacion         string `json:"denominacion" validate:"required"`
	Marca                string `json:"marca"`
	Modelo               string `json:"modelo"`
	UbicacionActual      string `json:"ubicacion_actual"`
}

type UpdateEquipmentDTO struct {
	Denominacion    string `json:"denominacion" validate:"required"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	UbicacionActual string `json:"ubicacion_actual"`
}

// UpdateOperabilityDTO changes the manually-managed operability flag.
// Observaciones is required when the state carries restrictions; the service
// enforces it because the rule depends on the chosen state.
type UpdateOperabilityDTO struct {
	EstadoOperativo string `json:"estado_operativo" validate:"required,oneof=operativo operativo_restricciones fuera_servicio"`
	Observaciones   string `json:"observaciones"`
}

// EquipmentListItemDTO is an equipment row enriched with inspection recency,
// ready for the fleet worklist.
type EquipmentListItemDTO struct {
	ID                         uint64 `json:"id"`
	NumeroIdentificacion       string `json:"numero_identificacion"`
	TipoEquipo                 string `json:"tipo_equipo"`
	Denominacion               string `json:"denominacion"`
	Marca                      string `json:"marca,omitempty"`
	Modelo                     string `json:"modelo,omitempty"`
	UbicacionActual            string `json:"ubicacion_actual,omitempty"`
	SemaforoActual             string `json:"semaforo_actual,omitempty"`
	EstadoOperativo            string `json:"estado_operativo"`
	ObservacionesRestricciones string `json:"observaciones_restricciones,omitempty"`
	// DiasSinInspeccion is nil when the equipment was never inspected.
	DiasSinInspeccion *int   `json:"dias_sin_inspeccion"`
	EstadoInspeccion  string `json:"estado_inspeccion"`
}
