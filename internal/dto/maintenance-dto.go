package dto

import "time"

type CreateMaintenanceDTO struct {
	EquipoID          uint64  `json:"equipo_id" validate:"required"`
	InspeccionID      *uint64 `json:"inspeccion_id"`
	TipoMantenimiento string  `json:"tipo_mantenimiento" validate:"required,oneof=Correctivo Preventivo"`
	NumeroAviso       string  `json:"numero_aviso"`
	NumeroOrden       string  `json:"numero_orden"`
	DescripcionAveria string  `json:"descripcion_averia" validate:"required"`
	Prioridad         string  `json:"prioridad" validate:"required"`
	FechaInicioAveria *time.Time `json:"fecha_inicio_averia"`
	FechaIngresoTaller *time.Time `json:"fecha_ingreso_taller"`
	FechaLiberacion   *time.Time `json:"fecha_liberacion"`
	Pedido            bool   `json:"pedido"`
	IngresaTallerYpane bool  `json:"ingresa_taller_ypane"`
	Estado            string `json:"estado" validate:"required,oneof='Taller Espera' 'Taller Entrada' 'Taller Salida'"`
}

type UpdateMaintenanceDTO struct {
	InspeccionID      *uint64 `json:"inspeccion_id"`
	TipoMantenimiento string  `json:"tipo_mantenimiento" validate:"required,oneof=Correctivo Preventivo"`
	NumeroAviso       string  `json:"numero_aviso"`
	NumeroOrden       string  `json:"numero_orden"`
	DescripcionAveria string  `json:"descripcion_averia" validate:"required"`
	Prioridad         string  `json:"prioridad" validate:"required"`
	FechaInicioAveria *time.Time `json:"fecha_inicio_averia"`
	FechaIngresoTaller *time.Time `json:"fecha_ingreso_taller"`
	FechaLiberacion   *time.Time `json:"fecha_liberacion"`
	Pedido            bool   `json:"pedido"`
	IngresaTallerYpane bool  `json:"ingresa_taller_ypane"`
	Estado            string `json:"estado" validate:"required,oneof='Taller Espera' 'Taller Entrada' 'Taller Salida'"`
}

type MaintenanceDTO struct {
	ID                uint64  `json:"id"`
	EquipoID          uint64  `json:"equipo_id"`
	EquipoCodigo      string  `json:"equipo_codigo,omitempty"`
	EquipoDenominacion string `json:"equipo_denominacion,omitempty"`
	InspeccionID      *uint64 `json:"inspeccion_id,omitempty"`
	TipoMantenimiento string  `json:"tipo_mantenimiento"`
	NumeroAviso       string  `json:"numero_aviso,omitempty"`
	NumeroOrden       string  `json:"numero_orden,omitempty"`
	DescripcionAveria string  `json:"descripcion_averia"`
	Prioridad         string  `json:"prioridad"`
	FechaInicioAveria *time.Time `json:"fecha_inicio_averia,omitempty"`
	FechaIngresoTaller *time.Time `json:"fecha_ingreso_taller,omitempty"`
	FechaLiberacion   *time.Time `json:"fecha_liberacion,omitempty"`
	Pedido            bool   `json:"pedido"`
	IngresaTallerYpane bool  `json:"ingresa_taller_ypane"`
	Estado            string `json:"estado"`
	EmailEnviado      bool   `json:"email_enviado"`
	// DiasParado is nil when fecha_inicio_averia is missing; for unreleased
	// tickets it counts up to now.
	DiasParado *int `json:"dias_parado"`
}

// MaintenanceDashboardDTO aggregates the workshop board.
type MaintenanceDashboardDTO struct {
	PorEstado        map[string]int   `json:"por_estado"`
	TotalPendientes  int              `json:"total_pendientes"`
	PromedioDiasTaller float64        `json:"promedio_dias_taller"`
	Pendientes       []MaintenanceDTO `json:"pendientes"`
}
