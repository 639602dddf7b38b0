package dto

// FleetDashboardDTO summarizes the whole fleet for the landing screen.
type FleetDashboardDTO struct {
	TotalEquipos    int            `json:"total_equipos"`
	PorSemaforo     map[string]int `json:"por_semaforo"`
	PorTipoEquipo   map[string]int `json:"por_tipo_equipo"`
	EquiposUrgentes int            `json:"equipos_urgentes"`
	EquiposProximos int            `json:"equipos_proximos"`
	EquiposAlDia    int            `json:"equipos_al_dia"`
}
