package events

const MaintenanceCreatedEventName = "maintenance.created"

// MaintenanceCreatedEvent fires when a ticket flagged ingresa_taller_ypane is
// created. The webhook listener turns it into the workshop e-mail trigger.
type MaintenanceCreatedEvent struct {
	MaintenanceID      uint64
	TipoMantenimiento  string
	NumeroAvisoOrden   string
	EquipoCodigo       string
	EquipoDenominacion string
	DescripcionAveria  string
	Prioridad          string
}

func (e MaintenanceCreatedEvent) Name() string {
	return MaintenanceCreatedEventName
}
