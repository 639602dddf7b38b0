package constants

// --- SEMAFORO (traffic-light) codes, as stored in the DB ---
const (
	SemaforoVerde    = "verde"
	SemaforoAmarillo = "amarillo"
	SemaforoRojo     = "rojo"
)

// SemaforoRank orders statuses by severity: rojo > amarillo > verde > unknown.
// A NULL / empty / unrecognized value ranks last on purpose — equipment that
// was never inspected must not float above a red one.
func SemaforoRank(semaforo string) int {
	switch semaforo {
	case SemaforoRojo:
		return 0
	case SemaforoAmarillo:
		return 1
	case SemaforoVerde:
		return 2
	default:
		return 3
	}
}

// --- Checklist answers ---
const (
	ChecklistOK      = "ok"
	ChecklistWarning = "warning"
	ChecklistFail    = "fail"
)

func IsChecklistAnswer(v string) bool {
	return v == ChecklistOK || v == ChecklistWarning || v == ChecklistFail
}

// --- Inspection kinds ---
const (
	InspeccionPeriodica      = "periodica"
	InspeccionEnvio          = "envio"
	InspeccionRecepcion      = "recepcion"
	InspeccionTaller         = "taller"
	InspeccionAlmacenamiento = "almacenamiento"
)

var InspectionKinds = []string{
	InspeccionPeriodica,
	InspeccionEnvio,
	InspeccionRecepcion,
	InspeccionTaller,
	InspeccionAlmacenamiento,
}

func IsInspectionKind(v string) bool {
	for _, k := range InspectionKinds {
		if k == v {
			return true
		}
	}
	return false
}

// --- Equipment categories ---
const (
	TipoVehiculo     = "V"
	TipoEquipoPesado = "P"
	TipoEmbarcacion  = "B"
	TipoEquipoMenor  = "M"
)

var EquipmentTypeNames = map[string]string{
	TipoVehiculo:     "Vehículos",
	TipoEquipoPesado: "Equipos Pesados",
	TipoEmbarcacion:  "Embarcaciones",
	TipoEquipoMenor:  "Equipos Menores",
}

func IsEquipmentType(v string) bool {
	_, ok := EquipmentTypeNames[v]
	return ok
}

// --- Operability ---
const (
	EstadoOperativo              = "operativo"
	EstadoOperativoRestricciones = "operativo_restricciones"
	EstadoFueraServicio          = "fuera_servicio"
)

func IsOperabilityState(v string) bool {
	return v == EstadoOperativo || v == EstadoOperativoRestricciones || v == EstadoFueraServicio
}

// --- Maintenance ---
const (
	MantCorrectivo = "Correctivo"
	MantPreventivo = "Preventivo"

	MantTallerEspera  = "Taller Espera"
	MantTallerEntrada = "Taller Entrada"
	MantTallerSalida  = "Taller Salida"
)

func IsMaintenanceState(v string) bool {
	return v == MantTallerEspera || v == MantTallerEntrada || v == MantTallerSalida
}

// --- Maintenance priorities (codes come straight from the workshop forms) ---
const (
	PrioridadMuyElevado = "1- Muy Elevado"
	PrioridadAlto       = "2- Alto"
	PrioridadMedio      = "3- Medio"
	PrioridadBajo       = "4- Bajo"
)

// priorityRankFallback is the rank for any priority value not in the known
// set. Such tickets sort after everything known — a deliberate fallback,
// not an error.
const priorityRankFallback = 5

var priorityRanks = map[string]int{
	PrioridadMuyElevado: 1,
	PrioridadAlto:       2,
	PrioridadMedio:      3,
	PrioridadBajo:       4,
}

func PriorityRank(prioridad string) int {
	if r, ok := priorityRanks[prioridad]; ok {
		return r
	}
	return priorityRankFallback
}

// --- Inspection recency ---
//
// Business constants: under 20 days since the last inspection the equipment is
// up to date, 20..30 inclusive it is due soon, past 30 (or never inspected)
// it is urgent. Not configurable per category.
const (
	RecencyUpToDateMaxDays = 20
	RecencyUpcomingMaxDays = 30
)

const (
	RecencyAlDia   = "al_dia"
	RecencyProximo = "proximo"
	RecencyUrgente = "urgente"
)

// RecencyBucket classifies days-since-last-inspection. Pass hasInspection =
// false for equipment that was never inspected; it is urgent regardless of
// the days value.
func RecencyBucket(days int, hasInspection bool) string {
	if !hasInspection || days > RecencyUpcomingMaxDays {
		return RecencyUrgente
	}
	if days >= RecencyUpToDateMaxDays {
		return RecencyProximo
	}
	return RecencyAlDia
}

// RecencyUrgencyRank orders equipment for worklists: never-inspected and
// overdue first. Mirrors the `?? 9999` fallback the dispatch board always used.
func RecencyUrgencyRank(days int, hasInspection bool) int {
	if !hasInspection {
		return 9999
	}
	return days
}

// --- Purchase requisitions ---
const (
	PedidoEnProceso = "en_proceso"
	PedidoRecibido  = "recibido"
)

func IsPurchaseState(v string) bool {
	return v == PedidoEnProceso || v == PedidoRecibido
}
