package services

import (
	"sort"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
)

// EvaluateChecklist derives the semaforo of an inspection from its answered
// checklist items. The rules, in priority order:
//
//  1. any critical item failed            -> rojo
//  2. any critical item with a warning,
//     or two or more non-critical items
//     not OK (warning or fail)            -> amarillo
//  3. otherwise                           -> verde
//
// A failed non-critical item counts the same as a warning on it; only the
// accumulation matters. The function is pure and order-independent.
func EvaluateChecklist(items []entities.ChecklistItem) string {
	var criticalFail, criticalWarning, nonCriticalIssues int

	for _, item := range items {
		switch {
		case item.EsCritico && item.Estado == constants.ChecklistFail:
			criticalFail++
		case item.EsCritico && item.Estado == constants.ChecklistWarning:
			criticalWarning++
		case !item.EsCritico && item.Estado != constants.ChecklistOK:
			nonCriticalIssues++
		}
	}

	if criticalFail > 0 {
		return constants.SemaforoRojo
	}
	if criticalWarning > 0 || nonCriticalIssues >= 2 {
		return constants.SemaforoAmarillo
	}
	return constants.SemaforoVerde
}

// MissingCriticalItems returns the names of critical template items that got
// no answer. Non-critical items may stay unanswered; critical ones block
// finalization. answered maps template id to the given estado ("" counts as
// unanswered).
func MissingCriticalItems(templates []entities.ChecklistTemplate, answered map[uint64]string) []string {
	var missing []string
	for _, t := range templates {
		if !t.EsCritico {
			continue
		}
		if estado, ok := answered[t.ID]; !ok || estado == "" {
			missing = append(missing, t.ItemNombre)
		}
	}
	return missing
}

// SortByInspectionUrgency orders equipment most-neglected first: never
// inspected, then by days since the last inspection descending. The sort is
// stable so ties keep the repository order (numero_identificacion).
func SortByInspectionUrgency(items []dto.EquipmentListItemDTO) {
	rank := func(it dto.EquipmentListItemDTO) int {
		if it.DiasSinInspeccion == nil {
			return constants.RecencyUrgencyRank(0, false)
		}
		return constants.RecencyUrgencyRank(*it.DiasSinInspeccion, true)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return rank(items[i]) > rank(items[j])
	})
}

// SortByPriority orders maintenance tickets most urgent first. Unknown
// priority codes sort after every known one.
func SortByPriority(items []dto.MaintenanceDTO) {
	sort.SliceStable(items, func(i, j int) bool {
		return constants.PriorityRank(items[i].Prioridad) < constants.PriorityRank(items[j].Prioridad)
	})
}

// IsOutstandingTicket reports whether a maintenance ticket still blocks a
// site: it was requested back (pedido) and has not left the workshop yet.
func IsOutstandingTicket(pedido bool, estado string) bool {
	return pedido && estado != constants.MantTallerSalida
}
