package services

import (
	"math/rand"
	"testing"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func item(critico bool, estado string) entities.ChecklistItem {
	return entities.ChecklistItem{EsCritico: critico, Estado: estado}
}

func TestEvaluateChecklist_AllOK(t *testing.T) {
	items := []entities.ChecklistItem{
		item(true, constants.ChecklistOK),
		item(false, constants.ChecklistOK),
		item(false, constants.ChecklistOK),
	}
	assert.Equal(t, constants.SemaforoVerde, EvaluateChecklist(items))
}

func TestEvaluateChecklist_CriticalFailWinsOverEverything(t *testing.T) {
	items := []entities.ChecklistItem{
		item(true, constants.ChecklistFail),
		item(true, constants.ChecklistWarning),
		item(false, constants.ChecklistFail),
		item(false, constants.ChecklistWarning),
	}
	assert.Equal(t, constants.SemaforoRojo, EvaluateChecklist(items))
}

func TestEvaluateChecklist_CriticalWarningIsYellow(t *testing.T) {
	items := []entities.ChecklistItem{
		item(true, constants.ChecklistWarning),
		item(false, constants.ChecklistOK),
	}
	assert.Equal(t, constants.SemaforoAmarillo, EvaluateChecklist(items))
}

func TestEvaluateChecklist_NonCriticalAccumulation(t *testing.T) {
	// One non-critical issue is tolerated.
	one := []entities.ChecklistItem{
		item(true, constants.ChecklistOK),
		item(false, constants.ChecklistWarning),
	}
	assert.Equal(t, constants.SemaforoVerde, EvaluateChecklist(one))

	// Two tip the result to yellow, fail and warning counting alike.
	two := []entities.ChecklistItem{
		item(true, constants.ChecklistOK),
		item(false, constants.ChecklistWarning),
		item(false, constants.ChecklistFail),
	}
	assert.Equal(t, constants.SemaforoAmarillo, EvaluateChecklist(two))
}

func TestEvaluateChecklist_NonCriticalFailAloneIsNotRed(t *testing.T) {
	items := []entities.ChecklistItem{
		item(true, constants.ChecklistOK),
		item(false, constants.ChecklistFail),
	}
	assert.Equal(t, constants.SemaforoVerde, EvaluateChecklist(items))
}

func TestEvaluateChecklist_EmptyIsGreen(t *testing.T) {
	assert.Equal(t, constants.SemaforoVerde, EvaluateChecklist(nil))
}

func TestEvaluateChecklist_OrderIndependent(t *testing.T) {
	items := []entities.ChecklistItem{
		item(true, constants.ChecklistOK),
		item(true, constants.ChecklistWarning),
		item(false, constants.ChecklistFail),
		item(false, constants.ChecklistOK),
		item(false, constants.ChecklistWarning),
	}
	want := EvaluateChecklist(items)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]entities.ChecklistItem, len(items))
		copy(shuffled, items)
		rnd.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, EvaluateChecklist(shuffled))
	}
}

func TestMissingCriticalItems(t *testing.T) {
	templates := []entities.ChecklistTemplate{
		{ID: 1, ItemNombre: "Frenos", EsCritico: true},
		{ID: 2, ItemNombre: "Luces", EsCritico: false},
		{ID: 3, ItemNombre: "Dirección", EsCritico: true},
	}

	// Non-critical answers may be missing; critical ones may not.
	missing := MissingCriticalItems(templates, map[uint64]string{
		1: constants.ChecklistOK,
	})
	assert.Equal(t, []string{"Dirección"}, missing)

	// An empty estado counts as unanswered.
	missing = MissingCriticalItems(templates, map[uint64]string{
		1: constants.ChecklistOK,
		3: "",
	})
	assert.Equal(t, []string{"Dirección"}, missing)

	missing = MissingCriticalItems(templates, map[uint64]string{
		1: constants.ChecklistFail,
		3: constants.ChecklistWarning,
	})
	assert.Empty(t, missing)
}

func TestSortByInspectionUrgency(t *testing.T) {
	items := []dto.EquipmentListItemDTO{
		{NumeroIdentificacion: "V-01", DiasSinInspeccion: utils.ToPtr(5)},
		{NumeroIdentificacion: "V-02", DiasSinInspeccion: utils.ToPtr(25)},
		{NumeroIdentificacion: "V-03", DiasSinInspeccion: utils.ToPtr(45)},
		{NumeroIdentificacion: "V-04", DiasSinInspeccion: nil},
	}

	SortByInspectionUrgency(items)

	var order []string
	for _, it := range items {
		order = append(order, it.NumeroIdentificacion)
	}
	// Never inspected first, then oldest inspection first.
	assert.Equal(t, []string{"V-04", "V-03", "V-02", "V-01"}, order)
}

func TestSortByPriority(t *testing.T) {
	items := []dto.MaintenanceDTO{
		{ID: 1, Prioridad: constants.PrioridadBajo},
		{ID: 2, Prioridad: "Urgentísimo"},
		{ID: 3, Prioridad: constants.PrioridadMuyElevado},
		{ID: 4, Prioridad: constants.PrioridadMedio},
	}

	SortByPriority(items)

	var order []uint64
	for _, it := range items {
		order = append(order, it.ID)
	}
	// Unknown codes sink below every known priority.
	assert.Equal(t, []uint64{3, 4, 1, 2}, order)
}

func TestIsOutstandingTicket(t *testing.T) {
	assert.True(t, IsOutstandingTicket(true, constants.MantTallerEspera))
	assert.True(t, IsOutstandingTicket(true, constants.MantTallerEntrada))
	assert.False(t, IsOutstandingTicket(true, constants.MantTallerSalida))
	assert.False(t, IsOutstandingTicket(false, constants.MantTallerEspera))
}
