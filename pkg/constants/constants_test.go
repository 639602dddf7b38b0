package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemaforoRank(t *testing.T) {
	assert.Equal(t, 0, SemaforoRank(SemaforoRojo))
	assert.Equal(t, 1, SemaforoRank(SemaforoAmarillo))
	assert.Equal(t, 2, SemaforoRank(SemaforoVerde))
	// NULL / unknown sorts after everything.
	assert.Equal(t, 3, SemaforoRank(""))
	assert.Equal(t, 3, SemaforoRank("azul"))
}

func TestRecencyBucket(t *testing.T) {
	assert.Equal(t, RecencyAlDia, RecencyBucket(0, true))
	assert.Equal(t, RecencyAlDia, RecencyBucket(19, true))
	// The boundaries are inclusive on the proximo side.
	assert.Equal(t, RecencyProximo, RecencyBucket(20, true))
	assert.Equal(t, RecencyProximo, RecencyBucket(30, true))
	assert.Equal(t, RecencyUrgente, RecencyBucket(31, true))
	// Never inspected is urgent no matter what.
	assert.Equal(t, RecencyUrgente, RecencyBucket(0, false))
}

func TestRecencyUrgencyRank(t *testing.T) {
	assert.Equal(t, 9999, RecencyUrgencyRank(0, false))
	assert.Equal(t, 45, RecencyUrgencyRank(45, true))
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, PriorityRank(PrioridadMuyElevado))
	assert.Equal(t, 2, PriorityRank(PrioridadAlto))
	assert.Equal(t, 3, PriorityRank(PrioridadMedio))
	assert.Equal(t, 4, PriorityRank(PrioridadBajo))
	// Unknown codes fall back instead of failing.
	assert.Equal(t, 5, PriorityRank("Crítico"))
	assert.Equal(t, 5, PriorityRank(""))
}

func TestIsChecklistAnswer(t *testing.T) {
	assert.True(t, IsChecklistAnswer(ChecklistOK))
	assert.True(t, IsChecklistAnswer(ChecklistWarning))
	assert.True(t, IsChecklistAnswer(ChecklistFail))
	assert.False(t, IsChecklistAnswer(""))
	assert.False(t, IsChecklistAnswer("bien"))
}
