package services

import (
	"testing"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTemplates = []entities.ChecklistTemplate{
	{ID: 1, Categoria: "Seguridad", ItemNombre: "Frenos", EsCritico: true, Orden: 1},
	{ID: 2, Categoria: "Seguridad", ItemNombre: "Dirección", EsCritico: true, Orden: 2},
	{ID: 3, Categoria: "General", ItemNombre: "Luces", EsCritico: false, Orden: 3},
	{ID: 4, Categoria: "General", ItemNombre: "Limpieza", EsCritico: false, Orden: 4},
}

func answer(templateID uint64, estado string) dto.ChecklistAnswerDTO {
	return dto.ChecklistAnswerDTO{TemplateID: templateID, Estado: estado}
}

func TestBuildChecklistItems_HappyPath(t *testing.T) {
	items, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(2, constants.ChecklistWarning),
		answer(3, constants.ChecklistFail),
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Items are frozen from the template, not from the client.
	assert.Equal(t, "Frenos", items[0].ItemNombre)
	assert.True(t, items[0].EsCritico)
	assert.Equal(t, "Luces", items[2].ItemNombre)
	assert.False(t, items[2].EsCritico)
}

func TestBuildChecklistItems_UnansweredNonCriticalIsAllowed(t *testing.T) {
	// Both non-critical items unanswered: one absent, one with empty estado.
	items, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(2, constants.ChecklistOK),
		answer(3, ""),
	})
	require.NoError(t, err)
	// The empty answer is not stored.
	assert.Len(t, items, 2)
}

func TestBuildChecklistItems_UnansweredCriticalBlocks(t *testing.T) {
	_, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(3, constants.ChecklistOK),
	})
	require.Error(t, err)

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "Dirección")
}

func TestBuildChecklistItems_EmptyCriticalAnswerBlocks(t *testing.T) {
	_, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(2, ""),
	})
	require.Error(t, err)

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "Dirección")
}

func TestBuildChecklistItems_ForeignTemplateRejected(t *testing.T) {
	_, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(2, constants.ChecklistOK),
		answer(99, constants.ChecklistOK),
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestBuildChecklistItems_DuplicateAnswerRejected(t *testing.T) {
	_, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(2, constants.ChecklistOK),
		answer(2, constants.ChecklistFail),
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestBuildChecklistItems_FeedsEvaluator(t *testing.T) {
	items, err := buildChecklistItems(testTemplates, []dto.ChecklistAnswerDTO{
		answer(1, constants.ChecklistOK),
		answer(2, constants.ChecklistFail),
		answer(3, constants.ChecklistOK),
		answer(4, constants.ChecklistOK),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.SemaforoRojo, EvaluateChecklist(items))
}
