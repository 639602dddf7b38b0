package services

import (
	"testing"
	"time"

	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentRowToListItem_Recency(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	row := repositories.EquipmentRow{
		Equipment: entities.Equipment{
			ID:                   1,
			NumeroIdentificacion: "V-100",
			TipoEquipo:           constants.TipoVehiculo,
			Denominacion:         "Camioneta",
			SemaforoActual:       null.StringFrom(constants.SemaforoVerde),
			EstadoOperativo:      constants.EstadoOperativo,
		},
		UltimaInspeccion: null.TimeFrom(now.AddDate(0, 0, -5)),
	}

	item := equipmentRowToListItem(row, now)
	require.NotNil(t, item.DiasSinInspeccion)
	assert.Equal(t, 5, *item.DiasSinInspeccion)
	assert.Equal(t, constants.RecencyAlDia, item.EstadoInspeccion)

	row.UltimaInspeccion = null.TimeFrom(now.AddDate(0, 0, -25))
	item = equipmentRowToListItem(row, now)
	assert.Equal(t, constants.RecencyProximo, item.EstadoInspeccion)

	row.UltimaInspeccion = null.TimeFrom(now.AddDate(0, 0, -45))
	item = equipmentRowToListItem(row, now)
	assert.Equal(t, constants.RecencyUrgente, item.EstadoInspeccion)
}

func TestEquipmentRowToListItem_NeverInspected(t *testing.T) {
	now := time.Now()
	row := repositories.EquipmentRow{
		Equipment: entities.Equipment{
			ID:                   2,
			NumeroIdentificacion: "P-200",
			TipoEquipo:           constants.TipoEquipoPesado,
			EstadoOperativo:      constants.EstadoOperativo,
		},
	}

	item := equipmentRowToListItem(row, now)
	assert.Nil(t, item.DiasSinInspeccion)
	assert.Equal(t, constants.RecencyUrgente, item.EstadoInspeccion)
	// Unknown status stays empty rather than pretending to be green.
	assert.Empty(t, item.SemaforoActual)
}
