package repositories

import (
	"net/url"
	"testing"

	"fleet-system/pkg/types"
	"fleet-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentListConds_MultiValueFilterExpandsToIn(t *testing.T) {
	values, err := url.ParseQuery("filter[tipo_equipo]=V,P")
	require.NoError(t, err)

	filter := utils.ParseFilterFromQuery(values)
	conds := equipmentListConds(filter)
	require.Len(t, conds, 1)

	query, args, err := psql.Select("e.id").From(equipmentTable + " e").Where(conds[0]).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT e.id FROM equipos e WHERE e.tipo_equipo IN ($1,$2)", query)
	assert.Equal(t, []interface{}{"V", "P"}, args)
}

func TestEquipmentListConds_RepeatedParamsExpandToIn(t *testing.T) {
	values, err := url.ParseQuery("filter[tipo_equipo]=V&filter[tipo_equipo]=P")
	require.NoError(t, err)

	filter := utils.ParseFilterFromQuery(values)
	conds := equipmentListConds(filter)
	require.Len(t, conds, 1)

	_, args, err := psql.Select("e.id").From(equipmentTable + " e").Where(conds[0]).ToSql()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"V", "P"}, args)
}

func TestEquipmentListConds_IgnoresUnknownColumns(t *testing.T) {
	filter := types.Filter{Filter: map[string]interface{}{"id; DROP TABLE equipos": "1"}}
	assert.Empty(t, equipmentListConds(filter))
}

func TestMaintenanceCountSharesListPredicates(t *testing.T) {
	filter := types.Filter{
		Filter: map[string]interface{}{"estado": "Taller Espera"},
		Search: "V-01",
	}

	conds := maintenanceListConds(filter)
	require.Len(t, conds, 2)

	builder := psql.Select("COUNT(*)").
		From(maintenanceTable + " m").
		Join("equipos e ON e.id = m.equipo_id")
	for _, cond := range conds {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "m.estado = ")
	assert.Contains(t, query, "e.numero_identificacion ILIKE ")
	assert.Contains(t, query, "m.descripcion_averia ILIKE ")
	assert.Equal(t, []interface{}{"Taller Espera", "%V-01%", "%V-01%"}, args)
}

func TestInspectionListConds_FilterReachesCount(t *testing.T) {
	filter := types.Filter{Filter: map[string]interface{}{"semaforo": "rojo"}}

	conds := inspectionListConds(filter)
	require.Len(t, conds, 1)

	builder := psql.Select("COUNT(*)").From(inspectionTable)
	for _, cond := range conds {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM inspecciones WHERE semaforo = $1", query)
	assert.Equal(t, []interface{}{"rojo"}, args)
}

func TestPurchaseListConds_EstadoOnly(t *testing.T) {
	conds := purchaseListConds(types.Filter{Filter: map[string]interface{}{"estado": "en_proceso"}})
	require.Len(t, conds, 1)
	assert.Empty(t, purchaseListConds(types.Filter{}))
}
