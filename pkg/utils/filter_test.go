package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
}

func TestParseFilterFromQuery_FullQuery(t *testing.T) {
	values, _ := url.ParseQuery("search=camion&sort[fecha_hora]=desc&filter[tipo_equipo]=V&filter[semaforo_actual]=rojo&limit=10&page=3")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, "camion", filter.Search)
	assert.Equal(t, "desc", filter.Sort["fecha_hora"])
	assert.Equal(t, "V", filter.Filter["tipo_equipo"])
	assert.Equal(t, "rojo", filter.Filter["semaforo_actual"])
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 20, filter.Offset)
}

func TestParseFilterFromQuery_CommaListBecomesSlice(t *testing.T) {
	values, _ := url.ParseQuery("filter[tipo_equipo]=V,P")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, []string{"V", "P"}, filter.Filter["tipo_equipo"])
}

func TestParseFilterFromQuery_RepeatedParamsKeepAllValues(t *testing.T) {
	values, _ := url.ParseQuery("filter[tipo_equipo]=V&filter[tipo_equipo]=P&filter[tipo_equipo]=B,M")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, []string{"V", "P", "B", "M"}, filter.Filter["tipo_equipo"])
}

func TestParseFilterFromQuery_SingleValueStaysScalar(t *testing.T) {
	values, _ := url.ParseQuery("filter[semaforo_actual]=rojo&filter[estado_operativo]=%20operativo%20")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, "rojo", filter.Filter["semaforo_actual"])
	assert.Equal(t, "operativo", filter.Filter["estado_operativo"])
}

func TestParseFilterFromQuery_LimitCap(t *testing.T) {
	values, _ := url.ParseQuery("limit=9000")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQuery_InvalidSortDirectionIgnored(t *testing.T) {
	values, _ := url.ParseQuery("sort[fecha_hora]=sideways")

	filter := ParseFilterFromQuery(values)
	_, ok := filter.Sort["fecha_hora"]
	assert.False(t, ok)
}
