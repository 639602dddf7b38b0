package services

import (
	"context"
	"testing"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMaintenanceRepo struct {
	rows []repositories.MaintenanceRow
}

func (s *stubMaintenanceRepo) GetMaintenances(_ context.Context, _ types.Filter) ([]repositories.MaintenanceRow, uint64, error) {
	return s.rows, uint64(len(s.rows)), nil
}

func (s *stubMaintenanceRepo) FindMaintenance(_ context.Context, id uint64) (*repositories.MaintenanceRow, error) {
	for _, r := range s.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubMaintenanceRepo) CreateMaintenance(_ context.Context, _ *entities.Maintenance) (uint64, error) {
	return 0, nil
}

func (s *stubMaintenanceRepo) UpdateMaintenance(_ context.Context, _ uint64, _ *entities.Maintenance) error {
	return nil
}

func (s *stubMaintenanceRepo) MarkEmailSent(_ context.Context, _ uint64) error {
	return nil
}

func ticket(id uint64, pedido bool, estado, prioridad string) repositories.MaintenanceRow {
	return repositories.MaintenanceRow{
		Maintenance: entities.Maintenance{
			ID:                id,
			EquipoID:          1,
			TipoMantenimiento: constants.MantCorrectivo,
			NumeroAviso:       null.StringFrom("A-1"),
			DescripcionAveria: "falla",
			Prioridad:         prioridad,
			Pedido:            pedido,
			Estado:            estado,
		},
	}
}

func TestGetOutstanding_FiltersAndSorts(t *testing.T) {
	repo := &stubMaintenanceRepo{rows: []repositories.MaintenanceRow{
		ticket(1, true, constants.MantTallerEspera, constants.PrioridadBajo),
		ticket(2, true, constants.MantTallerSalida, constants.PrioridadMuyElevado),
		ticket(3, false, constants.MantTallerEspera, constants.PrioridadMuyElevado),
		ticket(4, true, constants.MantTallerEntrada, constants.PrioridadAlto),
	}}
	svc := &MaintenanceService{maintenanceRepo: repo, logger: zap.NewNop()}

	result, err := svc.GetOutstanding(context.Background())
	require.NoError(t, err)

	var ids []uint64
	for _, m := range result {
		ids = append(ids, m.ID)
	}
	// Released (2) and not-requested (3) tickets drop out; the rest sort by
	// priority.
	assert.Equal(t, []uint64{4, 1}, ids)
}

func TestBuildMaintenance_CorrectivoNeedsAviso(t *testing.T) {
	svc := &MaintenanceService{}

	_, err := svc.buildMaintenance(context.Background(), 1, dto.UpdateMaintenanceDTO{
		TipoMantenimiento: constants.MantCorrectivo,
		DescripcionAveria: "falla",
		Prioridad:         constants.PrioridadAlto,
		Estado:            constants.MantTallerEspera,
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)

	m, err := svc.buildMaintenance(context.Background(), 1, dto.UpdateMaintenanceDTO{
		TipoMantenimiento: constants.MantCorrectivo,
		NumeroAviso:       "A-42",
		DescripcionAveria: "falla",
		Prioridad:         constants.PrioridadAlto,
		Estado:            constants.MantTallerEspera,
	})
	require.NoError(t, err)
	assert.Equal(t, "A-42", m.NumeroAviso.String)
}

func TestBuildMaintenance_PreventivoNeedsOrden(t *testing.T) {
	svc := &MaintenanceService{}

	_, err := svc.buildMaintenance(context.Background(), 1, dto.UpdateMaintenanceDTO{
		TipoMantenimiento: constants.MantPreventivo,
		DescripcionAveria: "mantenimiento programado",
		Prioridad:         constants.PrioridadMedio,
		Estado:            constants.MantTallerEspera,
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestMaintenanceRowToDTO_DiasParado(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Released ticket counts breakdown to release.
	released := ticket(1, false, constants.MantTallerSalida, constants.PrioridadMedio)
	released.FechaInicioAveria = null.TimeFrom(now.AddDate(0, 0, -10))
	released.FechaLiberacion = null.TimeFrom(now.AddDate(0, 0, -3))
	d := maintenanceRowToDTO(released, now)
	require.NotNil(t, d.DiasParado)
	assert.Equal(t, 7, *d.DiasParado)

	// Unreleased ticket counts up to now.
	open := ticket(2, true, constants.MantTallerEspera, constants.PrioridadMedio)
	open.FechaInicioAveria = null.TimeFrom(now.AddDate(0, 0, -4))
	d = maintenanceRowToDTO(open, now)
	require.NotNil(t, d.DiasParado)
	assert.Equal(t, 4, *d.DiasParado)

	// No breakdown date, no downtime figure.
	blank := ticket(3, false, constants.MantTallerEspera, constants.PrioridadMedio)
	d = maintenanceRowToDTO(blank, now)
	assert.Nil(t, d.DiasParado)
}

func TestAvisoOrden(t *testing.T) {
	correctivo := &entities.Maintenance{
		TipoMantenimiento: constants.MantCorrectivo,
		NumeroAviso:       null.StringFrom("A-7"),
		NumeroOrden:       null.StringFrom("O-9"),
	}
	assert.Equal(t, "A-7", avisoOrden(correctivo))

	preventivo := &entities.Maintenance{
		TipoMantenimiento: constants.MantPreventivo,
		NumeroOrden:       null.StringFrom("O-9"),
	}
	assert.Equal(t, "O-9", avisoOrden(preventivo))
}
