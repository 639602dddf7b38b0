package services

import (
	"context"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/types"
)

type DashboardServiceInterface interface {
	GetFleetDashboard(ctx context.Context) (*dto.FleetDashboardDTO, error)
}

type DashboardService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
}

func NewDashboardService(equipmentRepo repositories.EquipmentRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{equipmentRepo: equipmentRepo}
}

func (s *DashboardService) GetFleetDashboard(ctx context.Context) (*dto.FleetDashboardDTO, error) {
	rows, _, err := s.equipmentRepo.GetEquipments(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	board := dto.FleetDashboardDTO{
		TotalEquipos: len(rows),
		PorSemaforo: map[string]int{
			constants.SemaforoVerde:    0,
			constants.SemaforoAmarillo: 0,
			constants.SemaforoRojo:     0,
		},
		PorTipoEquipo: make(map[string]int),
	}

	for _, row := range rows {
		if row.SemaforoActual.Valid {
			board.PorSemaforo[row.SemaforoActual.String]++
		}
		board.PorTipoEquipo[row.TipoEquipo]++

		item := equipmentRowToListItem(row, now)
		switch item.EstadoInspeccion {
		case constants.RecencyUrgente:
			board.EquiposUrgentes++
		case constants.RecencyProximo:
			board.EquiposProximos++
		case constants.RecencyAlDia:
			board.EquiposAlDia++
		}
	}

	return &board, nil
}
