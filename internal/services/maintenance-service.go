package services

import (
	"context"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/events"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/eventbus"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
	"fleet-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type MaintenanceServiceInterface interface {
	GetMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error)
	FindMaintenance(ctx context.Context, id uint64) (*dto.MaintenanceDTO, error)
	CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error)
	UpdateMaintenance(ctx context.Context, id uint64, payload dto.UpdateMaintenanceDTO) (*dto.MaintenanceDTO, error)
	GetOutstanding(ctx context.Context) ([]dto.MaintenanceDTO, error)
	GetDashboard(ctx context.Context) (*dto.MaintenanceDashboardDTO, error)
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	inspectionRepo  repositories.InspectionRepositoryInterface
	bus             *eventbus.Bus
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	inspectionRepo repositories.InspectionRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		inspectionRepo:  inspectionRepo,
		bus:             bus,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	rows, total, err := s.maintenanceRepo.GetMaintenances(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	result := make([]dto.MaintenanceDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, maintenanceRowToDTO(row, now))
	}
	return result, total, nil
}

func (s *MaintenanceService) FindMaintenance(ctx context.Context, id uint64) (*dto.MaintenanceDTO, error) {
	row, err := s.maintenanceRepo.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	result := maintenanceRowToDTO(*row, time.Now())
	return &result, nil
}

func (s *MaintenanceService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipoID)
	if err != nil {
		return nil, err
	}

	m, err := s.buildMaintenance(ctx, payload.EquipoID, dto.UpdateMaintenanceDTO{
		InspeccionID:       payload.InspeccionID,
		TipoMantenimiento:  payload.TipoMantenimiento,
		NumeroAviso:        payload.NumeroAviso,
		NumeroOrden:        payload.NumeroOrden,
		DescripcionAveria:  payload.DescripcionAveria,
		Prioridad:          payload.Prioridad,
		FechaInicioAveria:  payload.FechaInicioAveria,
		FechaIngresoTaller: payload.FechaIngresoTaller,
		FechaLiberacion:    payload.FechaLiberacion,
		Pedido:             payload.Pedido,
		IngresaTallerYpane: payload.IngresaTallerYpane,
		Estado:             payload.Estado,
	})
	if err != nil {
		return nil, err
	}

	id, err := s.maintenanceRepo.CreateMaintenance(ctx, m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("maintenance ticket created",
		zap.Uint64("maintenance_id", id),
		zap.Uint64("equipo_id", payload.EquipoID),
		zap.String("tipo", payload.TipoMantenimiento),
		zap.Bool("ingresa_taller_ypane", payload.IngresaTallerYpane),
	)

	// Tickets entering the internal workshop trigger the e-mail webhook. The
	// listener runs async; its failure never fails this request.
	if payload.IngresaTallerYpane {
		s.bus.Publish(ctx, events.MaintenanceCreatedEvent{
			MaintenanceID:      id,
			TipoMantenimiento:  m.TipoMantenimiento,
			NumeroAvisoOrden:   avisoOrden(m),
			EquipoCodigo:       equipment.NumeroIdentificacion,
			EquipoDenominacion: equipment.Denominacion,
			DescripcionAveria:  m.DescripcionAveria,
			Prioridad:          m.Prioridad,
		})
	}

	return s.FindMaintenance(ctx, id)
}

func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, id uint64, payload dto.UpdateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	existing, err := s.maintenanceRepo.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := s.buildMaintenance(ctx, existing.EquipoID, payload)
	if err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.UpdateMaintenance(ctx, id, m); err != nil {
		return nil, err
	}

	return s.FindMaintenance(ctx, id)
}

// GetOutstanding lists the tickets a site is still waiting on: pedido set and
// estado short of Taller Salida, most urgent priority first.
func (s *MaintenanceService) GetOutstanding(ctx context.Context) ([]dto.MaintenanceDTO, error) {
	filter := types.Filter{
		Filter: map[string]interface{}{"pedido": true},
	}
	rows, _, err := s.maintenanceRepo.GetMaintenances(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result []dto.MaintenanceDTO
	for _, row := range rows {
		if !IsOutstandingTicket(row.Pedido, row.Estado) {
			continue
		}
		result = append(result, maintenanceRowToDTO(row, now))
	}
	SortByPriority(result)
	return result, nil
}

func (s *MaintenanceService) GetDashboard(ctx context.Context) (*dto.MaintenanceDashboardDTO, error) {
	rows, _, err := s.maintenanceRepo.GetMaintenances(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	board := dto.MaintenanceDashboardDTO{
		PorEstado: map[string]int{
			constants.MantTallerEspera:  0,
			constants.MantTallerEntrada: 0,
			constants.MantTallerSalida:  0,
		},
	}

	var daysSum, daysCount int
	for _, row := range rows {
		board.PorEstado[row.Estado]++

		item := maintenanceRowToDTO(row, now)
		if item.DiasParado != nil {
			daysSum += *item.DiasParado
			daysCount++
		}
		if IsOutstandingTicket(row.Pedido, row.Estado) {
			board.TotalPendientes++
			board.Pendientes = append(board.Pendientes, item)
		}
	}
	if daysCount > 0 {
		board.PromedioDiasTaller = float64(daysSum) / float64(daysCount)
	}
	SortByPriority(board.Pendientes)

	return &board, nil
}

// buildMaintenance validates the business rules shared by create and update:
// Correctivo carries a numero_aviso, Preventivo a numero_orden, and a linked
// inspection must belong to the same equipment.
func (s *MaintenanceService) buildMaintenance(ctx context.Context, equipoID uint64, f dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	switch f.TipoMantenimiento {
	case constants.MantCorrectivo:
		if f.NumeroAviso == "" {
			return nil, apperrors.NewInvalidInputError("correctivo maintenance requires numero_aviso")
		}
	case constants.MantPreventivo:
		if f.NumeroOrden == "" {
			return nil, apperrors.NewInvalidInputError("preventivo maintenance requires numero_orden")
		}
	}

	var inspeccionID null.Uint64
	if f.InspeccionID != nil {
		inspection, err := s.inspectionRepo.FindInspection(ctx, *f.InspeccionID)
		if err != nil {
			return nil, err
		}
		if inspection.EquipoID != equipoID {
			return nil, apperrors.NewInvalidInputError("inspection %d belongs to another equipment", inspection.ID)
		}
		inspeccionID = null.Uint64From(inspection.ID)
	}

	return &entities.Maintenance{
		EquipoID:           equipoID,
		InspeccionID:       inspeccionID,
		TipoMantenimiento:  f.TipoMantenimiento,
		NumeroAviso:        null.NewString(f.NumeroAviso, f.NumeroAviso != ""),
		NumeroOrden:        null.NewString(f.NumeroOrden, f.NumeroOrden != ""),
		DescripcionAveria:  f.DescripcionAveria,
		Prioridad:          f.Prioridad,
		FechaInicioAveria:  null.TimeFromPtr(f.FechaInicioAveria),
		FechaIngresoTaller: null.TimeFromPtr(f.FechaIngresoTaller),
		FechaLiberacion:    null.TimeFromPtr(f.FechaLiberacion),
		Pedido:             f.Pedido,
		IngresaTallerYpane: f.IngresaTallerYpane,
		Estado:             f.Estado,
	}, nil
}

// avisoOrden picks the reference number the webhook payload carries: aviso
// for correctivo, orden for preventivo.
func avisoOrden(m *entities.Maintenance) string {
	if m.TipoMantenimiento == constants.MantCorrectivo {
		return m.NumeroAviso.String
	}
	return m.NumeroOrden.String
}

func maintenanceRowToDTO(row repositories.MaintenanceRow, now time.Time) dto.MaintenanceDTO {
	result := dto.MaintenanceDTO{
		ID:                 row.ID,
		EquipoID:           row.EquipoID,
		EquipoCodigo:       row.EquipoCodigo,
		EquipoDenominacion: row.EquipoDenominacion,
		TipoMantenimiento:  row.TipoMantenimiento,
		NumeroAviso:        row.NumeroAviso.String,
		NumeroOrden:        row.NumeroOrden.String,
		DescripcionAveria:  row.DescripcionAveria,
		Prioridad:          row.Prioridad,
		FechaInicioAveria:  row.FechaInicioAveria.Ptr(),
		FechaIngresoTaller: row.FechaIngresoTaller.Ptr(),
		FechaLiberacion:    row.FechaLiberacion.Ptr(),
		Pedido:             row.Pedido,
		IngresaTallerYpane: row.IngresaTallerYpane,
		Estado:             row.Estado,
		EmailEnviado:       row.EmailEnviado,
	}
	if row.InspeccionID.Valid {
		id := row.InspeccionID.Uint64
		result.InspeccionID = &id
	}

	// Downtime runs from the breakdown to the release; unreleased tickets
	// count up to now.
	if row.FechaInicioAveria.Valid {
		end := now
		if row.FechaLiberacion.Valid {
			end = row.FechaLiberacion.Time
		}
		days := int(end.Sub(row.FechaInicioAveria.Time).Hours() / 24)
		if days < 0 {
			days = 0
		}
		result.DiasParado = utils.ToPtr(days)
	}

	return result
}
