package services

import (
	"context"
	"strings"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
	"fleet-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentListItemDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	UpdateOperability(ctx context.Context, id uint64, payload dto.UpdateOperabilityDTO) (*entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

// GetEquipments lists equipment enriched with inspection recency. With
// sort[urgencia]=desc the worklist ordering applies: never-inspected first,
// then by days since the last inspection.
func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentListItemDTO, uint64, error) {
	rows, total, err := s.equipmentRepo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	result := make([]dto.EquipmentListItemDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, equipmentRowToListItem(row, now))
	}

	if _, ok := filter.Sort["urgencia"]; ok {
		SortByInspectionUrgency(result)
	}

	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	id, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment created",
		zap.Uint64("equipo_id", id),
		zap.String("numero_identificacion", payload.NumeroIdentificacion),
	)

	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.equipmentRepo.UpdateEquipment(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

// UpdateOperability switches the manually-managed operability flag. A state
// with restrictions must come with a note explaining them; switching to any
// other state clears the note.
func (s *EquipmentService) UpdateOperability(ctx context.Context, id uint64, payload dto.UpdateOperabilityDTO) (*entities.Equipment, error) {
	observaciones := strings.TrimSpace(payload.Observaciones)

	var note null.String
	switch payload.EstadoOperativo {
	case constants.EstadoOperativoRestricciones:
		if observaciones == "" {
			return nil, apperrors.NewInvalidInputError("estado operativo_restricciones requires a restriction note")
		}
		note = null.StringFrom(observaciones)
	default:
		note = null.String{}
	}

	if err := s.equipmentRepo.UpdateOperability(ctx, id, payload.EstadoOperativo, note); err != nil {
		return nil, err
	}

	s.logger.Info("equipment operability changed",
		zap.Uint64("equipo_id", id),
		zap.String("estado_operativo", payload.EstadoOperativo),
	)

	return s.equipmentRepo.FindEquipment(ctx, id)
}

func equipmentRowToListItem(row repositories.EquipmentRow, now time.Time) dto.EquipmentListItemDTO {
	item := dto.EquipmentListItemDTO{
		ID:                         row.ID,
		NumeroIdentificacion:       row.NumeroIdentificacion,
		TipoEquipo:                 row.TipoEquipo,
		Denominacion:               row.Denominacion,
		Marca:                      row.Marca.String,
		Modelo:                     row.Modelo.String,
		UbicacionActual:            row.UbicacionActual.String,
		SemaforoActual:             row.SemaforoActual.String,
		EstadoOperativo:            row.EstadoOperativo,
		ObservacionesRestricciones: row.ObservacionesRestricciones.String,
	}

	if row.UltimaInspeccion.Valid {
		days := int(now.Sub(row.UltimaInspeccion.Time).Hours() / 24)
		if days < 0 {
			days = 0
		}
		item.DiasSinInspeccion = utils.ToPtr(days)
		item.EstadoInspeccion = constants.RecencyBucket(days, true)
	} else {
		item.EstadoInspeccion = constants.RecencyBucket(0, false)
	}

	return item
}
