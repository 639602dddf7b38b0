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

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InspectionServiceInterface interface {
	GetInspections(ctx context.Context, filter types.Filter) ([]dto.InspectionDTO, uint64, error)
	FindInspection(ctx context.Context, id uint64) (*dto.InspectionDTO, error)
	GetOpenDispatchInspections(ctx context.Context, equipoID uint64) ([]dto.InspectionDTO, error)
	GetChecklistTemplate(ctx context.Context, tipoEquipo string) ([]dto.ChecklistTemplateDTO, error)
	CreateInspection(ctx context.Context, inspectorID uint64, payload dto.CreateInspectionDTO) (*dto.InspectionDTO, error)
}

type InspectionService struct {
	storage         *pgxpool.Pool
	inspectionRepo  repositories.InspectionRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	templateService ChecklistTemplateServiceInterface
	logger          *zap.Logger
}

func NewInspectionService(
	storage *pgxpool.Pool,
	inspectionRepo repositories.InspectionRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	templateService ChecklistTemplateServiceInterface,
	logger *zap.Logger,
) InspectionServiceInterface {
	return &InspectionService{
		storage:         storage,
		inspectionRepo:  inspectionRepo,
		equipmentRepo:   equipmentRepo,
		templateService: templateService,
		logger:          logger,
	}
}

func (s *InspectionService) GetInspections(ctx context.Context, filter types.Filter) ([]dto.InspectionDTO, uint64, error) {
	inspections, total, err := s.inspectionRepo.GetInspections(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.InspectionDTO, 0, len(inspections))
	for _, insp := range inspections {
		result = append(result, inspectionToDTO(&insp, nil, nil))
	}
	return result, total, nil
}

func (s *InspectionService) FindInspection(ctx context.Context, id uint64) (*dto.InspectionDTO, error) {
	insp, err := s.inspectionRepo.FindInspection(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.inspectionRepo.GetChecklistItems(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.inspectionRepo.GetPhotos(ctx, id)
	if err != nil {
		return nil, err
	}

	result := inspectionToDTO(insp, items, photos)
	return &result, nil
}

func (s *InspectionService) GetOpenDispatchInspections(ctx context.Context, equipoID uint64) ([]dto.InspectionDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipoID); err != nil {
		return nil, err
	}

	inspections, err := s.inspectionRepo.GetOpenDispatchInspections(ctx, equipoID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InspectionDTO, 0, len(inspections))
	for _, insp := range inspections {
		result = append(result, inspectionToDTO(&insp, nil, nil))
	}
	return result, nil
}

func (s *InspectionService) GetChecklistTemplate(ctx context.Context, tipoEquipo string) ([]dto.ChecklistTemplateDTO, error) {
	templates, err := s.templateService.GetByEquipmentType(ctx, tipoEquipo)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ChecklistTemplateDTO, 0, len(templates))
	for _, t := range templates {
		result = append(result, dto.ChecklistTemplateDTO{
			ID:         t.ID,
			Categoria:  t.Categoria,
			ItemNombre: t.ItemNombre,
			EsCritico:  t.EsCritico,
			Orden:      t.Orden,
		})
	}
	return result, nil
}

// CreateInspection finalizes an inspection: it validates the checklist against
// the equipment's template, derives the semaforo, and writes the inspection,
// its items, its photos and the equipment status update in one transaction.
// Validation failures surface before anything is written; a failure inside the
// cascade comes back as a ConsistencyError naming the step.
func (s *InspectionService) CreateInspection(ctx context.Context, inspectorID uint64, payload dto.CreateInspectionDTO) (*dto.InspectionDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipoID)
	if err != nil {
		return nil, err
	}

	templates, err := s.templateService.GetByEquipmentType(ctx, equipment.TipoEquipo)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, apperrors.NewInvalidInputError("no checklist template defined for equipment type %q", equipment.TipoEquipo)
	}

	items, err := buildChecklistItems(templates, payload.Checklist)
	if err != nil {
		return nil, err
	}

	semaforo := EvaluateChecklist(items)

	inspection := entities.Inspection{
		EquipoID:               payload.EquipoID,
		InspectorID:            inspectorID,
		TipoInspeccion:         payload.TipoInspeccion,
		FechaHora:              time.Now(),
		HorometroOdometro:      payload.HorometroOdometro,
		Ubicacion:              payload.Ubicacion,
		ObservacionesGenerales: null.NewString(payload.ObservacionesGenerales, payload.ObservacionesGenerales != ""),
		Semaforo:               semaforo,
	}

	if payload.TipoInspeccion != constants.InspeccionRecepcion && payload.InspeccionEnvioRelacionada != nil {
		return nil, apperrors.NewInvalidInputError("inspeccion_envio_relacionada is only valid for tipo recepcion")
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		if payload.InspeccionEnvioRelacionada != nil {
			dispatch, claimed, err := s.inspectionRepo.FindDispatchForUpdateInTx(ctx, tx, *payload.InspeccionEnvioRelacionada)
			if err != nil {
				return err
			}
			if dispatch.TipoInspeccion != constants.InspeccionEnvio {
				return apperrors.NewInvalidInputError("inspection %d is not an envío", dispatch.ID)
			}
			if dispatch.EquipoID != payload.EquipoID {
				return apperrors.NewInvalidInputError("envío %d belongs to another equipment", dispatch.ID)
			}
			if claimed {
				return apperrors.NewInvalidInputError("envío %d is already claimed by another recepción", dispatch.ID)
			}
			inspection.InspeccionEnvioRelacionada = null.Uint64From(dispatch.ID)
		}

		id, err := s.inspectionRepo.CreateInspectionInTx(ctx, tx, &inspection)
		if err != nil {
			return apperrors.NewConsistencyError("insert inspection", err)
		}
		inspection.ID = id

		for i := range items {
			items[i].InspeccionID = id
		}
		if err := s.inspectionRepo.CreateChecklistItemsInTx(ctx, tx, items); err != nil {
			return apperrors.NewConsistencyError("insert checklist items", err)
		}

		if len(payload.Fotos) > 0 {
			photos := make([]entities.InspectionPhoto, 0, len(payload.Fotos))
			for _, f := range payload.Fotos {
				photos = append(photos, entities.InspectionPhoto{
					InspeccionID: id,
					URL:          f.URL,
					PublicID:     f.PublicID,
					Descripcion:  null.NewString(f.Descripcion, f.Descripcion != ""),
					Tipo:         payload.TipoInspeccion,
				})
			}
			if err := s.inspectionRepo.CreatePhotosInTx(ctx, tx, photos); err != nil {
				return apperrors.NewConsistencyError("insert photos", err)
			}
		}

		// An envío also moves the asset to the inspection's location.
		var ubicacion *string
		if payload.TipoInspeccion == constants.InspeccionEnvio {
			ubicacion = &payload.Ubicacion
		}
		if err := s.equipmentRepo.UpdateStatusInTx(ctx, tx, payload.EquipoID, semaforo, ubicacion); err != nil {
			return apperrors.NewConsistencyError("update equipment status", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("inspection finalized",
		zap.Uint64("inspection_id", inspection.ID),
		zap.Uint64("equipo_id", inspection.EquipoID),
		zap.String("tipo", inspection.TipoInspeccion),
		zap.String("semaforo", semaforo),
	)

	result := inspectionToDTO(&inspection, items, nil)
	return &result, nil
}

// buildChecklistItems turns the submitted answers into frozen checklist items,
// enforcing the finalization gate: every answer must reference a template item
// of this equipment type exactly once, and every critical item must carry an
// answer. Unanswered non-critical items are simply not stored.
func buildChecklistItems(templates []entities.ChecklistTemplate, answers []dto.ChecklistAnswerDTO) ([]entities.ChecklistItem, error) {
	byID := make(map[uint64]entities.ChecklistTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}

	answered := make(map[uint64]string, len(answers))
	items := make([]entities.ChecklistItem, 0, len(answers))
	for _, a := range answers {
		template, ok := byID[a.TemplateID]
		if !ok {
			return nil, apperrors.NewInvalidInputError("checklist item %d does not belong to this equipment type", a.TemplateID)
		}
		if _, dup := answered[a.TemplateID]; dup {
			return nil, apperrors.NewInvalidInputError("checklist item %d answered more than once", a.TemplateID)
		}
		answered[a.TemplateID] = a.Estado

		if a.Estado == "" {
			continue
		}
		if !constants.IsChecklistAnswer(a.Estado) {
			return nil, apperrors.NewInvalidInputError("invalid checklist answer %q", a.Estado)
		}

		items = append(items, entities.ChecklistItem{
			Categoria:   template.Categoria,
			ItemNombre:  template.ItemNombre,
			EsCritico:   template.EsCritico,
			Estado:      a.Estado,
			Observacion: null.NewString(a.Observacion, a.Observacion != ""),
		})
	}

	if missing := MissingCriticalItems(templates, answered); len(missing) > 0 {
		return nil, apperrors.NewInvalidInputError("critical checklist items without answer: %s", strings.Join(missing, ", "))
	}

	return items, nil
}

func inspectionToDTO(insp *entities.Inspection, items []entities.ChecklistItem, photos []entities.InspectionPhoto) dto.InspectionDTO {
	result := dto.InspectionDTO{
		ID:                     insp.ID,
		EquipoID:               insp.EquipoID,
		InspectorID:            insp.InspectorID,
		TipoInspeccion:         insp.TipoInspeccion,
		FechaHora:              insp.FechaHora,
		HorometroOdometro:      insp.HorometroOdometro,
		Ubicacion:              insp.Ubicacion,
		ObservacionesGenerales: insp.ObservacionesGenerales.String,
		Semaforo:               insp.Semaforo,
	}
	if insp.InspeccionEnvioRelacionada.Valid {
		related := insp.InspeccionEnvioRelacionada.Uint64
		result.InspeccionEnvioRelacionada = &related
	}

	for _, item := range items {
		result.Checklist = append(result.Checklist, dto.ChecklistItemDTO{
			Categoria:   item.Categoria,
			ItemNombre:  item.ItemNombre,
			EsCritico:   item.EsCritico,
			Estado:      item.Estado,
			Observacion: item.Observacion.String,
		})
	}
	for _, photo := range photos {
		result.Fotos = append(result.Fotos, dto.InspectionPhotoDTO{
			URL:         photo.URL,
			PublicID:    photo.PublicID,
			Descripcion: photo.Descripcion.String,
		})
	}
	return result
}
