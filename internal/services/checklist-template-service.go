package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"

	"go.uber.org/zap"
)

type ChecklistTemplateServiceInterface interface {
	GetByEquipmentType(ctx context.Context, tipoEquipo string) ([]entities.ChecklistTemplate, error)
}

// ChecklistTemplateService serves the per-category checklist definitions.
// Templates change rarely, so reads go through a short-lived Redis cache; a
// cache failure falls back to the database and is only logged.
type ChecklistTemplateService struct {
	templateRepo repositories.ChecklistTemplateRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	cacheTTL     time.Duration
	logger       *zap.Logger
}

func NewChecklistTemplateService(
	templateRepo repositories.ChecklistTemplateRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) ChecklistTemplateServiceInterface {
	return &ChecklistTemplateService{
		templateRepo: templateRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

func templateCacheKey(tipoEquipo string) string {
	return fmt.Sprintf("checklist_templates:%s", tipoEquipo)
}

func (s *ChecklistTemplateService) GetByEquipmentType(ctx context.Context, tipoEquipo string) ([]entities.ChecklistTemplate, error) {
	if !constants.IsEquipmentType(tipoEquipo) {
		return nil, apperrors.NewInvalidInputError("unknown equipment type %q", tipoEquipo)
	}

	key := templateCacheKey(tipoEquipo)
	if cached, err := s.cacheRepo.Get(ctx, key); err == nil && cached != "" {
		var templates []entities.ChecklistTemplate
		if err := json.Unmarshal([]byte(cached), &templates); err == nil {
			return templates, nil
		}
		s.logger.Warn("dropping unreadable checklist template cache entry", zap.String("key", key))
	}

	templates, err := s.templateRepo.GetByEquipmentType(ctx, tipoEquipo)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(templates); err == nil {
		if err := s.cacheRepo.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache checklist templates", zap.String("key", key), zap.Error(err))
		}
	}

	return templates, nil
}
