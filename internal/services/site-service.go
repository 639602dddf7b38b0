package services

import (
	"context"

	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
)

type SiteServiceInterface interface {
	GetActiveSites(ctx context.Context) ([]entities.Site, error)
}

// SiteService lists the work sites the dispatch form offers as destinations.
type SiteService struct {
	siteRepo repositories.SiteRepositoryInterface
}

func NewSiteService(siteRepo repositories.SiteRepositoryInterface) SiteServiceInterface {
	return &SiteService{siteRepo: siteRepo}
}

func (s *SiteService) GetActiveSites(ctx context.Context) ([]entities.Site, error) {
	return s.siteRepo.GetActiveSites(ctx)
}
