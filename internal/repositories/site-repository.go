package repositories

import (
	"context"

	"fleet-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SiteRepositoryInterface interface {
	GetActiveSites(ctx context.Context) ([]entities.Site, error)
}

type SiteRepository struct {
	storage *pgxpool.Pool
}

func NewSiteRepository(storage *pgxpool.Pool) SiteRepositoryInterface {
	return &SiteRepository{storage: storage}
}

func (r *SiteRepository) GetActiveSites(ctx context.Context) ([]entities.Site, error) {
	query := `
        SELECT id, nombre_obra, activa, created_at, updated_at
        FROM obras
        WHERE activa = TRUE
        ORDER BY nombre_obra
    `
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []entities.Site
	for rows.Next() {
		var s entities.Site
		if err := rows.Scan(&s.ID, &s.NombreObra, &s.Activa, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}
