package repositories

import (
	"context"

	"fleet-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChecklistTemplateRepositoryInterface interface {
	GetByEquipmentType(ctx context.Context, tipoEquipo string) ([]entities.ChecklistTemplate, error)
}

type ChecklistTemplateRepository struct {
	storage *pgxpool.Pool
}

func NewChecklistTemplateRepository(storage *pgxpool.Pool) ChecklistTemplateRepositoryInterface {
	return &ChecklistTemplateRepository{storage: storage}
}

func (r *ChecklistTemplateRepository) GetByEquipmentType(ctx context.Context, tipoEquipo string) ([]entities.ChecklistTemplate, error) {
	query := `
        SELECT id, tipo_equipo, categoria, item_nombre, es_critico, orden
        FROM checklist_templates
        WHERE tipo_equipo = $1
        ORDER BY orden
    `
	rows, err := r.storage.Query(ctx, query, tipoEquipo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []entities.ChecklistTemplate
	for rows.Next() {
		var t entities.ChecklistTemplate
		if err := rows.Scan(&t.ID, &t.TipoEquipo, &t.Categoria, &t.ItemNombre, &t.EsCritico, &t.Orden); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
