package repositories

import (
	"context"
	"errors"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inspectionTable = "inspecciones"
const inspectionFields = "id, equipo_id, inspector_id, tipo_inspeccion, fecha_hora, horometro_odometro, ubicacion, observaciones_generales, semaforo, inspeccion_envio_relacionada, created_at, updated_at"

type InspectionRepositoryInterface interface {
	GetInspections(ctx context.Context, filter types.Filter) ([]entities.Inspection, uint64, error)
	FindInspection(ctx context.Context, id uint64) (*entities.Inspection, error)
	GetOpenDispatchInspections(ctx context.Context, equipoID uint64) ([]entities.Inspection, error)
	CreateInspectionInTx(ctx context.Context, tx pgx.Tx, insp *entities.Inspection) (uint64, error)
	CreateChecklistItemsInTx(ctx context.Context, tx pgx.Tx, items []entities.ChecklistItem) error
	CreatePhotosInTx(ctx context.Context, tx pgx.Tx, photos []entities.InspectionPhoto) error
	FindDispatchForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Inspection, bool, error)
	GetChecklistItems(ctx context.Context, inspeccionID uint64) ([]entities.ChecklistItem, error)
	GetPhotos(ctx context.Context, inspeccionID uint64) ([]entities.InspectionPhoto, error)
}

type InspectionRepository struct {
	storage *pgxpool.Pool
}

func NewInspectionRepository(storage *pgxpool.Pool) InspectionRepositoryInterface {
	return &InspectionRepository{storage: storage}
}

func scanInspection(row pgx.Row, insp *entities.Inspection) error {
	return row.Scan(
		&insp.ID,
		&insp.EquipoID,
		&insp.InspectorID,
		&insp.TipoInspeccion,
		&insp.FechaHora,
		&insp.HorometroOdometro,
		&insp.Ubicacion,
		&insp.ObservacionesGenerales,
		&insp.Semaforo,
		&insp.InspeccionEnvioRelacionada,
		&insp.CreatedAt,
		&insp.UpdatedAt,
	)
}

func (r *InspectionRepository) GetInspections(ctx context.Context, filter types.Filter) ([]entities.Inspection, uint64, error) {
	builder := psql.
		Select(
			"id", "equipo_id", "inspector_id", "tipo_inspeccion", "fecha_hora",
			"horometro_odometro", "ubicacion", "observaciones_generales",
			"semaforo", "inspeccion_envio_relacionada", "created_at", "updated_at",
		).
		From(inspectionTable).
		OrderBy("fecha_hora DESC")

	conds := inspectionListConds(filter)
	for _, cond := range conds {
		builder = builder.Where(cond)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []entities.Inspection
	for rows.Next() {
		var insp entities.Inspection
		if err := scanInspection(rows, &insp); err != nil {
			return nil, 0, err
		}
		result = append(result, insp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := psql.Select("COUNT(*)").From(inspectionTable)
	for _, cond := range conds {
		countBuilder = countBuilder.Where(cond)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func inspectionListConds(filter types.Filter) []sq.Sqlizer {
	allowedFilters := map[string]string{
		"equipo_id":       "equipo_id",
		"tipo_inspeccion": "tipo_inspeccion",
		"semaforo":        "semaforo",
		"inspector_id":    "inspector_id",
	}

	var conds []sq.Sqlizer
	for key, val := range filter.Filter {
		if col, ok := allowedFilters[key]; ok {
			conds = append(conds, sq.Eq{col: val})
		}
	}
	return conds
}

func (r *InspectionRepository) FindInspection(ctx context.Context, id uint64) (*entities.Inspection, error) {
	query := "SELECT " + inspectionFields + " FROM " + inspectionTable + " WHERE id = $1"

	var insp entities.Inspection
	if err := scanInspection(r.storage.QueryRow(ctx, query, id), &insp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &insp, nil
}

// GetOpenDispatchInspections lists envío inspections of the equipment not yet
// claimed by any recepción, newest first. These are the candidates a new
// recepción may reference.
func (r *InspectionRepository) GetOpenDispatchInspections(ctx context.Context, equipoID uint64) ([]entities.Inspection, error) {
	query := `
        SELECT ` + inspectionFields + `
        FROM ` + inspectionTable + ` e
        WHERE e.equipo_id = $1
          AND e.tipo_inspeccion = 'envio'
          AND NOT EXISTS (
              SELECT 1 FROM ` + inspectionTable + ` r
              WHERE r.inspeccion_envio_relacionada = e.id
          )
        ORDER BY e.fecha_hora DESC
    `
	rows, err := r.storage.Query(ctx, query, equipoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.Inspection
	for rows.Next() {
		var insp entities.Inspection
		if err := scanInspection(rows, &insp); err != nil {
			return nil, err
		}
		result = append(result, insp)
	}
	return result, rows.Err()
}

func (r *InspectionRepository) CreateInspectionInTx(ctx context.Context, tx pgx.Tx, insp *entities.Inspection) (uint64, error) {
	query := `
        INSERT INTO ` + inspectionTable + `
            (equipo_id, inspector_id, tipo_inspeccion, fecha_hora, horometro_odometro, ubicacion, observaciones_generales, semaforo, inspeccion_envio_relacionada)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	var id uint64
	err := tx.QueryRow(ctx, query,
		insp.EquipoID,
		insp.InspectorID,
		insp.TipoInspeccion,
		insp.FechaHora,
		insp.HorometroOdometro,
		insp.Ubicacion,
		insp.ObservacionesGenerales,
		insp.Semaforo,
		insp.InspeccionEnvioRelacionada,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *InspectionRepository) CreateChecklistItemsInTx(ctx context.Context, tx pgx.Tx, items []entities.ChecklistItem) error {
	query := `
        INSERT INTO checklist_items (inspeccion_id, categoria, item_nombre, es_critico, estado, observacion)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	for _, item := range items {
		if _, err := tx.Exec(ctx, query,
			item.InspeccionID,
			item.Categoria,
			item.ItemNombre,
			item.EsCritico,
			item.Estado,
			item.Observacion,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *InspectionRepository) CreatePhotosInTx(ctx context.Context, tx pgx.Tx, photos []entities.InspectionPhoto) error {
	query := `
        INSERT INTO inspeccion_fotos (inspeccion_id, url, public_id, descripcion, tipo)
        VALUES ($1, $2, $3, $4, $5)
    `
	for _, photo := range photos {
		if _, err := tx.Exec(ctx, query,
			photo.InspeccionID,
			photo.URL,
			photo.PublicID,
			photo.Descripcion,
			photo.Tipo,
		); err != nil {
			return err
		}
	}
	return nil
}

// FindDispatchForUpdateInTx loads an envío inspection with a row lock and
// reports whether some recepción already references it. The lock keeps two
// concurrent recepciones from claiming the same envío.
func (r *InspectionRepository) FindDispatchForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Inspection, bool, error) {
	query := "SELECT " + inspectionFields + " FROM " + inspectionTable + " WHERE id = $1 FOR UPDATE"

	var insp entities.Inspection
	if err := scanInspection(tx.QueryRow(ctx, query, id), &insp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, apperrors.ErrNotFound
		}
		return nil, false, err
	}

	var claimed bool
	err := tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM "+inspectionTable+" WHERE inspeccion_envio_relacionada = $1)", id,
	).Scan(&claimed)
	if err != nil {
		return nil, false, err
	}

	return &insp, claimed, nil
}

func (r *InspectionRepository) GetChecklistItems(ctx context.Context, inspeccionID uint64) ([]entities.ChecklistItem, error) {
	query := `
        SELECT id, inspeccion_id, categoria, item_nombre, es_critico, estado, observacion
        FROM checklist_items
        WHERE inspeccion_id = $1
        ORDER BY id
    `
	rows, err := r.storage.Query(ctx, query, inspeccionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.ChecklistItem
	for rows.Next() {
		var item entities.ChecklistItem
		if err := rows.Scan(
			&item.ID,
			&item.InspeccionID,
			&item.Categoria,
			&item.ItemNombre,
			&item.EsCritico,
			&item.Estado,
			&item.Observacion,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InspectionRepository) GetPhotos(ctx context.Context, inspeccionID uint64) ([]entities.InspectionPhoto, error) {
	query := `
        SELECT id, inspeccion_id, url, public_id, descripcion, tipo
        FROM inspeccion_fotos
        WHERE inspeccion_id = $1
        ORDER BY id
    `
	rows, err := r.storage.Query(ctx, query, inspeccionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []entities.InspectionPhoto
	for rows.Next() {
		var photo entities.InspectionPhoto
		if err := rows.Scan(
			&photo.ID,
			&photo.InspeccionID,
			&photo.URL,
			&photo.PublicID,
			&photo.Descripcion,
			&photo.Tipo,
		); err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}
