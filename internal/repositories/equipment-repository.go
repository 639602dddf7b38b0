package repositories

import (
	"context"
	"errors"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTable = "equipos"
const equipmentFields = "id, numero_identificacion, tipo_equipo, denominacion, marca, modelo, ubicacion_actual, semaforo_actual, estado_operativo, observaciones_restricciones, created_at, updated_at"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// EquipmentRow is an equipment record joined with the timestamp of its most
// recent inspection (NULL when it was never inspected).
type EquipmentRow struct {
	entities.Equipment
	UltimaInspeccion null.Time
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]EquipmentRow, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) error
	UpdateOperability(ctx context.Context, id uint64, estado string, observaciones null.String) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, semaforo string, ubicacion *string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row, e *entities.Equipment) error {
	return row.Scan(
		&e.ID,
		&e.NumeroIdentificacion,
		&e.TipoEquipo,
		&e.Denominacion,
		&e.Marca,
		&e.Modelo,
		&e.UbicacionActual,
		&e.SemaforoActual,
		&e.EstadoOperativo,
		&e.ObservacionesRestricciones,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]EquipmentRow, uint64, error) {
	builder := psql.
		Select(
			"e.id", "e.numero_identificacion", "e.tipo_equipo", "e.denominacion",
			"e.marca", "e.modelo", "e.ubicacion_actual", "e.semaforo_actual",
			"e.estado_operativo", "e.observaciones_restricciones",
			"e.created_at", "e.updated_at",
			"MAX(i.fecha_hora) AS ultima_inspeccion",
		).
		From(equipmentTable + " e").
		LeftJoin("inspecciones i ON i.equipo_id = e.id").
		GroupBy("e.id").
		OrderBy("e.numero_identificacion")

	conds := equipmentListConds(filter)
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

	var result []EquipmentRow
	for rows.Next() {
		var row EquipmentRow
		if err := rows.Scan(
			&row.ID,
			&row.NumeroIdentificacion,
			&row.TipoEquipo,
			&row.Denominacion,
			&row.Marca,
			&row.Modelo,
			&row.UbicacionActual,
			&row.SemaforoActual,
			&row.EstadoOperativo,
			&row.ObservacionesRestricciones,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.UltimaInspeccion,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// The count shares the list's predicates so pagination totals stay honest.
	countBuilder := psql.Select("COUNT(*)").From(equipmentTable + " e")
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

func equipmentListConds(filter types.Filter) []sq.Sqlizer {
	allowedFilters := map[string]string{
		"tipo_equipo":      "e.tipo_equipo",
		"semaforo_actual":  "e.semaforo_actual",
		"estado_operativo": "e.estado_operativo",
		"ubicacion_actual": "e.ubicacion_actual",
	}

	var conds []sq.Sqlizer
	for key, val := range filter.Filter {
		if col, ok := allowedFilters[key]; ok {
			conds = append(conds, sq.Eq{col: val})
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, sq.Or{
			sq.Expr("e.numero_identificacion ILIKE ?", pattern),
			sq.Expr("e.denominacion ILIKE ?", pattern),
		})
	}

	return conds
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := "SELECT " + equipmentFields + " FROM " + equipmentTable + " WHERE id = $1"

	var equipment entities.Equipment
	err := scanEquipment(r.storage.QueryRow(ctx, query, id), &equipment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (uint64, error) {
	query := `
        INSERT INTO ` + equipmentTable + ` (numero_identificacion, tipo_equipo, denominacion, marca, modelo, ubicacion_actual, estado_operativo)
        VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), 'operativo')
        RETURNING id
    `
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		d.NumeroIdentificacion,
		d.TipoEquipo,
		d.Denominacion,
		d.Marca,
		d.Modelo,
		d.UbicacionActual,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) error {
	query := `
        UPDATE ` + equipmentTable + `
        SET denominacion = $1, marca = NULLIF($2, ''), modelo = NULLIF($3, ''), ubicacion_actual = NULLIF($4, ''), updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
    `
	result, err := r.storage.Exec(ctx, query, d.Denominacion, d.Marca, d.Modelo, d.UbicacionActual, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateOperability(ctx context.Context, id uint64, estado string, observaciones null.String) error {
	query := `
        UPDATE ` + equipmentTable + `
        SET estado_operativo = $1, observaciones_restricciones = $2, updated_at = CURRENT_TIMESTAMP
        WHERE id = $3
    `
	result, err := r.storage.Exec(ctx, query, estado, observaciones, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatusInTx propagates a finalized inspection's semaforo to the
// equipment's cached status; ubicacion is non-nil only for envío inspections,
// which also move the asset.
func (r *EquipmentRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, semaforo string, ubicacion *string) error {
	var rowsAffected int64

	if ubicacion != nil {
		tag, err := tx.Exec(ctx, `
            UPDATE `+equipmentTable+`
            SET semaforo_actual = $1, ubicacion_actual = $2, updated_at = CURRENT_TIMESTAMP
            WHERE id = $3
        `, semaforo, *ubicacion, id)
		if err != nil {
			return err
		}
		rowsAffected = tag.RowsAffected()
	} else {
		tag, err := tx.Exec(ctx, `
            UPDATE `+equipmentTable+`
            SET semaforo_actual = $1, updated_at = CURRENT_TIMESTAMP
            WHERE id = $2
        `, semaforo, id)
		if err != nil {
			return err
		}
		rowsAffected = tag.RowsAffected()
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
