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

const maintenanceTable = "mantenimientos"

// MaintenanceRow is a maintenance ticket joined with its equipment's code and
// denomination for the list screens and the webhook payload.
type MaintenanceRow struct {
	entities.Maintenance
	EquipoCodigo       string
	EquipoDenominacion string
}

type MaintenanceRepositoryInterface interface {
	GetMaintenances(ctx context.Context, filter types.Filter) ([]MaintenanceRow, uint64, error)
	FindMaintenance(ctx context.Context, id uint64) (*MaintenanceRow, error)
	CreateMaintenance(ctx context.Context, m *entities.Maintenance) (uint64, error)
	UpdateMaintenance(ctx context.Context, id uint64, m *entities.Maintenance) error
	MarkEmailSent(ctx context.Context, id uint64) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

const maintenanceSelectFields = `
    m.id, m.equipo_id, m.inspeccion_id, m.tipo_mantenimiento, m.numero_aviso,
    m.numero_orden, m.descripcion_averia, m.prioridad, m.fecha_inicio_averia,
    m.fecha_ingreso_taller, m.fecha_liberacion, m.pedido, m.ingresa_taller_ypane,
    m.estado, m.email_enviado, m.fecha_email_enviado, m.created_at, m.updated_at,
    e.numero_identificacion, e.denominacion`

func scanMaintenanceRow(row pgx.Row, m *MaintenanceRow) error {
	return row.Scan(
		&m.ID,
		&m.EquipoID,
		&m.InspeccionID,
		&m.TipoMantenimiento,
		&m.NumeroAviso,
		&m.NumeroOrden,
		&m.DescripcionAveria,
		&m.Prioridad,
		&m.FechaInicioAveria,
		&m.FechaIngresoTaller,
		&m.FechaLiberacion,
		&m.Pedido,
		&m.IngresaTallerYpane,
		&m.Estado,
		&m.EmailEnviado,
		&m.FechaEmailEnviado,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.EquipoCodigo,
		&m.EquipoDenominacion,
	)
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context, filter types.Filter) ([]MaintenanceRow, uint64, error) {
	builder := psql.
		Select(maintenanceSelectFields).
		From(maintenanceTable + " m").
		Join("equipos e ON e.id = m.equipo_id").
		OrderBy("m.created_at DESC")

	conds := maintenanceListConds(filter)
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

	var result []MaintenanceRow
	for rows.Next() {
		var m MaintenanceRow
		if err := scanMaintenanceRow(rows, &m); err != nil {
			return nil, 0, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// Search may touch the equipment columns, so the count keeps the join.
	countBuilder := psql.Select("COUNT(*)").
		From(maintenanceTable + " m").
		Join("equipos e ON e.id = m.equipo_id")
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

func maintenanceListConds(filter types.Filter) []sq.Sqlizer {
	allowedFilters := map[string]string{
		"equipo_id":          "m.equipo_id",
		"estado":             "m.estado",
		"prioridad":          "m.prioridad",
		"tipo_mantenimiento": "m.tipo_mantenimiento",
		"pedido":             "m.pedido",
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
			sq.Expr("m.descripcion_averia ILIKE ?", pattern),
		})
	}

	return conds
}

func (r *MaintenanceRepository) FindMaintenance(ctx context.Context, id uint64) (*MaintenanceRow, error) {
	query := "SELECT " + maintenanceSelectFields + `
        FROM ` + maintenanceTable + ` m
        JOIN equipos e ON e.id = m.equipo_id
        WHERE m.id = $1
    `
	var m MaintenanceRow
	if err := scanMaintenanceRow(r.storage.QueryRow(ctx, query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, m *entities.Maintenance) (uint64, error) {
	query := `
        INSERT INTO ` + maintenanceTable + `
            (equipo_id, inspeccion_id, tipo_mantenimiento, numero_aviso, numero_orden,
             descripcion_averia, prioridad, fecha_inicio_averia, fecha_ingreso_taller,
             fecha_liberacion, pedido, ingresa_taller_ypane, estado)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		m.EquipoID,
		m.InspeccionID,
		m.TipoMantenimiento,
		m.NumeroAviso,
		m.NumeroOrden,
		m.DescripcionAveria,
		m.Prioridad,
		m.FechaInicioAveria,
		m.FechaIngresoTaller,
		m.FechaLiberacion,
		m.Pedido,
		m.IngresaTallerYpane,
		m.Estado,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MaintenanceRepository) UpdateMaintenance(ctx context.Context, id uint64, m *entities.Maintenance) error {
	query := `
        UPDATE ` + maintenanceTable + `
        SET inspeccion_id = $1, tipo_mantenimiento = $2, numero_aviso = $3,
            numero_orden = $4, descripcion_averia = $5, prioridad = $6,
            fecha_inicio_averia = $7, fecha_ingreso_taller = $8, fecha_liberacion = $9,
            pedido = $10, ingresa_taller_ypane = $11, estado = $12,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $13
    `
	result, err := r.storage.Exec(ctx, query,
		m.InspeccionID,
		m.TipoMantenimiento,
		m.NumeroAviso,
		m.NumeroOrden,
		m.DescripcionAveria,
		m.Prioridad,
		m.FechaInicioAveria,
		m.FechaIngresoTaller,
		m.FechaLiberacion,
		m.Pedido,
		m.IngresaTallerYpane,
		m.Estado,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkEmailSent records that the workshop webhook accepted the notification.
func (r *MaintenanceRepository) MarkEmailSent(ctx context.Context, id uint64) error {
	query := `
        UPDATE ` + maintenanceTable + `
        SET email_enviado = TRUE, fecha_email_enviado = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
    `
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
