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

const purchaseTable = "pedidos_compra"
const purchaseItemTable = "pedido_items"

type PurchaseRepositoryInterface interface {
	GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]entities.PurchaseOrder, uint64, error)
	FindPurchaseOrder(ctx context.Context, id uint64) (*entities.PurchaseOrder, error)
	GetItems(ctx context.Context, pedidoID uint64) ([]entities.PurchaseOrderItem, error)
	// LastOrderNumberOfYearInTx returns the highest consecutive already used
	// this year (0 when none). The unique index on numero_pedido catches the
	// race if two creations pick the same number.
	LastOrderNumberOfYearInTx(ctx context.Context, tx pgx.Tx, year int) (int, error)
	CreatePurchaseOrderInTx(ctx context.Context, tx pgx.Tx, order *entities.PurchaseOrder) (uint64, error)
	CreateItemsInTx(ctx context.Context, tx pgx.Tx, items []entities.PurchaseOrderItem) error
	UpdateState(ctx context.Context, id uint64, estado string) error
}

type PurchaseRepository struct {
	storage *pgxpool.Pool
}

func NewPurchaseRepository(storage *pgxpool.Pool) PurchaseRepositoryInterface {
	return &PurchaseRepository{storage: storage}
}

func (r *PurchaseRepository) GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]entities.PurchaseOrder, uint64, error) {
	builder := psql.
		Select("id", "numero_pedido", "usuario_id", "solicitado_por", "estado", "created_at", "updated_at").
		From(purchaseTable).
		OrderBy("created_at DESC")

	conds := purchaseListConds(filter)
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

	var result []entities.PurchaseOrder
	for rows.Next() {
		var o entities.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.NumeroPedido, &o.UsuarioID, &o.SolicitadoPor, &o.Estado, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := psql.Select("COUNT(*)").From(purchaseTable)
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

func purchaseListConds(filter types.Filter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if estado, ok := filter.Filter["estado"]; ok {
		conds = append(conds, sq.Eq{"estado": estado})
	}
	return conds
}

func (r *PurchaseRepository) FindPurchaseOrder(ctx context.Context, id uint64) (*entities.PurchaseOrder, error) {
	query := "SELECT id, numero_pedido, usuario_id, solicitado_por, estado, created_at, updated_at FROM " + purchaseTable + " WHERE id = $1"

	var o entities.PurchaseOrder
	err := r.storage.QueryRow(ctx, query, id).Scan(&o.ID, &o.NumeroPedido, &o.UsuarioID, &o.SolicitadoPor, &o.Estado, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PurchaseRepository) GetItems(ctx context.Context, pedidoID uint64) ([]entities.PurchaseOrderItem, error) {
	query := `
        SELECT id, pedido_id, item_numero, descripcion, especificaciones, unidad_medida, cantidad, fecha_lugar_entrega, observacion
        FROM ` + purchaseItemTable + `
        WHERE pedido_id = $1
        ORDER BY item_numero
    `
	rows, err := r.storage.Query(ctx, query, pedidoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.PurchaseOrderItem
	for rows.Next() {
		var it entities.PurchaseOrderItem
		if err := rows.Scan(
			&it.ID,
			&it.PedidoID,
			&it.ItemNumero,
			&it.Descripcion,
			&it.Especificaciones,
			&it.UnidadMedida,
			&it.Cantidad,
			&it.FechaLugarEntrega,
			&it.Observacion,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PurchaseRepository) LastOrderNumberOfYearInTx(ctx context.Context, tx pgx.Tx, year int) (int, error) {
	// numero_pedido has the shape "N/yyyy"; take the highest N of this year.
	query := `
        SELECT COALESCE(MAX(split_part(numero_pedido, '/', 1)::int), 0)
        FROM ` + purchaseTable + `
        WHERE numero_pedido LIKE '%/' || $1::text
    `
	var last int
	if err := tx.QueryRow(ctx, query, year).Scan(&last); err != nil {
		return 0, err
	}
	return last, nil
}

func (r *PurchaseRepository) CreatePurchaseOrderInTx(ctx context.Context, tx pgx.Tx, order *entities.PurchaseOrder) (uint64, error) {
	query := `
        INSERT INTO ` + purchaseTable + ` (numero_pedido, usuario_id, solicitado_por, estado)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	var id uint64
	err := tx.QueryRow(ctx, query, order.NumeroPedido, order.UsuarioID, order.SolicitadoPor, order.Estado).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PurchaseRepository) CreateItemsInTx(ctx context.Context, tx pgx.Tx, items []entities.PurchaseOrderItem) error {
	query := `
        INSERT INTO ` + purchaseItemTable + `
            (pedido_id, item_numero, descripcion, especificaciones, unidad_medida, cantidad, fecha_lugar_entrega, observacion)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	for _, it := range items {
		if _, err := tx.Exec(ctx, query,
			it.PedidoID,
			it.ItemNumero,
			it.Descripcion,
			it.Especificaciones,
			it.UnidadMedida,
			it.Cantidad,
			it.FechaLugarEntrega,
			it.Observacion,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PurchaseRepository) UpdateState(ctx context.Context, id uint64, estado string) error {
	query := "UPDATE " + purchaseTable + " SET estado = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2"
	result, err := r.storage.Exec(ctx, query, estado, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
