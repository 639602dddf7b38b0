package services

import (
	"context"
	"fmt"
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

type PurchaseServiceInterface interface {
	GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]dto.PurchaseOrderDTO, uint64, error)
	FindPurchaseOrder(ctx context.Context, id uint64) (*dto.PurchaseOrderDTO, error)
	CreatePurchaseOrder(ctx context.Context, userID uint64, solicitadoPor string, payload dto.CreatePurchaseOrderDTO) (*dto.PurchaseOrderDTO, error)
	UpdateState(ctx context.Context, id uint64, payload dto.UpdatePurchaseStateDTO) (*dto.PurchaseOrderDTO, error)
}

type PurchaseService struct {
	storage      *pgxpool.Pool
	purchaseRepo repositories.PurchaseRepositoryInterface
	logger       *zap.Logger
}

func NewPurchaseService(storage *pgxpool.Pool, purchaseRepo repositories.PurchaseRepositoryInterface, logger *zap.Logger) PurchaseServiceInterface {
	return &PurchaseService{storage: storage, purchaseRepo: purchaseRepo, logger: logger}
}

func (s *PurchaseService) GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]dto.PurchaseOrderDTO, uint64, error) {
	orders, total, err := s.purchaseRepo.GetPurchaseOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.PurchaseOrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, purchaseOrderToDTO(&o, nil))
	}
	return result, total, nil
}

func (s *PurchaseService) FindPurchaseOrder(ctx context.Context, id uint64) (*dto.PurchaseOrderDTO, error) {
	order, err := s.purchaseRepo.FindPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.purchaseRepo.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}

	result := purchaseOrderToDTO(order, items)
	return &result, nil
}

// CreatePurchaseOrder assigns the next consecutive "N/yyyy" number of the
// current year and writes the order with its lines in one transaction.
func (s *PurchaseService) CreatePurchaseOrder(ctx context.Context, userID uint64, solicitadoPor string, payload dto.CreatePurchaseOrderDTO) (*dto.PurchaseOrderDTO, error) {
	order := entities.PurchaseOrder{
		UsuarioID:     userID,
		SolicitadoPor: solicitadoPor,
		Estado:        constants.PedidoEnProceso,
	}

	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		year := time.Now().Year()
		last, err := s.purchaseRepo.LastOrderNumberOfYearInTx(ctx, tx, year)
		if err != nil {
			return err
		}
		order.NumeroPedido = fmt.Sprintf("%d/%d", last+1, year)

		id, err := s.purchaseRepo.CreatePurchaseOrderInTx(ctx, tx, &order)
		if err != nil {
			return apperrors.NewConsistencyError("insert purchase order", err)
		}
		order.ID = id

		items := make([]entities.PurchaseOrderItem, 0, len(payload.Items))
		for i, it := range payload.Items {
			items = append(items, entities.PurchaseOrderItem{
				PedidoID:          id,
				ItemNumero:        i + 1,
				Descripcion:       it.Descripcion,
				Especificaciones:  null.NewString(it.Especificaciones, it.Especificaciones != ""),
				UnidadMedida:      null.NewString(it.UnidadMedida, it.UnidadMedida != ""),
				Cantidad:          it.Cantidad,
				FechaLugarEntrega: null.NewString(it.FechaLugarEntrega, it.FechaLugarEntrega != ""),
				Observacion:       null.NewString(it.Observacion, it.Observacion != ""),
			})
		}
		if err := s.purchaseRepo.CreateItemsInTx(ctx, tx, items); err != nil {
			return apperrors.NewConsistencyError("insert purchase items", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.Uint64("pedido_id", order.ID),
		zap.String("numero_pedido", order.NumeroPedido),
		zap.Int("items", len(payload.Items)),
	)

	return s.FindPurchaseOrder(ctx, order.ID)
}

func (s *PurchaseService) UpdateState(ctx context.Context, id uint64, payload dto.UpdatePurchaseStateDTO) (*dto.PurchaseOrderDTO, error) {
	if err := s.purchaseRepo.UpdateState(ctx, id, payload.Estado); err != nil {
		return nil, err
	}
	return s.FindPurchaseOrder(ctx, id)
}

func purchaseOrderToDTO(order *entities.PurchaseOrder, items []entities.PurchaseOrderItem) dto.PurchaseOrderDTO {
	result := dto.PurchaseOrderDTO{
		ID:            order.ID,
		NumeroPedido:  order.NumeroPedido,
		SolicitadoPor: order.SolicitadoPor,
		Estado:        order.Estado,
	}
	for _, it := range items {
		result.Items = append(result.Items, dto.PurchaseItemDTO{
			ItemNumero:        it.ItemNumero,
			Descripcion:       it.Descripcion,
			Especificaciones:  it.Especificaciones.String,
			UnidadMedida:      it.UnidadMedida.String,
			Cantidad:          it.Cantidad,
			FechaLugarEntrega: it.FechaLugarEntrega.String,
			Observacion:       it.Observacion.String,
		})
	}
	return result
}
