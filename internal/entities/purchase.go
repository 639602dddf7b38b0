package entities

import (
	"fleet-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// PurchaseOrder is a purchase requisition. NumeroPedido follows the per-year
// consecutive format "N/yyyy".
type PurchaseOrder struct {
	ID            uint64 `json:"id"`
	NumeroPedido  string `json:"numero_pedido"`
	UsuarioID     uint64 `json:"usuario_id"`
	SolicitadoPor string `json:"solicitado_por"`
	Estado        string `json:"estado"`

	types.BaseEntity
}

// PurchaseOrderItem is one requested line of a purchase requisition.
type PurchaseOrderItem struct {
	ID               uint64      `json:"id"`
	PedidoID         uint64      `json:"pedido_id"`
	ItemNumero       int         `json:"item_numero"`
	Descripcion      string      `json:"descripcion"`
	Especificaciones null.String `json:"especificaciones,omitempty"`
	UnidadMedida     null.String `json:"unidad_medida,omitempty"`
	Cantidad         float64     `json:"cantidad"`
	FechaLugarEntrega null.String `json:"fecha_lugar_entrega,omitempty"`
	Observacion      null.String `json:"observacion,omitempty"`
}
