package dto

type CreatePurchaseItemDTO struct {
	Descripcion      string  `json:"descripcion" validate:"required"`
	Especificaciones string  `json:"especificaciones"`
	UnidadMedida     string  `json:"unidad_medida"`
	Cantidad         float64 `json:"cantidad" validate:"required,gt=0"`
	FechaLugarEntrega string `json:"fecha_lugar_entrega"`
	Observacion      string  `json:"observacion"`
}

type CreatePurchaseOrderDTO struct {
	Items []CreatePurchaseItemDTO `json:"items" validate:"required,min=1,dive"`
}

type UpdatePurchaseStateDTO struct {
	Estado string `json:"estado" validate:"required,oneof=en_proceso recibido"`
}

type PurchaseItemDTO struct {
	ItemNumero       int     `json:"item_numero"`
	Descripcion      string  `json:"descripcion"`
	Especificaciones string  `json:"especificaciones,omitempty"`
	UnidadMedida     string  `json:"unidad_medida,omitempty"`
	Cantidad         float64 `json:"cantidad"`
	FechaLugarEntrega string `json:"fecha_lugar_entrega,omitempty"`
	Observacion      string  `json:"observacion,omitempty"`
}

type PurchaseOrderDTO struct {
	ID            uint64            `json:"id"`
	NumeroPedido  string            `json:"numero_pedido"`
	SolicitadoPor string            `json:"solicitado_por"`
	Estado        string            `json:"estado"`
	Items         []PurchaseItemDTO `json:"items,omitempty"`
}
