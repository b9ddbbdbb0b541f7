package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetQuantityRequest entrada para fijar la cantidad de una entrada.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ReplaceItemRequest un par {producto, cantidad} del reemplazo masivo.
type ReplaceItemRequest struct {
	ProductID string `json:"product" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// ReplaceCartRequest lista completa que sustituye el contenido del
// carrito. Se valida entera antes de aplicar cambio alguno.
type ReplaceCartRequest struct {
	Items []ReplaceItemRequest `json:"products" validate:"required,dive"`
}

// CartItemResponse una entrada del carrito. Product viene en nil cuando el
// producto fue borrado del catálogo después de agregarse.
type CartItemResponse struct {
	ProductID string           `json:"product"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"detail"`
}

// CartResponse salida de un carrito, con el total agregado sobre las
// entradas resolubles.
type CartResponse struct {
	ID        string             `json:"id"`
	Items     []CartItemResponse `json:"products"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
