package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultThumbnail es la imagen por defecto cuando el producto no trae una.
const DefaultThumbnail = "Sin Imagen"

// Product representa un producto del catálogo.
// Code es único entre productos no eliminados. OwnerID identifica al usuario
// premium que lo creó; nil significa producto de la casa (creado por admin).
// Stock se almacena pero NO se decrementa por operaciones de carrito: la
// cantidad en el carrito es un contador local desacoplado del stock.
type Product struct {
	ID          string
	Title       string
	Description string
	Code        string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Thumbnail   string
	OwnerID     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
