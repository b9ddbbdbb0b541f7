package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem es una entrada {producto, cantidad} dentro de un carrito.
// Quantity es siempre un entero positivo. Product viene resuelto en la
// lectura; queda en nil si el producto fue borrado después de agregarse
// (referencia stale: "el producto ya no existe").
type CartItem struct {
	ProductID string
	Quantity  int
	Product   *Product
}

// Cart es un carrito de compras: lista ordenada de entradas con a lo sumo
// una entrada por producto. Un carrito vacío y uno recién creado son la
// misma representación (cero entradas).
type Cart struct {
	ID        string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total agrega cantidad × precio sobre las entradas resolubles. Las
// entradas stale no suman.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		if it.Product == nil {
			continue
		}
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Item devuelve la entrada del producto indicado, o nil si no hay.
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
