package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del registro en memoria.
// ReorderLevel es el umbral de cantidad a partir del cual se sugiere reponer.
type Product struct {
	ID           string
	Name         string
	Category     Category
	Price        decimal.Decimal // precio de venta, nunca negativo
	Quantity     int
	ReorderLevel int
}

// String es la representación que se muestra al eliminar un producto.
func (p *Product) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s | %s | %s | price %s | qty %d | reorder %d",
		p.ID, p.Name, p.Category.Name(), p.Price.String(), p.Quantity, p.ReorderLevel)
}
