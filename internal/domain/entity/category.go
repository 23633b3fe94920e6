package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-registro/internal/domain"
)

// Category es el código numérico (0-9) de la categoría de un producto.
type Category int

const (
	CategoryElectronics Category = iota
	CategoryClothing
	CategoryHome
	CategoryGrocery
	CategoryBooks
	CategoryToys
	CategorySports
	CategoryBeauty
	CategoryAutomotive
	CategoryOthers
)

// MinCategory y MaxCategory delimitan los códigos aceptados al editar.
const (
	MinCategory = CategoryElectronics
	MaxCategory = CategoryOthers
)

// Name devuelve el nombre legible de la categoría. Códigos fuera de la tabla
// se muestran como su número.
func (c Category) Name() string {
	switch c {
	case CategoryElectronics:
		return "Electronics"
	case CategoryClothing:
		return "Clothing"
	case CategoryHome:
		return "Home"
	case CategoryGrocery:
		return "Grocery"
	case CategoryBooks:
		return "Books"
	case CategoryToys:
		return "Toys"
	case CategorySports:
		return "Sports"
	case CategoryBeauty:
		return "Beauty"
	case CategoryAutomotive:
		return "Automotive"
	case CategoryOthers:
		return "Others"
	default:
		return strconv.Itoa(int(c))
	}
}

// Valid indica si el código está dentro de la tabla 0-9.
func (c Category) Valid() bool {
	return c >= MinCategory && c <= MaxCategory
}

// ParseCategory interpreta un código de categoría escrito por el usuario.
func ParseCategory(s string) (Category, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("categoría %q: %w", s, domain.ErrInvalidInput)
	}
	c := Category(n)
	if !c.Valid() {
		return 0, fmt.Errorf("categoría %d fuera de rango: %w", n, domain.ErrInvalidInput)
	}
	return c, nil
}
