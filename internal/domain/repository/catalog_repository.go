package repository

import (
	"context"

	"github.com/jhoicas/inventario-registro/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia del registro completo (DIP).
// Load devuelve los productos en su orden guardado; Save reemplaza el contenido por products.
type CatalogRepository interface {
	Load(ctx context.Context) ([]*entity.Product, error)
	Save(ctx context.Context, products []*entity.Product) error
}
