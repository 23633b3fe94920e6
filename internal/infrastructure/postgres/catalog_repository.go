package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

var productColumns = []string{"position", "product_id", "name", "category", "price", "quantity", "reorder_level"}

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	q  Querier
	tx *TxRunner
}

// NewCatalogRepository construye el adaptador. Save usa tx para reemplazar el contenido de forma atómica.
func NewCatalogRepository(q Querier, tx *TxRunner) *CatalogRepo {
	return &CatalogRepo{q: q, tx: tx}
}

// Load devuelve los productos en el orden del registro.
func (r *CatalogRepo) Load(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT product_id, name, category, price, quantity, reorder_level
		FROM registry_products ORDER BY position`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		var category int
		if err := rows.Scan(&p.ID, &p.Name, &category, &p.Price, &p.Quantity, &p.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = entity.Category(category)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Save reemplaza el contenido de la tabla por products, conservando su orden.
func (r *CatalogRepo) Save(ctx context.Context, products []*entity.Product) error {
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM registry_products`); err != nil {
			return fmt.Errorf("delete products: %w", err)
		}
		rows := make([][]any, 0, len(products))
		for i, p := range products {
			rows = append(rows, []any{i, p.ID, p.Name, int(p.Category), p.Price, p.Quantity, p.ReorderLevel})
		}
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"registry_products"}, productColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy products: %w", err)
		}
		return nil
	})
}
