package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-registro/internal/domain/entity"
)

var _ entity.FieldWriter = (*FieldWriter)(nil)

// FieldWriter persiste cada campo editado antes de asignarlo en memoria.
// Si la escritura falla el campo en memoria no se toca; el llamador decide el respaldo.
type FieldWriter struct {
	ctx     context.Context
	q       Querier
	timeout time.Duration
}

// NewFieldWriter construye el writer. Cada UPDATE deriva de ctx y timeout lo acota,
// así que cancelar ctx corta también las escrituras pendientes.
func NewFieldWriter(ctx context.Context, q Querier, timeout time.Duration) *FieldWriter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FieldWriter{ctx: ctx, q: q, timeout: timeout}
}

func (w *FieldWriter) WriteName(p *entity.Product, name string) error {
	if err := w.update(p.ID, "name", name); err != nil {
		return err
	}
	p.Name = name
	return nil
}

func (w *FieldWriter) WriteCategory(p *entity.Product, c entity.Category) error {
	if err := w.update(p.ID, "category", int(c)); err != nil {
		return err
	}
	p.Category = c
	return nil
}

func (w *FieldWriter) WritePrice(p *entity.Product, price decimal.Decimal) error {
	if err := w.update(p.ID, "price", price); err != nil {
		return err
	}
	p.Price = price
	return nil
}

func (w *FieldWriter) WriteReorderLevel(p *entity.Product, level int) error {
	if err := w.update(p.ID, "reorder_level", level); err != nil {
		return err
	}
	p.ReorderLevel = level
	return nil
}

// update escribe una columna de la primera fila con ese product_id. column es siempre
// una constante de este archivo, nunca entrada del usuario.
func (w *FieldWriter) update(productID, column string, value any) error {
	ctx, cancel := context.WithTimeout(w.ctx, w.timeout)
	defer cancel()

	query := fmt.Sprintf(`
		UPDATE registry_products SET %s = $2
		WHERE position = (SELECT min(position) FROM registry_products WHERE product_id = $1)`, column)
	cmd, err := w.q.Exec(ctx, query, productID, value)
	if err != nil {
		return fmt.Errorf("update product %s: %w", column, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product %s: %q no existe en la base", column, productID)
	}
	return nil
}
