package postgres

import (
	"context"
	"fmt"
)

// La posición conserva el orden del registro; product_id no es único porque el
// registro tampoco lo exige.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS registry_products (
	position      INTEGER PRIMARY KEY,
	product_id    TEXT    NOT NULL,
	name          TEXT    NOT NULL DEFAULT '',
	category      INTEGER NOT NULL DEFAULT 0,
	price         NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
	quantity      INTEGER NOT NULL DEFAULT 0,
	reorder_level INTEGER NOT NULL DEFAULT 0 CHECK (reorder_level >= 0)
);
CREATE INDEX IF NOT EXISTS registry_products_product_id_idx ON registry_products (product_id);`

// EnsureSchema crea la tabla del registro si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
