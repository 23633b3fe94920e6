// Package jsonfile implementa el catálogo sobre un archivo JSON local.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-registro/internal/domain"
	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/internal/domain/repository"
	"github.com/jhoicas/inventario-registro/pkg/logger"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// productJSON forma persistida de un producto.
type productJSON struct {
	ID           string          `json:"product_id"`
	Name         string          `json:"name"`
	Category     int             `json:"category"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0"`
}

// CatalogRepo lee y escribe el registro completo en un archivo JSON.
type CatalogRepo struct {
	path     string
	validate *validator.Validate
	log      *logger.Logger
}

// NewCatalogRepository construye el adaptador para el archivo en path.
func NewCatalogRepository(path string, log *logger.Logger) *CatalogRepo {
	if log == nil {
		log = logger.Nop()
	}
	v := validator.New()
	// decimal.Decimal se valida como float64 para poder usar gte/lte.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &CatalogRepo{path: path, validate: v, log: log}
}

// Path devuelve la ruta del archivo.
func (r *CatalogRepo) Path() string { return r.path }

// Load lee el archivo. Si no existe devuelve un catálogo vacío. A los productos sin
// identificador se les asigna un UUID.
func (r *CatalogRepo) Load(_ context.Context) ([]*entity.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Info().Str("path", r.path).Msg("catálogo inexistente, se inicia vacío")
			return []*entity.Product{}, nil
		}
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}

	var rows []productJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decodificar catálogo %s: %w", r.path, err)
	}

	products := make([]*entity.Product, 0, len(rows))
	for i, row := range rows {
		if err := r.validate.Struct(row); err != nil {
			return nil, fmt.Errorf("producto #%d (%q): %v: %w", i, row.ID, err, domain.ErrInvalidInput)
		}
		if row.ID == "" {
			row.ID = uuid.NewString()
			r.log.Warn().Int("index", i).Str("product_id", row.ID).Msg("producto sin identificador, se asigna UUID")
		}
		products = append(products, &entity.Product{
			ID:           row.ID,
			Name:         row.Name,
			Category:     entity.Category(row.Category),
			Price:        row.Price,
			Quantity:     row.Quantity,
			ReorderLevel: row.ReorderLevel,
		})
	}
	r.log.Debug().Str("path", r.path).Int("count", len(products)).Msg("catálogo cargado")
	return products, nil
}

// Save reescribe el archivo completo. Escribe primero un temporal en el mismo directorio
// y luego lo renombra, de modo que un fallo no deja el archivo a medias.
func (r *CatalogRepo) Save(_ context.Context, products []*entity.Product) error {
	rows := make([]productJSON, 0, len(products))
	for _, p := range products {
		rows = append(rows, productJSON{
			ID:           p.ID,
			Name:         p.Name,
			Category:     int(p.Category),
			Price:        p.Price,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar catálogo: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir catálogo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar catálogo: %w", err)
	}
	r.log.Debug().Str("path", r.path).Int("count", len(products)).Msg("catálogo guardado")
	return nil
}
