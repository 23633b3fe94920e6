// Package app arma las dependencias de la herramienta según la configuración.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-registro/internal/application/registry"
	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/internal/domain/repository"
	"github.com/jhoicas/inventario-registro/internal/infrastructure/jsonfile"
	"github.com/jhoicas/inventario-registro/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-registro/pkg/config"
	"github.com/jhoicas/inventario-registro/pkg/logger"
)

const fieldWriteTimeout = 5 * time.Second

var errNoLabel = errors.New("categoría sin etiqueta propia")

// App contiene el registro cargado y el repositorio del que proviene.
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Repo    repository.CatalogRepository
	Records []*entity.Record

	closers []func()
}

// Open construye el repositorio indicado por cfg.Catalog.Source y carga el registro.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	var q postgres.Querier
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			a.Close()
			return nil, err
		}
		a.Repo = postgres.NewCatalogRepository(pool, postgres.NewTxRunner(pool))
		q = pool
	default:
		a.Repo = jsonfile.NewCatalogRepository(cfg.Catalog.Path, log.WithComponent("jsonfile"))
	}

	products, err := a.Repo.Load(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	a.Records = entity.WrapProducts(products, RecordOptions(ctx, cfg, q)...)

	for _, id := range registry.Duplicates(a.Records) {
		log.Warn().Str("product_id", id).Msg("identificador duplicado, se usará la primera coincidencia")
	}
	log.Info().
		Str("source", cfg.Catalog.Source).
		Int("count", len(a.Records)).
		Bool("write_through", len(a.Records) > 0 && a.Records[0].HasFieldWriter()).
		Msg("registro cargado")
	return a, nil
}

// RecordOptions arma las capacidades de cada registro. Con q no nil los Set* se
// escriben en la base, pero solo si cfg.Catalog.AutoSave está activo: sin autosave
// ningún cambio llega a la base hasta un Save explícito.
func RecordOptions(ctx context.Context, cfg *config.Config, q postgres.Querier) []entity.RecordOption {
	var opts []entity.RecordOption
	if namer := LabelNamer(cfg.Categories); namer != nil {
		opts = append(opts, entity.WithCategoryNamer(namer))
	}
	if q != nil && cfg.Catalog.AutoSave {
		opts = append(opts, entity.WithFieldWriter(postgres.NewFieldWriter(ctx, q, fieldWriteTimeout)))
	}
	return opts
}

// Save persiste el registro actual.
func (a *App) Save(ctx context.Context) error {
	return a.Repo.Save(ctx, entity.UnwrapRecords(a.Records))
}

// Close libera conexiones abiertas por Open.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// LabelNamer expone las etiquetas configuradas como accesor de nombre de categoría.
// Devuelve nil si no hay etiquetas.
func LabelNamer(labels config.CategoryLabels) entity.CategoryNamer {
	if len(labels) == 0 {
		return nil
	}
	return entity.CategoryNamerFunc(func(p *entity.Product) (string, error) {
		if label, ok := labels[int(p.Category)]; ok {
			return label, nil
		}
		return "", errNoLabel
	})
}
