package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhoicas/inventario-registro/internal/application/registry"
	"github.com/jhoicas/inventario-registro/internal/domain"
	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/internal/domain/repository"
	"github.com/jhoicas/inventario-registro/pkg/logger"
)

const menuText = `
== Inventory ==
1) List products
2) Search products
3) Remove product
4) Edit product
5) Low stock
6) Export PDF report
0) Exit`

// ReportGenerator produce el PDF del registro.
type ReportGenerator interface {
	Generate(ctx context.Context, title string, records []*entity.Record) ([]byte, error)
}

// MenuConfig opciones del menú interactivo.
type MenuConfig struct {
	AutoSave    bool
	ReportPath  string
	ReportTitle string
}

// Menu bucle interactivo sobre el registro.
type Menu struct {
	in     registry.LineReader
	out    io.Writer
	ops    *registry.Operations
	repo   repository.CatalogRepository
	report ReportGenerator
	cfg    MenuConfig
	log    *logger.Logger
}

// NewMenu construye el menú. repo y report pueden ser nil: sin repo no se guarda,
// sin report la opción de exportar informa que no está disponible.
func NewMenu(in registry.LineReader, out io.Writer, repo repository.CatalogRepository,
	report ReportGenerator, cfg MenuConfig, log *logger.Logger) *Menu {
	if log == nil {
		log = logger.Nop()
	}
	return &Menu{
		in:     in,
		out:    out,
		ops:    registry.NewOperations(in, out, log),
		repo:   repo,
		report: report,
		cfg:    cfg,
		log:    log,
	}
}

// Run atiende opciones hasta "0" o fin de entrada. Los errores de cada opción se informan
// y el bucle continúa; solo un error de entrada/salida termina Run.
func (m *Menu) Run(ctx context.Context, records *[]*entity.Record) error {
	for {
		m.println(menuText)
		choice, err := m.in.ReadLine("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("leer opción: %w", err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.list(*records)
		case "2":
			term, err := m.in.ReadLine("Search term: ")
			if err != nil {
				return m.inputErr(err)
			}
			m.list(registry.Search(*records, term))
		case "3":
			if _, err := m.ops.Remove(records); err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					return m.inputErr(err)
				}
				break
			}
			m.save(ctx, *records)
		case "4":
			res, err := m.ops.Edit(*records)
			if res != nil && len(res.Changed) > 0 {
				m.save(ctx, *records)
			}
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return m.inputErr(err)
			}
		case "5":
			m.list(registry.LowStock(*records))
		case "6":
			m.export(ctx, *records)
		case "0":
			return nil
		default:
			m.println("Invalid option.")
		}
	}
}

func (m *Menu) list(records []*entity.Record) {
	if len(records) == 0 {
		m.println("No products.")
		return
	}
	for _, r := range records {
		m.println(r.String())
	}
}

func (m *Menu) save(ctx context.Context, records []*entity.Record) {
	if m.repo == nil || !m.cfg.AutoSave {
		return
	}
	if err := m.repo.Save(ctx, entity.UnwrapRecords(records)); err != nil {
		m.log.Error().Err(err).Msg("guardar catálogo")
		m.println("Could not save catalog: " + err.Error())
		return
	}
	m.log.Debug().Int("count", len(records)).Msg("catálogo guardado")
}

func (m *Menu) export(ctx context.Context, records []*entity.Record) {
	if m.report == nil {
		m.println("PDF export is not available.")
		return
	}
	if err := WriteReport(ctx, m.report, m.cfg.ReportTitle, m.cfg.ReportPath, records); err != nil {
		m.log.Error().Err(err).Msg("exportar reporte")
		m.println("Could not export report: " + err.Error())
		return
	}
	m.println("Report written to " + m.cfg.ReportPath)
}

// WriteReport genera el PDF y lo escribe en path.
func WriteReport(ctx context.Context, g ReportGenerator, title, path string, records []*entity.Record) error {
	data, err := g.Generate(ctx, title, records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir reporte: %w", err)
	}
	return nil
}

// inputErr trata el fin de entrada en medio de una opción como salida normal.
func (m *Menu) inputErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}
