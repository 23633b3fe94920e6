// Package pdf genera el reporte del catálogo en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título               │  Fecha + total de productos  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Categoría | Precio | Cant. | Reorden   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos bajo nivel de reorden                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-registro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// CatalogReport genera el listado del registro con Maroto v2.
type CatalogReport struct {
	now func() time.Time
}

// NewCatalogReport construye el generador.
func NewCatalogReport() *CatalogReport { return &CatalogReport{now: time.Now} }

// Generate genera el PDF del registro y devuelve sus bytes. Los productos en o bajo su
// nivel de reorden se resaltan.
func (g *CatalogReport) Generate(_ context.Context, title string, records []*entity.Record) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now(), len(records)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	low := 0
	for _, r := range records {
		if r.Quantity() <= r.ReorderLevel() {
			low++
		}
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(low))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+at.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(strconv.Itoa(count)+" products", props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Name", 4, align.Left),
		h("Category", 2, align.Left),
		h("Price", 2, align.Right),
		h("Qty", 1, align.Right),
		h("Reorder", 1, align.Right),
	)
}

func tableDetailRow(r *entity.Record) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		style := props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}
		if r.Quantity() <= r.ReorderLevel() {
			style.Color = colorAlert
		}
		return col.New(size).Add(text.New(s, style))
	}
	return row.New(6).Add(
		cell(r.ID(), 2, align.Left),
		cell(r.Name(), 4, align.Left),
		cell(r.ResolvedCategoryName(), 2, align.Left),
		cell(r.Price().StringFixed(2), 2, align.Right),
		cell(strconv.Itoa(r.Quantity()), 1, align.Right),
		cell(strconv.Itoa(r.ReorderLevel()), 1, align.Right),
	)
}

func summaryRow(low int) core.Row {
	msg := "All products are above their reorder level."
	color := colorGray
	if low > 0 {
		msg = fmt.Sprintf("%d product(s) at or below reorder level.", low)
		color = colorAlert
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Style: fontstyle.Bold, Size: 9, Color: color, Top: 2}),
	))
}
