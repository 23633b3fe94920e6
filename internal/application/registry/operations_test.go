package registry_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-registro/internal/application/registry"
	"github.com/jhoicas/inventario-registro/internal/domain"
	"github.com/jhoicas/inventario-registro/internal/domain/entity"
)

// scriptedInput responde cada prompt con la siguiente línea del guion y anota los prompts.
type scriptedInput struct {
	lines   []string
	prompts []string
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newOps(lines ...string) (*registry.Operations, *scriptedInput, *bytes.Buffer) {
	in := &scriptedInput{lines: lines}
	out := &bytes.Buffer{}
	return registry.NewOperations(in, out, nil), in, out
}

// failingWriter simula setters que siempre fallan.
type failingWriter struct{ calls int }

func (w *failingWriter) WriteName(*entity.Product, string) error {
	w.calls++
	return errors.New("boom")
}
func (w *failingWriter) WriteCategory(*entity.Product, entity.Category) error {
	w.calls++
	return errors.New("boom")
}
func (w *failingWriter) WritePrice(*entity.Product, decimal.Decimal) error {
	w.calls++
	return errors.New("boom")
}
func (w *failingWriter) WriteReorderLevel(*entity.Product, int) error {
	w.calls++
	return errors.New("boom")
}

// upperWriter antepone "SET:" al nombre para distinguir el camino del setter.
type upperWriter struct{ *failingWriter }

func (upperWriter) WriteName(p *entity.Product, name string) error {
	p.Name = "SET:" + name
	return nil
}

// ── Remove ────────────────────────────────────────────────────────────────────

func TestRemove_EliminaPorIDSinDistinguirMayusculas(t *testing.T) {
	ops, in, out := newOps("p1")
	records := newRecords(widget())

	removed, err := ops.Remove(&records)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "P1", removed.ID())
	assert.Empty(t, records)
	assert.Equal(t, []string{"Enter product ID to remove: "}, in.prompts)
	assert.Equal(t, "Removed: "+removed.String()+"\n", out.String())
}

func TestRemove_DesplazaLosSiguientes(t *testing.T) {
	ops, _, _ := newOps(" B ")
	records := newRecords(
		&entity.Product{ID: "A"}, &entity.Product{ID: "B"}, &entity.Product{ID: "C"},
	)

	_, err := ops.Remove(&records)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ids(records))
	assert.Equal(t, 1, registry.ProductIndex(records, "c"))
}

func TestRemove_NoEncontradoNoModifica(t *testing.T) {
	ops, _, out := newOps("zzz")
	records := newRecords(widget(), &entity.Product{ID: "P2"})
	before := append([]*entity.Record(nil), records...)

	removed, err := ops.Remove(&records)
	assert.Nil(t, removed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, records)
	assert.Equal(t, "Product not found.\n", out.String())
}

func TestRemove_FinDeEntrada(t *testing.T) {
	ops, _, _ := newOps()
	records := newRecords(widget())

	_, err := ops.Remove(&records)
	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, records, 1)
}

// ── Edit ──────────────────────────────────────────────────────────────────────

func TestEdit_EscenarioCategoriaInvalidaPrecioValido(t *testing.T) {
	ops, in, out := newOps("P1", "", "15", "12.50", "")
	records := newRecords(widget())

	res, err := ops.Edit(records)
	require.NoError(t, err)

	p := records[0].Product()
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, entity.CategoryElectronics, p.Category)
	assert.True(t, decimal.RequireFromString("12.50").Equal(p.Price))
	assert.Equal(t, 5, p.ReorderLevel)

	assert.Equal(t, []string{registry.FieldPrice}, res.Changed)
	assert.Equal(t, []string{registry.FieldCategory}, res.Rejected)
	assert.Equal(t, []string{
		"Enter product ID to edit: ",
		"Name [Widget]: ",
		"Category index 0-9 [0]: ",
		"Price [9.99]: ",
		"Reorder level [5]: ",
	}, in.prompts)
	assert.Equal(t, "\nLeave blank to keep current value.\nInvalid category; unchanged.\nProduct updated.\n", out.String())
}

func TestEdit_TodoEnBlancoNoCambiaNada(t *testing.T) {
	ops, _, out := newOps("p1", "", "  ", "", "")
	records := newRecords(widget())
	want := *widget()

	res, err := ops.Edit(records)
	require.NoError(t, err)
	assert.Equal(t, want, *records[0].Product())
	assert.Empty(t, res.Changed)
	assert.Contains(t, out.String(), "Product updated.")
}

func TestEdit_TodosLosCampos(t *testing.T) {
	ops, _, _ := newOps("P1", "  Gadget  ", "9", "0", "12")
	records := newRecords(widget())

	res, err := ops.Edit(records)
	require.NoError(t, err)

	p := records[0].Product()
	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, entity.CategoryOthers, p.Category)
	assert.True(t, p.Price.IsZero())
	assert.Equal(t, 12, p.ReorderLevel)
	assert.Equal(t, []string{
		registry.FieldName, registry.FieldCategory, registry.FieldPrice, registry.FieldReorderLevel,
	}, res.Changed)
}

func TestEdit_ValoresInvalidos(t *testing.T) {
	cases := []struct {
		name    string
		lines   []string
		message string
		field   string
	}{
		{"categoria no numerica", []string{"P1", "", "abc", "", ""}, "Invalid category; unchanged.", registry.FieldCategory},
		{"categoria negativa", []string{"P1", "", "-1", "", ""}, "Invalid category; unchanged.", registry.FieldCategory},
		{"precio negativo", []string{"P1", "", "", "-0.01", ""}, "Invalid price; unchanged.", registry.FieldPrice},
		{"precio no numerico", []string{"P1", "", "", "cheap", ""}, "Invalid price; unchanged.", registry.FieldPrice},
		{"reorden negativo", []string{"P1", "", "", "", "-3"}, "Invalid reorder level; unchanged.", registry.FieldReorderLevel},
		{"reorden decimal", []string{"P1", "", "", "", "2.5"}, "Invalid reorder level; unchanged.", registry.FieldReorderLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ops, _, out := newOps(tc.lines...)
			records := newRecords(widget())

			res, err := ops.Edit(records)
			require.NoError(t, err)
			assert.Equal(t, *widget(), *records[0].Product())
			assert.Equal(t, []string{tc.field}, res.Rejected)
			assert.Contains(t, out.String(), tc.message)
			assert.Contains(t, out.String(), "Product updated.")
		})
	}
}

func TestEdit_NoEncontrado(t *testing.T) {
	ops, in, out := newOps("nope")
	records := newRecords(widget())

	res, err := ops.Edit(records)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found.\n", out.String())
	assert.Len(t, in.prompts, 1)
}

func TestEdit_SetterFallidoAsignaDirecto(t *testing.T) {
	w := &failingWriter{}
	ops, _, _ := newOps("P1", "Gizmo", "3", "1.5", "7")
	records := entity.WrapProducts([]*entity.Product{widget()}, entity.WithFieldWriter(w))

	res, err := ops.Edit(records)
	require.NoError(t, err)

	p := records[0].Product()
	assert.Equal(t, "Gizmo", p.Name)
	assert.Equal(t, entity.CategoryGrocery, p.Category)
	assert.Equal(t, "1.5", p.Price.String())
	assert.Equal(t, 7, p.ReorderLevel)
	assert.Equal(t, 4, w.calls)
	assert.Len(t, res.Fallbacks, 4)
}

func TestEdit_UsaElSetterCuandoFunciona(t *testing.T) {
	ops, _, _ := newOps("P1", "Gizmo", "", "", "")
	records := entity.WrapProducts([]*entity.Product{widget()}, entity.WithFieldWriter(upperWriter{&failingWriter{}}))

	res, err := ops.Edit(records)
	require.NoError(t, err)
	assert.Equal(t, "SET:Gizmo", records[0].Name())
	assert.Empty(t, res.Fallbacks)
}

func TestEdit_FinDeEntradaConservaLoAsignado(t *testing.T) {
	ops, _, out := newOps("P1", "Gizmo")
	records := newRecords(widget())

	res, err := ops.Edit(records)
	assert.ErrorIs(t, err, io.EOF)
	require.NotNil(t, res)
	assert.Equal(t, "Gizmo", records[0].Name())
	assert.NotContains(t, out.String(), "Product updated.")
}
