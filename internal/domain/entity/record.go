package entity

import (
	"fmt"

	"github.com/jhoicas/inventario-registro/internal/domain"
	"github.com/shopspring/decimal"
)

// FieldWriter es la superficie opcional de setters de un registro. Una implementación
// debe asignar el valor en p cuando retorna nil (por ejemplo, tras persistirlo).
type FieldWriter interface {
	WriteName(p *Product, name string) error
	WriteCategory(p *Product, c Category) error
	WritePrice(p *Product, price decimal.Decimal) error
	WriteReorderLevel(p *Product, level int) error
}

// CategoryNamer resuelve un nombre de categoría propio del registro.
type CategoryNamer interface {
	CategoryName(p *Product) (string, error)
}

// CategoryNamerFunc adapta una función a CategoryNamer.
type CategoryNamerFunc func(p *Product) (string, error)

// CategoryName implementa CategoryNamer.
func (f CategoryNamerFunc) CategoryName(p *Product) (string, error) { return f(p) }

// Record envuelve un Product y normaliza el acceso a sus campos. Las capacidades
// opcionales (setters, nombre de categoría) se eligen una sola vez al construirlo.
type Record struct {
	product *Product
	writer  FieldWriter
	namer   CategoryNamer
}

// RecordOption configura capacidades opcionales de un Record.
type RecordOption func(*Record)

// WithFieldWriter hace que los Set* pasen por w.
func WithFieldWriter(w FieldWriter) RecordOption {
	return func(r *Record) { r.writer = w }
}

// WithCategoryNamer expone un accesor de nombre de categoría.
func WithCategoryNamer(n CategoryNamer) RecordOption {
	return func(r *Record) { r.namer = n }
}

// NewRecord construye el registro. p no debe ser nil.
func NewRecord(p *Product, opts ...RecordOption) *Record {
	r := &Record{product: p}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WrapProducts construye un Record por producto, con las mismas opciones para todos.
func WrapProducts(products []*Product, opts ...RecordOption) []*Record {
	out := make([]*Record, 0, len(products))
	for _, p := range products {
		out = append(out, NewRecord(p, opts...))
	}
	return out
}

// UnwrapRecords devuelve los productos en el mismo orden.
func UnwrapRecords(records []*Record) []*Product {
	out := make([]*Product, 0, len(records))
	for _, r := range records {
		out = append(out, r.product)
	}
	return out
}

// Accesores de lectura.
func (r *Record) Product() *Product      { return r.product }
func (r *Record) ID() string             { return r.product.ID }
func (r *Record) Name() string           { return r.product.Name }
func (r *Record) Category() Category     { return r.product.Category }
func (r *Record) Price() decimal.Decimal { return r.product.Price }
func (r *Record) Quantity() int          { return r.product.Quantity }
func (r *Record) ReorderLevel() int      { return r.product.ReorderLevel }
func (r *Record) String() string         { return r.product.String() }
func (r *Record) HasFieldWriter() bool   { return r.writer != nil }

// CategoryName consulta el accesor propio del registro. ok es false si no hay
// accesor o si falló; el llamador decide el respaldo.
func (r *Record) CategoryName() (name string, ok bool) {
	if r.namer == nil {
		return "", false
	}
	name, err := r.namer.CategoryName(r.product)
	if err != nil {
		return "", false
	}
	return name, true
}

// ResolvedCategoryName devuelve el nombre del accesor o, en su defecto, el de la tabla fija.
func (r *Record) ResolvedCategoryName() string {
	if name, ok := r.CategoryName(); ok {
		return name
	}
	return r.product.Category.Name()
}

// SetName escribe el nombre a través del FieldWriter, o directamente si no hay uno.
// Un error (envuelve domain.ErrAccessor) significa que el valor NO fue asignado.
func (r *Record) SetName(name string) error {
	if r.writer == nil {
		r.AssignName(name)
		return nil
	}
	return accessorErr("name", r.writer.WriteName(r.product, name))
}

// SetCategory ver SetName.
func (r *Record) SetCategory(c Category) error {
	if r.writer == nil {
		r.AssignCategory(c)
		return nil
	}
	return accessorErr("category", r.writer.WriteCategory(r.product, c))
}

// SetPrice ver SetName.
func (r *Record) SetPrice(price decimal.Decimal) error {
	if r.writer == nil {
		r.AssignPrice(price)
		return nil
	}
	return accessorErr("price", r.writer.WritePrice(r.product, price))
}

// SetReorderLevel ver SetName.
func (r *Record) SetReorderLevel(level int) error {
	if r.writer == nil {
		r.AssignReorderLevel(level)
		return nil
	}
	return accessorErr("reorder_level", r.writer.WriteReorderLevel(r.product, level))
}

// Asignación directa de campos, sin pasar por el FieldWriter.
func (r *Record) AssignName(name string)            { r.product.Name = name }
func (r *Record) AssignCategory(c Category)         { r.product.Category = c }
func (r *Record) AssignPrice(price decimal.Decimal) { r.product.Price = price }
func (r *Record) AssignReorderLevel(level int)      { r.product.ReorderLevel = level }

func accessorErr(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrAccessor, field, err)
}
