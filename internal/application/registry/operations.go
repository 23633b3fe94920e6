package registry

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-registro/internal/domain"
	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/pkg/logger"
)

// Mensajes de la consola. El texto exacto forma parte del contrato observable.
const (
	promptRemoveID     = "Enter product ID to remove: "
	promptEditID       = "Enter product ID to edit: "
	msgNotFound        = "Product not found."
	msgLeaveBlank      = "\nLeave blank to keep current value."
	msgInvalidCategory = "Invalid category; unchanged."
	msgInvalidPrice    = "Invalid price; unchanged."
	msgInvalidReorder  = "Invalid reorder level; unchanged."
	msgUpdated         = "Product updated."
)

// Campos editables, en el orden en que se preguntan.
const (
	FieldName         = "name"
	FieldCategory     = "category"
	FieldPrice        = "price"
	FieldReorderLevel = "reorder_level"
)

// Operations casos de uso interactivos sobre un registro propiedad del llamador.
// No es seguro para uso concurrente.
type Operations struct {
	in  LineReader
	out io.Writer
	log *logger.Logger
}

// NewOperations construye los casos de uso con la entrada y salida de consola.
func NewOperations(in LineReader, out io.Writer, log *logger.Logger) *Operations {
	if log == nil {
		log = logger.Nop()
	}
	return &Operations{in: in, out: out, log: log}
}

// EditResult resume qué pasó con cada campo durante Edit.
type EditResult struct {
	Record    *entity.Record
	Changed   []string // campos asignados
	Rejected  []string // campos con entrada inválida
	Fallbacks []string // campos cuyo FieldWriter falló y se asignaron directamente
}

// Remove pide un identificador y elimina ese registro de records. Si no existe informa
// "Product not found." y devuelve domain.ErrNotFound sin tocar el registro.
func (o *Operations) Remove(records *[]*entity.Record) (*entity.Record, error) {
	id, err := o.readLine(promptRemoveID)
	if err != nil {
		return nil, err
	}
	idx := ProductIndex(*records, id)
	if idx == NotFound {
		o.println(msgNotFound)
		o.log.Debug().Str("product_id", id).Msg("eliminar: producto no encontrado")
		return nil, fmt.Errorf("eliminar %q: %w", id, domain.ErrNotFound)
	}
	removed := (*records)[idx]
	*records = slices.Delete(*records, idx, idx+1)
	o.println("Removed: " + removed.String())
	o.log.Info().Str("product_id", removed.ID()).Int("index", idx).Msg("producto eliminado")
	return removed, nil
}

// Edit pide un identificador y luego nombre, categoría, precio y nivel de reorden.
// Una respuesta en blanco conserva el valor; una inválida se informa y solo ese campo
// se omite. Los campos ya asignados no se revierten.
func (o *Operations) Edit(records []*entity.Record) (*EditResult, error) {
	id, err := o.readLine(promptEditID)
	if err != nil {
		return nil, err
	}
	idx := ProductIndex(records, id)
	if idx == NotFound {
		o.println(msgNotFound)
		o.log.Debug().Str("product_id", id).Msg("editar: producto no encontrado")
		return nil, fmt.Errorf("editar %q: %w", id, domain.ErrNotFound)
	}
	r := records[idx]
	res := &EditResult{Record: r}
	o.println(msgLeaveBlank)

	// Nombre: cualquier texto no vacío.
	line, err := o.readLine(fmt.Sprintf("Name [%s]: ", r.Name()))
	if err != nil {
		return res, err
	}
	if line != "" {
		o.commit(res, FieldName, r.SetName(line), func() { r.AssignName(line) })
	}

	line, err = o.readLine(fmt.Sprintf("Category index 0-9 [%d]: ", int(r.Category())))
	if err != nil {
		return res, err
	}
	if line != "" {
		if c, perr := entity.ParseCategory(line); perr != nil {
			o.reject(res, FieldCategory, msgInvalidCategory, perr)
		} else {
			o.commit(res, FieldCategory, r.SetCategory(c), func() { r.AssignCategory(c) })
		}
	}

	line, err = o.readLine(fmt.Sprintf("Price [%s]: ", r.Price().String()))
	if err != nil {
		return res, err
	}
	if line != "" {
		if price, perr := parsePrice(line); perr != nil {
			o.reject(res, FieldPrice, msgInvalidPrice, perr)
		} else {
			o.commit(res, FieldPrice, r.SetPrice(price), func() { r.AssignPrice(price) })
		}
	}

	line, err = o.readLine(fmt.Sprintf("Reorder level [%d]: ", r.ReorderLevel()))
	if err != nil {
		return res, err
	}
	if line != "" {
		if level, perr := parseReorderLevel(line); perr != nil {
			o.reject(res, FieldReorderLevel, msgInvalidReorder, perr)
		} else {
			o.commit(res, FieldReorderLevel, r.SetReorderLevel(level), func() { r.AssignReorderLevel(level) })
		}
	}

	o.println(msgUpdated)
	o.log.Info().
		Str("product_id", r.ID()).
		Strs("changed", res.Changed).
		Strs("rejected", res.Rejected).
		Msg("producto actualizado")
	return res, nil
}

// commit registra el resultado del setter; si falló asigna el campo directamente.
func (o *Operations) commit(res *EditResult, field string, setErr error, assign func()) {
	if setErr != nil {
		o.log.Debug().Err(setErr).Str("field", field).Msg("setter falló, asignación directa")
		assign()
		res.Fallbacks = append(res.Fallbacks, field)
	}
	res.Changed = append(res.Changed, field)
}

func (o *Operations) reject(res *EditResult, field, msg string, err error) {
	o.println(msg)
	o.log.Debug().Err(err).Str("field", field).Msg("valor rechazado")
	res.Rejected = append(res.Rejected, field)
}

func (o *Operations) readLine(prompt string) (string, error) {
	line, err := o.in.ReadLine(prompt)
	if err != nil {
		return "", fmt.Errorf("leer entrada: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (o *Operations) println(s string) {
	_, _ = fmt.Fprintln(o.out, s)
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio %q: %w", s, domain.ErrInvalidInput)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("precio %s negativo: %w", price, domain.ErrInvalidInput)
	}
	return price, nil
}

func parseReorderLevel(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("nivel de reorden %q: %w", s, domain.ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("nivel de reorden %d negativo: %w", n, domain.ErrInvalidInput)
	}
	return n, nil
}
