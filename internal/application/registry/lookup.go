package registry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-registro/internal/domain/entity"
)

// NotFound es la posición devuelta por ProductIndex cuando no hay coincidencia.
const NotFound = -1

// NormalizeID recorta espacios y pasa a minúsculas; así se comparan los identificadores.
func NormalizeID(id string) string {
	return fold(id)
}

// ProductIndex devuelve la posición del primer registro cuyo identificador normalizado
// coincide con id, o NotFound. La unicidad no se valida: gana la primera coincidencia.
func ProductIndex(records []*entity.Record, id string) int {
	target := NormalizeID(id)
	for i, r := range records {
		if NormalizeID(r.ID()) == target {
			return i
		}
	}
	return NotFound
}

// Search devuelve, en el orden original, los registros cuyo nombre o nombre de categoría
// contiene term sin distinguir mayúsculas. Un término vacío o en blanco no devuelve nada.
func Search(records []*entity.Record, term string) []*entity.Record {
	results := []*entity.Record{}
	q := fold(term)
	if q == "" {
		return results
	}
	for _, r := range records {
		if strings.Contains(fold(r.Name()), q) || strings.Contains(fold(r.ResolvedCategoryName()), q) {
			results = append(results, r)
		}
	}
	return results
}

// LowStock devuelve los registros cuya cantidad está en o por debajo de su nivel de reorden.
func LowStock(records []*entity.Record) []*entity.Record {
	results := []*entity.Record{}
	for _, r := range records {
		if r.Quantity() <= r.ReorderLevel() {
			results = append(results, r)
		}
	}
	return results
}

// Duplicates devuelve los identificadores normalizados que aparecen más de una vez,
// en el orden de su segunda aparición.
func Duplicates(records []*entity.Record) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, r := range records {
		id := NormalizeID(r.ID())
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// fold normaliza texto para comparaciones. cases.Caser no es seguro para uso
// concurrente, por eso se crea en cada llamada.
func fold(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
