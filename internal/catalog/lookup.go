package catalog

import (
	"strings"

	"scent-match/internal/domain"
)

// prefixCategories mapea el prefijo de ID a su familia olfativa. Solo se usa
// como ultimo recurso para valores fuera de catalogo.
var prefixCategories = map[string]string{
	"CT": domain.CategoryCitrus,
	"FL": domain.CategoryFloral,
	"WD": domain.CategoryWoody,
	"MS": domain.CategoryMusky,
	"FR": domain.CategoryFruity,
	"SP": domain.CategorySpicy,
}

// CategoryForNote resuelve la familia olfativa de una nota. La fuente de
// verdad es el catalogo (por ID y luego por nombre); la heuristica de prefijo
// es best-effort para notas que no estan en el catalogo y puede equivocarse.
func (c *Catalog) CategoryForNote(idOrName string) (string, bool) {
	key := strings.TrimSpace(idOrName)
	if key == "" {
		return "", false
	}

	if r, ok := c.byID[key]; ok {
		cat, _ := r.Categories.Dominant()
		return cat, true
	}
	if r, ok := c.byName[key]; ok {
		cat, _ := r.Categories.Dominant()
		return cat, true
	}

	// Fallback heuristico por prefijo de ID (best-effort).
	if len(key) >= 3 && key[2] == '-' {
		if cat, ok := prefixCategories[strings.ToUpper(key[:2])]; ok {
			return cat, true
		}
	}
	return "", false
}
