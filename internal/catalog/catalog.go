package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"scent-match/internal/domain"
)

// ExpectedSize es el tamano fijo del catalogo autorado.
const ExpectedSize = 30

var idPattern = regexp.MustCompile(`^[A-Z]{2}-\d+$`)

// Catalog es la vista inmutable del catalogo de personas. Se construye una
// vez al inicio del proceso; las lecturas concurrentes no requieren locks.
type Catalog struct {
	records []domain.PersonaRecord
	byID    map[string]*domain.PersonaRecord
	byName  map[string]*domain.PersonaRecord
}

// New carga y valida la tabla autorada. Falla si hay IDs duplicados,
// formatos invalidos o vectores vacios.
func New() (*Catalog, error) {
	return fromRecords(personaTable)
}

func fromRecords(records []domain.PersonaRecord) (*Catalog, error) {
	if len(records) != ExpectedSize {
		return nil, fmt.Errorf("catalog: expected %d records, got %d", ExpectedSize, len(records))
	}

	c := &Catalog{
		records: records,
		byID:    make(map[string]*domain.PersonaRecord, len(records)),
		byName:  make(map[string]*domain.PersonaRecord, len(records)),
	}
	for i := range c.records {
		r := &c.records[i]
		if !idPattern.MatchString(r.ID) {
			return nil, fmt.Errorf("catalog: invalid persona id %q", r.ID)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate persona id %q", r.ID)
		}
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("catalog: persona %s has empty name", r.ID)
		}
		if r.Traits == (domain.TraitVector{}) {
			return nil, fmt.Errorf("catalog: persona %s has empty trait vector", r.ID)
		}
		if r.Categories == (domain.CategoryVector{}) {
			return nil, fmt.Errorf("catalog: persona %s has empty category vector", r.ID)
		}
		c.byID[r.ID] = r
		c.byName[r.Name] = r
	}
	return c, nil
}

// Size devuelve la cantidad de registros.
func (c *Catalog) Size() int {
	return len(c.records)
}

// All devuelve los registros en orden de autoria. El slice devuelto no debe
// mutarse.
func (c *Catalog) All() []domain.PersonaRecord {
	return c.records
}

// ByID busca una persona por su ID exacto.
func (c *Catalog) ByID(id string) (*domain.PersonaRecord, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// ByName busca una persona por su nombre exacto.
func (c *Catalog) ByName(name string) (*domain.PersonaRecord, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// NameByID devuelve el nombre registrado para un ID.
func (c *Catalog) NameByID(id string) (string, bool) {
	r, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return r.Name, true
}

// ContainsID indica si el ID existe en el catalogo.
func (c *Catalog) ContainsID(id string) bool {
	_, ok := c.byID[id]
	return ok
}
