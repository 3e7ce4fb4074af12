package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

// ImageAnalysis es la salida estructurada del colaborador de vision.
// Traits nil indica salida malformada: rio arriba se traduce en lista de
// matches vacia, no en error.
type ImageAnalysis struct {
	Traits          *TraitVector    `json:"traits"`
	ScentCategories *CategoryVector `json:"scentCategories"`
}

// Embedding concatena rasgos y categorias en un vector de 16 dimensiones
// para busqueda por vecindad en Postgres.
func (a ImageAnalysis) Embedding() pgvector.Vector {
	out := make([]float32, 0, len(TraitAxes)+len(CategoryAxes))
	var traits, cats map[string]float64
	if a.Traits != nil {
		traits = a.Traits.Axes()
	}
	if a.ScentCategories != nil {
		cats = a.ScentCategories.Axes()
	}
	for _, ax := range TraitAxes {
		out = append(out, float32(traits[ax]))
	}
	for _, c := range CategoryAxes {
		out = append(out, float32(cats[c]))
	}
	return pgvector.NewVector(out)
}

// StoredAnalysis es un analisis de imagen persistido junto a su embedding.
type StoredAnalysis struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Traits     TraitVector     `json:"traits"`
	Categories CategoryVector  `json:"scentCategories"`
	Embedding  pgvector.Vector `json:"-"`
	CreatedAt  time.Time       `json:"created_at"`
}
