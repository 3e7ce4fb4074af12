package domain

// Ejes fijos del vector de rasgos. Las claves JSON son las que expone el
// colaborador de analisis de imagen; no se agregan ni quitan ejes en runtime.
const (
	AxisSensuality = "sexy"
	AxisCuteness   = "cute"
	AxisCharisma   = "charisma"
	AxisDarkness   = "darkness"
	AxisFreshness  = "freshness"
	AxisElegance   = "elegance"
	AxisFreedom    = "freedom"
	AxisLuxury     = "luxury"
	AxisPurity     = "purity"
	AxisUniqueness = "uniqueness"
)

// TraitAxes define el orden canonico de los 10 ejes de rasgos.
var TraitAxes = []string{
	AxisSensuality,
	AxisCuteness,
	AxisCharisma,
	AxisDarkness,
	AxisFreshness,
	AxisElegance,
	AxisFreedom,
	AxisLuxury,
	AxisPurity,
	AxisUniqueness,
}

// Categorias olfativas.
const (
	CategoryCitrus = "citrus"
	CategoryFloral = "floral"
	CategoryWoody  = "woody"
	CategoryMusky  = "musky"
	CategoryFruity = "fruity"
	CategorySpicy  = "spicy"
)

// CategoryAxes define el orden canonico de las 6 categorias.
var CategoryAxes = []string{
	CategoryCitrus,
	CategoryFloral,
	CategoryWoody,
	CategoryMusky,
	CategoryFruity,
	CategorySpicy,
}

// Escala maxima de los ejes (1-10 para catalogo, 0-10 para imagen).
const AxisMaxScale = 10.0

// TraitVector es el perfil de 10 ejes de una persona o imagen analizada.
// Al ser struct de campos fijos, los 10 ejes siempre estan presentes y no
// pueden duplicarse.
type TraitVector struct {
	Sensuality float64 `json:"sexy"`
	Cuteness   float64 `json:"cute"`
	Charisma   float64 `json:"charisma"`
	Darkness   float64 `json:"darkness"`
	Freshness  float64 `json:"freshness"`
	Elegance   float64 `json:"elegance"`
	Freedom    float64 `json:"freedom"`
	Luxury     float64 `json:"luxury"`
	Purity     float64 `json:"purity"`
	Uniqueness float64 `json:"uniqueness"`
}

// Axes expone el vector como mapa eje->valor para la capa de scoring.
func (v TraitVector) Axes() map[string]float64 {
	return map[string]float64{
		AxisSensuality: v.Sensuality,
		AxisCuteness:   v.Cuteness,
		AxisCharisma:   v.Charisma,
		AxisDarkness:   v.Darkness,
		AxisFreshness:  v.Freshness,
		AxisElegance:   v.Elegance,
		AxisFreedom:    v.Freedom,
		AxisLuxury:     v.Luxury,
		AxisPurity:     v.Purity,
		AxisUniqueness: v.Uniqueness,
	}
}

// Clamped devuelve una copia con cada eje acotado a [1,10].
// Los vectores derivados de imagen pueden venir fuera de rango.
func (v TraitVector) Clamped() TraitVector {
	return TraitVector{
		Sensuality: Clamp(1, v.Sensuality, AxisMaxScale),
		Cuteness:   Clamp(1, v.Cuteness, AxisMaxScale),
		Charisma:   Clamp(1, v.Charisma, AxisMaxScale),
		Darkness:   Clamp(1, v.Darkness, AxisMaxScale),
		Freshness:  Clamp(1, v.Freshness, AxisMaxScale),
		Elegance:   Clamp(1, v.Elegance, AxisMaxScale),
		Freedom:    Clamp(1, v.Freedom, AxisMaxScale),
		Luxury:     Clamp(1, v.Luxury, AxisMaxScale),
		Purity:     Clamp(1, v.Purity, AxisMaxScale),
		Uniqueness: Clamp(1, v.Uniqueness, AxisMaxScale),
	}
}

// CategoryVector es el perfil de intensidad por familia olfativa.
type CategoryVector struct {
	Citrus float64 `json:"citrus"`
	Floral float64 `json:"floral"`
	Woody  float64 `json:"woody"`
	Musky  float64 `json:"musky"`
	Fruity float64 `json:"fruity"`
	Spicy  float64 `json:"spicy"`
}

// Axes expone el vector como mapa categoria->valor.
func (v CategoryVector) Axes() map[string]float64 {
	return map[string]float64{
		CategoryCitrus: v.Citrus,
		CategoryFloral: v.Floral,
		CategoryWoody:  v.Woody,
		CategoryMusky:  v.Musky,
		CategoryFruity: v.Fruity,
		CategorySpicy:  v.Spicy,
	}
}

// Clamped acota cada categoria a [0,10] (rango tolerado para imagenes).
func (v CategoryVector) Clamped() CategoryVector {
	return CategoryVector{
		Citrus: Clamp(0, v.Citrus, AxisMaxScale),
		Floral: Clamp(0, v.Floral, AxisMaxScale),
		Woody:  Clamp(0, v.Woody, AxisMaxScale),
		Musky:  Clamp(0, v.Musky, AxisMaxScale),
		Fruity: Clamp(0, v.Fruity, AxisMaxScale),
		Spicy:  Clamp(0, v.Spicy, AxisMaxScale),
	}
}

// Dominant devuelve la categoria con mayor peso, recorriendo en orden
// canonico para que los empates sean deterministas.
func (v CategoryVector) Dominant() (string, float64) {
	axes := v.Axes()
	best := CategoryAxes[0]
	bestVal := axes[best]
	for _, c := range CategoryAxes[1:] {
		if axes[c] > bestVal {
			best = c
			bestVal = axes[c]
		}
	}
	return best, bestVal
}

// PersonaRecord es una entrada del catalogo fijo de 30 perfumes-persona.
// Se carga una vez al inicio del proceso y nunca muta.
type PersonaRecord struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Traits            TraitVector    `json:"traits"`
	Categories        CategoryVector `json:"scentCategories"`
	Keywords          []string       `json:"keywords"`
	ImageAssociations []string       `json:"imageAssociations"`
	PrimaryColor      string         `json:"primaryColor"`
	SecondaryColor    string         `json:"secondaryColor"`
	Palette           []string       `json:"palette"`
}

// MatchResult es el resultado efimero de un scoring contra el catalogo.
type MatchResult struct {
	PersonaID   string         `json:"persona_id"`
	Score       float64        `json:"score"`
	Explanation string         `json:"explanation"`
	Persona     *PersonaRecord `json:"persona"`
}

// Clamp acota v al intervalo [min, max].
func Clamp(min, v, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
