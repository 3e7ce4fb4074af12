package domain

import "errors"

// Preferencia por categoria en el feedback del usuario.
type CategoryPreference string

const (
	PreferenceIncrease CategoryPreference = "increase"
	PreferenceDecrease CategoryPreference = "decrease"
	PreferenceMaintain CategoryPreference = "maintain"
)

// Nivel de un slider de caracteristica.
type CharacteristicLevel string

const (
	LevelVeryLow  CharacteristicLevel = "veryLow"
	LevelLow      CharacteristicLevel = "low"
	LevelMedium   CharacteristicLevel = "medium"
	LevelHigh     CharacteristicLevel = "high"
	LevelVeryHigh CharacteristicLevel = "veryHigh"
)

// Las 4 caracteristicas ajustables de una receta.
const (
	CharacteristicWeight     = "weight"
	CharacteristicSweetness  = "sweetness"
	CharacteristicFreshness  = "freshness"
	CharacteristicUniqueness = "uniqueness"
)

// Characteristics define el orden canonico de evaluacion.
var Characteristics = []string{
	CharacteristicWeight,
	CharacteristicSweetness,
	CharacteristicFreshness,
	CharacteristicUniqueness,
}

// MaxAddedScents limita los aromas pedidos explicitamente por feedback.
// En el flujo original esto solo lo validaba la UI; aca es invariante del
// modelo y se aplica al construir el registro.
const MaxAddedScents = 2

var ErrTooManyAddedScents = errors.New("feedback: at most 2 added scents allowed")

// RequestedScent es un aroma pedido explicitamente con su proporcion.
type RequestedScent struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Action string  `json:"action"` // "add"
	Ratio  float64 `json:"ratio"`  // porcentaje 0-100
}

// FeedbackRecord es el feedback estructurado de una iteracion de receta.
// Construirlo siempre via NewFeedbackRecord: ahi se aplican los defaults una
// sola vez (retencion 100, preferencias "maintain", sliders "medium") en vez
// de re-derivarlos en cada punto de uso.
type FeedbackRecord struct {
	PersonaID           string                         `json:"persona_id"`
	RetentionPercentage float64                        `json:"retention_percentage"` // [0,100]
	CategoryPreferences map[string]CategoryPreference  `json:"category_preferences"`
	Characteristics     map[string]CharacteristicLevel `json:"characteristics"`
	AddedScents         []RequestedScent               `json:"added_scents,omitempty"`
}

// NewFeedbackRecord normaliza el feedback crudo aplicando defaults.
// retention nil equivale a 100 (conservar todo).
func NewFeedbackRecord(
	personaID string,
	retention *float64,
	prefs map[string]CategoryPreference,
	chars map[string]CharacteristicLevel,
	added []RequestedScent,
) (FeedbackRecord, error) {
	if len(added) > MaxAddedScents {
		return FeedbackRecord{}, ErrTooManyAddedScents
	}

	ret := 100.0
	if retention != nil {
		ret = Clamp(0, *retention, 100)
	}

	normPrefs := make(map[string]CategoryPreference, len(CategoryAxes))
	for _, c := range CategoryAxes {
		p, ok := prefs[c]
		if !ok || (p != PreferenceIncrease && p != PreferenceDecrease) {
			p = PreferenceMaintain
		}
		normPrefs[c] = p
	}

	normChars := make(map[string]CharacteristicLevel, len(Characteristics))
	for _, c := range Characteristics {
		lvl, ok := chars[c]
		switch lvl {
		case LevelVeryLow, LevelLow, LevelHigh, LevelVeryHigh:
		default:
			ok = false
		}
		if !ok {
			lvl = LevelMedium
		}
		normChars[c] = lvl
	}

	scents := make([]RequestedScent, 0, len(added))
	for _, a := range added {
		if a.Action == "" {
			a.Action = "add"
		}
		scents = append(scents, a)
	}

	return FeedbackRecord{
		PersonaID:           personaID,
		RetentionPercentage: ret,
		CategoryPreferences: normPrefs,
		Characteristics:     normChars,
		AddedScents:         scents,
	}, nil
}

// RetentionRatio devuelve la retencion como fraccion [0,1].
func (f FeedbackRecord) RetentionRatio() float64 {
	return f.RetentionPercentage / 100.0
}

// Tipo de una entrada de ajuste.
type AdjustmentType string

const (
	AdjustmentBase     AdjustmentType = "base"
	AdjustmentIncrease AdjustmentType = "increase"
	AdjustmentReduce   AdjustmentType = "reduce"
)

// NoteAdjustment es un ajuste puntual de volumen sobre una nota o categoria.
type NoteAdjustment struct {
	Type   AdjustmentType `json:"type"`
	Note   string         `json:"note"`
	Amount float64        `json:"amount"` // ml
}

// AdjustmentRecommendation es la salida determinista del motor de reglas.
// Se recalcula en cada envio de feedback; la capa llamadora decide si la
// persiste embebida en una sesion.
type AdjustmentRecommendation struct {
	BaseAmount  float64          `json:"base_amount"` // ml sobre referencia de 50ml
	Adjustments []NoteAdjustment `json:"adjustments"`
	Explanation string           `json:"explanation"`
}
