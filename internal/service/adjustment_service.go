package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"scent-match/internal/domain"
)

// AdjustmentEngine convierte feedback cualitativo en ajustes cuantificados
// de volumen. Es determinista y sin efectos: sin llamadas externas, sin
// estado mutable, seguro para invocar en paralelo.
type AdjustmentEngine struct {
	logger *zap.Logger
}

func NewAdjustmentEngine(logger *zap.Logger) *AdjustmentEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdjustmentEngine{logger: logger}
}

// baseReferenceML es el volumen nominal de referencia de una receta.
const baseReferenceML = 50.0

// oppositeCategory mapea cada categoria con su opuesta. Bajar una categoria
// se modela como subir la opuesta, nunca como entrada negativa. El mapa es
// simetrico: opposite(opposite(c)) == c.
var oppositeCategory = map[string]string{
	domain.CategoryCitrus: domain.CategoryWoody,
	domain.CategoryWoody:  domain.CategoryCitrus,
	domain.CategoryFloral: domain.CategorySpicy,
	domain.CategorySpicy:  domain.CategoryFloral,
	domain.CategoryMusky:  domain.CategoryFruity,
	domain.CategoryFruity: domain.CategoryMusky,
}

// OppositeCategory expone el mapeo para otras capas (grafo de categorias).
func OppositeCategory(category string) (string, bool) {
	op, ok := oppositeCategory[category]
	return op, ok
}

// characteristicLevelAmounts: ml base por nivel de slider, antes de escalar
// por la retencion. "medium" no genera ajuste.
var characteristicLevelAmounts = map[domain.CharacteristicLevel]float64{
	domain.LevelVeryLow:  1.0,
	domain.LevelLow:      2.0,
	domain.LevelHigh:     2.0,
	domain.LevelVeryHigh: 3.0,
}

// characteristicNotes: nota representativa por caracteristica y direccion.
// Son nombres reales del catalogo para que la receta posterior los valide.
var characteristicNotes = map[string]map[domain.CharacteristicLevel]string{
	domain.CharacteristicWeight: {
		domain.LevelVeryLow:  "Brisa de Pomelo",
		domain.LevelLow:      "Verbena de Mediodia",
		domain.LevelHigh:     "Cedro de Invierno",
		domain.LevelVeryHigh: "Bosque de Medianoche",
	},
	domain.CharacteristicSweetness: {
		domain.LevelVeryLow:  "Vetiver de Niebla",
		domain.LevelLow:      "Pimienta Rosa",
		domain.LevelHigh:     "Durazno de Verano",
		domain.LevelVeryHigh: "Cereza Negra",
	},
	domain.CharacteristicFreshness: {
		domain.LevelVeryLow:  "Raiz de Ambar",
		domain.LevelLow:      "Almizcle de Seda",
		domain.LevelHigh:     "Jardin de Bergamota",
		domain.LevelVeryHigh: "Sol de Mandarina",
	},
	domain.CharacteristicUniqueness: {
		domain.LevelVeryLow:  "Eco de Algodon",
		domain.LevelLow:      "Peonia de Seda",
		domain.LevelHigh:     "Cardamomo Nocturno",
		domain.LevelVeryHigh: "Jengibre de Fuego",
	},
}

var categoryAdjustLabels = map[string]string{
	domain.CategoryCitrus: "la familia citrica",
	domain.CategoryFloral: "la familia floral",
	domain.CategoryWoody:  "la familia amaderada",
	domain.CategoryMusky:  "la familia almizclada",
	domain.CategoryFruity: "la familia frutal",
	domain.CategorySpicy:  "la familia especiada",
}

// DeriveAdjustments aplica las reglas en orden fijo: base por retencion,
// categorias a subir, categorias a bajar (via opuesta), sliders de
// caracteristica y aromas pedidos. El orden de recorrido es el canonico de
// los ejes, asi la salida es estable entre llamadas.
func (e *AdjustmentEngine) DeriveAdjustments(feedback domain.FeedbackRecord, persona domain.PersonaRecord) domain.AdjustmentRecommendation {
	r := feedback.RetentionRatio()
	baseAmount := baseReferenceML * r

	adjustments := []domain.NoteAdjustment{{
		Type:   domain.AdjustmentBase,
		Note:   persona.Name,
		Amount: baseAmount,
	}}

	for _, cat := range domain.CategoryAxes {
		switch feedback.CategoryPreferences[cat] {
		case domain.PreferenceIncrease:
			adjustments = append(adjustments, domain.NoteAdjustment{
				Type:   domain.AdjustmentIncrease,
				Note:   cat,
				Amount: 3.0 * r,
			})
		case domain.PreferenceDecrease:
			adjustments = append(adjustments, domain.NoteAdjustment{
				Type:   domain.AdjustmentIncrease,
				Note:   oppositeCategory[cat],
				Amount: 2.0 * r,
			})
		}
	}

	for _, ch := range domain.Characteristics {
		lvl := feedback.Characteristics[ch]
		amount, ok := characteristicLevelAmounts[lvl]
		if !ok {
			continue // medium: sin ajuste
		}
		adjustments = append(adjustments, domain.NoteAdjustment{
			Type:   domain.AdjustmentIncrease,
			Note:   characteristicNotes[ch][lvl],
			Amount: amount * r,
		})
	}

	for _, scent := range feedback.AddedScents {
		if scent.Action != "add" || scent.Ratio <= 0 {
			continue
		}
		note := scent.Name
		if note == "" {
			note = scent.ID
		}
		adjustments = append(adjustments, domain.NoteAdjustment{
			Type:   domain.AdjustmentIncrease,
			Note:   note,
			Amount: (scent.Ratio / 100.0) * 5.0 * r,
		})
	}

	rec := domain.AdjustmentRecommendation{
		BaseAmount:  baseAmount,
		Adjustments: adjustments,
		Explanation: e.buildExplanation(feedback, persona, baseAmount, adjustments),
	}

	e.logger.Debug("ajustes derivados",
		zap.String("persona_id", persona.ID),
		zap.Float64("retention_pct", feedback.RetentionPercentage),
		zap.Int("adjustments", len(adjustments)),
	)
	return rec
}

// buildExplanation arma el parrafo legible: frase de retencion (tres
// variantes: 100%, 0%, intermedio) y una clausula por ajuste no-base.
func (e *AdjustmentEngine) buildExplanation(feedback domain.FeedbackRecord, persona domain.PersonaRecord, baseAmount float64, adjustments []domain.NoteAdjustment) string {
	var sb strings.Builder

	switch feedback.RetentionPercentage {
	case 100:
		sb.WriteString(fmt.Sprintf("Conservamos %s tal como esta, con sus %.1fml de base.", persona.Name, baseAmount))
	case 0:
		sb.WriteString(fmt.Sprintf("Partimos desde cero: la base de %s se descarta por completo.", persona.Name))
	default:
		sb.WriteString(fmt.Sprintf("Conservamos el %.0f%% de %s como base (%.1fml).",
			feedback.RetentionPercentage, persona.Name, baseAmount))
	}

	clauses := make([]string, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.Type == domain.AdjustmentBase {
			continue
		}
		label := adj.Note
		if l, ok := categoryAdjustLabels[adj.Note]; ok {
			label = l
		}
		clauses = append(clauses, fmt.Sprintf("sumamos %.1fml de %s", adj.Amount, label))
	}
	if len(clauses) > 0 {
		sb.WriteString(" Sobre esa base, ")
		sb.WriteString(strings.Join(clauses, ", "))
		sb.WriteString(".")
	}

	return sb.String()
}
