package matching

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"scent-match/internal/domain"
)

// Strategy selecciona la formula de scoring.
type Strategy string

const (
	// StrategyCosine: coseno ponderado rasgos/categorias.
	StrategyCosine Strategy = "cosine"
	// StrategyWeightedPenalty: coseno con pesos por eje y castigo lineal por
	// umbral de diferencia.
	StrategyWeightedPenalty Strategy = "weighted_penalty"
	// StrategyHybrid: mezcla coseno + similitud euclidiana.
	StrategyHybrid Strategy = "hybrid"
)

// Params controla pesos, umbrales y mezclas de las estrategias.
type Params struct {
	// Peso relativo del vector de rasgos vs. el de categorias (estrategia a).
	TraitWeight    float64
	CategoryWeight float64

	// Pesos por eje de rasgo (estrategia b). Ejes ausentes valen 1.0.
	AxisWeights map[string]float64
	// Umbral de diferencia absoluta por eje (estrategia b). Ausente: 3.0.
	AxisThresholds map[string]float64
	// Castigo por eje que supera su umbral. El castigo total es lineal:
	// 1 - PenaltyRate*k, con piso en 0. NO es multiplicativo (0.85^k).
	PenaltyRate float64

	// Fraccion del coseno en la mezcla hibrida (el resto es euclidiano).
	CosineBlend float64
}

const (
	defaultAxisWeight    = 1.0
	defaultAxisThreshold = 3.0
	defaultPenaltyRate   = 0.15
	defaultCosineBlend   = 0.6
)

// DefaultParams deja el scoring solo-rasgos con pesos neutros.
func DefaultParams() Params {
	return Params{
		TraitWeight:    1.0,
		CategoryWeight: 0.0,
		PenaltyRate:    defaultPenaltyRate,
		CosineBlend:    defaultCosineBlend,
	}
}

// CategoryAwareParams pondera 70/30 entre rasgos y categorias.
func CategoryAwareParams() Params {
	p := DefaultParams()
	p.TraitWeight = 0.7
	p.CategoryWeight = 0.3
	return p
}

// Engine calcula el score de matching entre un analisis de imagen y una
// persona del catalogo. Es puro y seguro para uso concurrente.
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Score evalua la estrategia elegida. Los ejes de rasgos son la senal
// principal; las categorias solo pesan cuando CategoryWeight > 0.
func (e *Engine) Score(query domain.ImageAnalysis, candidate domain.PersonaRecord, strategy Strategy, params Params) float64 {
	if query.Traits == nil {
		return 0
	}
	qTraits := query.Traits.Axes()
	cTraits := candidate.Traits.Axes()

	var score float64
	switch strategy {
	case StrategyWeightedPenalty:
		score = e.weightedPenaltyScore(qTraits, cTraits, params)
	case StrategyHybrid:
		score = e.hybridScore(qTraits, cTraits, params)
	default:
		score = e.blendedCosine(query, candidate, params)
	}

	if math.IsNaN(score) {
		score = 0
	}
	return domain.Clamp(0, score, 1)
}

// blendedCosine combina coseno de rasgos y de categorias segun los pesos.
func (e *Engine) blendedCosine(query domain.ImageAnalysis, candidate domain.PersonaRecord, params Params) float64 {
	tw, cw := params.TraitWeight, params.CategoryWeight
	if tw == 0 && cw == 0 {
		tw = 1.0
	}

	traitSim := e.cosine(query.Traits.Axes(), candidate.Traits.Axes())

	var catSim float64
	if cw > 0 && query.ScentCategories != nil {
		catSim = e.cosine(query.ScentCategories.Axes(), candidate.Categories.Axes())
	}
	return traitSim*tw + catSim*cw
}

// weightedPenaltyScore aplica pesos por eje antes del coseno y luego un
// castigo lineal por cada eje cuya diferencia SIN ponderar supera su umbral.
func (e *Engine) weightedPenaltyScore(query, candidate map[string]float64, params Params) float64 {
	axes := sharedAxes(query, candidate)
	if len(axes) == 0 {
		e.logger.Warn("no comparable axes between query and candidate")
		return 0
	}

	weighted := func(src map[string]float64) map[string]float64 {
		out := make(map[string]float64, len(src))
		for _, ax := range axes {
			w := defaultAxisWeight
			if params.AxisWeights != nil {
				if v, ok := params.AxisWeights[ax]; ok {
					w = v
				}
			}
			out[ax] = src[ax] * w
		}
		return out
	}
	sim := e.cosine(weighted(query), weighted(candidate))

	rate := params.PenaltyRate
	if rate <= 0 {
		rate = defaultPenaltyRate
	}
	breached := 0
	for _, ax := range axes {
		threshold := defaultAxisThreshold
		if params.AxisThresholds != nil {
			if v, ok := params.AxisThresholds[ax]; ok {
				threshold = v
			}
		}
		if math.Abs(query[ax]-candidate[ax]) > threshold {
			breached++
		}
	}
	// Castigo lineal con piso en cero; dos ejes no castigan 0.85*0.85.
	factor := 1.0 - rate*float64(breached)
	if factor < 0 {
		factor = 0
	}
	return sim * factor
}

// hybridScore mezcla coseno con una similitud derivada de la distancia
// euclidiana normalizada al maximo posible en la escala 1-10.
func (e *Engine) hybridScore(query, candidate map[string]float64, params Params) float64 {
	axes := sharedAxes(query, candidate)
	if len(axes) == 0 {
		e.logger.Warn("no comparable axes between query and candidate")
		return 0
	}

	cos := e.cosine(query, candidate)

	var sumSq float64
	for _, ax := range axes {
		d := query[ax] - candidate[ax]
		sumSq += d * d
	}
	dist := math.Sqrt(sumSq)
	maxDist := math.Sqrt(float64(len(axes)) * (domain.AxisMaxScale - 1) * (domain.AxisMaxScale - 1))
	euclidSim := 0.0
	if maxDist > 0 {
		euclidSim = 1 - dist/maxDist
	}

	blend := params.CosineBlend
	if blend <= 0 || blend > 1 {
		blend = defaultCosineBlend
	}
	return cos*blend + euclidSim*(1-blend)
}

// cosine calcula similitud coseno sobre los ejes compartidos. Vector de
// magnitud cero o sin ejes comparables: similitud 0, nunca division por cero.
func (e *Engine) cosine(a, b map[string]float64) float64 {
	axes := sharedAxes(a, b)
	if len(axes) == 0 {
		e.logger.Warn("no comparable axes between query and candidate")
		return 0
	}

	var dot, normA, normB float64
	for _, ax := range axes {
		dot += a[ax] * b[ax]
		normA += a[ax] * a[ax]
		normB += b[ax] * b[ax]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) {
		return 0
	}
	return sim
}

// sharedAxes devuelve la interseccion de ejes en orden estable.
func sharedAxes(a, b map[string]float64) []string {
	out := make([]string, 0, len(a))
	for ax := range a {
		if _, ok := b[ax]; ok {
			out = append(out, ax)
		}
	}
	sort.Strings(out)
	return out
}
