package matching

import (
	"math"
	"testing"

	"scent-match/internal/domain"
)

func analysisFrom(traits domain.TraitVector) domain.ImageAnalysis {
	return domain.ImageAnalysis{Traits: &traits}
}

func uniformTraits(v float64) domain.TraitVector {
	return domain.TraitVector{
		Sensuality: v, Cuteness: v, Charisma: v, Darkness: v, Freshness: v,
		Elegance: v, Freedom: v, Luxury: v, Purity: v, Uniqueness: v,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_IdenticalVectorsGiveOne(t *testing.T) {
	engine := NewEngine(nil)
	traits := domain.TraitVector{
		Sensuality: 3, Cuteness: 7, Charisma: 5, Darkness: 2, Freshness: 8,
		Elegance: 6, Freedom: 4, Luxury: 1, Purity: 9, Uniqueness: 5,
	}
	candidate := domain.PersonaRecord{ID: "CT-1", Name: "x", Traits: traits}

	got := engine.Score(analysisFrom(traits), candidate, StrategyCosine, DefaultParams())
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected similarity 1.0 for identical vectors, got %v", got)
	}

	got = engine.Score(analysisFrom(traits), candidate, StrategyHybrid, DefaultParams())
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected hybrid similarity 1.0 for identical vectors, got %v", got)
	}
}

func TestScore_ZeroMagnitudeQueryGivesZero(t *testing.T) {
	engine := NewEngine(nil)
	candidate := domain.PersonaRecord{Traits: uniformTraits(5)}

	got := engine.Score(analysisFrom(uniformTraits(0)), candidate, StrategyCosine, DefaultParams())
	if got != 0 {
		t.Fatalf("expected 0 for zero-magnitude query, got %v", got)
	}
}

func TestScore_MissingTraitsGivesZero(t *testing.T) {
	engine := NewEngine(nil)
	candidate := domain.PersonaRecord{Traits: uniformTraits(5)}

	if got := engine.Score(domain.ImageAnalysis{}, candidate, StrategyCosine, DefaultParams()); got != 0 {
		t.Fatalf("expected 0 for query without traits, got %v", got)
	}
}

func TestScore_PenaltyIsLinearNotCompounding(t *testing.T) {
	engine := NewEngine(nil)

	// Dos ejes con diferencia mayor al umbral de 3.0, el resto identicos.
	query := uniformTraits(5)
	query.Sensuality = 9
	query.Cuteness = 1
	candidate := domain.PersonaRecord{Traits: uniformTraits(5)}

	// Sin umbral alcanzable: score base sin castigo.
	noPenalty := Params{
		PenaltyRate:    0.15,
		AxisThresholds: map[string]float64{},
	}
	for _, ax := range domain.TraitAxes {
		noPenalty.AxisThresholds[ax] = 100
	}
	base := engine.Score(analysisFrom(query), candidate, StrategyWeightedPenalty, noPenalty)
	if base <= 0 {
		t.Fatalf("expected positive base score, got %v", base)
	}

	penalized := engine.Score(analysisFrom(query), candidate, StrategyWeightedPenalty, DefaultParams())
	want := base * (1 - 0.15*2)
	if !almostEqual(penalized, want) {
		t.Fatalf("expected linear penalty %v (base %v x 0.70), got %v", want, base, penalized)
	}
	if almostEqual(penalized, base*0.85*0.85) && !almostEqual(base*0.85*0.85, want) {
		t.Fatalf("penalty compounded multiplicatively instead of linearly")
	}
}

func TestScore_PenaltyFlooredAtZero(t *testing.T) {
	engine := NewEngine(nil)

	// Los 10 ejes superan el umbral: factor 1 - 0.15*10 < 0 se acota a 0.
	query := uniformTraits(10)
	candidate := domain.PersonaRecord{Traits: uniformTraits(1)}

	got := engine.Score(analysisFrom(query), candidate, StrategyWeightedPenalty, DefaultParams())
	if got != 0 {
		t.Fatalf("expected floored score 0, got %v", got)
	}
}

func TestScore_AxisWeightChangesRanking(t *testing.T) {
	engine := NewEngine(nil)

	query := uniformTraits(5)
	query.Cuteness = 9
	a := domain.PersonaRecord{Traits: uniformTraits(5)}
	a.Traits.Cuteness = 9
	b := domain.PersonaRecord{Traits: uniformTraits(5)}
	b.Traits.Cuteness = 2

	boosted := DefaultParams()
	boosted.AxisWeights = map[string]float64{domain.AxisCuteness: 2.0}

	simA := engine.Score(analysisFrom(query), a, StrategyWeightedPenalty, boosted)
	simB := engine.Score(analysisFrom(query), b, StrategyWeightedPenalty, boosted)
	if simA <= simB {
		t.Fatalf("expected boosted cuteness match to rank higher: %v vs %v", simA, simB)
	}
}

func TestScore_HybridBlendsCosineAndEuclidean(t *testing.T) {
	engine := NewEngine(nil)

	// Vectores proporcionales: coseno 1 pero distancia euclidiana alta, asi
	// la mezcla debe quedar estrictamente entre ambas componentes.
	query := uniformTraits(2)
	candidate := domain.PersonaRecord{Traits: uniformTraits(9)}

	got := engine.Score(analysisFrom(query), candidate, StrategyHybrid, DefaultParams())
	if got >= 1 || got <= 0 {
		t.Fatalf("expected hybrid score strictly between 0 and 1, got %v", got)
	}

	dist := math.Sqrt(10 * 49.0)
	maxDist := math.Sqrt(10 * 81.0)
	want := 0.6*1.0 + 0.4*(1-dist/maxDist)
	if !almostEqual(got, want) {
		t.Fatalf("expected hybrid %v, got %v", want, got)
	}
}

func TestScore_CategoryBlend(t *testing.T) {
	engine := NewEngine(nil)

	traits := uniformTraits(5)
	queryCats := domain.CategoryVector{Citrus: 9, Floral: 1}
	query := domain.ImageAnalysis{Traits: &traits, ScentCategories: &queryCats}

	citrusy := domain.PersonaRecord{
		Traits:     traits,
		Categories: domain.CategoryVector{Citrus: 9, Floral: 1},
	}
	florally := domain.PersonaRecord{
		Traits:     traits,
		Categories: domain.CategoryVector{Citrus: 1, Floral: 9},
	}

	params := CategoryAwareParams()
	simCitrus := engine.Score(query, citrusy, StrategyCosine, params)
	simFloral := engine.Score(query, florally, StrategyCosine, params)
	if simCitrus <= simFloral {
		t.Fatalf("expected citrus persona to outscore floral: %v vs %v", simCitrus, simFloral)
	}
}
