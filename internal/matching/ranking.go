package matching

import (
	"sort"

	"go.uber.org/zap"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
)

// Matcher rankea el catalogo completo contra un analisis de imagen.
type Matcher struct {
	engine  *Engine
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewMatcher(engine *Engine, cat *catalog.Catalog, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{engine: engine, catalog: cat, logger: logger}
}

// FindMatches puntua las 30 personas y devuelve las topN con mayor score,
// en orden descendente. Query sin rasgos: lista vacia (input invalido, no
// error). topN mayor al catalogo: se devuelven todas.
func (m *Matcher) FindMatches(query domain.ImageAnalysis, topN int, strategy Strategy, params Params) []domain.MatchResult {
	if query.Traits == nil {
		m.logger.Warn("match query without traits, returning empty result")
		return []domain.MatchResult{}
	}
	if topN <= 0 {
		topN = 1
	}

	records := m.catalog.All()
	results := make([]domain.MatchResult, 0, len(records))
	for i := range records {
		persona := &records[i]
		score := m.engine.Score(query, *persona, strategy, params)
		results = append(results, domain.MatchResult{
			PersonaID: persona.ID,
			Score:     score,
			Persona:   persona,
		})
	}

	// Orden estable: los empates conservan el orden de autoria del catalogo.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN < len(results) {
		results = results[:topN]
	}
	for i := range results {
		results[i].Explanation = buildExplanation(query, *results[i].Persona, results[i].Score)
	}
	return results
}
