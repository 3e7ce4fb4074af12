package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
	"scent-match/internal/matching"
)

// Herramienta offline: corre el ranking sobre un analisis dado (archivo
// JSON o un perfil de ejemplo) con las tres estrategias y compara.
func main() {
	analysisPath := flag.String("analysis", "", "ruta a un JSON {traits, scentCategories}")
	topN := flag.Int("top", 3, "cantidad de matches a mostrar")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	analysis := sampleAnalysis()
	if *analysisPath != "" {
		data, err := os.ReadFile(*analysisPath)
		if err != nil {
			log.Fatalf("read analysis: %v", err)
		}
		if err := json.Unmarshal(data, &analysis); err != nil {
			log.Fatalf("parse analysis: %v", err)
		}
	}

	engine := matching.NewEngine(logger)
	matcher := matching.NewMatcher(engine, cat, logger)

	strategies := []matching.Strategy{
		matching.StrategyCosine,
		matching.StrategyWeightedPenalty,
		matching.StrategyHybrid,
	}
	for _, strategy := range strategies {
		fmt.Printf("\n== estrategia %s ==\n", strategy)
		matches := matcher.FindMatches(analysis, *topN, strategy, matching.CategoryAwareParams())
		for i, m := range matches {
			name, _ := cat.NameByID(m.PersonaID)
			fmt.Printf("%d. %-22s %-13s %.4f\n", i+1, name, m.PersonaID, m.Score)
		}
	}
}

func sampleAnalysis() domain.ImageAnalysis {
	traits := domain.TraitVector{
		Sensuality: 4, Cuteness: 7, Charisma: 6, Darkness: 2, Freshness: 9,
		Elegance: 5, Freedom: 8, Luxury: 3, Purity: 7, Uniqueness: 5,
	}
	cats := domain.CategoryVector{
		Citrus: 8, Floral: 5, Woody: 2, Musky: 3, Fruity: 7, Spicy: 1,
	}
	return domain.ImageAnalysis{Traits: &traits, ScentCategories: &cats}
}
