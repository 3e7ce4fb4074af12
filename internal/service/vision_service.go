package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scent-match/internal/domain"
	"scent-match/internal/llm"
	"scent-match/internal/repository"
)

// VisionService analiza retratos con el colaborador de vision y normaliza
// la salida a los rangos del dominio: rasgos [1,10], categorias [0,10].
type VisionService struct {
	logger   *zap.Logger
	client   llm.Client
	parser   LLMResponseParser
	analyses repository.AnalysisRepository
}

// NewVisionService arma el servicio. analyses puede ser nil (sin persistir).
func NewVisionService(logger *zap.Logger, client llm.Client, analyses repository.AnalysisRepository) *VisionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisionService{
		logger:   logger,
		client:   client,
		analyses: analyses,
	}
}

// AnalyzeImage envia la imagen al modelo de vision y devuelve el analisis
// normalizado. Una salida malformada del modelo NO es error: devuelve un
// analisis sin rasgos, que el matcher traduce en lista vacia.
func (s *VisionService) AnalyzeImage(ctx context.Context, userID, imageB64 string) (domain.ImageAnalysis, error) {
	raw, err := s.client.GenerateVision(ctx, visionPrompt(), imageB64)
	if err != nil {
		return domain.ImageAnalysis{}, fmt.Errorf("vision call: %w", err)
	}

	analysis, ok := s.parser.ParseImageAnalysis(raw)
	if !ok {
		s.logger.Warn("analisis de imagen no parseable, se devuelve vacio",
			zap.String("user_id", userID), zap.Int("raw_len", len(raw)))
		return domain.ImageAnalysis{}, nil
	}

	clampedTraits := analysis.Traits.Clamped()
	analysis.Traits = &clampedTraits
	if analysis.ScentCategories != nil {
		clampedCats := analysis.ScentCategories.Clamped()
		analysis.ScentCategories = &clampedCats
	}

	s.store(ctx, userID, analysis)
	return analysis, nil
}

func (s *VisionService) store(ctx context.Context, userID string, analysis domain.ImageAnalysis) {
	if s.analyses == nil || analysis.Traits == nil {
		return
	}
	stored := domain.StoredAnalysis{
		ID:        uuid.NewString(),
		UserID:    userID,
		Traits:    *analysis.Traits,
		Embedding: analysis.Embedding(),
		CreatedAt: time.Now().UTC(),
	}
	if analysis.ScentCategories != nil {
		stored.Categories = *analysis.ScentCategories
	}
	if err := s.analyses.Save(ctx, stored); err != nil {
		s.logger.Error("no se pudo persistir el analisis",
			zap.String("user_id", userID), zap.Error(err))
	}
}

// SimilarAnalyses busca analisis previos cercanos al dado por distancia de
// coseno sobre el embedding de 16 dimensiones.
func (s *VisionService) SimilarAnalyses(ctx context.Context, analysis domain.ImageAnalysis, limit int) ([]domain.StoredAnalysis, error) {
	if s.analyses == nil {
		return nil, nil
	}
	if analysis.Traits == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}
	return s.analyses.FindSimilar(ctx, analysis.Embedding(), limit)
}

// visionPrompt pide el JSON de ejes en el formato exacto que espera el
// parser. Los nombres de clave son contrato, no sugerencia.
func visionPrompt() string {
	var sb strings.Builder
	sb.WriteString("Analiza el retrato y devuelve SOLO un JSON con esta forma exacta:\n")
	sb.WriteString(`{"traits":{`)
	for i, ax := range domain.TraitAxes {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("%q:0", ax))
	}
	sb.WriteString(`},"scentCategories":{`)
	for i, c := range domain.CategoryAxes {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("%q:0", c))
	}
	sb.WriteString("}}\n")
	sb.WriteString("Los rasgos van de 1 a 10 y las categorias de 0 a 10. ")
	sb.WriteString("Incluye las 10 claves de traits y las 6 de scentCategories, sin texto extra.")
	return sb.String()
}
