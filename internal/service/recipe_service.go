package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
	"scent-match/internal/llm"
	"scent-match/internal/repository"
)

// maxRecipeAttempts acota el bucle de generacion: un intento y un reintento.
const maxRecipeAttempts = 2

// RecipeService orquesta la personalizacion de recetas: deriva los ajustes
// deterministas, pide la receta candidata al modelo y la valida contra el
// catalogo antes de aceptarla.
type RecipeService struct {
	logger   *zap.Logger
	client   llm.Client
	catalog  *catalog.Catalog
	adjuster *AdjustmentEngine
	parser   LLMResponseParser
	sessions repository.RecipeSessionRepository
}

// NewRecipeService arma el servicio. sessions puede ser nil (sin persistencia,
// util en tests y en la herramienta offline).
func NewRecipeService(
	logger *zap.Logger,
	client llm.Client,
	cat *catalog.Catalog,
	adjuster *AdjustmentEngine,
	sessions repository.RecipeSessionRepository,
) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if adjuster == nil {
		adjuster = NewAdjustmentEngine(logger)
	}
	return &RecipeService{
		logger:   logger,
		client:   client,
		catalog:  cat,
		adjuster: adjuster,
		sessions: sessions,
	}
}

// CustomizeRecipe ejecuta el flujo completo de feedback a receta validada.
// La falla terminal se devuelve como valor, nunca como panic: el handler la
// traduce tal cual al response HTTP.
func (s *RecipeService) CustomizeRecipe(ctx context.Context, userID string, feedback domain.FeedbackRecord) (domain.RecipeSession, *domain.RecipeFailure) {
	personaPtr, ok := s.catalog.ByID(feedback.PersonaID)
	if !ok {
		return domain.RecipeSession{}, &domain.RecipeFailure{
			Error:  fmt.Sprintf("persona %q not found in catalog", feedback.PersonaID),
			Status: 404,
		}
	}
	persona := *personaPtr

	recommendation := s.adjuster.DeriveAdjustments(feedback, persona)

	session := domain.RecipeSession{
		ID:             uuid.NewString(),
		UserID:         userID,
		PersonaID:      persona.ID,
		Feedback:       feedback,
		Recommendation: recommendation,
		CreatedAt:      time.Now().UTC(),
	}

	// Retencion total: receta final sin granulos nuevos, sin llamar al modelo.
	if feedback.RetentionPercentage == 100 && !hasNonBaseAdjustments(recommendation) {
		session.Status = domain.RecipeStatusFinal
		session.Attempts = 0
		s.persist(ctx, &session)
		return session, nil
	}

	prompt := s.buildRecipePrompt(persona, feedback, recommendation)
	var lastErr string

	for attempt := 1; attempt <= maxRecipeAttempts; attempt++ {
		session.Attempts = attempt

		raw, err := s.client.Generate(ctx, prompt)
		if err != nil {
			lastErr = err.Error()
			s.logger.Warn("fallo la generacion de receta",
				zap.Int("attempt", attempt), zap.Error(err))
			continue // mismo prompt: la falla no es atribuible al contenido
		}

		candidate, err := s.parser.ParseCandidateRecipe(raw)
		if err != nil {
			lastErr = err.Error()
			s.logger.Warn("respuesta de receta no parseable",
				zap.Int("attempt", attempt), zap.Error(err))
			continue // parse roto: reintentar con el mismo prompt
		}

		result := s.Validate(candidate, feedback.RetentionPercentage)
		if result.OK {
			session.Recipe = candidate.TestingRecipe
			if session.Recipe != nil && len(session.Recipe.CategoryGraph) == 0 {
				session.Recipe.CategoryGraph = buildCategoryGraph(persona, recommendation)
			}
			session.Status = domain.RecipeStatusValidated
			s.persist(ctx, &session)
			return session, nil
		}

		lastErr = result.Reason
		s.logger.Warn("receta candidata invalida",
			zap.Int("attempt", attempt), zap.String("reason", result.Reason))
		// La violacion si es atribuible: el reintento lleva un prompt
		// corregido que la nombra y repite la restriccion de catalogo.
		prompt = s.buildRecipePrompt(persona, feedback, recommendation) + "\n\n" + amendedConstraint(result.Reason)
	}

	session.Status = domain.RecipeStatusFailed
	s.persist(ctx, &session)
	return session, &domain.RecipeFailure{Error: lastErr, Status: 500}
}

// Validate aplica los chequeos del gate en orden, cortando en el primero
// que falla.
func (s *RecipeService) Validate(candidate domain.CandidateRecipe, retentionPct float64) domain.ValidationResult {
	recipe := candidate.TestingRecipe

	if retentionPct != 100 && (recipe == nil || len(recipe.Granules) == 0) {
		return domain.ValidationResult{OK: false, Reason: "no granules produced"}
	}
	if recipe == nil {
		return domain.ValidationResult{OK: true}
	}

	for _, g := range recipe.Granules {
		if strings.TrimSpace(g.ID) == "" || strings.TrimSpace(g.Name) == "" {
			return domain.ValidationResult{OK: false, Reason: "missing id or name"}
		}
		expected, ok := s.catalog.NameByID(g.ID)
		if !ok {
			return domain.ValidationResult{OK: false, Reason: fmt.Sprintf("unknown id: %s does not exist", g.ID)}
		}
		if g.Name != expected {
			return domain.ValidationResult{OK: false, Reason: fmt.Sprintf(
				"name/id mismatch for %s: expected %q, received %q", g.ID, expected, g.Name)}
		}
	}
	return domain.ValidationResult{OK: true}
}

func hasNonBaseAdjustments(rec domain.AdjustmentRecommendation) bool {
	for _, adj := range rec.Adjustments {
		if adj.Type != domain.AdjustmentBase {
			return true
		}
	}
	return false
}

// buildRecipePrompt arma el prompt de generacion con la persona, la
// retencion y los ajustes ya calculados, mas la lista exacta de IDs/nombres
// validos del catalogo.
func (s *RecipeService) buildRecipePrompt(persona domain.PersonaRecord, feedback domain.FeedbackRecord, rec domain.AdjustmentRecommendation) string {
	var sb strings.Builder
	sb.WriteString("Eres un perfumista. Genera una receta de prueba en JSON con la forma ")
	sb.WriteString(`{"testingRecipe":{"granules":[{"id","name","mainCategory","drops","ratio","reason"}]}}.`)
	sb.WriteString(fmt.Sprintf("\nPerfume base: %s (%s). Retencion pedida: %.0f%%.",
		persona.Name, persona.ID, feedback.RetentionPercentage))
	sb.WriteString(fmt.Sprintf("\nAjustes calculados: %s", rec.Explanation))

	sb.WriteString("\nGranulos disponibles (usa id y name EXACTOS, sin inventar):")
	for _, p := range s.catalog.All() {
		sb.WriteString(fmt.Sprintf("\n- %s | %s", p.ID, p.Name))
	}
	sb.WriteString("\nSi la retencion es 100% y no hay ajustes, responde {\"testingRecipe\": null}.")
	sb.WriteString("\nResponde unicamente el JSON, sin texto adicional.")
	return sb.String()
}

func amendedConstraint(violation string) string {
	return fmt.Sprintf(
		"ATENCION: tu respuesta anterior fue rechazada por: %s. "+
			"Los campos id y name de cada granulo deben coincidir EXACTAMENTE con el catalogo listado arriba.",
		violation,
	)
}

// buildCategoryGraph proyecta el perfil de categorias de la persona antes y
// despues de aplicar los ajustes por categoria.
func buildCategoryGraph(persona domain.PersonaRecord, rec domain.AdjustmentRecommendation) []domain.CategoryGraphPoint {
	before := persona.Categories.Axes()
	after := make(map[string]float64, len(before))
	for k, v := range before {
		after[k] = v
	}
	for _, adj := range rec.Adjustments {
		if adj.Type != domain.AdjustmentIncrease {
			continue
		}
		if _, ok := after[adj.Note]; ok {
			after[adj.Note] = domain.Clamp(0, after[adj.Note]+adj.Amount, domain.AxisMaxScale)
		}
	}

	points := make([]domain.CategoryGraphPoint, 0, len(domain.CategoryAxes))
	for _, cat := range domain.CategoryAxes {
		points = append(points, domain.CategoryGraphPoint{
			Category: cat,
			Before:   before[cat],
			After:    after[cat],
		})
	}
	return points
}

func (s *RecipeService) persist(ctx context.Context, session *domain.RecipeSession) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Save(ctx, *session); err != nil {
		s.logger.Error("no se pudo persistir la sesion de receta",
			zap.String("session_id", session.ID), zap.Error(err))
	}
}
