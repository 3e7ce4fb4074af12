package domain

import "time"

// Granule es un ingrediente de una receta candidata generada por el LLM.
// El par (ID, Name) debe existir tal cual en el catalogo de personas.
type Granule struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MainCategory string  `json:"mainCategory"`
	Drops        int     `json:"drops"`
	Ratio        float64 `json:"ratio"`
	Reason       string  `json:"reason"`
}

// CategoryGraphPoint es un punto del grafico antes/despues por categoria.
type CategoryGraphPoint struct {
	Category string  `json:"category"`
	Before   float64 `json:"before"`
	After    float64 `json:"after"`
}

// TestingRecipe es la receta de prueba propuesta por el LLM generador.
type TestingRecipe struct {
	Granules      []Granule            `json:"granules"`
	CategoryGraph []CategoryGraphPoint `json:"categoryGraph,omitempty"`
}

// CandidateRecipe es la salida cruda del colaborador generador de recetas.
// TestingRecipe nil señala el caso "receta final" con retencion del 100%.
type CandidateRecipe struct {
	TestingRecipe *TestingRecipe `json:"testingRecipe"`
}

// ValidationResult es el veredicto de la compuerta de validacion sobre una
// receta candidata. Nunca se lanza como panic: siempre viaja como valor.
type ValidationResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// RecipeFailure es el objeto terminal cuando se agotan los reintentos de
// la compuerta. Se propaga al caller, no se lanza.
type RecipeFailure struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Estados de una sesion de receta.
const (
	RecipeStatusValidated = "validated"
	RecipeStatusFinal     = "final" // retencion 100%: no hay receta de prueba
	RecipeStatusFailed    = "failed"
)

// RecipeSession agrupa feedback, recomendacion derivada y receta validada
// de una iteracion de personalizacion.
type RecipeSession struct {
	ID             string                   `json:"id"`
	UserID         string                   `json:"user_id"`
	PersonaID      string                   `json:"persona_id"`
	Feedback       FeedbackRecord           `json:"feedback"`
	Recommendation AdjustmentRecommendation `json:"recommendation"`
	Recipe         *TestingRecipe           `json:"recipe,omitempty"`
	Attempts       int                      `json:"attempts"`
	Status         string                   `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
}
