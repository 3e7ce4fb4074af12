package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"scent-match/internal/domain"
)

// RecipeSessionRepository persiste sesiones de personalizacion de receta.
// Feedback, recomendacion y receta van como JSONB: se leen siempre enteras
// y nunca se consultan por campo interno.
type RecipeSessionRepository interface {
	Save(ctx context.Context, session domain.RecipeSession) error
	GetByID(ctx context.Context, id string) (domain.RecipeSession, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.RecipeSession, error)
}

type PgRecipeSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgRecipeSessionRepository(pool *pgxpool.Pool) *PgRecipeSessionRepository {
	return &PgRecipeSessionRepository{pool: pool}
}

func (r *PgRecipeSessionRepository) Save(ctx context.Context, s domain.RecipeSession) error {
	feedback, err := json.Marshal(s.Feedback)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}
	recommendation, err := json.Marshal(s.Recommendation)
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}
	var recipe []byte
	if s.Recipe != nil {
		recipe, err = json.Marshal(s.Recipe)
		if err != nil {
			return fmt.Errorf("marshal recipe: %w", err)
		}
	}

	const query = `
		INSERT INTO recipe_sessions (id, user_id, persona_id, feedback, recommendation, recipe, attempts, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			feedback = EXCLUDED.feedback,
			recommendation = EXCLUDED.recommendation,
			recipe = EXCLUDED.recipe,
			attempts = EXCLUDED.attempts,
			status = EXCLUDED.status
	`
	_, err = r.pool.Exec(ctx, query,
		s.ID,
		s.UserID,
		s.PersonaID,
		feedback,
		recommendation,
		recipe,
		s.Attempts,
		s.Status,
		s.CreatedAt,
	)
	return err
}

func (r *PgRecipeSessionRepository) GetByID(ctx context.Context, id string) (domain.RecipeSession, error) {
	const query = `
		SELECT id, user_id, persona_id, feedback, recommendation, recipe, attempts, status, created_at
		FROM recipe_sessions
		WHERE id = $1
	`
	return scanSession(r.pool.QueryRow(ctx, query, id))
}

func (r *PgRecipeSessionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.RecipeSession, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, user_id, persona_id, feedback, recommendation, recipe, attempts, status, created_at
		FROM recipe_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RecipeSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSession(row rowScanner) (domain.RecipeSession, error) {
	var s domain.RecipeSession
	var feedback, recommendation, recipe []byte
	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.PersonaID,
		&feedback,
		&recommendation,
		&recipe,
		&s.Attempts,
		&s.Status,
		&s.CreatedAt,
	); err != nil {
		return domain.RecipeSession{}, err
	}

	if err := json.Unmarshal(feedback, &s.Feedback); err != nil {
		return domain.RecipeSession{}, fmt.Errorf("unmarshal feedback: %w", err)
	}
	if err := json.Unmarshal(recommendation, &s.Recommendation); err != nil {
		return domain.RecipeSession{}, fmt.Errorf("unmarshal recommendation: %w", err)
	}
	if len(recipe) > 0 {
		s.Recipe = &domain.TestingRecipe{}
		if err := json.Unmarshal(recipe, s.Recipe); err != nil {
			return domain.RecipeSession{}, fmt.Errorf("unmarshal recipe: %w", err)
		}
	}
	return s, nil
}
