package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"scent-match/internal/domain"
)

// AnalysisRepository persiste analisis de imagen con su embedding y permite
// buscar analisis previos cercanos.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis domain.StoredAnalysis) error
	GetByID(ctx context.Context, id string) (domain.StoredAnalysis, error)
	FindSimilar(ctx context.Context, embedding pgvector.Vector, k int) ([]domain.StoredAnalysis, error)
}

// PgAnalysisRepository implementa AnalysisRepository sobre Postgres con la
// extension pgvector (columna embedding vector(16)).
type PgAnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnalysisRepository(pool *pgxpool.Pool) *PgAnalysisRepository {
	return &PgAnalysisRepository{pool: pool}
}

const analysisColumns = `
	id, user_id,
	sexy, cute, charisma, darkness, freshness, elegance, freedom, luxury, purity, uniqueness,
	citrus, floral, woody, musky, fruity, spicy,
	embedding, created_at
`

func (r *PgAnalysisRepository) Save(ctx context.Context, a domain.StoredAnalysis) error {
	const query = `
		INSERT INTO image_analyses (` + analysisColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.UserID,
		a.Traits.Sensuality,
		a.Traits.Cuteness,
		a.Traits.Charisma,
		a.Traits.Darkness,
		a.Traits.Freshness,
		a.Traits.Elegance,
		a.Traits.Freedom,
		a.Traits.Luxury,
		a.Traits.Purity,
		a.Traits.Uniqueness,
		a.Categories.Citrus,
		a.Categories.Floral,
		a.Categories.Woody,
		a.Categories.Musky,
		a.Categories.Fruity,
		a.Categories.Spicy,
		a.Embedding,
		a.CreatedAt,
	)
	return err
}

func (r *PgAnalysisRepository) GetByID(ctx context.Context, id string) (domain.StoredAnalysis, error) {
	const query = `
		SELECT ` + analysisColumns + `
		FROM image_analyses
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanAnalysis(row)
}

// FindSimilar ordena por distancia de coseno sobre el embedding.
func (r *PgAnalysisRepository) FindSimilar(ctx context.Context, embedding pgvector.Vector, k int) ([]domain.StoredAnalysis, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT ` + analysisColumns + `
		FROM image_analyses
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, embedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StoredAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// rowScanner cubre pgx.Row y pgx.Rows para reusar el scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (domain.StoredAnalysis, error) {
	var a domain.StoredAnalysis
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Traits.Sensuality,
		&a.Traits.Cuteness,
		&a.Traits.Charisma,
		&a.Traits.Darkness,
		&a.Traits.Freshness,
		&a.Traits.Elegance,
		&a.Traits.Freedom,
		&a.Traits.Luxury,
		&a.Traits.Purity,
		&a.Traits.Uniqueness,
		&a.Categories.Citrus,
		&a.Categories.Floral,
		&a.Categories.Woody,
		&a.Categories.Musky,
		&a.Categories.Fruity,
		&a.Categories.Spicy,
		&a.Embedding,
		&a.CreatedAt,
	)
	return a, err
}
