package service

import (
	"context"
	"errors"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"

	"scent-match/internal/domain"
	"scent-match/internal/llm"
)

type memoryAnalysisRepo struct {
	saved []domain.StoredAnalysis
}

func (r *memoryAnalysisRepo) Save(_ context.Context, a domain.StoredAnalysis) error {
	r.saved = append(r.saved, a)
	return nil
}

func (r *memoryAnalysisRepo) GetByID(_ context.Context, id string) (domain.StoredAnalysis, error) {
	for _, a := range r.saved {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.StoredAnalysis{}, errors.New("not found")
}

func (r *memoryAnalysisRepo) FindSimilar(_ context.Context, _ pgvector.Vector, k int) ([]domain.StoredAnalysis, error) {
	if k > len(r.saved) {
		k = len(r.saved)
	}
	return r.saved[:k], nil
}

func TestAnalyzeImage_ClampsAndStores(t *testing.T) {
	// freshness fuera de rango por arriba, darkness por abajo.
	raw := `{"traits": {"sexy": 4, "cute": 7, "charisma": 6, "darkness": -2,
		"freshness": 14, "elegance": 5, "freedom": 8, "luxury": 3, "purity": 7, "uniqueness": 5},
		"scentCategories": {"citrus": 12, "floral": 5, "woody": 2, "musky": 3, "fruity": 7, "spicy": -1}}`
	mock := &llm.MockClient{Response: raw}
	repo := &memoryAnalysisRepo{}
	svc := NewVisionService(nil, mock, repo)

	analysis, err := svc.AnalyzeImage(context.Background(), "u1", "aW1hZ2Vu")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Traits.Freshness != 10 || analysis.Traits.Darkness != 1 {
		t.Fatalf("expected traits clamped to [1,10], got %+v", analysis.Traits)
	}
	if analysis.ScentCategories.Citrus != 10 || analysis.ScentCategories.Spicy != 0 {
		t.Fatalf("expected categories clamped to [0,10], got %+v", analysis.ScentCategories)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected one stored analysis, got %d", len(repo.saved))
	}
	stored := repo.saved[0]
	if stored.UserID != "u1" || stored.ID == "" {
		t.Fatalf("unexpected stored analysis: %+v", stored)
	}
	if got := len(stored.Embedding.Slice()); got != 16 {
		t.Fatalf("expected 16-dim embedding, got %d", got)
	}
	if mock.LastImageB64 != "aW1hZ2Vu" {
		t.Fatalf("expected image forwarded to vision client")
	}
}

func TestAnalyzeImage_MalformedOutputIsNotAnError(t *testing.T) {
	mock := &llm.MockClient{Response: "lo siento, no puedo"}
	repo := &memoryAnalysisRepo{}
	svc := NewVisionService(nil, mock, repo)

	analysis, err := svc.AnalyzeImage(context.Background(), "u1", "aW1hZ2Vu")
	if err != nil {
		t.Fatalf("malformed output must not error: %v", err)
	}
	if analysis.Traits != nil {
		t.Fatalf("expected empty analysis, got %+v", analysis.Traits)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("empty analysis must not be stored")
	}
}

func TestAnalyzeImage_ClientErrorPropagates(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("llm transient error: status=503")}
	svc := NewVisionService(nil, mock, nil)

	if _, err := svc.AnalyzeImage(context.Background(), "u1", "aW1hZ2Vu"); err == nil {
		t.Fatalf("expected propagated client error")
	}
}

func TestSimilarAnalyses(t *testing.T) {
	repo := &memoryAnalysisRepo{}
	svc := NewVisionService(nil, &llm.MockClient{Response: wellFormedAnalysis}, repo)

	if _, err := svc.AnalyzeImage(context.Background(), "u1", "aW1hZ2Vu"); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	traits := domain.TraitVector{Sensuality: 4, Cuteness: 7, Charisma: 6, Darkness: 2,
		Freshness: 9, Elegance: 5, Freedom: 8, Luxury: 3, Purity: 7, Uniqueness: 5}
	similar, err := svc.SimilarAnalyses(context.Background(), domain.ImageAnalysis{Traits: &traits}, 5)
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(similar) != 1 {
		t.Fatalf("expected one similar analysis, got %d", len(similar))
	}

	// Sin rasgos no hay consulta.
	similar, err = svc.SimilarAnalyses(context.Background(), domain.ImageAnalysis{}, 5)
	if err != nil || similar != nil {
		t.Fatalf("expected nil result for traitless query, got %v %v", similar, err)
	}
}
