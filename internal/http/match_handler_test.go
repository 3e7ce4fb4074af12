package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
	"scent-match/internal/matching"
	"scent-match/internal/service"
)

func newTestMatchHandler(t *testing.T) *MatchHandler {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	matcher := matching.NewMatcher(matching.NewEngine(nil), cat, nil)
	return NewMatchHandler(nil, cat, nil, matcher, service.NewMemoryCache())
}

func matchBody(t *testing.T) []byte {
	t.Helper()
	traits := domain.TraitVector{
		Sensuality: 4, Cuteness: 7, Charisma: 6, Darkness: 2, Freshness: 9,
		Elegance: 5, Freedom: 8, Luxury: 3, Purity: 7, Uniqueness: 5,
	}
	body, err := json.Marshal(gin.H{
		"analysis": domain.ImageAnalysis{Traits: &traits},
		"top_n":    2,
		"strategy": "hybrid",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return body
}

func TestMatch_WithProvidedAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestMatchHandler(t)

	r := gin.New()
	r.POST("/match", h.Match)

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader(matchBody(t)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Matches []domain.MatchResult `json:"matches"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(resp.Matches))
	}
	if resp.Matches[0].Score < resp.Matches[1].Score {
		t.Fatalf("expected descending scores")
	}

	// Segunda llamada identica: sale de cache con el mismo cuerpo.
	req2 := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader(matchBody(t)))
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200 on cached call, got %d", rec2.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), rec2.Body.Bytes()) {
		t.Fatalf("expected identical cached response")
	}
}

func TestMatchCacheKey_ScopedPerUser(t *testing.T) {
	h := newTestMatchHandler(t)

	req := matchRequest{ImageBase64: "aW1hZ2Vu", TopN: 3}
	keyA := h.cacheKey("user-a", req, matching.StrategyCosine)
	keyB := h.cacheKey("user-b", req, matching.StrategyCosine)
	if keyA == keyB {
		t.Fatalf("identical payloads from distinct users must not share a cache key")
	}
	if again := h.cacheKey("user-a", req, matching.StrategyCosine); again != keyA {
		t.Fatalf("cache key must be deterministic: %q vs %q", again, keyA)
	}
	if other := h.cacheKey("user-a", req, matching.StrategyHybrid); other == keyA {
		t.Fatalf("strategy must be part of the cache key")
	}
}

func TestMatch_RejectsEmptyRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestMatchHandler(t)

	r := gin.New()
	r.POST("/match", h.Match)

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMatch_RejectsUnknownStrategy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestMatchHandler(t)

	r := gin.New()
	r.POST("/match", h.Match)

	body := []byte(`{"analysis": {"traits": {"sexy": 5}}, "strategy": "magica"}`)
	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListPersonas(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestMatchHandler(t)

	r := gin.New()
	r.GET("/personas", h.ListPersonas)
	r.GET("/personas/:id", h.GetPersona)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas/CT-2201101", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas/XX-0", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
