package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
	"scent-match/internal/matching"
	"scent-match/internal/service"
)

// matchCacheTTL acota cuanto vive un resultado de match cacheado.
const matchCacheTTL = 5 * time.Minute

// MatchHandler expone el catalogo y el flujo imagen -> analisis -> ranking.
type MatchHandler struct {
	logger  *zap.Logger
	catalog *catalog.Catalog
	vision  *service.VisionService
	matcher *matching.Matcher
	cache   service.Cache
}

func NewMatchHandler(
	logger *zap.Logger,
	cat *catalog.Catalog,
	vision *service.VisionService,
	matcher *matching.Matcher,
	cache service.Cache,
) *MatchHandler {
	return &MatchHandler{
		logger:  logger,
		catalog: cat,
		vision:  vision,
		matcher: matcher,
		cache:   cache,
	}
}

// ListPersonas maneja GET /personas.
func (h *MatchHandler) ListPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personas": h.catalog.All()})
}

// GetPersona maneja GET /personas/:id.
func (h *MatchHandler) GetPersona(c *gin.Context) {
	persona, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

type matchRequest struct {
	ImageBase64 string                `json:"image_base64"`
	Analysis    *domain.ImageAnalysis `json:"analysis"`
	TopN        int                   `json:"top_n"`
	Strategy    string                `json:"strategy"`
}

// Match maneja POST /match. Acepta una imagen en base64 (pasa por el
// analizador de vision) o un analisis ya estructurado. El resultado se
// cachea unos minutos: la misma imagen con los mismos parametros no vuelve
// a pagar la llamada al modelo.
func (h *MatchHandler) Match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ImageBase64 == "" && req.Analysis == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 or analysis required"})
		return
	}
	if req.TopN <= 0 {
		req.TopN = 3
	}

	strategy := matching.Strategy(req.Strategy)
	switch strategy {
	case matching.StrategyCosine, matching.StrategyWeightedPenalty, matching.StrategyHybrid:
	case "":
		strategy = matching.StrategyCosine
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown strategy %q", req.Strategy)})
		return
	}

	claims, _ := GetAuthClaims(c)
	cacheKey := h.cacheKey(claims.UserID, req, strategy)
	if h.cache != nil {
		if cached, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	analysis := domain.ImageAnalysis{}
	if req.Analysis != nil {
		analysis = *req.Analysis
	} else {
		var err error
		analysis, err = h.vision.AnalyzeImage(c.Request.Context(), claims.UserID, req.ImageBase64)
		if err != nil {
			h.logger.Error("image analysis failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "image analysis unavailable"})
			return
		}
	}

	matches := h.matcher.FindMatches(analysis, req.TopN, strategy, matching.CategoryAwareParams())

	body, err := json.Marshal(gin.H{"analysis": analysis, "matches": matches})
	if err != nil {
		h.logger.Error("marshal match response", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if h.cache != nil {
		h.cache.Set(c.Request.Context(), cacheKey, body, matchCacheTTL)
	}
	c.Data(http.StatusOK, "application/json", body)
}

// cacheKey incluye el usuario: dos usuarios con el mismo payload no comparten
// entrada, asi el response puede crecer con campos propios sin filtrarse.
func (h *MatchHandler) cacheKey(userID string, req matchRequest, strategy matching.Strategy) string {
	sum := sha256.New()
	sum.Write([]byte(userID))
	sum.Write([]byte{0})
	sum.Write([]byte(req.ImageBase64))
	if req.Analysis != nil {
		if b, err := json.Marshal(req.Analysis); err == nil {
			sum.Write(b)
		}
	}
	fmt.Fprintf(sum, "|%d|%s", req.TopN, strategy)
	return "match:" + hex.EncodeToString(sum.Sum(nil))
}
