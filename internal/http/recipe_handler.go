package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
	"scent-match/internal/email"
	"scent-match/internal/repository"
	"scent-match/internal/service"
)

// RecipeHandler expone el flujo de feedback a receta y el historial.
type RecipeHandler struct {
	logger   *zap.Logger
	recipes  *service.RecipeService
	sessions repository.RecipeSessionRepository
	catalog  *catalog.Catalog
	sender   email.Sender
}

func NewRecipeHandler(
	logger *zap.Logger,
	recipes *service.RecipeService,
	sessions repository.RecipeSessionRepository,
	cat *catalog.Catalog,
	sender email.Sender,
) *RecipeHandler {
	return &RecipeHandler{
		logger:   logger,
		recipes:  recipes,
		sessions: sessions,
		catalog:  cat,
		sender:   sender,
	}
}

type feedbackRequest struct {
	PersonaID           string                                `json:"persona_id" binding:"required"`
	RetentionPercentage *float64                              `json:"retention_percentage"`
	CategoryPreferences map[string]domain.CategoryPreference  `json:"category_preferences"`
	Characteristics     map[string]domain.CharacteristicLevel `json:"characteristics"`
	AddedScents         []domain.RequestedScent               `json:"added_scents"`
}

// SubmitFeedback maneja POST /recipes/feedback. Una falla terminal de la
// compuerta de validacion se responde tal cual: mismo status, mismo error.
func (h *RecipeHandler) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	feedback, err := domain.NewFeedbackRecord(
		req.PersonaID,
		req.RetentionPercentage,
		req.CategoryPreferences,
		req.Characteristics,
		req.AddedScents,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := GetAuthClaims(c)
	session, failure := h.recipes.CustomizeRecipe(c.Request.Context(), claims.UserID, feedback)
	if failure != nil {
		h.logger.Warn("recipe customization failed",
			zap.Int("status", failure.Status), zap.String("error", failure.Error))
		c.JSON(failure.Status, failure)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession maneja GET /recipes/:id.
func (h *RecipeHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("get session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}

	claims, _ := GetAuthClaims(c)
	if session.UserID != claims.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ListSessions maneja GET /recipes.
func (h *RecipeHandler) ListSessions(c *gin.Context) {
	claims, _ := GetAuthClaims(c)
	sessions, err := h.sessions.ListByUser(c.Request.Context(), claims.UserID, 20)
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// ShareSession maneja POST /recipes/:id/share: envia el resumen por correo.
func (h *RecipeHandler) ShareSession(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	claims, _ := GetAuthClaims(c)
	if session.UserID != claims.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	personaName, _ := h.catalog.NameByID(session.PersonaID)
	if err := h.sender.SendRecipeSummary(c.Request.Context(), req.Email, personaName, session); err != nil {
		h.logger.Error("share session failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
