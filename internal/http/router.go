package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scent-match/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	matchH *MatchHandler,
	recipeH *RecipeHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("/register", userH.Register)
	users.POST("/login", userH.Login)

	auth := r.Group("/auth")
	auth.POST("/refresh", userH.Refresh)
	auth.POST("/logout", userH.Logout)

	r.GET("/personas", matchH.ListPersonas)
	r.GET("/personas/:id", matchH.GetPersona)

	protected := r.Group("/", JWTAuthMiddleware(jwtSvc))
	protected.POST("/match", matchH.Match)
	protected.POST("/recipes/feedback", recipeH.SubmitFeedback)
	protected.GET("/recipes/:id", recipeH.GetSession)
	protected.GET("/recipes", recipeH.ListSessions)
	protected.POST("/recipes/:id/share", recipeH.ShareSession)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
