package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tunerec/internal/auth"
	"tunerec/internal/models"
	"tunerec/internal/services"
)

// Defaults applied when the query omits type or limit.
const (
	defaultContentType = models.ContentTypeBoth
	defaultLimit       = 20
)

// RecommendationHandler handles recommendation requests
type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// RegisterRoutes attaches the recommendation endpoint to the router
func (h *RecommendationHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:id/recommendations", h.Get)
}

// Get handles GET /users/:id/recommendations?type=&limit=
func (h *RecommendationHandler) Get(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := services.AuthorizeOwner(auth.CallerID(c), userID, auth.IsServiceCall(c)); err != nil {
		respondError(c, err)
		return
	}

	contentType := defaultContentType
	if raw := c.Query("type"); raw != "" {
		// Validation of the value happens in the engine.
		contentType = models.ContentType(raw)
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, services.NewInvalidParameter("limit must be an integer"))
			return
		}
		limit = parsed
	}

	result, err := h.recommendations.Generate(c.Request.Context(), userID, contentType, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
