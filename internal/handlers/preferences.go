package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tunerec/internal/auth"
	"tunerec/internal/services"
)

// AddPreferencesRequest is the body for adding genre preferences
type AddPreferencesRequest struct {
	GenreIDs []int64 `json:"genre_ids"`
}

// PreferenceHandler handles genre preference requests
type PreferenceHandler struct {
	preferences *services.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// RegisterRoutes attaches the preference endpoints to the router
func (h *PreferenceHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/users/:id/preferences")
	group.GET("", h.List)
	group.POST("", h.Add)
	group.DELETE("", h.RemoveAll)
	group.DELETE("/:genreId", h.Remove)
}

// List handles GET /users/:id/preferences
func (h *PreferenceHandler) List(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := services.AuthorizeOwner(auth.CallerID(c), userID, auth.IsServiceCall(c)); err != nil {
		respondError(c, err)
		return
	}

	preferences, err := h.preferences.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, preferences)
}

// Add handles POST /users/:id/preferences
func (h *PreferenceHandler) Add(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := services.AuthorizeOwner(auth.CallerID(c), userID, auth.IsServiceCall(c)); err != nil {
		respondError(c, err)
		return
	}

	var req AddPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewInvalidData("the genre list cannot be empty"))
		return
	}

	result, err := h.preferences.Add(c.Request.Context(), userID, req.GenreIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Remove handles DELETE /users/:id/preferences/:genreId
func (h *PreferenceHandler) Remove(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	genreID, err := strconv.ParseInt(c.Param("genreId"), 10, 64)
	if err != nil {
		respondError(c, services.NewInvalidParameter("genre id must be an integer"))
		return
	}
	if err := services.AuthorizeOwner(auth.CallerID(c), userID, auth.IsServiceCall(c)); err != nil {
		respondError(c, err)
		return
	}

	if err := h.preferences.Remove(c.Request.Context(), userID, genreID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// RemoveAll handles DELETE /users/:id/preferences
func (h *PreferenceHandler) RemoveAll(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := services.AuthorizeOwner(auth.CallerID(c), userID, auth.IsServiceCall(c)); err != nil {
		respondError(c, err)
		return
	}

	if err := h.preferences.RemoveAll(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// parseUserID extracts the :id path parameter, responding with an error on
// non-integer input.
func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, services.NewInvalidParameter("user id must be an integer"))
		return 0, false
	}
	return userID, true
}
