package item

import (
	"errors"
	"net/http"
	"strconv"

	"lendshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers reads that need no identity.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/items/search", h.SearchItems)
	rg.GET("/items/:id", h.GetItem)
}

// RegisterProtectedRoutes registers routes that act on behalf of a user.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/items", h.CreateItem)
	rg.PATCH("/items/:id", h.UpdateItem)
	rg.GET("/items", h.ListOwnItems)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	i, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": i})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, ok := idParam(c)
	if !ok {
		return
	}

	var patch ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	i, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), itemID, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": i})
}

func (h *Handler) GetItem(c *gin.Context) {
	itemID, ok := idParam(c)
	if !ok {
		return
	}

	i, err := h.service.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": i})
}

func (h *Handler) ListOwnItems(c *gin.Context) {
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}

	items, err := h.service.ListByOwner(c.Request.Context(), c.GetInt64("user_id"), from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) SearchItems(c *gin.Context) {
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}

	items, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item not found")

	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")

	case errors.Is(err, ErrInvalidPaging):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())

	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item ID")
		return 0, false
	}
	return id, true
}

func pagingParams(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'from' must be an integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'size' must be an integer")
		return 0, 0, false
	}
	return from, size, true
}
