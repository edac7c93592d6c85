package booking

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.PATCH("/bookings/:id", h.DecideBooking)
	rg.GET("/bookings/owner", h.ListOwnerBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings", h.ListBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) DecideBooking(c *gin.Context) {
	bookingID, ok := idParam(c)
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'approved' must be a boolean")
		return
	}

	b, err := h.service.Decide(c.Request.Context(), c.GetInt64("user_id"), bookingID, approved)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	bookingID, ok := idParam(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) ListBookings(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) ListOwnerBookings(c *gin.Context) {
	h.list(c, true)
}

func (h *Handler) list(c *gin.Context, asOwner bool) {
	state, err := ParseState(c.Query("state"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_STATE", "Unknown state: "+c.Query("state"))
		return
	}

	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'from' must be an integer")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'size' must be an integer")
		return
	}

	bs, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), asOwner, state, from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": toBookingResponses(bs)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrOwnBooking):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")

	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")

	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item not found")

	case errors.Is(err, ErrTimeConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Item is already booked for the selected period")

	case errors.Is(err, ErrItemUnavailable),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrAlreadyDecided),
		errors.Is(err, ErrInvalidPaging),
		errors.Is(err, ErrUnknownState):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())

	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return 0, false
	}
	return id, true
}
