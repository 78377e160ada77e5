package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/domyusuf/safeschooltransport/internal/http/middleware"
	"github.com/domyusuf/safeschooltransport/internal/service"
)

func (h *Handler) addStudent(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		Name       string  `json:"name" binding:"required"`
		SchoolName string  `json:"school_name" binding:"required"`
		Grade      string  `json:"grade" binding:"required"`
		PhotoURL   *string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	student, err := h.accountService.AddStudent(c.Request.Context(), principal, service.AddStudentInput{
		Name:       req.Name,
		SchoolName: req.SchoolName,
		Grade:      req.Grade,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(student))
}

func (h *Handler) listStudents(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	students, err := h.accountService.ParentStudents(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": students}))
}

func (h *Handler) availableRoutes(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		c.JSON(http.StatusBadRequest, errorResponse("date query parameter is required"))
		return
	}

	routes, err := h.bookingService.AvailableRoutes(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": routes}))
}

func (h *Handler) createBooking(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		TripID        string  `json:"trip_id" binding:"required"`
		StudentID     string  `json:"student_id" binding:"required"`
		PickupStopID  *string `json:"pickup_stop_id"`
		DropoffStopID *string `json:"dropoff_stop_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	tripID, err := uuid.Parse(strings.TrimSpace(req.TripID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip_id"))
		return
	}
	studentID, err := uuid.Parse(strings.TrimSpace(req.StudentID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid student_id"))
		return
	}

	input := service.CreateBookingInput{
		TripID:    tripID,
		StudentID: studentID,
	}
	if req.PickupStopID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.PickupStopID))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid pickup_stop_id"))
			return
		}
		input.PickupStopID = &id
	}
	if req.DropoffStopID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.DropoffStopID))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid dropoff_stop_id"))
			return
		}
		input.DropoffStopID = &id
	}

	receipt, err := h.bookingService.CreateBooking(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(receipt))
}

func (h *Handler) parentBookings(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	bookings, err := h.bookingService.ParentBookings(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(bookings))
}

func (h *Handler) cancelBooking(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid booking id"))
		return
	}

	if err := h.bookingService.CancelBooking(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "cancelled"}))
}

func (h *Handler) updateProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		Name  string  `json:"name" binding:"required"`
		Image *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.accountService.UpdateProfile(c.Request.Context(), principal, req.Name, req.Image); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}
