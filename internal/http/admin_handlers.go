package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/domyusuf/safeschooltransport/internal/http/middleware"
	"github.com/domyusuf/safeschooltransport/internal/model"
	"github.com/domyusuf/safeschooltransport/internal/service"
)

func (h *Handler) createRoute(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		Name              string `json:"name" binding:"required"`
		StartPoint        string `json:"start_point" binding:"required"`
		EndPoint          string `json:"end_point" binding:"required"`
		EstimatedDuration int    `json:"estimated_duration" binding:"required"`
		Stops             []struct {
			Name          string  `json:"name" binding:"required"`
			Lat           float64 `json:"lat"`
			Lng           float64 `json:"lng"`
			OrderIndex    int     `json:"order_index"`
			EstimatedTime *string `json:"estimated_time"`
		} `json:"stops" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.CreateRouteInput{
		Name:              req.Name,
		StartPoint:        req.StartPoint,
		EndPoint:          req.EndPoint,
		EstimatedDuration: req.EstimatedDuration,
	}
	for _, stop := range req.Stops {
		input.Stops = append(input.Stops, service.CreateRouteStop{
			Name:          stop.Name,
			Lat:           stop.Lat,
			Lng:           stop.Lng,
			OrderIndex:    stop.OrderIndex,
			EstimatedTime: stop.EstimatedTime,
		})
	}

	route, err := h.fleetService.CreateRoute(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(route))
}

func (h *Handler) listRoutes(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	routes, err := h.fleetService.Routes(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": routes}))
}

func (h *Handler) createTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		RouteID            string  `json:"route_id" binding:"required"`
		Date               string  `json:"date" binding:"required"`
		ScheduledStartTime string  `json:"scheduled_start_time" binding:"required"`
		DriverID           *string `json:"driver_id"`
		VehicleID          *string `json:"vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	routeID, err := uuid.Parse(strings.TrimSpace(req.RouteID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid route_id"))
		return
	}

	input := service.CreateTripInput{
		RouteID:            routeID,
		Date:               strings.TrimSpace(req.Date),
		ScheduledStartTime: strings.TrimSpace(req.ScheduledStartTime),
	}
	if req.DriverID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.DriverID))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid driver_id"))
			return
		}
		input.DriverID = &id
	}
	if req.VehicleID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*req.VehicleID))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
			return
		}
		input.VehicleID = &id
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(trip))
}

func (h *Handler) assignDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	tripID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	var req struct {
		DriverID  string `json:"driver_id" binding:"required"`
		VehicleID string `json:"vehicle_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driverID, err := uuid.Parse(strings.TrimSpace(req.DriverID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver_id"))
		return
	}
	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}

	if err := h.tripService.AssignDriver(c.Request.Context(), principal, tripID, driverID, vehicleID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "assigned"}))
}

func (h *Handler) fleetStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	status, err := h.fleetService.FleetStatus(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(status))
}

func (h *Handler) listBookings(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var status *model.BookingStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s := model.BookingStatus(strings.ToLower(raw))
		status = &s
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), principal, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": bookings}))
}

func (h *Handler) updateBookingStatus(c *gin.Context) {
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

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	status := model.BookingStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	if err := h.bookingService.UpdateBookingStatus(c.Request.Context(), principal, id, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		LicensePlate string  `json:"license_plate" binding:"required"`
		BusNumber    string  `json:"bus_number" binding:"required"`
		Capacity     int     `json:"capacity" binding:"required"`
		Model        *string `json:"model"`
		Year         *int    `json:"year"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.fleetService.CreateVehicle(c.Request.Context(), principal, service.CreateVehicleInput{
		LicensePlate: req.LicensePlate,
		BusNumber:    req.BusNumber,
		Capacity:     req.Capacity,
		Model:        req.Model,
		Year:         req.Year,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	vehicles, err := h.fleetService.Vehicles(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": vehicles}))
}

func (h *Handler) updateVehicleStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	status := model.VehicleStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	if err := h.fleetService.UpdateVehicleStatus(c.Request.Context(), principal, id, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) listDrivers(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	drivers, err := h.fleetService.Drivers(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": drivers}))
}

func (h *Handler) liveMapData(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	buses, err := h.fleetService.LiveMapData(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": buses}))
}
