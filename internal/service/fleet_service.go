package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/domyusuf/safeschooltransport/internal/model"
	"github.com/domyusuf/safeschooltransport/internal/repository"
)

// FleetService is the admin surface: vehicles, routes, drivers and the
// live operations views.
type FleetService struct {
	userRepo     *repository.UserRepository
	vehicleRepo  *repository.VehicleRepository
	routeRepo    *repository.RouteRepository
	tripRepo     *repository.TripRepository
	incidentRepo *repository.IncidentRepository
}

func NewFleetService(
	userRepo *repository.UserRepository,
	vehicleRepo *repository.VehicleRepository,
	routeRepo *repository.RouteRepository,
	tripRepo *repository.TripRepository,
	incidentRepo *repository.IncidentRepository,
) *FleetService {
	return &FleetService{
		userRepo:     userRepo,
		vehicleRepo:  vehicleRepo,
		routeRepo:    routeRepo,
		tripRepo:     tripRepo,
		incidentRepo: incidentRepo,
	}
}

type CreateVehicleInput struct {
	LicensePlate string
	BusNumber    string
	Capacity     int
	Model        *string
	Year         *int
}

func (s *FleetService) CreateVehicle(ctx context.Context, principal model.Principal, input CreateVehicleInput) (*model.Vehicle, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if len(strings.TrimSpace(input.LicensePlate)) < 2 {
		return nil, fmt.Errorf("%w: license plate is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.BusNumber) == "" {
		return nil, fmt.Errorf("%w: bus number is required", ErrInvalidInput)
	}
	if input.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be a positive integer", ErrInvalidInput)
	}

	vehicle := &model.Vehicle{
		LicensePlate: strings.TrimSpace(input.LicensePlate),
		BusNumber:    strings.TrimSpace(input.BusNumber),
		Capacity:     input.Capacity,
		Model:        input.Model,
		Year:         input.Year,
		Status:       model.VehicleStatusActive,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *FleetService) Vehicles(ctx context.Context, principal model.Principal) ([]model.Vehicle, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	return s.vehicleRepo.List(ctx)
}

func (s *FleetService) UpdateVehicleStatus(ctx context.Context, principal model.Principal, vehicleID uuid.UUID, status model.VehicleStatus) error {
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if status != model.VehicleStatusActive && status != model.VehicleStatusMaintenance {
		return fmt.Errorf("%w: unknown vehicle status", ErrInvalidInput)
	}
	return s.vehicleRepo.UpdateStatus(ctx, vehicleID, status)
}

type CreateRouteStop struct {
	Name          string
	Lat           float64
	Lng           float64
	OrderIndex    int
	EstimatedTime *string
}

type CreateRouteInput struct {
	Name              string
	StartPoint        string
	EndPoint          string
	EstimatedDuration int
	Stops             []CreateRouteStop
}

// CreateRoute creates a route together with its ordered stops. A route
// needs at least two stops and distinct order indexes.
func (s *FleetService) CreateRoute(ctx context.Context, principal model.Principal, input CreateRouteInput) (*model.Route, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if len(strings.TrimSpace(input.Name)) < 2 {
		return nil, fmt.Errorf("%w: route name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.StartPoint) == "" || strings.TrimSpace(input.EndPoint) == "" {
		return nil, fmt.Errorf("%w: start and end points are required", ErrInvalidInput)
	}
	if input.EstimatedDuration < 1 {
		return nil, fmt.Errorf("%w: duration must be at least 1 minute", ErrInvalidInput)
	}
	if len(input.Stops) < 2 {
		return nil, fmt.Errorf("%w: route must have at least 2 stops", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(input.Stops))
	stops := make([]model.Stop, 0, len(input.Stops))
	for _, stop := range input.Stops {
		if stop.Lat < -90 || stop.Lat > 90 || stop.Lng < -180 || stop.Lng > 180 {
			return nil, fmt.Errorf("%w: stop coordinates out of range", ErrInvalidInput)
		}
		if seen[stop.OrderIndex] {
			return nil, fmt.Errorf("%w: duplicate stop order index %d", ErrInvalidInput, stop.OrderIndex)
		}
		seen[stop.OrderIndex] = true
		stops = append(stops, model.Stop{
			Name:          stop.Name,
			Lat:           stop.Lat,
			Lng:           stop.Lng,
			OrderIndex:    stop.OrderIndex,
			EstimatedTime: stop.EstimatedTime,
		})
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].OrderIndex < stops[j].OrderIndex })

	route := &model.Route{
		Name:              strings.TrimSpace(input.Name),
		StartPoint:        strings.TrimSpace(input.StartPoint),
		EndPoint:          strings.TrimSpace(input.EndPoint),
		EstimatedDuration: input.EstimatedDuration,
		IsActive:          true,
	}
	if err := s.routeRepo.CreateWithStops(ctx, route, stops); err != nil {
		return nil, err
	}
	route.Stops = stops
	return route, nil
}

func (s *FleetService) Routes(ctx context.Context, principal model.Principal) ([]model.Route, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	return s.routeRepo.ListWithStops(ctx)
}

func (s *FleetService) Drivers(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	return s.userRepo.ListByRole(ctx, model.UserRoleDriver)
}

// FleetStatus aggregates today's trips, the vehicle pool and recent
// incidents into the dashboard stats.
func (s *FleetService) FleetStatus(ctx context.Context, principal model.Principal) (*model.FleetStatus, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}

	today := time.Now().Format("2006-01-02")

	vehicles, err := s.vehicleRepo.ListWithTripsOn(ctx, today)
	if err != nil {
		return nil, err
	}
	todayTrips, err := s.tripRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	recentIncidents, err := s.incidentRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &model.FleetStatus{
		Stats:           buildFleetStats(vehicles, todayTrips),
		TodayTrips:      todayTrips,
		Vehicles:        vehicles,
		RecentIncidents: recentIncidents,
	}, nil
}

func buildFleetStats(vehicles []model.Vehicle, todayTrips []model.Trip) model.FleetStats {
	stats := model.FleetStats{
		TotalTripsToday: len(todayTrips),
		TotalVehicles:   len(vehicles),
	}
	for _, t := range todayTrips {
		switch t.Status {
		case model.TripStatusActive:
			stats.ActiveTrips++
		case model.TripStatusScheduled:
			stats.ScheduledTrips++
		case model.TripStatusCompleted:
			stats.CompletedTrips++
		}
		stats.TotalBookingsToday += len(t.Bookings)
	}
	for _, v := range vehicles {
		switch v.Status {
		case model.VehicleStatusActive:
			stats.ActiveVehicles++
		case model.VehicleStatusMaintenance:
			stats.MaintenanceVehicles++
		}
	}
	return stats
}

// LiveMapData lists active trips today with positions and headcounts.
func (s *FleetService) LiveMapData(ctx context.Context, principal model.Principal) ([]model.LiveBus, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}

	today := time.Now().Format("2006-01-02")
	trips, err := s.tripRepo.ListActiveByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	buses := make([]model.LiveBus, 0, len(trips))
	for _, trip := range trips {
		buses = append(buses, buildLiveBus(trip))
	}
	return buses, nil
}

func buildLiveBus(trip model.Trip) model.LiveBus {
	bus := model.LiveBus{
		TripID:          trip.ID,
		BusNumber:       "Unknown",
		DriverName:      "Unassigned",
		Status:          trip.Status,
		Lat:             trip.CurrentLat,
		Lng:             trip.CurrentLng,
		TotalPassengers: len(trip.Bookings),
	}
	if trip.Vehicle != nil {
		bus.BusNumber = trip.Vehicle.BusNumber
	}
	if trip.Driver != nil {
		bus.DriverName = trip.Driver.Name
	}
	if trip.Route != nil {
		bus.RouteName = trip.Route.Name
	}
	for _, b := range trip.Bookings {
		if b.Aboard() {
			bus.PassengersCount++
		}
	}
	return bus
}
