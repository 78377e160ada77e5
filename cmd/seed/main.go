// Command seed loads demo users, students, vehicles, routes and a month
// of scheduled trips so the API can be exercised right after a fresh
// deploy. It refuses to run twice.
package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/config"
	"github.com/domyusuf/safeschooltransport/internal/db"
	"github.com/domyusuf/safeschooltransport/internal/logger"
	"github.com/domyusuf/safeschooltransport/internal/model"
)

const demoPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.Log.File)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	var existing int64
	if err := database.Model(&model.User{}).Where("email = ?", "admin@glidee.com").Count(&existing).Error; err != nil {
		log.Fatal().Err(err).Msg("seed precheck failed")
	}
	if existing > 0 {
		log.Info().Msg("demo data already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash demo password")
	}

	if err := database.Transaction(func(tx *gorm.DB) error {
		return seed(tx, string(hash))
	}); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().
		Str("admin", "admin@glidee.com").
		Str("driver", "driver@glidee.com").
		Str("parent", "parent@glidee.com").
		Str("password", demoPassword).
		Msg("demo data seeded")
}

func seed(tx *gorm.DB, passwordHash string) error {
	admin := model.User{Name: "Admin User", Email: "admin@glidee.com", Role: model.UserRoleAdmin, EmailVerified: true, PasswordHash: passwordHash}
	driver1 := model.User{Name: "Michael Driver", Email: "driver@glidee.com", Role: model.UserRoleDriver, EmailVerified: true, PasswordHash: passwordHash}
	driver2 := model.User{Name: "Sarah Wilson", Email: "driver2@glidee.com", Role: model.UserRoleDriver, EmailVerified: true, PasswordHash: passwordHash}
	parent1 := model.User{Name: "Sarah Johnson", Email: "parent@glidee.com", Role: model.UserRoleParent, EmailVerified: true, PasswordHash: passwordHash}
	parent2 := model.User{Name: "John Smith", Email: "parent2@glidee.com", Role: model.UserRoleParent, EmailVerified: true, PasswordHash: passwordHash}
	for _, u := range []*model.User{&admin, &driver1, &driver2, &parent1, &parent2} {
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}

	student1 := model.Student{ParentID: parent1.ID, Name: "Emma Johnson", SchoolName: "Lincoln High School", Grade: "10th"}
	student2 := model.Student{ParentID: parent1.ID, Name: "Liam Johnson", SchoolName: "Maple Elementary", Grade: "5th"}
	student3 := model.Student{ParentID: parent2.ID, Name: "Olivia Smith", SchoolName: "Lincoln High School", Grade: "11th"}
	for _, s := range []*model.Student{&student1, &student2, &student3} {
		if err := tx.Create(s).Error; err != nil {
			return fmt.Errorf("create student %s: %w", s.Name, err)
		}
	}

	bus1 := model.Vehicle{LicensePlate: "SCH-001", BusNumber: "Bus 42", Capacity: 30, Model: ptr("Blue Bird Vision"), Year: ptr(2022), Status: model.VehicleStatusActive}
	bus2 := model.Vehicle{LicensePlate: "SCH-002", BusNumber: "Bus 15", Capacity: 25, Model: ptr("Thomas C2"), Year: ptr(2021), Status: model.VehicleStatusActive}
	bus3 := model.Vehicle{LicensePlate: "SCH-003", BusNumber: "Bus 7", Capacity: 35, Model: ptr("IC Bus CE"), Year: ptr(2020), Status: model.VehicleStatusMaintenance}
	for _, v := range []*model.Vehicle{&bus1, &bus2, &bus3} {
		if err := tx.Create(v).Error; err != nil {
			return fmt.Errorf("create vehicle %s: %w", v.BusNumber, err)
		}
	}

	routeA := model.Route{Name: "Morning Route A", StartPoint: "Downtown Terminal", EndPoint: "Lincoln High School", EstimatedDuration: 45, IsActive: true}
	routeB := model.Route{Name: "Morning Route B", StartPoint: "Westside Hub", EndPoint: "Maple Elementary", EstimatedDuration: 35, IsActive: true}
	for _, r := range []*model.Route{&routeA, &routeB} {
		if err := tx.Create(r).Error; err != nil {
			return fmt.Errorf("create route %s: %w", r.Name, err)
		}
	}

	stopsA := []model.Stop{
		{RouteID: routeA.ID, Name: "Downtown Terminal", Lat: 39.7392, Lng: -104.9903, OrderIndex: 0, EstimatedTime: ptr("07:30")},
		{RouteID: routeA.ID, Name: "123 Oak Street", Lat: 39.742, Lng: -104.985, OrderIndex: 1, EstimatedTime: ptr("07:45")},
		{RouteID: routeA.ID, Name: "Main St & 5th Ave", Lat: 39.745, Lng: -104.98, OrderIndex: 2, EstimatedTime: ptr("08:00")},
		{RouteID: routeA.ID, Name: "Lincoln High School", Lat: 39.75, Lng: -104.975, OrderIndex: 3, EstimatedTime: ptr("08:15")},
	}
	stopsB := []model.Stop{
		{RouteID: routeB.ID, Name: "Westside Hub", Lat: 39.73, Lng: -105.0, OrderIndex: 0, EstimatedTime: ptr("08:00")},
		{RouteID: routeB.ID, Name: "Pine Street Stop", Lat: 39.735, Lng: -104.995, OrderIndex: 1, EstimatedTime: ptr("08:15")},
		{RouteID: routeB.ID, Name: "Maple Elementary", Lat: 39.74, Lng: -104.99, OrderIndex: 2, EstimatedTime: ptr("08:30")},
	}
	for i := range stopsA {
		if err := tx.Create(&stopsA[i]).Error; err != nil {
			return fmt.Errorf("create stop %s: %w", stopsA[i].Name, err)
		}
	}
	for i := range stopsB {
		if err := tx.Create(&stopsB[i]).Error; err != nil {
			return fmt.Errorf("create stop %s: %w", stopsB[i].Name, err)
		}
	}

	// Two trips per day for the next 30 days, one on each route.
	now := time.Now()
	var firstTripA, firstTripB, secondTripA *model.Trip
	for i := 0; i < 30; i++ {
		date := now.AddDate(0, 0, i).Format("2006-01-02")

		tripA := model.Trip{RouteID: routeA.ID, DriverID: &driver1.ID, VehicleID: &bus1.ID, Date: date, ScheduledStartTime: ptr("07:30"), Status: model.TripStatusScheduled}
		tripB := model.Trip{RouteID: routeB.ID, DriverID: &driver2.ID, VehicleID: &bus2.ID, Date: date, ScheduledStartTime: ptr("08:00"), Status: model.TripStatusScheduled}
		if err := tx.Create(&tripA).Error; err != nil {
			return fmt.Errorf("create trip %s: %w", date, err)
		}
		if err := tx.Create(&tripB).Error; err != nil {
			return fmt.Errorf("create trip %s: %w", date, err)
		}

		switch i {
		case 0:
			firstTripA, firstTripB = &tripA, &tripB
		case 1:
			secondTripA = &tripA
		}
	}

	bookings := []model.Booking{
		{TripID: firstTripA.ID, StudentID: student1.ID, ParentID: parent1.ID, PickupStopID: &stopsA[1].ID, DropoffStopID: &stopsA[3].ID, Status: model.BookingStatusConfirmed, SeatNumber: ptr(1)},
		{TripID: firstTripB.ID, StudentID: student2.ID, ParentID: parent1.ID, PickupStopID: &stopsB[1].ID, DropoffStopID: &stopsB[2].ID, Status: model.BookingStatusConfirmed, SeatNumber: ptr(1)},
		{TripID: firstTripA.ID, StudentID: student3.ID, ParentID: parent2.ID, PickupStopID: &stopsA[2].ID, DropoffStopID: &stopsA[3].ID, Status: model.BookingStatusConfirmed, SeatNumber: ptr(2)},
		{TripID: secondTripA.ID, StudentID: student1.ID, ParentID: parent1.ID, PickupStopID: &stopsA[1].ID, DropoffStopID: &stopsA[3].ID, Status: model.BookingStatusPending, SeatNumber: ptr(1)},
	}
	for i := range bookings {
		if err := tx.Create(&bookings[i]).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
