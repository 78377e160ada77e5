package main

import (
	"fmt"
	"os"

	"github.com/domyusuf/safeschooltransport/internal/auth"
	"github.com/domyusuf/safeschooltransport/internal/config"
	"github.com/domyusuf/safeschooltransport/internal/db"
	httphandler "github.com/domyusuf/safeschooltransport/internal/http"
	"github.com/domyusuf/safeschooltransport/internal/http/middleware"
	"github.com/domyusuf/safeschooltransport/internal/logger"
	"github.com/domyusuf/safeschooltransport/internal/repository"
	"github.com/domyusuf/safeschooltransport/internal/service"
)

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

	userRepo := repository.NewUserRepository(database)
	studentRepo := repository.NewStudentRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	routeRepo := repository.NewRouteRepository(database)
	tripRepo := repository.NewTripRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	incidentRepo := repository.NewIncidentRepository(database)

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	parser := auth.NewParser(cfg.Auth.AccessSecret)

	accountService := service.NewAccountService(userRepo, studentRepo, issuer)
	bookingService := service.NewBookingService(studentRepo, routeRepo, tripRepo, bookingRepo)
	tripService := service.NewTripService(userRepo, vehicleRepo, tripRepo, bookingRepo, incidentRepo)
	fleetService := service.NewFleetService(userRepo, vehicleRepo, routeRepo, tripRepo, incidentRepo)

	handler := httphandler.NewHandler(accountService, bookingService, tripService, fleetService, log)
	router := httphandler.NewRouter(handler, middleware.Auth(parser), cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting school transport service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
