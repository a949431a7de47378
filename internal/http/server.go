// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"velo/internal/http/handlers"
	"velo/internal/http/middleware"
	"velo/internal/modules/bike"
	"velo/internal/modules/charging"
	"velo/internal/modules/city"
	"velo/internal/modules/parkzone"
	"velo/internal/modules/pricing"
	"velo/internal/modules/ride"
	"velo/internal/modules/station"
	"velo/internal/modules/user"
)

type ServerDeps struct {
	City        *city.Service
	User        *user.Service
	Bike        *bike.Service
	Station     *station.Service
	ParkZone    *parkzone.Service
	Pricing     *pricing.Service
	Ride        *ride.Service
	Charging    *charging.Service
	Logger      *zap.Logger
	Environment string
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	if s.deps.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(s.deps.Logger))
	engine.Use(middleware.Logging(s.deps.Logger))

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := engine.Group("/api/v1")

	cityHandler := handlers.NewCityHandler(s.deps.City)
	api.GET("/cities", cityHandler.List)
	api.GET("/cities/:id", cityHandler.Get)
	api.POST("/cities", cityHandler.Create)
	api.PUT("/cities", cityHandler.Update)
	api.DELETE("/cities/:id", cityHandler.Delete)

	userHandler := handlers.NewUserHandler(s.deps.User)
	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.POST("/users", userHandler.Create)
	api.PUT("/users", userHandler.Update)
	api.PUT("/users/withdraw", userHandler.Withdraw)
	api.DELETE("/users/:id", userHandler.Delete)

	bikeHandler := handlers.NewBikeHandler(s.deps.Bike, s.deps.Charging)
	api.GET("/bikes_pos/city/:city_id", bikeHandler.ListPositions)
	api.GET("/bikes/city/:city_id", bikeHandler.ListByCity)
	api.GET("/bikes/city/:city_id/status/:status_id", bikeHandler.ListByCityStatus)
	api.GET("/bikes/city/:city_id/station/:station_id", bikeHandler.ListByCityStation)
	api.GET("/bikes/city/:city_id/park_zone/:park_id", bikeHandler.ListByCityPark)
	api.GET("/bikes/user/:user_id", bikeHandler.GetByUser)
	api.GET("/bikes/:id", bikeHandler.Get)
	api.POST("/bikes", bikeHandler.Create)
	api.PUT("/bikes", bikeHandler.Update)
	api.PUT("/bikes/check_park_zone", bikeHandler.CheckParkZone)
	api.PUT("/bikes/start_charge", bikeHandler.StartCharge)
	api.PUT("/bikes/stop_charge", bikeHandler.StopCharge)
	api.PUT("/bikes/user_status_station_park", bikeHandler.UpdateUserStatusStationPark)
	api.PUT("/bikes/pos_speed_batt", bikeHandler.UpdatePosSpeedBatt)
	api.DELETE("/bikes/:id", bikeHandler.Delete)

	stationHandler := handlers.NewStationHandler(s.deps.Station)
	api.GET("/stations/city/:city_id", stationHandler.ListByCity)
	api.GET("/stations/:id", stationHandler.Get)
	api.POST("/stations", stationHandler.Create)
	api.PUT("/stations", stationHandler.Update)
	api.DELETE("/stations/:id", stationHandler.Delete)

	zoneHandler := handlers.NewParkZoneHandler(s.deps.ParkZone)
	api.GET("/park_zones/city/:city_id", zoneHandler.ListByCity)
	api.GET("/park_zones/city/:city_id/locate", zoneHandler.Locate)
	api.GET("/park_zones/:id", zoneHandler.Get)
	api.POST("/park_zones", zoneHandler.Create)
	api.PUT("/park_zones", zoneHandler.Update)
	api.DELETE("/park_zones/:id", zoneHandler.Delete)

	pricingHandler := handlers.NewPricingHandler(s.deps.Pricing)
	api.GET("/pricing/city/:city_id", pricingHandler.GetByCity)
	api.POST("/pricing", pricingHandler.Create)
	api.PUT("/pricing", pricingHandler.Update)
	api.DELETE("/pricing/:city_id", pricingHandler.Delete)

	rideHandler := handlers.NewRideHandler(s.deps.Ride)
	api.GET("/rides/user/:user_id", rideHandler.ListByUser)
	api.GET("/rides/bike/:bike_id", rideHandler.ListByBike)
	api.GET("/rides/:id", rideHandler.Get)
	api.POST("/rides", rideHandler.Start)
	api.PUT("/rides", rideHandler.Finish)
	api.DELETE("/rides/:id", rideHandler.Delete)

	return engine
}
