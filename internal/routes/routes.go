package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRIPVANA_BACK-END/internal/config"
	"TRIPVANA_BACK-END/internal/handlers"
	"TRIPVANA_BACK-END/internal/middleware"
	"TRIPVANA_BACK-END/internal/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	tripsHandler *handlers.TripsHandler,
	organizerTripsHandler *handlers.OrganizerTripsHandler,
	bookingsHandler *handlers.BookingsHandler,
	organizerBookingsHandler *handlers.OrganizerBookingsHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Public trip catalog
	http.HandleFunc("/api/trips", tripsHandler.Trips)
	http.HandleFunc("/api/trips/", tripsHandler.Trips)

	// End-user booking routes
	userBookings := middleware.AuthMiddleware(
		middleware.RequireRole(bookingsHandler.Bookings, utils.RoleUser), &cfg.JWT)
	http.HandleFunc("/api/bookings", userBookings)
	http.HandleFunc("/api/bookings/", userBookings)

	// Organizer routes
	organizerTrips := middleware.AuthMiddleware(
		middleware.RequireRole(organizerTripsHandler.Trips, utils.RoleOrganizer), &cfg.JWT)
	http.HandleFunc("/api/organizer/trips", organizerTrips)
	http.HandleFunc("/api/organizer/trips/", organizerTrips)

	organizerBookings := middleware.AuthMiddleware(
		middleware.RequireRole(organizerBookingsHandler.Bookings, utils.RoleOrganizer), &cfg.JWT)
	http.HandleFunc("/api/organizer/bookings", organizerBookings)
	http.HandleFunc("/api/organizer/bookings/", organizerBookings)

	// Swagger UI
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Tripvana backend is running."))
}
