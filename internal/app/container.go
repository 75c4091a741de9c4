package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharpfade/barbershop-backend/internal/api"
	"github.com/sharpfade/barbershop-backend/internal/auth"
	"github.com/sharpfade/barbershop-backend/internal/availability"
	"github.com/sharpfade/barbershop-backend/internal/barber"
	"github.com/sharpfade/barbershop-backend/internal/booking"
	"github.com/sharpfade/barbershop-backend/internal/client"
	"github.com/sharpfade/barbershop-backend/internal/notification"
	"github.com/sharpfade/barbershop-backend/internal/payment"
	catalog "github.com/sharpfade/barbershop-backend/internal/service"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	ShopTimezone *time.Location
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Notifier   *notification.Dispatcher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Barber Module
	barberRepo := barber.NewPgxRepository(cfg.DBPool)
	barberService := barber.NewService(barberRepo)

	// Service Catalog Module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogManager := catalog.NewManager(catalogRepo)

	// Client Module
	clientRepo := client.NewPgxRepository(cfg.DBPool)
	clientService := client.NewService(clientRepo)

	// Availability Module
	availabilityRepo := availability.NewPgxRepository(cfg.DBPool)
	availabilityService := availability.NewService(availabilityRepo, barberService)

	// Notification Module
	notificationRepo := notification.NewPgxRepository(cfg.DBPool)
	notifier := notification.NewDispatcher(notificationRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(
		bookingRepo,
		catalogManager,
		barberService,
		clientService,
		availabilityService,
		notifier,
		cfg.ShopTimezone,
	)

	// Payment Module
	paymentRepo := payment.NewPgxRepository(cfg.DBPool)
	paymentService := payment.NewService(paymentRepo, bookingRepo)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		BarberService:       barberService,
		CatalogManager:      catalogManager,
		ClientService:       clientService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		PaymentService:      paymentService,
		NotificationRepo:    notificationRepo,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Notifier:   notifier,
	}
}
