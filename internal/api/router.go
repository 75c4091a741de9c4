package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sharpfade/barbershop-backend/internal/auth"
	"github.com/sharpfade/barbershop-backend/internal/availability"
	availabilityHttp "github.com/sharpfade/barbershop-backend/internal/availability/http"
	"github.com/sharpfade/barbershop-backend/internal/barber"
	barberHttp "github.com/sharpfade/barbershop-backend/internal/barber/http"
	"github.com/sharpfade/barbershop-backend/internal/booking"
	bookingHttp "github.com/sharpfade/barbershop-backend/internal/booking/http"
	"github.com/sharpfade/barbershop-backend/internal/client"
	clientHttp "github.com/sharpfade/barbershop-backend/internal/client/http"
	"github.com/sharpfade/barbershop-backend/internal/notification"
	notificationHttp "github.com/sharpfade/barbershop-backend/internal/notification/http"
	"github.com/sharpfade/barbershop-backend/internal/payment"
	paymentHttp "github.com/sharpfade/barbershop-backend/internal/payment/http"
	catalog "github.com/sharpfade/barbershop-backend/internal/service"
	catalogHttp "github.com/sharpfade/barbershop-backend/internal/service/http"
)

// Config carries everything the router needs to assemble middleware and
// handlers.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	BarberService       barber.Service
	CatalogManager      catalog.Manager
	ClientService       client.Service
	AvailabilityService availability.Service
	BookingService      booking.Service
	PaymentService      payment.Service
	NotificationRepo    notification.Repository

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware (CORS, Logger, Recovery, Auth) and registers
// routes for every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := auth.RequireRole(auth.RoleAdmin)
	staffMiddleware := auth.RequireRole(auth.RoleAdmin, auth.RoleBarber)

	barberHandler := barberHttp.NewHandler(cfg.BarberService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogManager)
	clientHandler := clientHttp.NewHandler(cfg.ClientService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationRepo)

	v1 := r.Group("/v1")
	{
		barberHttp.RegisterRoutes(v1, barberHandler, authMiddleware, adminMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware, adminMiddleware)
		clientHttp.RegisterRoutes(v1, clientHandler, authMiddleware, staffMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, authMiddleware, staffMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, staffMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware, staffMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware)
	}

	return r
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
