package server

import (
	"log/slog"
	"net/http"
	"time"

	"golden-catering/internal/config"
	"golden-catering/internal/handler"
	"golden-catering/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Per-IP budget for all /api routes: 100 requests every 15 minutes.
const (
	rateLimitWindow   = 15 * time.Minute
	rateLimitRequests = 100
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
}

func NewServer(
	cfg *config.Config,
	authService service.AuthService,
	catalogService service.CatalogService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	s := &Server{
		echo:           e,
		authHandler:    authHandler,
		catalogHandler: catalogHandler,
		orderHandler:   orderHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api", middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(rateLimitRequests) / rateLimitWindow.Seconds()),
			Burst:     rateLimitRequests,
			ExpiresIn: rateLimitWindow,
		}),
	}))

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.POST("/google", s.authHandler.GoogleLogin)

	// -------- catalog --------
	api.GET("/packages", s.catalogHandler.ListPackages)
	api.GET("/packages/:id", s.catalogHandler.GetPackage)
	api.GET("/menu-items", s.catalogHandler.ListMenuItems)

	// -------- orders --------
	api.POST("/orders", s.orderHandler.CreateOrder)
	api.GET("/orders/:id", s.orderHandler.GetOrder)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				slog.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
			} else {
				slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			}
			return nil
		},
	})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
