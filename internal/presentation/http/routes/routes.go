package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkjewellers/billing-api/internal/config"
	"github.com/rkjewellers/billing-api/internal/presentation/http/handler"
	"github.com/rkjewellers/billing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer *handler.CustomerHandler
	Visit    *handler.VisitHandler
	Invoice  *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

// Setup creates the Gin router and registers all routes. Route paths follow
// the billing frontend's existing contract, so they live at the root rather
// than under a versioned prefix.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.POST("/add_customer", h.Customer.Create)
	router.GET("/search_customer", h.Customer.Search)
	router.POST("/add_visit", h.Visit.Create)
	router.GET("/get_customer_history/:customer_id", h.Visit.History)
	router.GET("/generate_invoice/:customer_id", h.Invoice.Generate)

	return router
}
