// Package api wires the HTTP surface: JSON endpoints for runs plus the
// browser display page.
package api

import (
	"net/http"

	"energy-sim/internal/api/handlers"
	"energy-sim/internal/api/middleware"
	"energy-sim/internal/model"
	"energy-sim/internal/report"
	"energy-sim/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options configures NewRouter. A nil Runs gets a store with DefaultTTL.
type Options struct {
	Logger         zerolog.Logger
	Runs           *store.RunStore
	Defaults       model.Params
	AllowedOrigins []string
}

// NewRouter builds the gin engine. Callers set gin mode beforehand.
func NewRouter(opts Options) *gin.Engine {
	if opts.Runs == nil {
		opts.Runs = store.New(store.DefaultTTL)
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins...))
	router.Use(middleware.Logger(opts.Logger))
	router.SetHTMLTemplate(handlers.PageTemplate)

	runHandler := handlers.NewRunHandler(opts.Runs, opts.Defaults, opts.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/runs/:id", runHandler.ShowRun)

	api := router.Group("/api/v1")
	{
		api.GET("/defaults", runHandler.Defaults)
		api.POST("/runs", runHandler.CreateRun)
		api.GET("/runs/:id", runHandler.GetRun)
		api.GET("/runs/:id/ledger", runHandler.GetLedger)
		api.GET("/runs/:id/chart.svg", runHandler.GetChart(report.FormatSVG))
		api.GET("/runs/:id/chart.png", runHandler.GetChart(report.FormatPNG))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return router
}
