// Package server boots the HTTP process: config, database, schema sync,
// middleware stack, listener.
package server

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/app/routes"
	"github.com/shashiranjanraj/tienda/config"
	"github.com/shashiranjanraj/tienda/pkg/database"
	"github.com/shashiranjanraj/tienda/pkg/logger"
	"github.com/shashiranjanraj/tienda/pkg/metrics"
	"github.com/shashiranjanraj/tienda/pkg/middleware"
	"github.com/shashiranjanraj/tienda/pkg/reqid"
	"github.com/shashiranjanraj/tienda/pkg/router"
)

// Models returns every model the schema sync manages.
func Models() []interface{} {
	return []interface{}{&models.Usuario{}, &models.Pedido{}}
}

// NewRouter builds the full middleware stack and API routes around the
// given database handle. The request ID must be injected before the
// access logger runs; metrics wrap the whole chain.
func NewRouter(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	// Prometheus endpoint stays outside the /api groups.
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, db)
	return r
}

// Start runs the blocking startup sequence. Any failure before the
// listener is up is returned and fatal.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	closeSink, err := logger.EnableMongoSink()
	if err != nil {
		return fmt.Errorf("server: mongo log sink: %w", err)
	}
	defer closeSink()

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := database.Sync(db, Models()...); err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	logger.Info("listening", "addr", addr, "env", config.AppEnv(), "driver", config.DatabaseDriver())
	return http.ListenAndServe(addr, NewRouter(db).Handler())
}
