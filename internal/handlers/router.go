package handlers

import (
	"net/http"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/config"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers/favorites"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers/reservations"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/middleware"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/store"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface. m may be nil, in which case nothing is
// instrumented and /metrics is not served.
func NewRouter(cfg config.Config, st *store.Memory, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	if m != nil {
		r.Use(middleware.Instrument(m))
	}
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	favH := favorites.NewHandler(st, cfg.DefaultUserID, m)
	resH := reservations.NewHandler(st, cfg.DefaultUserID, m)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/favorites", favH.List)
		api.POST("/favorites", favH.Update)

		api.GET("/reservations", resH.List)
		api.POST("/reservations", resH.Update)
	}
	return r
}
