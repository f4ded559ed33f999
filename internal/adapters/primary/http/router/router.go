package router

import (
	"context"
	"net/http"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/handlers"
	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/middleware"
	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/web"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const APIPrefix = "/api/v1"

// Options controls the optional parts of the router.
type Options struct {
	// WebUI serves the embedded page at "/". Without it only the API and
	// health check are mounted.
	WebUI bool
	// Ping checks the backing store for /healthz. Nil means no store.
	Ping func(ctx context.Context) error
}

func New(h *handlers.Handler, opts Options) (*gin.Engine, error) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group(APIPrefix)
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		if opts.Ping != nil {
			if err := opts.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.WebUI {
		if err := web.Register(router); err != nil {
			return nil, err
		}
		log.Info("web UI enabled")
	} else {
		log.Info("web UI disabled, serving API only")
	}

	return router, nil
}
