package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"table-checkbox-sync/internal/middleware"
	windowHTTP "table-checkbox-sync/internal/window/delivery/http"
	"table-checkbox-sync/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw            middleware.Middleware
	windowHandler windowHTTP.Handler
	windows       WindowCounter
}

// WindowCounter reports how many windows are attached.
type WindowCounter interface {
	Len() int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware    middleware.Middleware
	WindowHandler windowHTTP.Handler
	Windows       WindowCounter // Optional, reported by /ready
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		windowHandler: cfg.WindowHandler,
		windows:       cfg.Windows,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.windowHandler == nil {
		return errors.New("window handler is required")
	}
	return nil
}
