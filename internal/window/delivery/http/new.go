package http

import (
	"github.com/gin-gonic/gin"

	"table-checkbox-sync/internal/window"
	"table-checkbox-sync/pkg/log"
)

// Handler is the public interface for the window HTTP delivery layer.
type Handler interface {
	Open(c *gin.Context)
	Close(c *gin.Context)
	Input(c *gin.Context)
	Change(c *gin.Context)
	Document(c *gin.Context)
	Sync(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc window.UseCase
}

// New creates a new HTTP handler for the window domain.
func New(l log.Logger, uc window.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
