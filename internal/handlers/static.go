package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tvshop_back_end/internal/assets"
)

const notFoundBody = "404 page not found"

// StaticHandler serves files by request path.
type StaticHandler struct {
	store assets.Store
	log   *zap.Logger
}

func NewStaticHandler(store assets.Store, log *zap.Logger) *StaticHandler {
	return &StaticHandler{store: store, log: log}
}

// Fallback serves the request path, it is meant for NoRoute.
func (h *StaticHandler) Fallback(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		notFound(c)
		return
	}
	h.serve(c, c.Request.URL.Path)
}

// Param serves the file named by a wildcard route parameter.
func (h *StaticHandler) Param(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serve(c, c.Param(name))
	}
}

func (h *StaticHandler) serve(c *gin.Context, name string) {
	f, err := h.store.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			notFound(c)
			return
		}
		h.log.Error("static asset unreadable", zap.String("path", name), zap.Error(err))
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	serveFile(c, f)
}

// serveFile streams f and closes it. Range and conditional requests are
// handled by http.ServeContent.
func serveFile(c *gin.Context, f *assets.File) {
	defer f.Close()
	if f.ContentType != "" {
		c.Header("Content-Type", f.ContentType)
	}
	http.ServeContent(c.Writer, c.Request, f.Name, f.ModTime, f.Content)
}

func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, notFoundBody)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
