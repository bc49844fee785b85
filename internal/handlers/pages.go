package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tvshop_back_end/internal/assets"
)

// Page is a storefront document reachable under several paths.
type Page struct {
	Document string
	Aliases  []string
}

var Pages = []Page{
	{Document: "TV-shop.html", Aliases: []string{"/"}},
	{Document: "cart.html", Aliases: []string{"/cart", "/cart.html"}},
	{Document: "payment.html", Aliases: []string{"/payment", "/payment.html"}},
	{Document: "product.html", Aliases: []string{"/product", "/product.html"}},
}

// ResolvePage returns the document served for path.
func ResolvePage(path string) (string, bool) {
	for _, p := range Pages {
		for _, a := range p.Aliases {
			if a == path {
				return p.Document, true
			}
		}
	}
	return "", false
}

type PageHandler struct {
	store assets.Store
	log   *zap.Logger
}

func NewPageHandler(store assets.Store, log *zap.Logger) *PageHandler {
	return &PageHandler{store: store, log: log}
}

// Serve answers with the document of the matched route. A missing document
// is a server error, the storefront cannot work without it.
func (h *PageHandler) Serve(c *gin.Context) {
	doc, ok := ResolvePage(c.FullPath())
	if !ok {
		notFound(c)
		return
	}

	f, err := h.store.Open(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			h.log.Error("page document missing", zap.String("document", doc))
		} else {
			h.log.Error("page document unreadable", zap.String("document", doc), zap.Error(err))
		}
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	serveFile(c, f)
}
