package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tvshop_back_end/internal/assets"
	"tvshop_back_end/internal/catalog"
	"tvshop_back_end/internal/handlers"
	"tvshop_back_end/internal/middleware"
)

type Deps struct {
	Catalog *catalog.Store
	// Site holds the page documents and every other static file.
	Site assets.Store
	// Images serves /images/*. Defaults to Site.
	Images       assets.Store
	RateLimit    gin.HandlerFunc
	MaxBodyBytes int64
	Log          *zap.Logger
}

// NewEngine builds the storefront router with its middleware stack.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(d.Log), middleware.CORS())
	RegisterRoutes(r, d)
	return r
}

// RegisterRoutes wires pages first, then the API, then static files.
func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	images := d.Images
	if images == nil {
		images = subStore{store: d.Site, dir: "images"}
	}

	// Pages
	pages := handlers.NewPageHandler(d.Site, d.Log)
	for _, p := range handlers.Pages {
		for _, alias := range p.Aliases {
			r.GET(alias, pages.Serve)
			r.HEAD(alias, pages.Serve)
		}
	}

	r.GET("/health", handlers.Health)

	// API
	products := handlers.NewCatalogHandler(d.Catalog)
	checkout := handlers.NewCheckoutHandler(d.Log, d.MaxBodyBytes)

	api := r.Group("/api")
	if d.RateLimit != nil {
		api.Use(d.RateLimit)
	}
	api.GET("/products", products.ListProducts)
	api.GET("/products/:id", products.GetProduct)
	api.POST("/checkout", checkout.SubmitOrder)

	// Static
	img := handlers.NewStaticHandler(images, d.Log)
	r.GET("/images/*filepath", img.Param("filepath"))
	r.HEAD("/images/*filepath", img.Param("filepath"))

	r.NoRoute(handlers.NewStaticHandler(d.Site, d.Log).Fallback)
}
