package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tvshop_back_end/internal/assets"
	"tvshop_back_end/internal/cache"
	"tvshop_back_end/internal/catalog"
	"tvshop_back_end/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var site = map[string]string{
	"TV-shop.html":        "<h1>TV shop</h1>",
	"cart.html":           "<h1>Cart</h1>",
	"payment.html":        "<h1>Payment</h1>",
	"product.html":        "<h1>Product</h1>",
	"styles.css":          "h1{}",
	"images/hero-tv.jpeg": "jpeg",
}

func newTestEngine(t *testing.T, mutate ...func(*Deps)) *gin.Engine {
	t.Helper()
	root := t.TempDir()
	for name, content := range site {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	d := Deps{
		Catalog:      catalog.Default(),
		Site:         assets.NewDiskStore(root),
		MaxBodyBytes: 100 << 10,
		Log:          zap.NewNop(),
	}
	for _, m := range mutate {
		m(&d)
	}
	return NewEngine(d)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPages(t *testing.T) {
	r := newTestEngine(t)

	cases := map[string]string{
		"/":             "<h1>TV shop</h1>",
		"/cart":         "<h1>Cart</h1>",
		"/cart.html":    "<h1>Cart</h1>",
		"/payment":      "<h1>Payment</h1>",
		"/payment.html": "<h1>Payment</h1>",
		"/product":      "<h1>Product</h1>",
		"/product.html": "<h1>Product</h1>",
	}
	for path, want := range cases {
		w := get(r, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, want, w.Body.String(), path)
	}

	assert.Equal(t, get(r, "/cart").Body.Bytes(), get(r, "/cart.html").Body.Bytes())
}

func TestCatalogAPI(t *testing.T) {
	r := newTestEngine(t)

	w := get(r, "/api/products/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"id":1,"name":"Samsung 55\" Crystal 4K UHD Smart TV","price":54999,"category":"4k smart"}`, w.Body.String())

	w = get(r, "/api/products/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Product not found"}`, w.Body.String())

	w = get(r, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Samsung 55\" Crystal 4K UHD Smart TV","price":54999,"category":"4k smart"},
		{"id":2,"name":"LG 65\" 4K OLED evo Smart TV","price":129999,"category":"4k smart oled"}
	]`, w.Body.String())
}

func TestCheckout(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout",
		strings.NewReader(`{"customer":{"name":"A"},"cart":{"items":[],"total":0,"count":0}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"success":true,"message":"Order received on backend!","order":{"customer":{"name":"A"},"cart":{"items":[],"total":0,"count":0}}}`,
		w.Body.String())
}

func TestStaticFallthrough(t *testing.T) {
	r := newTestEngine(t)

	w := get(r, "/images/hero-tv.jpeg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	w = get(r, "/styles.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "h1{}", w.Body.String())

	w = get(r, "/TV-shop.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>TV shop</h1>", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(r, "/nowhere.html").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/images/nowhere.png").Code)
}

func TestSeparateImageStore(t *testing.T) {
	bucket := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bucket, "lg-oled.png"), []byte("from bucket"), 0o644))

	r := newTestEngine(t, func(d *Deps) { d.Images = assets.NewDiskStore(bucket) })

	w := get(r, "/images/lg-oled.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "from bucket", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(r, "/images/hero-tv.jpeg").Code)
}

func TestMissingPageIsServerError(t *testing.T) {
	r := NewEngine(Deps{
		Catalog: catalog.Default(),
		Site:    assets.NewDiskStore(t.TempDir()),
		Log:     zap.NewNop(),
	})

	assert.Equal(t, http.StatusInternalServerError, get(r, "/cart").Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/checkout", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	w := get(newTestEngine(t), "/api/products")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRateLimitOnAPIOnly(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	counter := cache.NewRedisCounter(client, "api_requests:")
	r := newTestEngine(t, func(d *Deps) {
		d.RateLimit = middleware.APIRateLimit(counter, 2, time.Minute, zap.NewNop())
	})

	assert.Equal(t, http.StatusOK, get(r, "/api/products").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/products/1").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/api/products").Code)

	assert.Equal(t, http.StatusOK, get(r, "/cart").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, get(r, "/api/products").Code)
}
