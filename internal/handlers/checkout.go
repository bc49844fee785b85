package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tvshop_back_end/internal/middleware"
	"tvshop_back_end/internal/models"
)

const orderReceived = "Order received on backend!"

var (
	errInvalidJSON = errors.New("invalid JSON body")
	errNotStrict   = errors.New("JSON body must be an object or an array")
)

// CheckoutHandler acknowledges orders. Nothing is stored and no payment is
// taken, the order is only logged.
type CheckoutHandler struct {
	log     *zap.Logger
	maxBody int64
}

func NewCheckoutHandler(log *zap.Logger, maxBody int64) *CheckoutHandler {
	return &CheckoutHandler{log: log, maxBody: maxBody}
}

func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	raw, err := h.readOrder(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request entity too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	// Arrays and odd shapes are still accepted, they just log nothing.
	_ = json.Unmarshal(raw, &order)

	fields := []zap.Field{
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		rawField("customer", order.Customer),
		rawField("cart", order.Cart),
	}
	if s, ok := order.Summary(); ok {
		if s.Count != nil {
			fields = append(fields, zap.Int("cart_count", *s.Count))
		}
		if s.Total != nil {
			fields = append(fields, zap.Float64("cart_total", *s.Total))
		}
	}
	h.log.Info("🧾 new checkout request received", fields...)

	c.JSON(http.StatusOK, models.CheckoutResponse{
		Success: true,
		Message: orderReceived,
		Order:   raw,
	})
}

// readOrder returns the request body as JSON. Only application/json bodies
// are parsed, anything else and an empty body count as {}.
func (h *CheckoutHandler) readOrder(c *gin.Context) (json.RawMessage, error) {
	empty := json.RawMessage(`{}`)
	if c.ContentType() != gin.MIMEJSON || c.Request.Body == nil {
		return empty, nil
	}

	body := c.Request.Body
	if h.maxBody > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.maxBody)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return empty, nil
	}
	if !json.Valid(data) {
		return nil, errInvalidJSON
	}
	if data[0] != '{' && data[0] != '[' {
		return nil, errNotStrict
	}
	return json.RawMessage(data), nil
}

func rawField(key string, v json.RawMessage) zap.Field {
	if len(v) == 0 {
		return zap.Skip()
	}
	return zap.String(key, string(v))
}
