package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/internal/usecase"
	"github.com/solrxtin/mprimo-core/pkg/httpx"
)

// maxEventBody — лимит тела POST /events.
const maxEventBody = 64 << 10

type Handler struct {
	carts     *usecase.CartService
	wishlists *usecase.WishlistService
	products  *usecase.ProductService
	orders    *usecase.OrderService
	events    *usecase.EventService
	log       ports.Logger
	timeout   time.Duration
}

func NewHandler(
	carts *usecase.CartService,
	wishlists *usecase.WishlistService,
	products *usecase.ProductService,
	orders *usecase.OrderService,
	events *usecase.EventService,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		carts:     carts,
		wishlists: wishlists,
		products:  products,
		orders:    orders,
		events:    events,
		log:       log,
		timeout:   timeout,
	}
}

// NewRouter — собирает маршруты и middleware.
// otelServiceName пустой → без otelgin-трейсинга.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cart := r.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.DELETE("", h.clearCart)
		cart.POST("/items", h.addCartItem)
		cart.DELETE("/items/:productId", h.removeCartItem)
	}

	wishlist := r.Group("/wishlist")
	{
		wishlist.GET("", h.getWishlist)
		wishlist.POST("/items", h.addWishlistItem)
		wishlist.DELETE("/items/:productId", h.removeWishlistItem)
	}

	r.GET("/products/popular", h.popularProducts)
	r.GET("/products/:id", h.getProduct)

	orders := r.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/:id", h.getOrder)
		orders.POST("/:id/cancel", h.cancelOrder)
	}

	r.POST("/events", h.trackEvent)

	return r
}

// reqContext — контекст запроса с опциональным таймаутом хендлера.
func (h *Handler) reqContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// userID — идентификация вызывающего; аутентификация живёт уровнем выше
// (gateway), сюда пользователь приходит заголовком.
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-User-ID header"})
		return "", false
	}
	return id, true
}

// ---- cart ----

func (h *Handler) getCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	items, err := h.carts.Items(ctx, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type addCartItemRequest struct {
	ProductID  string `json:"product_id"`
	VariantSKU string `json:"variant_sku"`
	OptionID   string `json:"option_id"`
	Quantity   int    `json:"quantity"`
}

func (h *Handler) addCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	item, err := h.carts.Add(ctx, uid, req.ProductID, req.VariantSKU, req.OptionID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	if err := h.carts.Remove(ctx, uid, c.Param("productId"), c.Query("variant_sku")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) clearCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	if err := h.carts.Clear(ctx, uid); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- wishlist ----

func (h *Handler) getWishlist(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	items, err := h.wishlists.Items(ctx, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type addWishlistItemRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) addWishlistItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req addWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	item, err := h.wishlists.Add(ctx, uid, req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) removeWishlistItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	if err := h.wishlists.Remove(ctx, uid, c.Param("productId")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- products ----

func (h *Handler) getProduct(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	p, err := h.products.Get(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) popularProducts(c *gin.Context) {
	limit := 10
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil {
		limit = httpx.ClampInt(v, 1, 50)
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	products, err := h.products.Popular(ctx, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ---- orders ----

type createOrderRequest struct {
	AddressID     string `json:"address_id"`
	PaymentMethod string `json:"payment_method"`
}

func (h *Handler) createOrder(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	order, err := h.orders.Create(ctx, uid, req.AddressID, req.PaymentMethod)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) getOrder(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	order, err := h.orders.Get(ctx, c.Param("id"), uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) cancelOrder(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	order, err := h.orders.Cancel(ctx, c.Param("id"), uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ---- events ----

// trackEvent — принимает то же событие, что и Kafka-топик,
// тем же строгим декодером.
func (h *Handler) trackEvent(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEventBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}
	ctx, cancel := h.reqContext(c)
	defer cancel()

	if err := h.events.IngestEvent(ctx, raw); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// ---- error mapping ----

// writeError — единая проекция доменных ошибок на HTTP-статусы.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var stockErr *domain.InsufficientStockError
	var payErr *domain.PaymentError
	var transErr *domain.TransitionError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductName,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transErr):
		c.JSON(http.StatusConflict, gin.H{
			"error": transErr.Error(),
			"from":  transErr.From,
			"to":    transErr.To,
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &payErr):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":     payErr.Error(),
			"retryable": payErr.Retryable,
		})
	case errors.Is(err, domain.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "retryable": false})
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrLockNotAcquired):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "resource is busy, try again"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request timed out"})
	default:
		h.log.Errorf(ctx, "request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
