package httpgin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/payment"
	"github.com/kirinyoku/adslot-go/internal/service/checkout"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	jsonContentType      = "application/json; charset=utf-8"
)

var (
	streamHeartbeat = 15 * time.Second
	openRangeEnd    = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func NewRouter(
	d Deps,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS(d.AllowOrigins))
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/availability", handleGetAvailability(d))
	r.GET("/availability/stream", handleAvailabilityStream(d, logger))
	r.GET("/alternative-zones", handleAlternativeZones(d))

	r.POST("/promo/preview", RateLimitMiddleware(d.PromoLimiter, logger), handlePromoPreview(d))

	r.POST("/checkout", RateLimitMiddleware(d.CheckoutLimiter, logger), handleCheckout(d, logger))
	r.POST("/checkout/quote", RateLimitMiddleware(d.CheckoutLimiter, logger), handleQuote(d))
	r.GET("/checkouts/:id", handleGetCheckout(d))
	r.POST("/checkouts/:id/cancel", handleCancelCheckout(d))

	r.GET("/reservations", handleListReservedDates(d))
	r.GET("/reservations/:id", handleGetReservation(d))

	r.POST("/payments/webhook", handlePaymentWebhook(d, logger))

	// Admin-API
	admin := r.Group("/admin", AdminTokenMiddleware(d.AdminToken))
	{
		admin.POST("/reservations/:id/release", handleReleaseReservation(d))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Slot availability of a zone
// @Param    zone  query  string  true   "Zip code"
// @Param    from  query  string  false  "First date (YYYY-MM-DD), defaults to today"
// @Param    to    query  string  false  "Last date (YYYY-MM-DD), defaults to the end of the booking window"
// @Success  200  {object}  AvailabilityResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /availability [get]
func handleGetAvailability(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		zone, ok := zoneQuery(c)
		if !ok {
			return
		}

		from, ok := dateQuery(c, "from", time.Time{})
		if !ok {
			return
		}
		to, ok := dateQuery(c, "to", openRangeEnd)
		if !ok {
			return
		}
		if !from.IsZero() && to.Before(from) {
			badRequest(c, "from must not be after to")
			return
		}

		r, err := d.Availability.QueryRange(c.Request.Context(), zone, from, to)
		if err != nil {
			respondErr(c, err)
			return
		}

		// ETag + Cache-Control 5s
		writeJSONWithCache(c, http.StatusOK, toAvailabilityResponse(r), "public, max-age=5", true)
	}
}

// @Summary  Stream occupancy changes of a zone
// @Param    zone  query  string  true  "Zip code"
// @Produce  text/event-stream
// @Success  200  {object}  ZoneChangedEvent
// @Failure  503  {object}  ErrorResponse
// @Router   /availability/stream [get]
func handleAvailabilityStream(d Deps, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		zone, ok := zoneQuery(c)
		if !ok {
			return
		}
		if d.Zones == nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "stream_unavailable"})
			return
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		events := make(chan domain.ZoneChange, 16)
		go func() {
			defer cancel()
			err := d.Zones.Subscribe(ctx, func(_ context.Context, ch domain.ZoneChange) {
				if ch.Zone != zone {
					return
				}
				select {
				case events <- ch:
				default:
				}
			})
			if err != nil && ctx.Err() == nil {
				logger.Warn("zone subscription ended",
					slog.String("zone", string(zone)),
					slog.String("error", err.Error()),
				)
			}
		}()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
		c.Writer.Flush()

		heartbeat := time.NewTicker(streamHeartbeat)
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ch := <-events:
				c.SSEvent("zone_changed", ZoneChangedEvent{Zone: string(ch.Zone), Dates: formatDates(ch.Dates)})
			case t := <-heartbeat.C:
				c.SSEvent("ping", t.Unix())
			}
			c.Writer.Flush()
		}
	}
}

// @Summary  Nearby zones with room on the given dates
// @Param    zone   query  string  true  "Zip code"
// @Param    dates  query  string  true  "Comma separated dates (YYYY-MM-DD)"
// @Success  200  {object}  AlternativesResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /alternative-zones [get]
func handleAlternativeZones(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		zone, ok := zoneQuery(c)
		if !ok {
			return
		}

		dates, err := parseDates(c.QueryArray("dates"))
		if err != nil || len(dates) == 0 {
			badRequest(c, "invalid_dates")
			return
		}

		alts, err := d.Alternates.Find(c.Request.Context(), zone, dates)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, AlternativesResponse{Alternatives: toAlternatives(alts)})
	}
}

// @Summary  Preview a promo code
// @Param    req body  PromoPreviewRequest true "payload"
// @Success  200 {object} PromoPreviewResponse
// @Failure  400 {object} ErrorResponse
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /promo/preview [post]
func handlePromoPreview(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PromoPreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		service := strings.TrimSpace(req.Service)
		if service == "" {
			service = d.Service
		}

		res, err := d.Promos.Evaluate(c.Request.Context(), req.Code, req.SubtotalCents, service)
		if err != nil {
			respondErr(c, err)
			return
		}

		if !res.Valid {
			c.JSON(http.StatusOK, PromoPreviewResponse{Valid: false, Reason: string(res.Reason)})
			return
		}

		discount := res.DiscountCents
		c.JSON(http.StatusOK, PromoPreviewResponse{Valid: true, Code: res.Code, DiscountCents: &discount})
	}
}

// @Summary  Quote a booking
// @Param    req body  CheckoutRequest true "payload"
// @Success  200 {object} QuoteDTO
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse "unknown ad"
// @Failure  422 {object} ErrorResponse "window exceeded / promo invalid"
// @Router   /checkout/quote [post]
func handleQuote(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindCheckoutRequest(c)
		if !ok {
			return
		}

		q, err := d.Checkout.Quote(c.Request.Context(), req)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, toQuote(q))
	}
}

// @Summary  Check out a booking (idempotent)
// @Param    req body  CheckoutRequest true "payload"
// @Param    Idempotency-Key header string false "client generated key"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} CheckoutResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse "unknown ad"
// @Failure  409 {object} SlotFullResponse "slot full / dates already held / idem in progress"
// @Failure  422 {object} ErrorResponse "window exceeded / promo invalid"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Failure  503 {object} ErrorResponse "transient conflict"
// @Router   /checkout [post]
func handleCheckout(d Deps, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindCheckoutRequest(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()

		idemKey := strings.TrimSpace(c.GetHeader(headerIdempotencyKey))
		owned := false
		if d.Idempotency != nil && idemKey != "" {
			stored, acquired, err := d.Idempotency.Begin(ctx, idemKey)
			switch {
			case err != nil:
				logger.Warn("idempotency store unavailable",
					slog.String("idempotency_key", idemKey),
					slog.String("error", err.Error()),
				)
			case stored != nil:
				c.Header(headerIdempotencyKey, idemKey)
				c.Data(stored.Status, jsonContentType, stored.Body)
				return
			case !acquired:
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency_key_in_progress"})
				return
			default:
				owned = true
			}
		}

		status := http.StatusCreated
		var payload any

		res, err := d.Checkout.Checkout(ctx, req)
		if err != nil {
			e := classify(err)
			status, payload = e.status, e.body
			if e.status >= http.StatusInternalServerError {
				_ = c.Error(err)
			}
			if e.retryAfter != "" {
				c.Header("Retry-After", e.retryAfter)
			}
		} else {
			payload = toCheckoutResponse(res)
		}

		body, err := json.Marshal(payload)
		if err != nil {
			_ = c.Error(err)
			status, body = http.StatusInternalServerError, []byte(`{"error":"internal_error"}`)
		}

		if owned {
			finishIdempotent(context.WithoutCancel(ctx), d.Idempotency, idemKey, status, body, logger)
			c.Header(headerIdempotencyKey, idemKey)
		}

		c.Data(status, jsonContentType, body)
	}
}

// @Summary  Get checkout
// @Param    id  path  string  true  "Checkout ID (uuid)"
// @Success  200 {object} CheckoutDTO
// @Failure  404 {object} ErrorResponse
// @Router   /checkouts/{id} [get]
func handleGetCheckout(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		co, err := d.Checkout.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, toCheckoutDTO(co))
	}
}

// @Summary  Cancel an unpaid checkout
// @Param    id  path  string  true  "Checkout ID (uuid)"
// @Success  200 {object} CheckoutDTO
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "no longer awaiting payment"
// @Router   /checkouts/{id}/cancel [post]
func handleCancelCheckout(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		co, err := d.Checkout.Cancel(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, toCheckoutDTO(co))
	}
}

// @Summary  Reserved dates, optionally for one ad
// @Param    ad_id query string false "Ad ID"
// @Param    from  query string false "First date (YYYY-MM-DD)"
// @Param    to    query string false "Last date (YYYY-MM-DD)"
// @Success  200 {object} ReservedDatesResponse
// @Failure  400 {object} ErrorResponse
// @Router   /reservations [get]
func handleListReservedDates(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		adID := strings.TrimSpace(c.Query("ad_id"))

		from, ok := dateQuery(c, "from", time.Time{})
		if !ok {
			return
		}
		to, ok := dateQuery(c, "to", time.Time{})
		if !ok {
			return
		}
		if !from.IsZero() && !to.IsZero() && to.Before(from) {
			badRequest(c, "from must not be after to")
			return
		}

		dates, err := d.Reservations.ReservedDates(c.Request.Context(), adID, from, to)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, ReservedDatesResponse{AdID: adID, Dates: formatDates(dates)})
	}
}

// @Summary  Get a reservation
// @Param    id  path  string  true  "Reservation ID (uuid)"
// @Success  200 {object} ReservationDTO
// @Failure  404 {object} ErrorResponse
// @Router   /reservations/{id} [get]
func handleGetReservation(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		res, err := d.Reservations.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, toReservationDTO(res))
	}
}

// @Summary  Payment provider webhook
// @Param    X-Signature header string true "hex HMAC-SHA256 of the body"
// @Success  200 {object} WebhookResponse
// @Failure  401 {object} ErrorResponse "bad signature"
// @Failure  410 {object} ErrorResponse "payment expired"
// @Router   /payments/webhook [post]
func handlePaymentWebhook(d Deps, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			badRequest(c, "unreadable body")
			return
		}

		ev, err := d.Payments.ParseEvent(body, c.GetHeader(payment.SignatureHeader))
		if err != nil {
			respondErr(c, err)
			return
		}

		if ev.Type != payment.EventPaymentSucceeded {
			logger.Debug("payment event ignored", slog.String("type", ev.Type))
			c.JSON(http.StatusOK, WebhookResponse{Received: true, Ignored: true})
			return
		}

		co, err := d.Checkout.ConfirmPayment(c.Request.Context(), ev.PaymentHandle)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, WebhookResponse{
			Received:   true,
			CheckoutID: co.ID.String(),
			Status:     string(co.Status),
		})
	}
}

// @Summary  Release reservation dates
// @Param    id  path  string  true  "Reservation ID (uuid)"
// @Param    req body  ReleaseRequest false "dates to release, all when omitted"
// @Success  200 {object} ReleaseResponse
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "already released"
// @Router   /admin/reservations/{id}/release [post]
func handleReleaseReservation(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		var req ReleaseRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, err.Error())
			return
		}

		dates, err := parseDates(req.Dates)
		if err != nil {
			badRequest(c, "invalid_dates")
			return
		}

		res, released, err := d.Reservations.Release(c.Request.Context(), id, dates)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, ReleaseResponse{
			ReservationID: res.ID.String(),
			Status:        string(res.Status),
			Released:      formatDates(released),
			Remaining:     formatDates(res.Dates),
		})
	}
}

// --- Helpers ---

func bindCheckoutRequest(c *gin.Context) (checkout.Request, bool) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return checkout.Request{}, false
	}

	dates, err := parseDates(req.Dates)
	if err != nil || len(dates) == 0 {
		badRequest(c, "invalid_dates")
		return checkout.Request{}, false
	}

	return checkout.Request{
		AdID:      strings.TrimSpace(req.AdID),
		Dates:     dates,
		PromoCode: req.PromoCode,
	}, true
}

// finishIdempotent stores a final answer for replay. Server failures free the key instead.
func finishIdempotent(
	ctx context.Context,
	store IdempotencyStore,
	idemKey string,
	status int,
	body []byte,
	logger *slog.Logger,
) {
	var err error
	if status >= http.StatusInternalServerError {
		err = store.Abort(ctx, idemKey)
	} else {
		err = store.Save(ctx, idemKey, status, body)
	}
	if err != nil {
		logger.Warn("idempotency store update failed",
			slog.String("idempotency_key", idemKey),
			slog.String("error", err.Error()),
		)
	}
}

func zoneQuery(c *gin.Context) (domain.Zone, bool) {
	zone := strings.TrimSpace(c.Query("zone"))
	if zone == "" {
		badRequest(c, "zone is required")
		return "", false
	}
	return domain.Zone(zone), true
}

func dateQuery(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return def, true
	}

	t, err := domain.ParseDate(s)
	if err != nil {
		badRequest(c, "invalid "+name)
		return time.Time{}, false
	}
	return t, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
