package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/holi/give-server/internal/donation"
	"github.com/holi/give-server/internal/interfaces"
	"github.com/holi/give-server/internal/models"
	"github.com/holi/give-server/internal/square"
	"github.com/holi/give-server/internal/telemetry"
)

var currencyShape = regexp.MustCompile(`^[A-Z]{3}$`)

type PaymentHandler struct {
	processor  interfaces.Processor
	locationID string
}

func NewPaymentHandler(processor interfaces.Processor, locationID string) *PaymentHandler {
	return &PaymentHandler{processor: processor, locationID: locationID}
}

// CreatePayment handles POST /api/pay: validate, mint a fresh idempotency
// key, call the processor, then redirect or answer JSON.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)

	var req models.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rejected(c, "invalid request body")
		return
	}

	if msg, ok := validatePayRequest(&req); !ok {
		rejected(c, msg)
		return
	}

	// No PII in logs: amount, currency and fund only.
	telemetry.Logger.Info("creating payment",
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("fund", req.FundLabel),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
	)

	// A retried client submission is a new payment attempt: new key each call.
	idempotencyKey := uuid.New().String()

	locationID := h.locationID
	if req.LocationID != "" {
		locationID = req.LocationID
	}

	note := "HOLI Gift"
	if req.FundLabel != "" {
		note = fmt.Sprintf("HOLI Gift — %s", req.FundLabel)
	}

	payment, err := h.processor.CreatePayment(ctx, square.CreatePaymentRequest{
		IdempotencyKey:    idempotencyKey,
		SourceID:          req.SourceID,
		LocationID:        locationID,
		AmountMoney:       square.Money{Amount: req.Amount, Currency: req.Currency},
		Autocomplete:      true,
		Note:              note,
		BuyerEmailAddress: req.BuyerEmail,
		ReferenceID:       req.Fund,
	})
	if err != nil {
		status := http.StatusInternalServerError
		msg := "payment error"
		var reqErr *square.RequestError
		if errors.As(err, &reqErr) {
			status = http.StatusBadRequest
			if d := reqErr.Detail(); d != "" {
				msg = d
			}
		}
		telemetry.Logger.Error("payment creation failed", zap.Error(err))
		telemetry.PaymentAttempts.WithLabelValues("processor_error").Inc()
		c.JSON(status, models.ErrorResponse{OK: false, Error: msg})
		return
	}

	telemetry.Logger.Info("payment created",
		zap.String("payment_id", payment.ID),
		zap.String("status", payment.Status),
	)
	telemetry.PaymentAttempts.WithLabelValues("accepted").Inc()

	if payment.Status == square.StatusCompleted && wantsHTML(c) {
		q := url.Values{}
		q.Set("paymentId", payment.ID)
		if payment.ReceiptURL != "" {
			q.Set("receiptUrl", payment.ReceiptURL)
		}
		c.Redirect(http.StatusSeeOther, "/payment-success?"+q.Encode())
		return
	}

	c.JSON(http.StatusOK, models.PayResponse{
		OK:         true,
		PaymentID:  payment.ID,
		Status:     payment.Status,
		ReceiptURL: payment.ReceiptURL,
	})
}

// validatePayRequest applies the request-shape rules; nothing reaches the
// processor when any of them fails.
func validatePayRequest(req *models.PayRequest) (string, bool) {
	if req.SourceID == "" {
		return "missing sourceId", false
	}
	if req.Amount < donation.MinAmountCents || req.Amount > donation.MaxAmountCents {
		return "amount must be between 100 and 1000000 cents", false
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
	if !currencyShape.MatchString(req.Currency) {
		return "invalid currency", false
	}
	if req.BuyerEmail != "" && !donation.ValidEmail(req.BuyerEmail) {
		return "invalid buyerEmail", false
	}
	return "", true
}

func rejected(c *gin.Context, msg string) {
	telemetry.PaymentAttempts.WithLabelValues("rejected").Inc()
	c.JSON(http.StatusBadRequest, models.ErrorResponse{OK: false, Error: msg})
}

// wantsHTML reports whether the request came from a browser navigation
// rather than a fetch() call; only those get the redirect.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
