package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/holi/give-server/internal/interfaces"
	"github.com/holi/give-server/internal/models"
	"github.com/holi/give-server/internal/square"
	"github.com/holi/give-server/internal/telemetry"
)

type AdminHandler struct {
	processor interfaces.Processor
}

func NewAdminHandler(processor interfaces.Processor) *AdminHandler {
	return &AdminHandler{processor: processor}
}

// RegisterAppleDomain registers the current host with the processor for
// Apple Pay. Idempotent: an already-registered outcome is success.
func (h *AdminHandler) RegisterAppleDomain(c *gin.Context) {
	domain := hostDomain(c)
	if domain == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{OK: false, Error: "cannot detect host"})
		return
	}

	already, err := h.processor.RegisterApplePayDomain(c.Request.Context(), domain)
	if err != nil {
		telemetry.Logger.Error("apple pay domain registration failed",
			zap.String("domain", domain), zap.Error(err))
		telemetry.DomainRegistrations.WithLabelValues("error").Inc()

		// Prefer the processor's own detail; never internal error text.
		msg := "Apple Pay register error"
		var reqErr *square.RequestError
		if errors.As(err, &reqErr) {
			if d := reqErr.Detail(); d != "" {
				msg = d
			}
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{OK: false, Error: msg})
		return
	}

	telemetry.Logger.Info("apple pay domain registered",
		zap.String("domain", domain), zap.Bool("already", already))
	telemetry.DomainRegistrations.WithLabelValues("ok").Inc()

	resp := gin.H{"ok": true, "domain": domain}
	if already {
		resp["already"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// hostDomain prefers the forwarded host behind a proxy, then the Host
// header; port stripped, lowercased.
func hostDomain(c *gin.Context) string {
	h := c.GetHeader("X-Forwarded-Host")
	if h == "" {
		h = c.Request.Host
	}
	h = strings.TrimSpace(strings.Split(h, ",")[0])
	if i := strings.LastIndex(h, ":"); i != -1 {
		h = h[:i]
	}
	return strings.ToLower(h)
}
