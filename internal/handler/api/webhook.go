package api

import (
	"errors"
	"io"
	"net/http"

	"bookify/internal/handler/httperr"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	maxWebhookBodyBytes = 64 << 10
	stripeSignatureHdr  = "Stripe-Signature"
)

type WebhookHandler struct {
	cmds commands.PaymentEventCommands
}

func NewWebhookHandler(cmds commands.PaymentEventCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Verifies the signature and reconciles payment events. A 500 asks the processor to redeliver.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}

	handled, err := h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHdr))
	if err != nil {
		if errs.Is(err, commands.ErrSignatureVerification) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if !handled {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Event processing failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
