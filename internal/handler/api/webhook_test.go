//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"bookify/internal/handler/api"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/commands"
	"bookify/tests/common/httptest"
	commandsmock "bookify/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T) (*gin.Engine, *commandsmock.MockPaymentEventCommands) {
	router := newTestRouter(t)
	cmds := commandsmock.NewMockPaymentEventCommands(gomock.NewController(t))
	router.POST("/webhooks/stripe", api.NewWebhookHandler(cmds).Stripe)
	return router, cmds
}

func TestWebhookHandler(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	headers := map[string]string{"Stripe-Signature": "t=1,v1=abc"}

	t.Run("acknowledges processed events", func(t *testing.T) {
		router, cmds := newWebhookRouter(t)
		cmds.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").Return(true, nil)

		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/webhooks/stripe", payload, headers)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	})

	t.Run("bad signature is 400", func(t *testing.T) {
		router, cmds := newWebhookRouter(t)
		cmds.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errs.Mark(errors.New("no valid signature"), commands.ErrSignatureVerification))

		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/webhooks/stripe", payload, headers)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid signature")
	})

	t.Run("processing failure is 500 so the event is redelivered", func(t *testing.T) {
		router, cmds := newWebhookRouter(t)
		cmds.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/webhooks/stripe", payload, headers)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Event processing failed")
	})

	t.Run("oversized body is rejected before verification", func(t *testing.T) {
		router, _ := newWebhookRouter(t)
		big := bytes.Repeat([]byte("a"), 64<<10+1)

		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/webhooks/stripe", big, headers)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
