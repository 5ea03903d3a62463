//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"bay-booking/internal/handler/api"
	"bay-booking/internal/infra/payment"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"
	"bay-booking/tests/common/httptest"
	commandsmock "bay-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec_handler_test"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	h := api.NewWebhookHandler(payment.NewWebhookVerifier(webhookSecret), s.mockCheckout)

	s.router.POST("/webhooks/stripe", h.Stripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) deliver(eventType, intentID, metadata string) int {
	payload := fmt.Sprintf(`{"id":"evt_1","object":"event","type":%q,"data":{"object":{"id":%q,"object":"payment_intent","metadata":%s}}}`,
		eventType, intentID, metadata)
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: []byte(payload), Secret: webhookSecret})
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", sp.Payload,
		map[string]string{"Stripe-Signature": sp.Header, "Content-Type": "application/json"})
	return rec.Code
}

func (s *WebhookHandlerTestSuite) TestStripe() {
	bookingID := uuid.New()
	md := fmt.Sprintf(`{"booking_id":%q}`, bookingID)

	s.Run("succeeded confirms the booking", func() {
		s.mockCheckout.EXPECT().HandlePaymentSucceeded(gomock.Any(), bookingID, "pi_1").
			Return(&commands.ConfirmResult{BookingID: bookingID}, nil)
		s.Equal(http.StatusOK, s.deliver("payment_intent.succeeded", "pi_1", md))
	})

	s.Run("expired hold is acknowledged", func() {
		s.mockCheckout.EXPECT().HandlePaymentSucceeded(gomock.Any(), bookingID, "pi_1").
			Return(nil, errs.Wrap(commands.ErrInvalidTransition, "cancelled"))
		s.Equal(http.StatusOK, s.deliver("payment_intent.succeeded", "pi_1", md))
	})

	s.Run("storage failure asks for a retry", func() {
		s.mockCheckout.EXPECT().HandlePaymentSucceeded(gomock.Any(), bookingID, "pi_1").
			Return(nil, errs.Wrap(commands.ErrDatabaseOperationFailed, "commit"))
		s.Equal(http.StatusInternalServerError, s.deliver("payment_intent.succeeded", "pi_1", md))
	})

	s.Run("failed payment is only logged", func() {
		s.Equal(http.StatusOK, s.deliver("payment_intent.payment_failed", "pi_2", md))
	})

	s.Run("unrelated event types are ignored", func() {
		s.Equal(http.StatusOK, s.deliver("charge.refunded", "ch_1", `{}`))
	})

	s.Run("intent without booking is acknowledged", func() {
		s.Equal(http.StatusOK, s.deliver("payment_intent.succeeded", "pi_3", `{}`))
	})

	s.Run("bad signature is rejected", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", []byte(`{"id":"evt_1"}`),
			map[string]string{"Stripe-Signature": "t=1,v1=deadbeef"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})
}
