package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-planner/internal/dto/request"
	"trip-planner/internal/dto/response"
	"trip-planner/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPayment struct {
	confirmation *response.PaymentConfirmationResponse
	err          error
}

func (s *stubPayment) ProcessPayment(context.Context, *request.ProcessPaymentRequest) (*response.PaymentConfirmationResponse, error) {
	return s.confirmation, s.err
}

func (s *stubPayment) PaymentMethods() []response.PaymentMethodResponse {
	return []response.PaymentMethodResponse{{Name: "CREDIT_CARD", RequiresCard: true}}
}

func payBody() string {
	return `{
		"itinerary": {"destination":"Paris","transport_type":"Bus","hotel_name":"Budget Inn Paris","total_cost":325},
		"method": "CREDIT_CARD",
		"card_number": "4111111111111234",
		"card_holder_name": "Ada Lovelace",
		"email": "ada@example.com"
	}`
}

func doPayRequest(t *testing.T, payment usecase.PaymentService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewPaymentHandler(payment, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/pay", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)
	return rec
}

func TestProcessPaymentHandler_Success(t *testing.T) {
	payment := &stubPayment{
		confirmation: &response.PaymentConfirmationResponse{
			PaymentID:        "PAY-1",
			TransactionID:    "TXN-1",
			BookingReference: "BK10001",
			ConfirmationCode: "CONF-1001",
			Amount:           325,
			Status:           "SUCCESS",
		},
	}

	rec := doPayRequest(t, payment, payBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status bool                                 `json:"status"`
		Data   response.PaymentConfirmationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, 325.0, body.Data.Amount)
	assert.Equal(t, "BK10001", body.Data.BookingReference)
}

func TestProcessPaymentHandler_InvalidBody(t *testing.T) {
	rec := doPayRequest(t, &stubPayment{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessPaymentHandler_InvalidRequest(t *testing.T) {
	payment := &stubPayment{err: fmt.Errorf("%w: Email: Invalid email format", usecase.ErrInvalidPaymentRequest)}

	rec := doPayRequest(t, payment, payBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessPaymentHandler_Declined(t *testing.T) {
	payment := &stubPayment{err: fmt.Errorf("%w: payment gateway declined transaction", usecase.ErrPaymentDeclined)}

	rec := doPayRequest(t, payment, payBody())
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "declined")
}

func TestGetPaymentMethodsHandler(t *testing.T) {
	handler := NewPaymentHandler(&stubPayment{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/payment-methods", nil)
	rec := httptest.NewRecorder()
	handler.GetPaymentMethods(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CREDIT_CARD")
}
