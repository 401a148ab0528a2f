package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
	"github.com/ticketswapper/ticketswapper/services/marketplace/mocks"
)

func TestCreateOrderHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()
	ticketID := uuid.New()

	e := echo.New()
	requestBody := `{
		"ticket_id": "` + ticketID.String() + `",
		"amount": "1000",
		"seller_amount": "950",
		"platform_commission": "50"
	}`
	req := httptest.NewRequest(http.MethodPost, "/payments/orders", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(&models.OrderResponse{
			OrderID:       "order_abc",
			Amount:        100000,
			Currency:      "INR",
			RazorpayKeyID: "rzp_test_key",
			TicketID:      ticketID.String(),
		}, nil)

	// Act
	err := h.CreateOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "order_abc")
}

func TestCreateOrderHandler_MissingFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/orders", strings.NewReader(`{"amount": "1000"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(nil, &marketplace.MissingFieldsError{Fields: []string{"ticket_id", "seller_amount", "platform_commission"}})

	// Act
	err := h.CreateOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ticket_id")
}

func TestCreateOrderHandler_EmailNotConfirmed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/orders", strings.NewReader(`{"ticket_id": "abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(nil, marketplace.ErrEmailNotConfirmed)

	// Act
	err := h.CreateOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateOrderHandler_Unauthenticated(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := h.CreateOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPaymentHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()
	ticketID := uuid.New()

	e := echo.New()
	requestBody := `{
		"razorpay_payment_id": "pay_abc",
		"razorpay_order_id": "order_abc",
		"razorpay_signature": "sig",
		"ticket_id": "` + ticketID.String() + `"
	}`
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(&models.PaymentResult{
			Transaction: &models.Transaction{
				ID:     uuid.New(),
				Amount: decimal.NewFromInt(1000),
				Status: models.TransactionCompleted,
			},
			Ticket: &models.Ticket{
				ID:     ticketID,
				Status: models.TicketStatusSold,
			},
		}, nil)

	// Act
	err := h.VerifyPayment(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyPaymentHandler_EmptyBodyRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(nil, &marketplace.MissingFieldsError{Fields: []string{"razorpay_payment_id", "razorpay_order_id", "razorpay_signature", "ticket_id"}})

	// Act
	err := h.VerifyPayment(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "razorpay_signature")
}

func TestVerifyPaymentHandler_InvalidSignature(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(`{"razorpay_signature": "forged"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(nil, marketplace.ErrInvalidSignature)

	// Act
	err := h.VerifyPayment(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyPaymentHandler_AlreadySold(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	buyerID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(`{"razorpay_signature": "sig"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", buyerID)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), buyerID.String(), gomock.Any()).
		Return(nil, marketplace.ErrAlreadySold)

	// Act
	err := h.VerifyPayment(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
