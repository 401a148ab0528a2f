package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
	"github.com/ticketswapper/ticketswapper/services/marketplace/mocks"
)

func TestWebhookHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	body := `{"event":"payment.failed"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
	req.Header.Set(headerWebhookSignature, "sig")
	req.Header.Set(headerWebhookEventID, "evt_1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ProcessWebhook(gomock.Any(), "evt_1", "sig", []byte(body)).
		Return(nil)

	// Act
	err := h.Webhook(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_MissingHeaders(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := h.Webhook(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(mockUC)

	body := `{"event":"payment.captured"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
	req.Header.Set(headerWebhookSignature, "forged")
	req.Header.Set(headerWebhookEventID, "evt_2")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ProcessWebhook(gomock.Any(), "evt_2", "forged", []byte(body)).
		Return(marketplace.ErrInvalidSignature)

	// Act
	err := h.Webhook(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
