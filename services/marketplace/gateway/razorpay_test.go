package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func gatewayConfig(baseURL string) *models.Config {
	return &models.Config{
		Razorpay: models.RazorpayConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "key-secret",
			WebhookSecret: "webhook-secret",
			BaseURL:       baseURL,
			Timeout:       5,
		},
	}
}

func TestVerifyPaymentSignature(t *testing.T) {
	gw := NewMarketplaceGW(gatewayConfig(""), nil, nil)

	valid := sign("order_abc|pay_abc", "key-secret")

	assert.True(t, gw.VerifyPaymentSignature("order_abc", "pay_abc", valid))
	assert.False(t, gw.VerifyPaymentSignature("order_abc", "pay_abc", "forged"))
	assert.False(t, gw.VerifyPaymentSignature("order_other", "pay_abc", valid))
	assert.False(t, gw.VerifyPaymentSignature("order_abc", "pay_abc", ""))
}

func TestVerifyWebhookSignature(t *testing.T) {
	gw := NewMarketplaceGW(gatewayConfig(""), nil, nil)

	body := []byte(`{"event":"payment.captured"}`)
	valid := sign(string(body), "webhook-secret")

	assert.True(t, gw.VerifyWebhookSignature(body, valid))
	assert.False(t, gw.VerifyWebhookSignature(body, "forged"))
	// signed with the wrong secret
	assert.False(t, gw.VerifyWebhookSignature(body, sign(string(body), "key-secret")))
}

func TestCreateOrder_SendsBasicAuthAndMinorUnits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "key-secret", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_abc","amount":100000,"currency":"INR","receipt":"rcpt_1","status":"created"}`))
	}))
	defer server.Close()

	gw := NewMarketplaceGW(gatewayConfig(server.URL), nil, nil)

	order, err := gw.CreateOrder(context.Background(), 100000, "INR", "rcpt_1")

	assert.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(100000), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewMarketplaceGW(gatewayConfig(server.URL), nil, nil)

	order, err := gw.CreateOrder(context.Background(), 100000, "INR", "rcpt_1")

	assert.Error(t, err)
	assert.Nil(t, order)
}
