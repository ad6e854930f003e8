package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	c := New("test-token", "sandbox")
	c.baseURL = srv.URL
	c.httpClient = srv.Client()
	return c
}

func TestCreatePayment(t *testing.T) {
	var gotReq CreatePaymentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"payment": map[string]any{
				"id":          "pay_123",
				"status":      "COMPLETED",
				"receipt_url": "https://squareup.com/receipt/pay_123",
			},
		})
	}))
	defer srv.Close()

	p, err := testClient(srv).CreatePayment(context.Background(), CreatePaymentRequest{
		IdempotencyKey: "key-1",
		SourceID:       "cnon:tok",
		LocationID:     "LOC1",
		AmountMoney:    Money{Amount: 2500, Currency: "USD"},
		Autocomplete:   true,
		Note:           "HOLI Gift — Missions",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_123", p.ID)
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, "https://squareup.com/receipt/pay_123", p.ReceiptURL)

	assert.Equal(t, "key-1", gotReq.IdempotencyKey)
	assert.Equal(t, int64(2500), gotReq.AmountMoney.Amount)
	assert.True(t, gotReq.Autocomplete)
}

func TestCreatePaymentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{
				{"category": "PAYMENT_METHOD_ERROR", "code": "CARD_DECLINED", "detail": "Card declined."},
			},
		})
	}))
	defer srv.Close()

	_, err := testClient(srv).CreatePayment(context.Background(), CreatePaymentRequest{SourceID: "cnon:tok"})
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusPaymentRequired, reqErr.StatusCode)
	assert.Equal(t, "Card declined.", reqErr.Detail())
	assert.Equal(t, "Card declined.", reqErr.Error())
}

func TestRegisterApplePayDomain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/apple-pay/domains", r.URL.Path)
		var body registerDomainRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "give.example.org", body.DomainName)
		json.NewEncoder(w).Encode(map[string]string{"status": "VERIFIED"})
	}))
	defer srv.Close()

	already, err := testClient(srv).RegisterApplePayDomain(context.Background(), "give.example.org")
	require.NoError(t, err)
	assert.False(t, already)
}

func TestRegisterApplePayDomainAlreadyRegistered(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
	}{
		{"conflict status", http.StatusConflict, "domain conflict"},
		{"detail match", http.StatusBadRequest, "Domain is already registered."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"errors": []map[string]string{{"detail": tt.detail}},
				})
			}))
			defer srv.Close()

			already, err := testClient(srv).RegisterApplePayDomain(context.Background(), "give.example.org")
			require.NoError(t, err)
			assert.True(t, already)
		})
	}
}

func TestRegisterApplePayDomainOtherError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{{"detail": "Insufficient permissions."}},
		})
	}))
	defer srv.Close()

	_, err := testClient(srv).RegisterApplePayDomain(context.Background(), "give.example.org")
	require.Error(t, err)
}

func TestEnvironmentSelectsHost(t *testing.T) {
	assert.Equal(t, sandboxBaseURL, New("t", "sandbox").baseURL)
	assert.Equal(t, productionBaseURL, New("t", "production").baseURL)
	assert.Equal(t, productionBaseURL, New("t", "").baseURL)
}
