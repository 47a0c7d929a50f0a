package payment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/karameloo/pricing-api/internal/payment"
)

type payloadResponse struct {
	Data struct {
		Payload string `json:"payload"`
		CRC     string `json:"crc"`
		QRURL   string `json:"qrUrl"`
		TxID    string `json:"txid"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newHandler() *payment.Handler {
	return &payment.Handler{
		Svc:      &payment.Service{Key: "pix@demo", MerchantName: "Karameloo", MerchantCity: "SAO PAULO"},
		Validate: validator.New(),
	}
}

func postPayload(t *testing.T, h *payment.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payload", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePayload(rec, req)
	return rec
}

func TestCreatePayload(t *testing.T) {
	rec := postPayload(t, newHandler(), `{"amount":"19.90","txid":"ORD-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp payloadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "ORD1", resp.Data.TxID)
	require.Contains(t, resp.Data.Payload, "540519.90")
	require.True(t, strings.HasSuffix(resp.Data.Payload, "6304"+resp.Data.CRC))
	require.True(t, payment.VerifyChecksum(resp.Data.Payload))
	require.Contains(t, resp.Data.QRURL, "api.qrserver.com")
}

func TestCreatePayloadOpenAmount(t *testing.T) {
	rec := postPayload(t, newHandler(), `{}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp payloadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotContains(t, resp.Data.Payload, "5405")
	require.NotEmpty(t, resp.Data.TxID)
}

func TestCreatePayloadNonPositiveAmount(t *testing.T) {
	for _, body := range []string{`{"amount":"0"}`, `{"amount":"-3.50"}`} {
		rec := postPayload(t, newHandler(), body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)

		var resp errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, "PAYMENT_AMOUNT_INVALID", resp.Error.Code)
	}
}

func TestCreatePayloadBadBody(t *testing.T) {
	rec := postPayload(t, newHandler(), `{"amount":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
