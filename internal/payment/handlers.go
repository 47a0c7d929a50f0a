package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/karameloo/pricing-api/internal/common"
	"github.com/karameloo/pricing-api/internal/obs"
)

// Handler exposes the checkout payload endpoint.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type payloadReq struct {
	Amount *decimal.Decimal `json:"amount"`
	TxID   string           `json:"txid" validate:"omitempty,printascii,max=64"`
}

// CreatePayload handles POST /api/v1/payments/payload.
func (h *Handler) CreatePayload(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "PAYMENT_NOT_CONFIGURED", "payment handler unavailable", nil)
		return
	}
	var req payloadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid payload request", err.Error())
			return
		}
	}
	out, err := h.Svc.Encode(EncodeInput{Amount: req.Amount, TxID: req.TxID})
	if err != nil {
		if errors.Is(err, ErrNonPositiveAmount) {
			countPayload("invalid_amount")
		} else {
			countPayload("error")
		}
		common.JSONFromError(w, err)
		return
	}
	countPayload("ok")
	common.JSON(w, http.StatusCreated, map[string]any{"data": out})
}

func countPayload(result string) {
	if obs.PaymentPayloadTotal != nil {
		obs.PaymentPayloadTotal.WithLabelValues(result).Inc()
	}
}
