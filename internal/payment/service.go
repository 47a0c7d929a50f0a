package payment

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karameloo/pricing-api/internal/common"
)

// ErrNonPositiveAmount is returned when a caller supplies an amount that is
// zero or negative. The encoder itself would silently omit the amount tag;
// whether a free payment request makes sense is the caller's decision, so
// the service escalates instead of patching it.
var ErrNonPositiveAmount = common.NewAppError(
	"PAYMENT_AMOUNT_INVALID", "amount must be positive when present",
	http.StatusUnprocessableEntity, nil)

// Service fills deployment defaults (the merchant identity from config)
// into payment payload requests and enforces the amount policy.
type Service struct {
	Key          string
	MerchantName string
	MerchantCity string
}

// EncodeInput is a single payload request. Amount nil means "no amount":
// the resulting code lets the payer type the value.
type EncodeInput struct {
	Amount *decimal.Decimal
	TxID   string
}

// Encoded is the finished payment artifact handed back to the checkout UI.
type Encoded struct {
	Payload string `json:"payload"`
	CRC     string `json:"crc"`
	QRURL   string `json:"qrUrl"`
	TxID    string `json:"txid"`
}

// Encode builds the BR Code for the input. A missing transaction id gets a
// generated one so every payment stays traceable.
func (s *Service) Encode(in EncodeInput) (Encoded, error) {
	if in.Amount != nil && !in.Amount.IsPositive() {
		return Encoded{}, ErrNonPositiveAmount
	}
	txid := NormalizeTxID(in.TxID)
	if txid == "" {
		txid = GenerateTxID()
	}
	encoded := Encode(Payload{
		Key:          s.Key,
		MerchantName: s.MerchantName,
		MerchantCity: s.MerchantCity,
		Amount:       in.Amount,
		TxID:         txid,
	})
	return Encoded{
		Payload: encoded,
		CRC:     encoded[len(encoded)-4:],
		QRURL:   QRImageURL(encoded),
		TxID:    txid,
	}, nil
}

// NormalizeTxID strips everything but alphanumerics and caps the id at the
// BR Code limit of 25 characters.
func NormalizeTxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
		if b.Len() == maxTxIDLen {
			break
		}
	}
	return b.String()
}

// GenerateTxID derives a fresh transaction id from a UUID.
func GenerateTxID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if len(id) > maxTxIDLen {
		id = id[:maxTxIDLen]
	}
	return id
}
