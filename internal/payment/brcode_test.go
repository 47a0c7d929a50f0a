package payment

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestEncodeStructure(t *testing.T) {
	p := Payload{
		Key:          "pix@demo",
		MerchantName: "Karameloo",
		MerchantCity: "SAO PAULO",
		Amount:       amt("19.90"),
		TxID:         "ORD1",
	}
	out := Encode(p)

	require.True(t, strings.HasPrefix(out, "000201"+"010212"), "format indicator and initiation method")
	require.Contains(t, out, "26300014BR.GOV.BCB.PIX0108pix@demo")
	require.Contains(t, out, "52040000")
	require.Contains(t, out, "5303986")
	require.Contains(t, out, "540519.90")
	require.Contains(t, out, "5802BR")
	require.Contains(t, out, "5909Karameloo")
	require.Contains(t, out, "6009SAO PAULO")
	require.Contains(t, out, "62080504ORD1")

	crcIdx := strings.LastIndex(out, "6304")
	require.Equal(t, len(out)-8, crcIdx, "checksum tag is the final field")
	require.Regexp(t, regexp.MustCompile(`^[0-9A-F]{4}$`), out[crcIdx+4:])
	require.True(t, VerifyChecksum(out))
}

func TestEncodeOmitsAmountWhenAbsent(t *testing.T) {
	p := Payload{Key: "pix@demo", MerchantName: "Karameloo", MerchantCity: "SAO PAULO"}
	out := Encode(p)
	require.NotContains(t, out, "5405")
	require.True(t, VerifyChecksum(out))
}

func TestEncodeTxIDPlaceholder(t *testing.T) {
	out := Encode(Payload{Key: "k@x", MerchantName: "N", MerchantCity: "C"})
	require.Contains(t, out, "62070503***")
}

func TestEncodeTruncatesNameAndCity(t *testing.T) {
	out := Encode(Payload{
		Key:          "k@x",
		MerchantName: strings.Repeat("A", 40),
		MerchantCity: strings.Repeat("B", 40),
	})
	require.Contains(t, out, "5925"+strings.Repeat("A", 25))
	require.NotContains(t, out, strings.Repeat("A", 26))
	require.Contains(t, out, "6015"+strings.Repeat("B", 15))
	require.NotContains(t, out, strings.Repeat("B", 16))
	require.True(t, VerifyChecksum(out))
}

func TestEncodeTruncatesOnRunes(t *testing.T) {
	out := Encode(Payload{
		Key:          "k@x",
		MerchantName: strings.Repeat("ã", 30),
		MerchantCity: "São João da Boa Vista",
	})
	require.True(t, utf8.ValidString(out))
	require.Contains(t, out, "5950"+strings.Repeat("ã", 25), "25 two-byte runes make a 50-byte field")
	require.NotContains(t, out, strings.Repeat("ã", 26))
	require.Contains(t, out, "São João da Boa")
	require.True(t, VerifyChecksum(out))
}

func TestVerifyChecksumDetectsTamper(t *testing.T) {
	out := Encode(Payload{Key: "pix@demo", MerchantName: "Karameloo", MerchantCity: "SAO PAULO", Amount: amt("5.00")})
	require.True(t, VerifyChecksum(out))

	tampered := strings.Replace(out, "5.00", "9.00", 1)
	require.False(t, VerifyChecksum(tampered))

	require.False(t, VerifyChecksum("too short"))
}

func TestChecksumHexKnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE of "123456789" is 0x29B1.
	require.Equal(t, "29B1", ChecksumHex("123456789"))
}

func TestQRImageURL(t *testing.T) {
	u := QRImageURL("0002 01&x=1")
	require.True(t, strings.HasPrefix(u, "https://api.qrserver.com/v1/create-qr-code/?size=240x240&data="))
	require.NotContains(t, u, " ")
	require.NotContains(t, u, "+")
	require.Contains(t, u, "%20")
	require.Contains(t, u, "%26")
}
