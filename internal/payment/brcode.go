// Package payment builds PIX "copia e cola" payloads in the EMV BR Code
// tag-length-value layout that banking apps scan.
//
// One known layout quirk is reproduced on purpose: the point-of-initiation
// tag (01) is always "12" and the category/currency/country tags are always
// present, while the amount tag (54) is omitted when no amount is set.
// Whether that combination satisfies every scanner's field-presence rules
// for static codes is an open integration question; the byte layout here
// matches what production counterparties already accept.
package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// brCodeGUI is the fixed merchant-account GUI for PIX keys.
	brCodeGUI = "BR.GOV.BCB.PIX"

	// txidPlaceholder is encoded when no transaction id is supplied.
	txidPlaceholder = "***"

	maxNameLen = 25
	maxCityLen = 15
	maxTxIDLen = 25
)

// Payload carries the fields that end up inside an encoded BR Code.
type Payload struct {
	Key          string
	MerchantName string
	MerchantCity string
	// Amount is omitted from the code when nil or non-positive.
	Amount *decimal.Decimal
	TxID   string
}

// Encode renders the payload as a BR Code string terminated by its CRC16.
// It is pure and total: missing optional fields get documented fallbacks,
// never an error.
func Encode(p Payload) string {
	merchant := tlv("00", brCodeGUI) + tlv("01", p.Key)

	txid := truncate(p.TxID, maxTxIDLen)
	if txid == "" {
		txid = txidPlaceholder
	}
	additional := tlv("62", tlv("05", txid))

	s := tlv("00", "01") +
		tlv("01", "12") +
		tlv("26", merchant) +
		tlv("52", "0000") +
		tlv("53", "986")
	if p.Amount != nil && p.Amount.IsPositive() {
		s += tlv("54", p.Amount.StringFixed(2))
	}
	s += tlv("58", "BR") +
		tlv("59", truncate(p.MerchantName, maxNameLen)) +
		tlv("60", truncate(p.MerchantCity, maxCityLen)) +
		additional

	// Checksum tag and length are part of the checksummed bytes.
	s += "6304"
	return s + ChecksumHex(s)
}

// VerifyChecksum reports whether the trailing four hex digits of an encoded
// payload match the CRC16 of everything before them.
func VerifyChecksum(encoded string) bool {
	if len(encoded) < 4 {
		return false
	}
	body, want := encoded[:len(encoded)-4], encoded[len(encoded)-4:]
	return ChecksumHex(body) == want
}

// ChecksumHex formats the payload CRC as four uppercase hex digits.
func ChecksumHex(s string) string {
	return fmt.Sprintf("%04X", crc16(s))
}

// crc16 implements CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) over the
// payload bytes.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// tlv encodes one field: two-char tag, two-digit value length, value.
// Nested blocks pass their already-encoded children as the value.
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// truncate caps the field at max characters. Counting runes, not bytes,
// keeps accented merchant names and cities valid UTF-8 after the cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}
