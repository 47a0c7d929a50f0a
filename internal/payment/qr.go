package payment

import (
	"net/url"
	"strings"
)

const qrImageBase = "https://api.qrserver.com/v1/create-qr-code/?size=240x240&data="

// QRImageURL returns a link that renders the encoded payload as a QR image.
// Spaces are percent-encoded so the payload survives the round trip through
// the image service untouched.
func QRImageURL(encoded string) string {
	return qrImageBase + strings.ReplaceAll(url.QueryEscape(encoded), "+", "%20")
}
