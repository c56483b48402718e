package qrcode

import qr "github.com/skip2/go-qrcode"

const defaultSize = 512

// GeneratePNG encodes the content as a QR code PNG.
func GeneratePNG(content string) ([]byte, error) {
	return qr.Encode(content, qr.Medium, defaultSize)
}
