package registration

import (
	"encoding/base64"
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSizePx = 150

// Ticket green on white, matching the rest of the ticket styling.
var qrForeground = color.RGBA{R: 0x23, G: 0x90, B: 0x3a, A: 0xff}

// ticketQRCodeDataURL encodes the ticket's identifying details as a
// QR code PNG wrapped in a data URL, for embedding directly in the
// ticket email.
func ticketQRCodeDataURL(ticket Ticket) (string, error) {
	payload := fmt.Sprintf("Ticket ID: %s\nName: %s\nEmail: %s", ticket.ID, ticket.AttendeeName, ticket.AttendeeEmail)

	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	code.ForegroundColor = qrForeground
	code.BackgroundColor = color.White

	png, err := code.PNG(qrCodeSizePx)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code PNG: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
