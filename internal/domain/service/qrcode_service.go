package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services.
type QRCodeService interface {
	// GenerateProfileQR generates a QR code image encoding a diver profile reference.
	GenerateProfileQR(diverID uuid.UUID) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the encoded diver ID.
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
