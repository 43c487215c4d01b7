package service

import "healthhub/internal/domain/entity"

// QRCodeService renders QR codes for sharing profile data offline.
type QRCodeService interface {
	// GenerateEmergencyCardQR encodes the card as JSON in a PNG QR code.
	GenerateEmergencyCardQR(card *entity.EmergencyCard) ([]byte, error)
}
