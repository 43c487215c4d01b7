package qrcode

import (
	"encoding/json"

	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/service"
	"healthhub/internal/errors"

	"github.com/skip2/go-qrcode"
)

const payloadTypeEmergencyCard = "emergency_card"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Payload is the JSON document encoded in every QR code.
type Payload struct {
	Type string                `json:"type"`
	Card *entity.EmergencyCard `json:"card"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEmergencyCardQR encodes the card as a PNG QR code.
func (s *qrcodeService) GenerateEmergencyCardQR(card *entity.EmergencyCard) ([]byte, error) {
	if card == nil {
		return nil, errors.New("emergency card is required")
	}

	jsonData, err := json.Marshal(Payload{Type: payloadTypeEmergencyCard, Card: card})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
