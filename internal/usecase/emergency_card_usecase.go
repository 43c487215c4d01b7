package usecase

import (
	"context"

	"healthhub/internal/domain/entity"
)

// EmergencyCardUsecase renders the caller's emergency card.
type EmergencyCardUsecase interface {
	Card(ctx context.Context, user *entity.User) (*entity.EmergencyCard, error)

	// CardQR returns the card encoded as a PNG QR code.
	CardQR(ctx context.Context, user *entity.User) ([]byte, error)
}
