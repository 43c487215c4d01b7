package impl

import (
	"context"
	"log/slog"

	deliverycontext "healthhub/internal/delivery/context"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/domain/service"
	"healthhub/internal/errors"
	"healthhub/internal/usecase"

	"go.uber.org/fx"
)

// emergencyCardService implements the EmergencyCardUsecase interface.
type emergencyCardService struct {
	medicineRepo repository.MedicineRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// EmergencyCardServiceParams holds dependencies for EmergencyCardService, injected by Fx.
type EmergencyCardServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewEmergencyCardService is the constructor for emergencyCardService.
func NewEmergencyCardService(params EmergencyCardServiceParams) usecase.EmergencyCardUsecase {
	return &emergencyCardService{
		medicineRepo: params.MedicineRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *emergencyCardService) Card(ctx context.Context, user *entity.User) (*entity.EmergencyCard, error) {
	medicines, err := srv.medicineRepo.ListByUser(ctx, user.ID, usecase.MedicineListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load medicines for emergency card")
	}

	return entity.NewEmergencyCard(user, medicines), nil
}

func (srv *emergencyCardService) CardQR(ctx context.Context, user *entity.User) ([]byte, error) {
	card, err := srv.Card(ctx, user)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateEmergencyCardQR(card)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to render emergency card QR",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to generate emergency card QR code")
	}

	return png, nil
}
