package impl

import (
	"context"
	"log/slog"

	deliverycontext "scubakeep/internal/delivery/context"
	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/repository"
	"scubakeep/internal/domain/service"
	"scubakeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// diverService implements the DiverUsecase interface.
type diverService struct {
	txManager     repository.TransactionManager
	diverRepo     repository.DiverRepository
	hasher        service.PasswordHasher
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// DiverServiceParams holds dependencies for diverService, injected by Fx.
type DiverServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DiverRepo     repository.DiverRepository
	Hasher        service.PasswordHasher
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewDiverService is the constructor for diverService.
func NewDiverService(params DiverServiceParams) usecase.DiverUsecase {
	return &diverService{
		txManager:     params.TxManager,
		diverRepo:     params.DiverRepo,
		hasher:        params.Hasher,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *diverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDivers retrieves every diver.
func (srv *diverService) ListDivers(ctx context.Context) (*usecase.DiverListOutput, error) {
	divers, err := srv.diverRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list divers")
	}

	return &usecase.DiverListOutput{Divers: divers}, nil
}

// GetDiver retrieves a single diver by ID.
func (srv *diverService) GetDiver(ctx context.Context, id uuid.UUID) (*usecase.DiverOutput, error) {
	diver, err := srv.findDiver(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.DiverOutput{Diver: diver}, nil
}

// GetDiverQRCode generates a profile share code for an existing diver.
func (srv *diverService) GetDiverQRCode(ctx context.Context, id uuid.UUID) (*usecase.DiverQRCodeOutput, error) {
	// Verify the diver exists before encoding a reference to it.
	if _, err := srv.findDiver(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateProfileQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate profile QR code", slog.Any("diverID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return &usecase.DiverQRCodeOutput{PNG: png}, nil
}

// CreateDiver orchestrates the complete diver creation process. Username and
// email uniqueness are checked before the insert so duplicates surface as
// conflicts, not database errors.
func (srv *diverService) CreateDiver(ctx context.Context, input *usecase.CreateDiverInput) (*usecase.DiverOutput, error) {
	srv.log(ctx).Info("Starting diver creation", slog.String("username", input.Username))

	cert, ok := entity.CertificationFromString(input.HighestCertification)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown certification level")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during diver creation", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newDiver := &entity.Diver{
		Username:             input.Username,
		Email:                input.Email,
		PasswordHash:         hashedPassword,
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		CountryCode:          input.CountryCode,
		ProfilePicturePath:   input.ProfilePicturePath,
		Role:                 entity.RoleUser,
		HighestCertification: cert,
		Specialties:          input.Specialties,
		TotalDives:           0,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diverRepo := repoFactory.DiverRepo()

		usernameTaken, err := diverRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username availability")
		}
		if usernameTaken {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username already taken")
		}

		emailTaken, err := diverRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if emailTaken {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}

		return diverRepo.Create(ctx, newDiver)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute diver creation transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute diver creation transaction")
	}

	srv.log(ctx).Debug("Diver created", slog.Any("diverID", newDiver.ID))

	return &usecase.DiverOutput{Diver: newDiver}, nil
}

// UpdateDiver modifies the mutable profile fields of an existing diver.
// Credentials, role and the dive count pass through untouched.
func (srv *diverService) UpdateDiver(ctx context.Context, id uuid.UUID, input *usecase.UpdateDiverInput) (*usecase.DiverOutput, error) {
	cert, ok := entity.CertificationFromString(input.HighestCertification)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown certification level")
	}

	var updatedDiver *entity.Diver
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diverRepo := repoFactory.DiverRepo()

		diver, err := diverRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDiverNotFound) {
				return domainerrors.ErrDiverNotFound
			}

			return errors.Wrap(err, "failed to find diver for update")
		}

		diver.FirstName = input.FirstName
		diver.LastName = input.LastName
		diver.CountryCode = input.CountryCode
		diver.ProfilePicturePath = input.ProfilePicturePath
		diver.HighestCertification = cert
		diver.Specialties = input.Specialties

		if err := diverRepo.Update(ctx, diver); err != nil {
			return errors.Wrap(err, "failed to update diver")
		}

		updatedDiver = diver

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute diver update transaction", slog.Any("diverID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute diver update transaction")
	}

	srv.log(ctx).Debug("Diver updated", slog.Any("diverID", id))

	return &usecase.DiverOutput{Diver: updatedDiver}, nil
}

// DeleteDiver removes a diver and every dive log they own in one transaction.
// The number of removed logs is cross-checked against the stored dive count;
// a mismatch means the counter had drifted and is logged loudly.
func (srv *diverService) DeleteDiver(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Starting diver deletion", slog.Any("diverID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diverRepo := repoFactory.DiverRepo()
		diveLogRepo := repoFactory.DiveLogRepo()

		diver, err := diverRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDiverNotFound) {
				return domainerrors.ErrDiverNotFound
			}

			return errors.Wrap(err, "failed to find diver for deletion")
		}

		removed, err := diveLogRepo.DeleteByDiverID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete dive logs for diver")
		}

		if removed != int64(diver.TotalDives) {
			srv.log(ctx).Error("Dive count mismatch detected during diver deletion",
				slog.Any("diverID", id),
				slog.Int("storedTotalDives", diver.TotalDives),
				slog.Int64("removedDiveLogs", removed))
		}

		if err := diverRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete diver")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute diver deletion transaction", slog.Any("diverID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute diver deletion transaction")
	}

	srv.log(ctx).Info("Diver deleted", slog.Any("diverID", id))

	return nil
}

func (srv *diverService) findDiver(ctx context.Context, id uuid.UUID) (*entity.Diver, error) {
	diver, err := srv.diverRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiverNotFound) {
			return nil, domainerrors.ErrDiverNotFound
		}

		return nil, errors.Wrap(err, "failed to find diver by id")
	}

	return diver, nil
}
