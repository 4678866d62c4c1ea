package impl

import (
	"context"
	"log/slog"

	deliverycontext "scubakeep/internal/delivery/context"
	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/repository"
	"scubakeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// diveLogService implements the DiveLogUsecase interface. Every mutation
// adjusts the owning diver's dive count inside the same transaction, so the
// counter and the set of logs never diverge.
type diveLogService struct {
	txManager   repository.TransactionManager
	diveLogRepo repository.DiveLogRepository
	logger      *slog.Logger
}

// DiveLogServiceParams holds dependencies for diveLogService, injected by Fx.
type DiveLogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DiveLogRepo repository.DiveLogRepository
	Logger      *slog.Logger
}

// NewDiveLogService is the constructor for diveLogService.
func NewDiveLogService(params DiveLogServiceParams) usecase.DiveLogUsecase {
	return &diveLogService{
		txManager:   params.TxManager,
		diveLogRepo: params.DiveLogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *diveLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDiveLogs retrieves every dive log.
func (srv *diveLogService) ListDiveLogs(ctx context.Context) (*usecase.DiveLogListOutput, error) {
	logs, err := srv.diveLogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dive logs")
	}

	return &usecase.DiveLogListOutput{DiveLogs: logs}, nil
}

// GetDiveLog retrieves a single dive log by ID.
func (srv *diveLogService) GetDiveLog(ctx context.Context, id uuid.UUID) (*usecase.DiveLogOutput, error) {
	log, err := srv.diveLogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiveLogNotFound) {
			return nil, domainerrors.ErrDiveLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find dive log by id")
	}

	return &usecase.DiveLogOutput{DiveLog: log}, nil
}

// CreateDiveLog records a new dive and increments the owner's dive count in
// the same transaction.
func (srv *diveLogService) CreateDiveLog(ctx context.Context, input *usecase.CreateDiveLogInput) (*usecase.DiveLogOutput, error) {
	newLog := &entity.DiveLog{
		DiverID:   input.DiverID,
		DiveDate:  input.DiveDate,
		Location:  input.Location,
		DiveSite:  input.DiveSite,
		MaxDepth:  input.MaxDepth,
		Duration:  input.Duration,
		DiveBuddy: input.DiveBuddy,
		Notes:     input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diverRepo := repoFactory.DiverRepo()
		diveLogRepo := repoFactory.DiveLogRepo()

		if _, err := diverRepo.FindByID(ctx, input.DiverID); err != nil {
			if errors.Is(err, repository.ErrDiverNotFound) {
				return domainerrors.ErrDiverNotFound
			}

			return errors.Wrap(err, "failed to find owning diver")
		}

		if err := diveLogRepo.Create(ctx, newLog); err != nil {
			return errors.Wrap(err, "failed to create dive log")
		}

		if err := diverRepo.AdjustTotalDives(ctx, input.DiverID, 1); err != nil {
			return errors.Wrap(err, "failed to increment dive count")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute dive log creation transaction", slog.Any("diverID", input.DiverID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dive log creation transaction")
	}

	srv.log(ctx).Debug("Dive log created", slog.Any("diveLogID", newLog.ID), slog.Any("diverID", newLog.DiverID))

	return &usecase.DiveLogOutput{DiveLog: newLog}, nil
}

// UpdateDiveLog performs a full update of an existing dive log. When the
// update reassigns the log to a different diver, the old owner's count goes
// down and the new owner's goes up, both in the same transaction.
func (srv *diveLogService) UpdateDiveLog(ctx context.Context, id uuid.UUID, input *usecase.UpdateDiveLogInput) (*usecase.DiveLogOutput, error) {
	var updatedLog *entity.DiveLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diverRepo := repoFactory.DiverRepo()
		diveLogRepo := repoFactory.DiveLogRepo()

		existing, err := diveLogRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDiveLogNotFound) {
				return domainerrors.ErrDiveLogNotFound
			}

			return errors.Wrap(err, "failed to find dive log for update")
		}

		previousOwner := existing.DiverID
		reassigned := previousOwner != input.DiverID

		if reassigned {
			if _, err := diverRepo.FindByID(ctx, input.DiverID); err != nil {
				if errors.Is(err, repository.ErrDiverNotFound) {
					return domainerrors.ErrDiverNotFound
				}

				return errors.Wrap(err, "failed to find new owning diver")
			}
		}

		existing.DiverID = input.DiverID
		existing.DiveDate = input.DiveDate
		existing.Location = input.Location
		existing.DiveSite = input.DiveSite
		existing.MaxDepth = input.MaxDepth
		existing.Duration = input.Duration
		existing.DiveBuddy = input.DiveBuddy
		existing.Notes = input.Notes

		if err := diveLogRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update dive log")
		}

		if reassigned {
			if err := diverRepo.AdjustTotalDives(ctx, previousOwner, -1); err != nil {
				return errors.Wrap(err, "failed to decrement previous owner dive count")
			}
			if err := diverRepo.AdjustTotalDives(ctx, input.DiverID, 1); err != nil {
				return errors.Wrap(err, "failed to increment new owner dive count")
			}
		}

		updatedLog = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute dive log update transaction", slog.Any("diveLogID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dive log update transaction")
	}

	srv.log(ctx).Debug("Dive log updated", slog.Any("diveLogID", id))

	return &usecase.DiveLogOutput{DiveLog: updatedLog}, nil
}

// DeleteDiveLog removes a dive log and decrements the owner's dive count in
// the same transaction. The decrement clamps at zero.
func (srv *diveLogService) DeleteDiveLog(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diverRepo := repoFactory.DiverRepo()
		diveLogRepo := repoFactory.DiveLogRepo()

		existing, err := diveLogRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDiveLogNotFound) {
				return domainerrors.ErrDiveLogNotFound
			}

			return errors.Wrap(err, "failed to find dive log for deletion")
		}

		if err := diveLogRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete dive log")
		}

		if err := diverRepo.AdjustTotalDives(ctx, existing.DiverID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement dive count")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute dive log deletion transaction", slog.Any("diveLogID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute dive log deletion transaction")
	}

	srv.log(ctx).Debug("Dive log deleted", slog.Any("diveLogID", id))

	return nil
}
