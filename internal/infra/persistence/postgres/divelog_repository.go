package postgres

import (
	"context"

	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/repository"
	"scubakeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// diveLogRepository implements the domain's DiveLogRepository interface using GORM.
type diveLogRepository struct {
	db *gorm.DB
}

// NewDiveLogRepository is the constructor for diveLogRepository.
func NewDiveLogRepository(db *gorm.DB) repository.DiveLogRepository {
	return &diveLogRepository{db: db}
}

// FindAll retrieves every dive log, newest dives first.
func (repo *diveLogRepository) FindAll(ctx context.Context) ([]*entity.DiveLog, error) {
	var models []model.DiveLogModel
	if err := repo.db.WithContext(ctx).
		Order("dive_date DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dive logs")
	}

	logs := make([]*entity.DiveLog, 0, len(models))
	for i := range models {
		logs = append(logs, toDiveLogDomain(&models[i]))
	}

	return logs, nil
}

// FindByID retrieves a single dive log by its unique ID.
func (repo *diveLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiveLog, error) {
	var logM model.DiveLogModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiveLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find dive log by id")
	}

	return toDiveLogDomain(&logM), nil
}

// CountByDiverID returns the number of dive logs referencing the diver.
func (repo *diveLogRepository) CountByDiverID(ctx context.Context, diverID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DiveLogModel{}).
		Where("diver_id = ?", diverID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count dive logs")
	}

	return count, nil
}

// Create persists a new dive log entity to the database.
func (repo *diveLogRepository) Create(ctx context.Context, log *entity.DiveLog) error {
	logM := fromDiveLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDiverNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required dive log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dive log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// Update modifies an existing dive log entity in the database. The owning
// diver ID is written too, so ownership reassignment goes through here.
func (repo *diveLogRepository) Update(ctx context.Context, log *entity.DiveLog) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiveLogModel{}).
		Where("id = ?", log.ID).
		Updates(map[string]any{
			"diver_id":   log.DiverID,
			"dive_date":  log.DiveDate,
			"location":   log.Location,
			"dive_site":  log.DiveSite,
			"max_depth":  log.MaxDepth,
			"duration":   log.Duration,
			"dive_buddy": log.DiveBuddy,
			"notes":      log.Notes,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDiverNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dive log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiveLogNotFound
	}

	return nil
}

// Delete removes a dive log by ID.
func (repo *diveLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DiveLogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dive log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiveLogNotFound
	}

	return nil
}

// DeleteByDiverID removes every dive log owned by the diver and returns the
// number of rows removed, so the caller can cross-check the stored dive count.
func (repo *diveLogRepository) DeleteByDiverID(ctx context.Context, diverID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("diver_id = ?", diverID).
		Delete(&model.DiveLogModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dive logs for diver")
	}

	return result.RowsAffected, nil
}

func toDiveLogDomain(logM *model.DiveLogModel) *entity.DiveLog {
	return &entity.DiveLog{
		ID:        logM.ID,
		DiverID:   logM.DiverID,
		DiveDate:  logM.DiveDate,
		Location:  logM.Location,
		DiveSite:  logM.DiveSite,
		MaxDepth:  logM.MaxDepth,
		Duration:  logM.Duration,
		DiveBuddy: logM.DiveBuddy,
		Notes:     logM.Notes,
		CreatedAt: logM.CreatedAt,
		UpdatedAt: logM.UpdatedAt,
	}
}

func fromDiveLogDomain(log *entity.DiveLog) *model.DiveLogModel {
	return &model.DiveLogModel{
		ID:        log.ID,
		DiverID:   log.DiverID,
		DiveDate:  log.DiveDate,
		Location:  log.Location,
		DiveSite:  log.DiveSite,
		MaxDepth:  log.MaxDepth,
		Duration:  log.Duration,
		DiveBuddy: log.DiveBuddy,
		Notes:     log.Notes,
	}
}
