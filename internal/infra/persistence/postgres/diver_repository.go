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

// diverRepository implements the domain's DiverRepository interface using GORM.
type diverRepository struct {
	db *gorm.DB
}

// NewDiverRepository is the constructor for diverRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewDiverRepository(db *gorm.DB) repository.DiverRepository {
	return &diverRepository{db: db}
}

// FindAll retrieves every diver, preloading their specialty tags.
func (repo *diverRepository) FindAll(ctx context.Context) ([]*entity.Diver, error) {
	var models []model.DiverModel
	if err := repo.db.WithContext(ctx).
		Preload("Specialties").
		Order("username").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list divers")
	}

	divers := make([]*entity.Diver, 0, len(models))
	for i := range models {
		divers = append(divers, toDiverDomain(&models[i]))
	}

	return divers, nil
}

// FindByID retrieves a single diver by their unique ID.
func (repo *diverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Diver, error) {
	var diverM model.DiverModel
	if err := repo.db.WithContext(ctx).
		Preload("Specialties").
		Where("id = ?", id).
		First(&diverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiverNotFound
		}

		return nil, errors.Wrap(err, "failed to find diver by id")
	}

	return toDiverDomain(&diverM), nil
}

// FindByUsername retrieves a single diver by their username.
func (repo *diverRepository) FindByUsername(ctx context.Context, username string) (*entity.Diver, error) {
	var diverM model.DiverModel
	if err := repo.db.WithContext(ctx).
		Preload("Specialties").
		Where("username = ?", username).
		First(&diverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiverNotFound
		}

		return nil, errors.Wrap(err, "failed to find diver by username")
	}

	return toDiverDomain(&diverM), nil
}

// FindByEmail retrieves a single diver by their email address.
func (repo *diverRepository) FindByEmail(ctx context.Context, email string) (*entity.Diver, error) {
	var diverM model.DiverModel
	if err := repo.db.WithContext(ctx).
		Preload("Specialties").
		Where("email = ?", email).
		First(&diverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiverNotFound
		}

		return nil, errors.Wrap(err, "failed to find diver by email")
	}

	return toDiverDomain(&diverM), nil
}

// ExistsByUsername reports whether a diver with the given username exists.
func (repo *diverRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DiverModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether a diver with the given email exists.
func (repo *diverRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DiverModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// Create persists a new diver entity, including specialty rows, to the database.
func (repo *diverRepository) Create(ctx context.Context, diver *entity.Diver) error {
	diverM := fromDiverDomain(diver)

	if err := repo.db.WithContext(ctx).Create(diverM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors. Uniqueness is also checked
		// at the application level; the database constraint is a secondary guard.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username or email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDiverCreationFailed.WrapMessage("missing required diver information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create diver")
	}

	// Update the entity with the generated ID and timestamps.
	diver.ID = diverM.ID
	diver.CreatedAt = diverM.CreatedAt
	diver.UpdatedAt = diverM.UpdatedAt

	return nil
}

// Update modifies an existing diver entity in the database. Specialty tags are
// replaced wholesale so the stored set always matches the entity.
func (repo *diverRepository) Update(ctx context.Context, diver *entity.Diver) error {
	diverM := fromDiverDomain(diver)

	result := repo.db.WithContext(ctx).
		Model(&model.DiverModel{}).
		Where("id = ?", diver.ID).
		Updates(map[string]any{
			"username":              diverM.Username,
			"email":                 diverM.Email,
			"password_hash":         diverM.PasswordHash,
			"first_name":            diverM.FirstName,
			"last_name":             diverM.LastName,
			"country_code":          diverM.CountryCode,
			"profile_picture_path":  diverM.ProfilePicturePath,
			"role":                  diverM.Role,
			"highest_certification": diverM.HighestCertification,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username or email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update diver")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiverNotFound
	}

	if err := repo.replaceSpecialties(ctx, diver.ID, diverM.Specialties); err != nil {
		return err
	}

	return nil
}

func (repo *diverRepository) replaceSpecialties(ctx context.Context, diverID uuid.UUID, specialties []model.DiverSpecialtyModel) error {
	if err := repo.db.WithContext(ctx).
		Where("diver_id = ?", diverID).
		Delete(&model.DiverSpecialtyModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear diver specialties")
	}

	if len(specialties) == 0 {
		return nil
	}

	for i := range specialties {
		specialties[i].DiverID = diverID
	}
	if err := repo.db.WithContext(ctx).Create(&specialties).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store diver specialties")
	}

	return nil
}

// Delete removes a diver by ID. Specialty rows cascade at the database level.
func (repo *diverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DiverModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete diver")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiverNotFound
	}

	return nil
}

// AdjustTotalDives atomically adds delta to the stored dive count, clamped at
// zero. The single UPDATE serializes with concurrent writers through the row
// lock, so no adjustment is lost.
func (repo *diverRepository) AdjustTotalDives(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiverModel{}).
		Where("id = ?", id).
		Update("total_dives", gorm.Expr("GREATEST(total_dives + ?, 0)", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust dive count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiverNotFound
	}

	return nil
}

// toDiverDomain maps a persistence model back to a pure domain entity.
func toDiverDomain(diverM *model.DiverModel) *entity.Diver {
	role, _ := entity.RoleFromString(diverM.Role)
	cert, _ := entity.CertificationFromString(diverM.HighestCertification)

	specialties := make([]string, 0, len(diverM.Specialties))
	for _, s := range diverM.Specialties {
		specialties = append(specialties, s.Specialty)
	}

	return &entity.Diver{
		ID:                   diverM.ID,
		Username:             diverM.Username,
		Email:                diverM.Email,
		PasswordHash:         diverM.PasswordHash,
		FirstName:            diverM.FirstName,
		LastName:             diverM.LastName,
		CountryCode:          diverM.CountryCode,
		ProfilePicturePath:   diverM.ProfilePicturePath,
		Role:                 role,
		HighestCertification: cert,
		Specialties:          specialties,
		TotalDives:           diverM.TotalDives,
		CreatedAt:            diverM.CreatedAt,
		UpdatedAt:            diverM.UpdatedAt,
	}
}

// fromDiverDomain maps a domain entity to a GORM persistence model.
// Duplicate specialty tags collapse to one row each.
func fromDiverDomain(diver *entity.Diver) *model.DiverModel {
	seen := make(map[string]struct{}, len(diver.Specialties))
	specialties := make([]model.DiverSpecialtyModel, 0, len(diver.Specialties))
	for _, s := range diver.Specialties {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		specialties = append(specialties, model.DiverSpecialtyModel{
			DiverID:   diver.ID,
			Specialty: s,
		})
	}

	return &model.DiverModel{
		ID:                   diver.ID,
		Username:             diver.Username,
		Email:                diver.Email,
		PasswordHash:         diver.PasswordHash,
		FirstName:            diver.FirstName,
		LastName:             diver.LastName,
		CountryCode:          diver.CountryCode,
		ProfilePicturePath:   diver.ProfilePicturePath,
		Role:                 diver.Role.String(),
		HighestCertification: diver.HighestCertification.String(),
		TotalDives:           diver.TotalDives,
		Specialties:          specialties,
	}
}
