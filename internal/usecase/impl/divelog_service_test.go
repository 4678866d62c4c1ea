package impl

import (
	"context"
	"testing"
	"time"

	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/repository"
	"scubakeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateDiveLogInput(diverID uuid.UUID) *usecase.CreateDiveLogInput {
	return &usecase.CreateDiveLogInput{
		DiverID:  diverID,
		DiveDate: time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Location: "Red Sea",
		DiveSite: "SS Thistlegorm",
		MaxDepth: 30.5,
		Duration: 45,
	}
}

func TestDiveLogService_CreateDiveLog_IncrementsOwnerCount(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	diverID := uuid.New()

	fx.diverRepo.On("FindByID", ctx, diverID).Return(&entity.Diver{ID: diverID}, nil)
	fx.diveLogRepo.On("Create", ctx, mock.AnythingOfType("*entity.DiveLog")).
		Run(func(args mock.Arguments) {
			log := args.Get(1).(*entity.DiveLog)
			log.ID = uuid.New()
		}).
		Return(nil)
	fx.diverRepo.On("AdjustTotalDives", ctx, diverID, 1).Return(nil)

	output, err := fx.service.CreateDiveLog(ctx, validCreateDiveLogInput(diverID))

	require.NoError(t, err)
	assert.Equal(t, diverID, output.DiveLog.DiverID)
	assert.NotEqual(t, uuid.Nil, output.DiveLog.ID)
	fx.diverRepo.AssertExpectations(t)
	fx.diveLogRepo.AssertExpectations(t)
}

func TestDiveLogService_CreateDiveLog_UnknownDiver(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	diverID := uuid.New()

	fx.diverRepo.On("FindByID", ctx, diverID).Return(nil, repository.ErrDiverNotFound)

	_, err := fx.service.CreateDiveLog(ctx, validCreateDiveLogInput(diverID))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiverNotFound))
	fx.diveLogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.diverRepo.AssertNotCalled(t, "AdjustTotalDives", mock.Anything, mock.Anything, mock.Anything)
}

func TestDiveLogService_DeleteDiveLog_DecrementsOwnerCount(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	diverID := uuid.New()
	logID := uuid.New()

	fx.diveLogRepo.On("FindByID", ctx, logID).Return(&entity.DiveLog{ID: logID, DiverID: diverID}, nil)
	fx.diveLogRepo.On("Delete", ctx, logID).Return(nil)
	fx.diverRepo.On("AdjustTotalDives", ctx, diverID, -1).Return(nil)

	err := fx.service.DeleteDiveLog(ctx, logID)

	require.NoError(t, err)
	fx.diverRepo.AssertExpectations(t)
	fx.diveLogRepo.AssertExpectations(t)
}

func TestDiveLogService_DeleteDiveLog_NotFound(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	logID := uuid.New()

	fx.diveLogRepo.On("FindByID", ctx, logID).Return(nil, repository.ErrDiveLogNotFound)

	err := fx.service.DeleteDiveLog(ctx, logID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiveLogNotFound))
	fx.diveLogRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDiveLogService_UpdateDiveLog_SameOwnerLeavesCountsAlone(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	diverID := uuid.New()
	logID := uuid.New()

	fx.diveLogRepo.On("FindByID", ctx, logID).Return(&entity.DiveLog{ID: logID, DiverID: diverID}, nil)
	fx.diveLogRepo.On("Update", ctx, mock.AnythingOfType("*entity.DiveLog")).Return(nil)

	input := validCreateDiveLogInput(diverID)
	input.Notes = "strong current"

	output, err := fx.service.UpdateDiveLog(ctx, logID, input)

	require.NoError(t, err)
	assert.Equal(t, "strong current", output.DiveLog.Notes)
	fx.diverRepo.AssertNotCalled(t, "AdjustTotalDives", mock.Anything, mock.Anything, mock.Anything)
}

func TestDiveLogService_UpdateDiveLog_ReassignmentConservesCounts(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	oldOwner := uuid.New()
	newOwner := uuid.New()
	logID := uuid.New()

	fx.diveLogRepo.On("FindByID", ctx, logID).Return(&entity.DiveLog{ID: logID, DiverID: oldOwner}, nil)
	fx.diverRepo.On("FindByID", ctx, newOwner).Return(&entity.Diver{ID: newOwner}, nil)
	fx.diveLogRepo.On("Update", ctx, mock.AnythingOfType("*entity.DiveLog")).Return(nil)

	// One decrement for the old owner, one increment for the new: the sum of
	// all counters is unchanged by a reassignment.
	fx.diverRepo.On("AdjustTotalDives", ctx, oldOwner, -1).Return(nil)
	fx.diverRepo.On("AdjustTotalDives", ctx, newOwner, 1).Return(nil)

	output, err := fx.service.UpdateDiveLog(ctx, logID, validCreateDiveLogInput(newOwner))

	require.NoError(t, err)
	assert.Equal(t, newOwner, output.DiveLog.DiverID)
	fx.diverRepo.AssertExpectations(t)
}

func TestDiveLogService_UpdateDiveLog_ReassignmentToUnknownDiver(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	oldOwner := uuid.New()
	newOwner := uuid.New()
	logID := uuid.New()

	fx.diveLogRepo.On("FindByID", ctx, logID).Return(&entity.DiveLog{ID: logID, DiverID: oldOwner}, nil)
	fx.diverRepo.On("FindByID", ctx, newOwner).Return(nil, repository.ErrDiverNotFound)

	_, err := fx.service.UpdateDiveLog(ctx, logID, validCreateDiveLogInput(newOwner))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiverNotFound))
	fx.diveLogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.diverRepo.AssertNotCalled(t, "AdjustTotalDives", mock.Anything, mock.Anything, mock.Anything)
}

func TestDiveLogService_GetDiveLog(t *testing.T) {
	fx := createTestDiveLogService(t)
	ctx := context.Background()
	logID := uuid.New()

	fx.diveLogRepo.On("FindByID", ctx, logID).Return(&entity.DiveLog{ID: logID, Location: "Red Sea"}, nil)

	output, err := fx.service.GetDiveLog(ctx, logID)

	require.NoError(t, err)
	assert.Equal(t, "Red Sea", output.DiveLog.Location)
}
