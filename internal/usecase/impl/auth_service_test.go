package impl

import (
	"context"
	"testing"

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

func TestAuthService_IssueToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	diverID := uuid.New()
	diver := &entity.Diver{
		ID:           diverID,
		Username:     "deepdiver42",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	fx.diverRepo.On("FindByUsername", ctx, "deepdiver42").Return(diver, nil)
	fx.hasher.On("Check", "hunter2hunter2", "stored-hash").Return(true)
	fx.tokenService.On("Issue", diverID, "deepdiver42", entity.RoleUser).Return("signed-token", nil)

	output, err := fx.service.IssueToken(ctx, &usecase.TokenInput{
		Identifier: "deepdiver42",
		Password:   "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	fx.diverRepo.AssertExpectations(t)
}

func TestAuthService_IssueToken_EmailFallback(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	diver := &entity.Diver{
		ID:           uuid.New(),
		Username:     "deepdiver42",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	// The identifier resolves by username first, then by email.
	fx.diverRepo.On("FindByUsername", ctx, "diver@example.com").Return(nil, repository.ErrDiverNotFound)
	fx.diverRepo.On("FindByEmail", ctx, "diver@example.com").Return(diver, nil)
	fx.hasher.On("Check", "hunter2hunter2", "stored-hash").Return(true)
	fx.tokenService.On("Issue", diver.ID, "deepdiver42", entity.RoleUser).Return("signed-token", nil)

	output, err := fx.service.IssueToken(ctx, &usecase.TokenInput{
		Identifier: "diver@example.com",
		Password:   "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	fx.diverRepo.AssertExpectations(t)
}

func TestAuthService_IssueToken_UnknownIdentifierAndWrongPasswordIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknownFx := createTestAuthService(t)
	unknownFx.diverRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrDiverNotFound)
	unknownFx.diverRepo.On("FindByEmail", ctx, "ghost").Return(nil, repository.ErrDiverNotFound)

	_, unknownErr := unknownFx.service.IssueToken(ctx, &usecase.TokenInput{
		Identifier: "ghost",
		Password:   "whatever",
	})
	require.Error(t, unknownErr)

	wrongFx := createTestAuthService(t)
	wrongFx.diverRepo.On("FindByUsername", ctx, "deepdiver42").Return(&entity.Diver{
		ID:           uuid.New(),
		Username:     "deepdiver42",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}, nil)
	wrongFx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, wrongErr := wrongFx.service.IssueToken(ctx, &usecase.TokenInput{
		Identifier: "deepdiver42",
		Password:   "wrong",
	})
	require.Error(t, wrongErr)

	// Both failure modes surface the same credential error, so the response
	// never reveals whether the account exists.
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))

	wrongFx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_DelegatesToDiverCreation(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:             "deepdiver42",
		Email:                "diver@example.com",
		Password:             "hunter2hunter2",
		FirstName:            "Jacques",
		LastName:             "Moreau",
		CountryCode:          "FR",
		HighestCertification: "OPEN_WATER",
	}

	fx.diverRepo.On("ExistsByUsername", ctx, "deepdiver42").Return(false, nil)
	fx.diverRepo.On("ExistsByEmail", ctx, "diver@example.com").Return(false, nil)
	fx.hasher.On("Hash", "hunter2hunter2").Return("hashed", nil)
	fx.diverRepo.On("Create", ctx, mock.AnythingOfType("*entity.Diver")).
		Run(func(args mock.Arguments) {
			diver := args.Get(1).(*entity.Diver)
			diver.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "deepdiver42", output.Diver.Username)
	assert.Equal(t, entity.RoleUser, output.Diver.Role)
	assert.Equal(t, "hashed", output.Diver.PasswordHash)
	assert.Zero(t, output.Diver.TotalDives)
}
